// server/internal/auth/auth.go
package auth

import (
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims defines the payload for the JWT. Role and Approved mirror the
// custom claims on the auth user record at the moment of login.
type JWTClaims struct {
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	Approved bool            `json:"approved"`
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// JWT generation. Secret and lifetime come from the config at startup.
var (
	JwtSecret  []byte
	expiration = 24 * time.Hour
)

// Init sets the signing secret and token lifetime. An unparsable lifetime
// keeps the 24h default.
func Init(secret, lifetime string) {
	JwtSecret = []byte(secret)
	if d, err := time.ParseDuration(lifetime); err == nil && d > 0 {
		expiration = d
	}
}

func GenerateJWT(userID, email string, role models.UserRole, approved bool) (string, error) {
	expirationTime := time.Now().Add(expiration)
	claims := &JWTClaims{
		Email:    email,
		Role:     role,
		Approved: approved,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtSecret)
}
