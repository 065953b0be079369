// server/internal/models/user.go
package models

import "time"

// User is the credential record in the auth provider's store. Role and
// Approved are the custom claims: they are pushed here from the profile
// (createUserProfile / syncUserClaims) and minted into the JWT at login.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Fullname  string    `bson:"fullname" json:"fullname"`
	Password  string    `bson:"password" json:"-"`
	Role      UserRole  `bson:"role" json:"role"`
	Approved  bool      `bson:"approved" json:"approved"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
