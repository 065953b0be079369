// server/internal/api/handlers/function_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/gin-gonic/gin"
)

// FunctionHandler exposes the two callable bootstrap procedures. Failures
// carry a machine-readable code so the client can branch on kind.
type FunctionHandler struct {
	Store database.Store
}

// Error kinds for callable procedures.
const (
	CodeUnauthenticated  = "unauthenticated"
	CodePermissionDenied = "permission-denied"
	CodeInvalidArgument  = "invalid-argument"
	CodeNotFound         = "not-found"
	CodeInternal         = "internal"
)

var codeStatus = map[string]int{
	CodeUnauthenticated:  http.StatusUnauthorized,
	CodePermissionDenied: http.StatusForbidden,
	CodeInvalidArgument:  http.StatusBadRequest,
	CodeNotFound:         http.StatusNotFound,
	CodeInternal:         http.StatusInternalServerError,
}

func functionError(c *gin.Context, code, message string) {
	status, ok := codeStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"success": false, "code": code, "message": message})
}

// CreateUserProfile creates the caller's profile on first login. The first
// profile ever created becomes the bootstrap admin; everyone after starts
// pending and unapproved.
//
// The emptiness probe and the insert are two separate operations, same as
// the original Firestore function: two simultaneous first logins can both
// observe an empty collection and both become admin. Kept as is.
func (h *FunctionHandler) CreateUserProfile(c *gin.Context) {
	uid := c.GetString("user_id")
	if uid == "" {
		functionError(c, CodeUnauthenticated, "User must be authenticated")
		return
	}
	ctx := c.Request.Context()

	existing, err := h.Store.FetchProfile(ctx, uid)
	if err != nil {
		slog.Error("createUserProfile: profile lookup failed", "user", uid, "err", err)
		functionError(c, CodeInternal, "Failed to create profile")
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile already exists"})
		return
	}

	isFirstUser, err := h.Store.ProfilesEmpty(ctx)
	if err != nil {
		slog.Error("createUserProfile: emptiness probe failed", "user", uid, "err", err)
		functionError(c, CodeInternal, "Failed to create profile")
		return
	}

	user, err := h.Store.FetchUser(ctx, uid)
	if err != nil {
		slog.Error("createUserProfile: user lookup failed", "user", uid, "err", err)
		functionError(c, CodeInternal, "Failed to create profile")
		return
	}

	email := ""
	fullname := ""
	if user != nil {
		email = user.Email
		fullname = user.Fullname
	}
	if fullname == "" {
		if at := strings.Index(email, "@"); at > 0 {
			fullname = email[:at]
		} else {
			fullname = "User"
		}
	}

	role := models.RolePending
	approved := false
	if isFirstUser {
		role = models.RoleAdmin
		approved = true
	}

	profile := models.Profile{
		ID:        uid,
		Email:     email,
		Fullname:  fullname,
		Role:      role,
		Approved:  approved,
		CreatedAt: time.Now(),
	}
	if err := h.Store.CreateProfile(ctx, &profile); err != nil {
		slog.Error("createUserProfile: insert failed", "user", uid, "err", err)
		functionError(c, CodeInternal, "Failed to create profile")
		return
	}

	if err := h.Store.SetUserClaims(ctx, uid, role, approved); err != nil {
		slog.Error("createUserProfile: claims update failed", "user", uid, "err", err)
		functionError(c, CodeInternal, "Failed to create profile")
		return
	}

	slog.Info("profile created", "user", uid, "role", role, "approved", approved, "firstUser", isFirstUser)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Profile created successfully",
		"role":     role,
		"approved": approved,
	})
}

type SyncUserClaimsRequest struct {
	UserID string `json:"userId"`
}

// SyncUserClaims re-reads a profile's role/approved and pushes them onto
// the auth record, idempotently overwriting whatever claims were there.
// Admin only; used after role or approval changes so the next login picks
// them up.
func (h *FunctionHandler) SyncUserClaims(c *gin.Context) {
	if c.GetString("user_role") != string(models.RoleAdmin) {
		functionError(c, CodePermissionDenied, "Only admins can sync user claims")
		return
	}

	var req SyncUserClaimsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		functionError(c, CodeInvalidArgument, "userId is required")
		return
	}
	ctx := c.Request.Context()

	profile, err := h.Store.FetchProfile(ctx, req.UserID)
	if err != nil {
		slog.Error("syncUserClaims: profile lookup failed", "user", req.UserID, "err", err)
		functionError(c, CodeInternal, "Failed to sync claims")
		return
	}
	if profile == nil {
		functionError(c, CodeNotFound, "Profile not found")
		return
	}

	if err := h.Store.SetUserClaims(ctx, req.UserID, profile.Role, profile.Approved); err != nil {
		slog.Error("syncUserClaims: claims update failed", "user", req.UserID, "err", err)
		functionError(c, CodeInternal, "Failed to sync claims")
		return
	}

	slog.Info("claims synced", "user", req.UserID, "role", profile.Role, "approved", profile.Approved)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"role":     profile.Role,
		"approved": profile.Approved,
	})
}
