// server/internal/api/handlers/profile_handler.go
package handlers

import (
	"net/http"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	Store database.Store
}

// GetMyProfile returns the caller's profile, or 404 before
// createUserProfile has run.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	uid := c.GetString("user_id")

	profile, err := h.Store.FetchProfile(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":  profile,
		"canWrite": profile.CanWrite(),
	})
}

type UpdateMyProfileRequest struct {
	Fullname     *string `json:"fullname"`
	Position     *string `json:"position"`
	Organization *string `json:"organization"`
}

// UpdateMyProfile lets a user edit display fields only. Role and approval
// stay admin territory.
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	uid := c.GetString("user_id")

	var req UpdateMyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Store.UpdateProfile(c.Request.Context(), uid, database.ProfileUpdate{
		Fullname:     req.Fullname,
		Position:     req.Position,
		Organization: req.Organization,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// ListProfiles returns all profiles ordered by creation time, for the admin
// user-management screen.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.Store.ListProfiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query profiles"})
		return
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}
	c.JSON(http.StatusOK, profiles)
}

type UpdateUserRoleRequest struct {
	Role     models.UserRole `json:"role" binding:"required"`
	Approved *bool           `json:"approved" binding:"required"`
}

// UpdateUserRole sets role and approval on a profile. The new values reach
// the auth claims only when syncUserClaims runs (or at the target's next
// profile bootstrap); the two stores are not updated atomically.
func (h *ProfileHandler) UpdateUserRole(c *gin.Context) {
	userID := c.Param("id")

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Role {
	case models.RolePending, models.RoleStaff, models.RoleResearcher,
		models.RoleExecutive, models.RoleExternal, models.RoleAdmin:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	profile, err := h.Store.FetchProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	err = h.Store.UpdateProfile(c.Request.Context(), userID, database.ProfileUpdate{
		Role:     &req.Role,
		Approved: req.Approved,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User role updated successfully"})
}
