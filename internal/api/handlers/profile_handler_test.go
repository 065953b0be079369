// server/internal/api/handlers/profile_handler_test.go
package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetMyProfileReportsWriteAccess(t *testing.T) {
	store := database.NewMemStore()
	h := &ProfileHandler{Store: store}

	assert.NoError(t, store.CreateProfile(context.Background(), &models.Profile{
		ID:       "u1",
		Role:     models.RoleExecutive,
		Approved: true,
	}))

	c, w := testContext(t, http.MethodGet, "/profile", nil)
	c.Set("user_id", "u1")
	h.GetMyProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["canWrite"], "approved executives stay read-only")
}

func TestGetMyProfileBeforeBootstrap(t *testing.T) {
	h := &ProfileHandler{Store: database.NewMemStore()}

	c, w := testContext(t, http.MethodGet, "/profile", nil)
	c.Set("user_id", "u1")
	h.GetMyProfile(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMyProfileDisplayFieldsOnly(t *testing.T) {
	store := database.NewMemStore()
	h := &ProfileHandler{Store: store}

	assert.NoError(t, store.CreateProfile(context.Background(), &models.Profile{
		ID:   "u1",
		Role: models.RolePending,
	}))

	c, w := testContext(t, http.MethodPut, "/profile", gin.H{
		"fullname":     "Araya",
		"position":     "Field lead",
		"organization": "RFD",
	})
	c.Set("user_id", "u1")
	h.UpdateMyProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)

	profile, err := store.FetchProfile(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Araya", profile.Fullname)
	assert.Equal(t, "Field lead", *profile.Position)
	assert.Equal(t, models.RolePending, profile.Role, "role cannot be self-assigned")
}

func TestUpdateUserRole(t *testing.T) {
	store := database.NewMemStore()
	h := &ProfileHandler{Store: store}

	assert.NoError(t, store.CreateUser(context.Background(), &models.User{ID: "u2"}))
	assert.NoError(t, store.CreateProfile(context.Background(), &models.Profile{
		ID:   "u2",
		Role: models.RolePending,
	}))

	c, w := testContext(t, http.MethodPut, "/admin/profiles/u2/role", gin.H{
		"role":     "staff",
		"approved": true,
	})
	c.Params = gin.Params{{Key: "id", Value: "u2"}}
	h.UpdateUserRole(c)

	assert.Equal(t, http.StatusOK, w.Code)

	profile, err := store.FetchProfile(context.Background(), "u2")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleStaff, profile.Role)
	assert.True(t, profile.Approved)

	// The auth record is untouched until syncUserClaims runs.
	user, err := store.FetchUser(context.Background(), "u2")
	assert.NoError(t, err)
	assert.NotEqual(t, models.RoleStaff, user.Role)
}

func TestUpdateUserRoleUnknownRole(t *testing.T) {
	h := &ProfileHandler{Store: database.NewMemStore()}

	c, w := testContext(t, http.MethodPut, "/admin/profiles/u2/role", gin.H{
		"role":     "overlord",
		"approved": true,
	})
	c.Params = gin.Params{{Key: "id", Value: "u2"}}
	h.UpdateUserRole(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserRoleMissingProfile(t *testing.T) {
	h := &ProfileHandler{Store: database.NewMemStore()}

	c, w := testContext(t, http.MethodPut, "/admin/profiles/ghost/role", gin.H{
		"role":     "staff",
		"approved": false,
	})
	c.Params = gin.Params{{Key: "id", Value: "ghost"}}
	h.UpdateUserRole(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
