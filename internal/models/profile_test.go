// server/internal/models/profile_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileCanWrite(t *testing.T) {
	cases := []struct {
		role     UserRole
		approved bool
		want     bool
	}{
		{RoleAdmin, true, true},
		{RoleStaff, true, true},
		{RoleResearcher, true, true},
		{RoleExecutive, true, false},
		{RoleExternal, true, false},
		{RolePending, true, false},
		{RoleAdmin, false, false},
		{RoleStaff, false, false},
		{RoleResearcher, false, false},
		{RolePending, false, false},
	}

	for _, tc := range cases {
		p := &Profile{Role: tc.role, Approved: tc.approved}
		assert.Equal(t, tc.want, p.CanWrite(), "role=%s approved=%v", tc.role, tc.approved)
	}
}

func TestProfileCanWriteNil(t *testing.T) {
	var p *Profile
	assert.False(t, p.CanWrite())
}
