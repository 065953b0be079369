// server/internal/models/profile.go
package models

import "time"

// Profile is one per registered user; the document id matches the auth
// user id.
type Profile struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Fullname     string    `bson:"fullname" json:"fullname"`
	Position     *string   `bson:"position" json:"position"`
	Organization *string   `bson:"organization" json:"organization"`
	Role         UserRole  `bson:"role" json:"role"`
	Approved     bool      `bson:"approved" json:"approved"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// CanWrite reports whether this profile may create plots, trees and
// growth logs. Approval alone is not enough; executives and external
// viewers stay read-only.
func (p *Profile) CanWrite() bool {
	if p == nil || !p.Approved {
		return false
	}
	switch p.Role {
	case RoleStaff, RoleResearcher, RoleAdmin:
		return true
	}
	return false
}
