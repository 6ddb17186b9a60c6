package entities

import (
	"fmt"
	"time"
)

// UserPermission represents one tenant-scoped permission grant.
// A grant confers one granular permission to one user within one business;
// a grant for business A has no effect when evaluating against business B.
type UserPermission struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	BusinessID string     `json:"business_id"`
	Permission Permission `json:"permission"`
	GrantedBy  string     `json:"granted_by"`
	GrantedAt  time.Time  `json:"granted_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	IsActive   bool       `json:"is_active"`
}

// IsInEffect reports whether the grant counts at the given instant.
// A grant is in effect only while it is active and either carries no
// expiry or expires strictly after now. Revocation flips IsActive off;
// expiry is implicit (the record is never deleted by evaluation).
func (g *UserPermission) IsInEffect(now time.Time) bool {
	if !g.IsActive {
		return false
	}
	if g.ExpiresAt == nil {
		return true
	}
	return g.ExpiresAt.After(now)
}

// Validate checks if the grant record is well-formed.
// Used by callers constructing grants; evaluation never calls it and
// treats malformed records as simply not matching (fail-closed).
func (g *UserPermission) Validate() error {
	if g.UserID == "" {
		return fmt.Errorf("user ID is required")
	}
	if g.BusinessID == "" {
		return fmt.Errorf("business ID is required")
	}
	if g.Permission == "" {
		return fmt.Errorf("permission is required")
	}
	if g.GrantedBy == "" {
		return fmt.Errorf("granted by is required")
	}
	return nil
}
