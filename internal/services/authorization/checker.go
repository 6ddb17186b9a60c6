// Package authorization implements the tenant authorization decision engine.
//
// Every entry point is a pure function over the grant and role records the
// caller has already loaded for one (user, business) pair: no I/O, no shared
// state, safe to call from any number of goroutines as long as the supplied
// slices are not mutated during a call. The ownership bypass is an explicit
// first check inside each function rather than a wrapper, so every decision
// path stays auditable and independently testable.
package authorization

import (
	"time"

	"github.com/jlap11/gestabiz-authz/internal/catalog"
	"github.com/jlap11/gestabiz-authz/internal/entities"
)

// IsOwner reports whether userID is the business owner identified by ownerID.
// Exact, case-sensitive equality; empty strings never match, even when both
// are empty (ownership requires a non-empty established identity).
func IsOwner(userID, ownerID string) bool {
	if userID == "" || ownerID == "" {
		return false
	}
	return userID == ownerID
}

// HasPermission reports whether the user may perform the action guarded by
// the given permission. The owner holds every permission implicitly; anyone
// else needs a grant for that permission that is active and unexpired.
//
// This is the sole unit of truth for grant evaluation: the set variants and
// the active-set query delegate here (or to the same instant-based helper)
// instead of duplicating the activity/expiry logic.
func HasPermission(userID, ownerID string, grants []*entities.UserPermission, permission entities.Permission) bool {
	return hasPermissionAt(userID, ownerID, grants, permission, time.Now())
}

// hasPermissionAt is HasPermission evaluated at an explicit instant
func hasPermissionAt(userID, ownerID string, grants []*entities.UserPermission, permission entities.Permission, now time.Time) bool {
	if IsOwner(userID, ownerID) {
		return true
	}
	for _, g := range grants {
		if g == nil {
			continue
		}
		if g.Permission == permission && g.IsInEffect(now) {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the user holds at least one of the
// required permissions. An empty required list returns false for non-owners:
// "any of nothing" is satisfied by nothing. The owner bypass still applies
// before the list is consulted, so an owner passes even with an empty list.
func HasAnyPermission(userID, ownerID string, grants []*entities.UserPermission, required []entities.Permission) bool {
	if IsOwner(userID, ownerID) {
		return true
	}
	now := time.Now()
	for _, p := range required {
		if hasPermissionAt(userID, ownerID, grants, p, now) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the user holds every required permission.
// An empty required list returns true: "all of nothing" holds vacuously.
// The asymmetry with HasAnyPermission is deliberate.
func HasAllPermissions(userID, ownerID string, grants []*entities.UserPermission, required []entities.Permission) bool {
	if IsOwner(userID, ownerID) {
		return true
	}
	now := time.Now()
	for _, p := range required {
		if !hasPermissionAt(userID, ownerID, grants, p, now) {
			return false
		}
	}
	return true
}

// GetUserActivePermissions returns every permission the user can currently
// exercise in the business: the full catalog for the owner, otherwise the
// deduplicated permissions of the user's active unexpired grants in first
// occurrence order.
func GetUserActivePermissions(userID, ownerID string, grants []*entities.UserPermission) []entities.Permission {
	return activePermissionsAt(userID, ownerID, grants, time.Now())
}

// activePermissionsAt is GetUserActivePermissions evaluated at an explicit instant
func activePermissionsAt(userID, ownerID string, grants []*entities.UserPermission, now time.Time) []entities.Permission {
	if IsOwner(userID, ownerID) {
		return catalog.All()
	}

	seen := make(map[entities.Permission]bool, len(grants))
	active := make([]entities.Permission, 0, len(grants))
	for _, g := range grants {
		if g == nil || !g.IsInEffect(now) {
			continue
		}
		if seen[g.Permission] {
			continue
		}
		seen[g.Permission] = true
		active = append(active, g.Permission)
	}
	return active
}
