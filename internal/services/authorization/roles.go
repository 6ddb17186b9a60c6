package authorization

import "github.com/jlap11/gestabiz-authz/internal/entities"

// HasBusinessRole reports whether an active role record assigns the given
// role within the given business. Records for other businesses are ignored.
func HasBusinessRole(roles []*entities.BusinessRole, businessID string, role entities.Role) bool {
	for _, r := range roles {
		if r == nil {
			continue
		}
		if r.BusinessID == businessID && r.Role == role && r.IsActive {
			return true
		}
	}
	return false
}

// GetUserBusinessRole returns the user's active role within the business.
// The second return value is false when no active role record matches.
//
// At most one active role per (user, business) is the expected state. Should
// duplicates exist anyway, the highest-privilege role wins (entities.Role
// Rank order), which keeps the result deterministic regardless of slice
// order.
func GetUserBusinessRole(roles []*entities.BusinessRole, businessID string) (entities.Role, bool) {
	var best entities.Role
	found := false
	for _, r := range roles {
		if r == nil {
			continue
		}
		if r.BusinessID != businessID || !r.IsActive {
			continue
		}
		if !found || r.Role.Rank() > best.Rank() {
			best = r.Role
			found = true
		}
	}
	return best, found
}

// CanProvideServices reports whether the user is bookable as a service
// provider in the business: an active employee role with the
// service_provider subtype. Admins, clients, and support staff are not
// providers, and ownership is deliberately not consulted here; an owner is
// not automatically a provider.
func CanProvideServices(roles []*entities.BusinessRole, businessID string) bool {
	for _, r := range roles {
		if r == nil {
			continue
		}
		if r.BusinessID == businessID &&
			r.Role == entities.RoleEmployee &&
			r.EmployeeType == entities.EmployeeTypeServiceProvider &&
			r.IsActive {
			return true
		}
	}
	return false
}
