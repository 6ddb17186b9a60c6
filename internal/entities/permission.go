package entities

// Permission is a granular permission identifier from the catalog
// Example: "business.view", "appointments.create"
type Permission string

// Role is a coarse tenant-scoped role held by a user within one business
type Role string

const (
	// RoleOwner is the singular business owner. Ownership is normally
	// established by owner_id equality on the business record; a role
	// record with this value mirrors that fact for role queries.
	RoleOwner Role = "owner"
	// RoleAdmin is a delegated administrator, distinct from the owner.
	RoleAdmin Role = "admin"
	// RoleEmployee is a staff member, further subtyped by EmployeeType.
	RoleEmployee Role = "employee"
	// RoleClient is a customer of the business.
	RoleClient Role = "client"
)

// Rank returns the privilege order of the role (higher = more privileged).
// Unknown roles rank at 0, below every defined role.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 4
	case RoleAdmin:
		return 3
	case RoleEmployee:
		return 2
	case RoleClient:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether the role is one of the defined role values
func (r Role) IsValid() bool {
	return r.Rank() > 0
}

// EmployeeType subtypes the employee role
type EmployeeType string

const (
	// EmployeeTypeServiceProvider is an employee who performs services
	// and can be booked by clients.
	EmployeeTypeServiceProvider EmployeeType = "service_provider"
	// EmployeeTypeSupportStaff is an employee with back-office duties
	// who cannot be booked.
	EmployeeTypeSupportStaff EmployeeType = "support_staff"
)

// IsValid reports whether the employee type is one of the defined values
func (e EmployeeType) IsValid() bool {
	return e == EmployeeTypeServiceProvider || e == EmployeeTypeSupportStaff
}
