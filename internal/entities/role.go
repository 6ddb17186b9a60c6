package entities

import "fmt"

// BusinessRole represents a tenant-scoped role assignment.
// Created on role assignment or employee approval, deactivated on removal;
// role records never expire implicitly (no expires_at).
type BusinessRole struct {
	ID           string       `json:"id"`
	BusinessID   string       `json:"business_id"`
	UserID       string       `json:"user_id"`
	Role         Role         `json:"role"`
	EmployeeType EmployeeType `json:"employee_type,omitempty"`
	IsActive     bool         `json:"is_active"`
}

// Validate checks if the role record is well-formed
func (r *BusinessRole) Validate() error {
	if r.BusinessID == "" {
		return fmt.Errorf("business ID is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("user ID is required")
	}
	if !r.Role.IsValid() {
		return fmt.Errorf("unknown role: %s", r.Role)
	}
	if r.EmployeeType != "" {
		if r.Role != RoleEmployee {
			return fmt.Errorf("employee type is only valid for the employee role")
		}
		if !r.EmployeeType.IsValid() {
			return fmt.Errorf("unknown employee type: %s", r.EmployeeType)
		}
	}
	return nil
}
