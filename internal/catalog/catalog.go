// Package catalog defines the closed set of granular permissions.
//
// Go has no closed union types, so the catalog is a static registration
// table whose integrity (fixed size, no duplicates, every entry described
// and categorized) is verified once at package init. A malformed catalog
// is a programming error and panics at startup rather than surfacing as a
// runtime error.
package catalog

import (
	"fmt"

	"github.com/jlap11/gestabiz-authz/internal/entities"
)

// Business management permissions
const (
	BusinessView             entities.Permission = "business.view"              // View business profile and details
	BusinessEdit             entities.Permission = "business.edit"              // Edit business profile information
	BusinessDelete           entities.Permission = "business.delete"            // Delete the business
	BusinessManageSettings   entities.Permission = "business.manage_settings"   // Manage business-level settings
	BusinessViewAnalytics    entities.Permission = "business.view_analytics"    // View business analytics dashboards
	BusinessManageCategories entities.Permission = "business.manage_categories" // Manage business category listings
)

// Appointment permissions
const (
	AppointmentsViewAll        entities.Permission = "appointments.view_all"        // View every appointment in the business
	AppointmentsViewOwn        entities.Permission = "appointments.view_own"        // View appointments assigned to oneself
	AppointmentsCreate         entities.Permission = "appointments.create"          // Create new appointments
	AppointmentsEditAll        entities.Permission = "appointments.edit_all"        // Edit any appointment
	AppointmentsEditOwn        entities.Permission = "appointments.edit_own"        // Edit appointments assigned to oneself
	AppointmentsCancelAll      entities.Permission = "appointments.cancel_all"      // Cancel any appointment
	AppointmentsCancelOwn      entities.Permission = "appointments.cancel_own"      // Cancel appointments assigned to oneself
	AppointmentsManageWaitlist entities.Permission = "appointments.manage_waitlist" // Manage the appointment waitlist
)

// Service catalog permissions
const (
	ServicesView            entities.Permission = "services.view"             // View offered services
	ServicesCreate          entities.Permission = "services.create"           // Create new services
	ServicesEdit            entities.Permission = "services.edit"             // Edit existing services
	ServicesDelete          entities.Permission = "services.delete"           // Delete services
	ServicesAssignProviders entities.Permission = "services.assign_providers" // Assign providers to services
	ServicesManagePricing   entities.Permission = "services.manage_pricing"   // Manage service pricing
)

// Employee management permissions
const (
	EmployeesView            entities.Permission = "employees.view"             // View employee roster
	EmployeesInvite          entities.Permission = "employees.invite"           // Invite new employees
	EmployeesApprove         entities.Permission = "employees.approve"          // Approve employee join requests
	EmployeesEdit            entities.Permission = "employees.edit"             // Edit employee records
	EmployeesRemove          entities.Permission = "employees.remove"           // Remove employees from the business
	EmployeesManageSchedules entities.Permission = "employees.manage_schedules" // Manage employee work schedules
	EmployeesViewPerformance entities.Permission = "employees.view_performance" // View employee performance data
)

// Client management permissions
const (
	ClientsView        entities.Permission = "clients.view"         // View client records
	ClientsCreate      entities.Permission = "clients.create"       // Create client records
	ClientsEdit        entities.Permission = "clients.edit"         // Edit client records
	ClientsDelete      entities.Permission = "clients.delete"       // Delete client records
	ClientsViewHistory entities.Permission = "clients.view_history" // View client visit history
	ClientsExport      entities.Permission = "clients.export"       // Export client data
)

// Billing permissions
const (
	BillingView                 entities.Permission = "billing.view"                   // View billing overview
	BillingManageSubscription   entities.Permission = "billing.manage_subscription"    // Manage the business subscription plan
	BillingViewInvoices         entities.Permission = "billing.view_invoices"          // View invoices
	BillingProcessPayments      entities.Permission = "billing.process_payments"       // Process client payments
	BillingIssueRefunds         entities.Permission = "billing.issue_refunds"          // Issue refunds to clients
	BillingManagePaymentMethods entities.Permission = "billing.manage_payment_methods" // Manage stored payment methods
)

// Reporting permissions
const (
	ReportsViewFinancial entities.Permission = "reports.view_financial" // View financial reports
	ReportsViewOccupancy entities.Permission = "reports.view_occupancy" // View occupancy and utilization reports
	ReportsViewClients   entities.Permission = "reports.view_clients"   // View client activity reports
	ReportsViewEmployees entities.Permission = "reports.view_employees" // View employee activity reports
	ReportsExport        entities.Permission = "reports.export"         // Export report data
)

// Settings permissions
const (
	SettingsView               entities.Permission = "settings.view"                // View business settings
	SettingsEditProfile        entities.Permission = "settings.edit_profile"        // Edit the public business profile
	SettingsEditHours          entities.Permission = "settings.edit_hours"          // Edit opening hours
	SettingsEditNotifications  entities.Permission = "settings.edit_notifications"  // Edit notification preferences
	SettingsManageIntegrations entities.Permission = "settings.manage_integrations" // Manage third-party integrations
)

// Notification permissions
const (
	NotificationsView            entities.Permission = "notifications.view"             // View sent notifications
	NotificationsSend            entities.Permission = "notifications.send"             // Send notifications to clients
	NotificationsManageTemplates entities.Permission = "notifications.manage_templates" // Manage notification templates
	NotificationsManageCampaigns entities.Permission = "notifications.manage_campaigns" // Manage notification campaigns
)

// Location permissions
const (
	LocationsView   entities.Permission = "locations.view"   // View business locations
	LocationsCreate entities.Permission = "locations.create" // Create new locations
	LocationsEdit   entities.Permission = "locations.edit"   // Edit location details
	LocationsDelete entities.Permission = "locations.delete" // Delete locations
)

// Permission administration permissions
const (
	PermissionsView   entities.Permission = "permissions.view"   // View granted permissions
	PermissionsGrant  entities.Permission = "permissions.grant"  // Grant permissions to users
	PermissionsRevoke entities.Permission = "permissions.revoke" // Revoke permissions from users
)

// Size is the fixed number of permissions in the catalog
const Size = 60

// descriptions maps every catalog permission to its human description
var descriptions = map[entities.Permission]string{
	BusinessView:             "View business profile and details",
	BusinessEdit:             "Edit business profile information",
	BusinessDelete:           "Delete the business",
	BusinessManageSettings:   "Manage business-level settings",
	BusinessViewAnalytics:    "View business analytics dashboards",
	BusinessManageCategories: "Manage business category listings",

	AppointmentsViewAll:        "View every appointment in the business",
	AppointmentsViewOwn:        "View appointments assigned to oneself",
	AppointmentsCreate:         "Create new appointments",
	AppointmentsEditAll:        "Edit any appointment",
	AppointmentsEditOwn:        "Edit appointments assigned to oneself",
	AppointmentsCancelAll:      "Cancel any appointment",
	AppointmentsCancelOwn:      "Cancel appointments assigned to oneself",
	AppointmentsManageWaitlist: "Manage the appointment waitlist",

	ServicesView:            "View offered services",
	ServicesCreate:          "Create new services",
	ServicesEdit:            "Edit existing services",
	ServicesDelete:          "Delete services",
	ServicesAssignProviders: "Assign providers to services",
	ServicesManagePricing:   "Manage service pricing",

	EmployeesView:            "View employee roster",
	EmployeesInvite:          "Invite new employees",
	EmployeesApprove:         "Approve employee join requests",
	EmployeesEdit:            "Edit employee records",
	EmployeesRemove:          "Remove employees from the business",
	EmployeesManageSchedules: "Manage employee work schedules",
	EmployeesViewPerformance: "View employee performance data",

	ClientsView:        "View client records",
	ClientsCreate:      "Create client records",
	ClientsEdit:        "Edit client records",
	ClientsDelete:      "Delete client records",
	ClientsViewHistory: "View client visit history",
	ClientsExport:      "Export client data",

	BillingView:                 "View billing overview",
	BillingManageSubscription:   "Manage the business subscription plan",
	BillingViewInvoices:         "View invoices",
	BillingProcessPayments:      "Process client payments",
	BillingIssueRefunds:         "Issue refunds to clients",
	BillingManagePaymentMethods: "Manage stored payment methods",

	ReportsViewFinancial: "View financial reports",
	ReportsViewOccupancy: "View occupancy and utilization reports",
	ReportsViewClients:   "View client activity reports",
	ReportsViewEmployees: "View employee activity reports",
	ReportsExport:        "Export report data",

	SettingsView:               "View business settings",
	SettingsEditProfile:        "Edit the public business profile",
	SettingsEditHours:          "Edit opening hours",
	SettingsEditNotifications:  "Edit notification preferences",
	SettingsManageIntegrations: "Manage third-party integrations",

	NotificationsView:            "View sent notifications",
	NotificationsSend:            "Send notifications to clients",
	NotificationsManageTemplates: "Manage notification templates",
	NotificationsManageCampaigns: "Manage notification campaigns",

	LocationsView:   "View business locations",
	LocationsCreate: "Create new locations",
	LocationsEdit:   "Edit location details",
	LocationsDelete: "Delete locations",

	PermissionsView:   "View granted permissions",
	PermissionsGrant:  "Grant permissions to users",
	PermissionsRevoke: "Revoke permissions from users",
}

// all is the catalog in its fixed order: the flattened category membership
var all []entities.Permission

// registered is the membership index backing Contains
var registered map[entities.Permission]bool

func init() {
	registered = make(map[entities.Permission]bool, Size)
	for _, c := range categories {
		for _, p := range c.Permissions {
			if registered[p] {
				panic(fmt.Sprintf("catalog: duplicate permission %q", p))
			}
			if descriptions[p] == "" {
				panic(fmt.Sprintf("catalog: permission %q has no description", p))
			}
			registered[p] = true
			all = append(all, p)
		}
	}
	if len(all) != Size {
		panic(fmt.Sprintf("catalog: expected %d permissions, registered %d", Size, len(all)))
	}
	if len(descriptions) != Size {
		panic(fmt.Sprintf("catalog: expected %d descriptions, have %d", Size, len(descriptions)))
	}
}

// All returns every permission in the catalog in its fixed order.
// The returned slice is a copy; callers may mutate it freely.
func All() []entities.Permission {
	out := make([]entities.Permission, len(all))
	copy(out, all)
	return out
}

// Description returns the human description for a catalog permission,
// or the empty string for a permission outside the catalog
func Description(p entities.Permission) string {
	return descriptions[p]
}

// Contains reports whether the permission is part of the catalog
func Contains(p entities.Permission) bool {
	return registered[p]
}
