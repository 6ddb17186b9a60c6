package catalog

import "github.com/jlap11/gestabiz-authz/internal/entities"

// Category groups catalog permissions for presentation.
// Grouping carries no evaluation semantics.
type Category struct {
	Label       string
	Permissions []entities.Permission
}

// categories is the presentation grouping; every catalog permission
// appears in exactly one category, and the flattened membership defines
// the catalog order.
var categories = []Category{
	{
		Label: "Business",
		Permissions: []entities.Permission{
			BusinessView,
			BusinessEdit,
			BusinessDelete,
			BusinessManageSettings,
			BusinessViewAnalytics,
			BusinessManageCategories,
		},
	},
	{
		Label: "Appointments",
		Permissions: []entities.Permission{
			AppointmentsViewAll,
			AppointmentsViewOwn,
			AppointmentsCreate,
			AppointmentsEditAll,
			AppointmentsEditOwn,
			AppointmentsCancelAll,
			AppointmentsCancelOwn,
			AppointmentsManageWaitlist,
		},
	},
	{
		Label: "Services",
		Permissions: []entities.Permission{
			ServicesView,
			ServicesCreate,
			ServicesEdit,
			ServicesDelete,
			ServicesAssignProviders,
			ServicesManagePricing,
		},
	},
	{
		Label: "Employees",
		Permissions: []entities.Permission{
			EmployeesView,
			EmployeesInvite,
			EmployeesApprove,
			EmployeesEdit,
			EmployeesRemove,
			EmployeesManageSchedules,
			EmployeesViewPerformance,
		},
	},
	{
		Label: "Clients",
		Permissions: []entities.Permission{
			ClientsView,
			ClientsCreate,
			ClientsEdit,
			ClientsDelete,
			ClientsViewHistory,
			ClientsExport,
		},
	},
	{
		Label: "Billing",
		Permissions: []entities.Permission{
			BillingView,
			BillingManageSubscription,
			BillingViewInvoices,
			BillingProcessPayments,
			BillingIssueRefunds,
			BillingManagePaymentMethods,
		},
	},
	{
		Label: "Reports",
		Permissions: []entities.Permission{
			ReportsViewFinancial,
			ReportsViewOccupancy,
			ReportsViewClients,
			ReportsViewEmployees,
			ReportsExport,
		},
	},
	{
		Label: "Settings",
		Permissions: []entities.Permission{
			SettingsView,
			SettingsEditProfile,
			SettingsEditHours,
			SettingsEditNotifications,
			SettingsManageIntegrations,
		},
	},
	{
		Label: "Notifications",
		Permissions: []entities.Permission{
			NotificationsView,
			NotificationsSend,
			NotificationsManageTemplates,
			NotificationsManageCampaigns,
		},
	},
	{
		Label: "Locations",
		Permissions: []entities.Permission{
			LocationsView,
			LocationsCreate,
			LocationsEdit,
			LocationsDelete,
		},
	},
	{
		Label: "Permissions",
		Permissions: []entities.Permission{
			PermissionsView,
			PermissionsGrant,
			PermissionsRevoke,
		},
	},
}

// Categories returns the presentation grouping of the catalog.
// The returned slice is a copy; the permission slices it holds are shared
// and must not be mutated.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
