// Package legacy translates the deprecated coarse permission identifiers
// into granular catalog permissions, so old grant records keep working
// without a data migration.
package legacy

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jlap11/gestabiz-authz/internal/catalog"
	"github.com/jlap11/gestabiz-authz/internal/entities"
)

// translations is the static one-to-many table from legacy identifier to
// granular permissions. Unknown identifiers map to nothing: the lookup
// fails closed rather than erroring, so a stale record with an identifier
// this table never knew simply confers no permissions.
var translations = map[string][]entities.Permission{
	"read_appointments": {
		catalog.AppointmentsViewAll,
		catalog.AppointmentsViewOwn,
	},
	"write_appointments": {
		catalog.AppointmentsCreate,
		catalog.AppointmentsEditAll,
		catalog.AppointmentsEditOwn,
		catalog.AppointmentsCancelAll,
		catalog.AppointmentsCancelOwn,
	},
	"read_clients": {
		catalog.ClientsView,
		catalog.ClientsViewHistory,
	},
	"write_clients": {
		catalog.ClientsCreate,
		catalog.ClientsEdit,
		catalog.ClientsDelete,
	},
	"read_services": {
		catalog.ServicesView,
	},
	"write_services": {
		catalog.ServicesCreate,
		catalog.ServicesEdit,
		catalog.ServicesDelete,
		catalog.ServicesManagePricing,
	},
	"read_business": {
		catalog.BusinessView,
		catalog.BusinessViewAnalytics,
	},
	"write_business": {
		catalog.BusinessEdit,
		catalog.BusinessManageSettings,
	},
	"manage_employees": {
		catalog.EmployeesView,
		catalog.EmployeesInvite,
		catalog.EmployeesApprove,
		catalog.EmployeesEdit,
		catalog.EmployeesRemove,
		catalog.EmployeesManageSchedules,
	},
	"read_reports": {
		catalog.ReportsViewFinancial,
		catalog.ReportsViewOccupancy,
		catalog.ReportsViewClients,
		catalog.ReportsViewEmployees,
	},
	"manage_billing": {
		catalog.BillingView,
		catalog.BillingManageSubscription,
		catalog.BillingViewInvoices,
	},
}

// ConvertLegacy translates a list of legacy permission identifiers into the
// granular permissions they stand for. Results are deduplicated and keep
// first-occurrence order; unknown identifiers contribute nothing.
func ConvertLegacy(legacyPermissions []string) []entities.Permission {
	seen := make(map[entities.Permission]bool)
	var converted []entities.Permission
	for _, lp := range legacyPermissions {
		for _, p := range translations[lp] {
			if seen[p] {
				continue
			}
			seen[p] = true
			converted = append(converted, p)
		}
	}
	return converted
}

// IsKnown reports whether the identifier appears in the translation table
func IsKnown(legacyPermission string) bool {
	_, ok := translations[legacyPermission]
	return ok
}

// KnownLegacyPermissions returns the sorted list of legacy identifiers the
// translator understands
func KnownLegacyPermissions() []string {
	known := make([]string, 0, len(translations))
	for lp := range translations {
		known = append(known, lp)
	}
	sort.Strings(known)
	return known
}

// UpgradeGrants builds transient UserPermission records from a set of
// legacy identifiers, ready to be appended to a grant list before
// evaluation. The synthesized grants are active, carry no expiry, and get
// fresh IDs; the original legacy records stay untouched in storage.
func UpgradeGrants(userID, businessID, grantedBy string, legacyPermissions []string, now time.Time) []*entities.UserPermission {
	converted := ConvertLegacy(legacyPermissions)
	grants := make([]*entities.UserPermission, 0, len(converted))
	for _, p := range converted {
		grants = append(grants, &entities.UserPermission{
			ID:         uuid.NewString(),
			UserID:     userID,
			BusinessID: businessID,
			Permission: p,
			GrantedBy:  grantedBy,
			GrantedAt:  now,
			IsActive:   true,
		})
	}
	return grants
}
