package legacy

import (
	"testing"
	"time"

	"github.com/jlap11/gestabiz-authz/internal/catalog"
	"github.com/jlap11/gestabiz-authz/internal/entities"
	"github.com/jlap11/gestabiz-authz/internal/services/authorization"
)

func TestConvertLegacy(t *testing.T) {
	tests := []struct {
		name   string
		legacy []string
		want   []entities.Permission
	}{
		{
			name:   "read_appointments expands to view permissions",
			legacy: []string{"read_appointments"},
			want: []entities.Permission{
				catalog.AppointmentsViewAll,
				catalog.AppointmentsViewOwn,
			},
		},
		{
			name:   "unknown identifier yields nothing",
			legacy: []string{"unknown_x"},
			want:   nil,
		},
		{
			name:   "unknown identifiers do not poison known ones",
			legacy: []string{"unknown_x", "read_services", "unknown_y"},
			want:   []entities.Permission{catalog.ServicesView},
		},
		{
			name:   "duplicate identifiers are deduplicated",
			legacy: []string{"read_appointments", "read_appointments"},
			want: []entities.Permission{
				catalog.AppointmentsViewAll,
				catalog.AppointmentsViewOwn,
			},
		},
		{
			name:   "multiple identifiers concatenate in order",
			legacy: []string{"read_business", "read_services"},
			want: []entities.Permission{
				catalog.BusinessView,
				catalog.BusinessViewAnalytics,
				catalog.ServicesView,
			},
		},
		{
			name:   "empty input",
			legacy: []string{},
			want:   nil,
		},
		{
			name:   "nil input",
			legacy: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertLegacy(tt.legacy)
			if len(got) != len(tt.want) {
				t.Fatalf("ConvertLegacy() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ConvertLegacy()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConvertLegacy_OutputInCatalog(t *testing.T) {
	// Every permission the translator can ever produce must exist in the
	// catalog, otherwise upgraded grants would never match a real check.
	for _, lp := range KnownLegacyPermissions() {
		for _, p := range ConvertLegacy([]string{lp}) {
			if !catalog.Contains(p) {
				t.Errorf("translation of %q produced %q, which is not in the catalog", lp, p)
			}
		}
	}
}

func TestConvertLegacy_NoDuplicatesAcrossIdentifiers(t *testing.T) {
	got := ConvertLegacy(KnownLegacyPermissions())
	seen := make(map[entities.Permission]bool)
	for _, p := range got {
		if seen[p] {
			t.Errorf("ConvertLegacy() over all identifiers contains duplicate %q", p)
		}
		seen[p] = true
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown("read_appointments") {
		t.Error(`IsKnown("read_appointments") = false, want true`)
	}
	if IsKnown("unknown_x") {
		t.Error(`IsKnown("unknown_x") = true, want false`)
	}
}

func TestKnownLegacyPermissions_Sorted(t *testing.T) {
	known := KnownLegacyPermissions()
	if len(known) == 0 {
		t.Fatal("KnownLegacyPermissions() is empty")
	}
	for i := 1; i < len(known); i++ {
		if known[i-1] >= known[i] {
			t.Errorf("KnownLegacyPermissions() not sorted at index %d: %q >= %q", i, known[i-1], known[i])
		}
	}
}

func TestUpgradeGrants(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	grants := UpgradeGrants("alice", "biz1", "owner1", []string{"read_appointments", "unknown_x"}, now)

	if len(grants) != 2 {
		t.Fatalf("UpgradeGrants() produced %d grants, want 2", len(grants))
	}

	ids := make(map[string]bool)
	for _, g := range grants {
		if err := g.Validate(); err != nil {
			t.Errorf("UpgradeGrants() produced invalid grant: %v", err)
		}
		if !g.IsInEffect(now) {
			t.Errorf("UpgradeGrants() grant for %q is not in effect", g.Permission)
		}
		if g.UserID != "alice" || g.BusinessID != "biz1" || g.GrantedBy != "owner1" {
			t.Errorf("UpgradeGrants() grant carries wrong identity fields: %+v", g)
		}
		if g.ExpiresAt != nil {
			t.Errorf("UpgradeGrants() grant for %q has an expiry", g.Permission)
		}
		if g.ID == "" || ids[g.ID] {
			t.Errorf("UpgradeGrants() grant ID %q is empty or reused", g.ID)
		}
		ids[g.ID] = true
	}

	// The synthesized grants must satisfy ordinary evaluation
	if !authorization.HasPermission("alice", "owner1", grants, catalog.AppointmentsViewAll) {
		t.Error("upgraded grants do not satisfy HasPermission for appointments.view_all")
	}
	if authorization.HasPermission("alice", "owner1", grants, catalog.AppointmentsCreate) {
		t.Error("upgraded read grants unexpectedly satisfy appointments.create")
	}
}
