package catalog

import (
	"sort"
	"testing"

	"github.com/jlap11/gestabiz-authz/internal/entities"
)

func TestAll_Size(t *testing.T) {
	if got := len(All()); got != Size {
		t.Errorf("len(All()) = %v, want %v", got, Size)
	}
}

func TestAll_NoDuplicates(t *testing.T) {
	seen := make(map[entities.Permission]bool)
	for _, p := range All() {
		if seen[p] {
			t.Errorf("All() contains duplicate permission %q", p)
		}
		seen[p] = true
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0] = "tampered"
	if second := All(); second[0] == "tampered" {
		t.Error("All() shares its backing array with callers")
	}
}

func TestDescription(t *testing.T) {
	for _, p := range All() {
		if Description(p) == "" {
			t.Errorf("Description(%q) is empty", p)
		}
	}

	if got := Description("not.a_permission"); got != "" {
		t.Errorf("Description() for unknown permission = %q, want empty", got)
	}
}

func TestCategories_FlattenToCatalog(t *testing.T) {
	cats := Categories()
	if len(cats) != 11 {
		t.Fatalf("len(Categories()) = %v, want 11", len(cats))
	}

	var flattened []entities.Permission
	for _, c := range cats {
		if c.Label == "" {
			t.Error("category with empty label")
		}
		if len(c.Permissions) == 0 {
			t.Errorf("category %q has no permissions", c.Label)
		}
		flattened = append(flattened, c.Permissions...)
	}

	want := All()
	sort.Slice(flattened, func(i, j int) bool { return flattened[i] < flattened[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	if len(flattened) != len(want) {
		t.Fatalf("flattened categories contain %v permissions, want %v", len(flattened), len(want))
	}
	for i := range want {
		if flattened[i] != want[i] {
			t.Errorf("flattened[%d] = %q, want %q", i, flattened[i], want[i])
		}
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name       string
		permission entities.Permission
		want       bool
	}{
		{name: "catalog permission", permission: BusinessView, want: true},
		{name: "another catalog permission", permission: PermissionsRevoke, want: true},
		{name: "unknown permission", permission: "business.fly", want: false},
		{name: "empty permission", permission: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.permission); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.permission, got, tt.want)
			}
		})
	}
}
