package access

import "testing"

func TestVisibleModulesExplicitList(t *testing.T) {
	r := NewRegistry()

	mods := r.VisibleModules("accounts_department")
	if len(mods) != 1 {
		t.Fatalf("expected 1 module, got %d", len(mods))
	}
	if mods[0].ID != "financial_management" {
		t.Fatalf("expected financial_management, got %s", mods[0].ID)
	}
}

func TestVisibleModulesWildcardOverridesList(t *testing.T) {
	r := NewRegistry()

	role, ok := r.ResolveRole(RoleSuperAdmin)
	if !ok {
		t.Fatal("super_admin must exist")
	}
	if !hasWildcard(role.Permissions) {
		t.Fatal("super_admin must hold the wildcard permission")
	}

	mods := r.VisibleModules(RoleSuperAdmin)
	if len(mods) != len(r.Modules()) {
		t.Fatalf("wildcard role must see full catalog: got %d of %d", len(mods), len(r.Modules()))
	}
}

func TestVisibleModulesUnknownRole(t *testing.T) {
	r := NewRegistry()

	mods := r.VisibleModules("no_such_role")
	if mods == nil {
		t.Fatal("unknown role must return empty slice, not nil")
	}
	if len(mods) != 0 {
		t.Fatalf("unknown role must see no modules, got %d", len(mods))
	}
}

func TestResolveRoleNotFound(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.ResolveRole("ghost"); ok {
		t.Fatal("unknown role id must not resolve")
	}
}

func TestModuleContentMissingPairIsEmpty(t *testing.T) {
	r := NewRegistry()

	content := r.ModuleContent("marketing", "advocate")
	if content.Stats == nil || content.Actions == nil || content.RecentActivity == nil {
		t.Fatal("missing pair must yield non-nil empty slices")
	}
	if len(content.Stats) != 0 || len(content.Actions) != 0 {
		t.Fatal("missing pair must yield empty stats and actions")
	}
}

func TestModuleContentKnownPair(t *testing.T) {
	r := NewRegistry()

	content := r.ModuleContent("financial_management", "accounts_department")
	if len(content.Stats) != 4 {
		t.Fatalf("expected 4 stats, got %d", len(content.Stats))
	}
	if len(content.Actions) != 4 {
		t.Fatalf("expected 4 actions, got %d", len(content.Actions))
	}
	if len(content.RecentActivity) != 3 {
		t.Fatalf("expected 3 activity entries, got %d", len(content.RecentActivity))
	}
}

func TestHasPermission(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name       string
		role       string
		permission string
		want       bool
	}{
		{"explicit grant", "accounts_department", "invoices:create", true},
		{"not granted", "accounts_department", "system:configure", false},
		{"wildcard grants anything", RoleSuperAdmin, "litigation:manage", true},
		{"unknown role holds nothing", "ghost", "bookings:read", false},
		{"customer has no permissions", RoleCustomer, "bookings:read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.HasPermission(tt.role, tt.permission); got != tt.want {
				t.Fatalf("HasPermission(%s, %s) = %v, want %v", tt.role, tt.permission, got, tt.want)
			}
		})
	}
}

func TestVisibleModulesNeverMixesRules(t *testing.T) {
	r := NewRegistry()

	// Every role resolves through exactly one rule: wildcard -> full catalog,
	// otherwise the explicit list filtered against the catalog.
	for _, role := range r.Roles() {
		mods := r.VisibleModules(role.ID)
		if hasWildcard(role.Permissions) {
			if len(mods) != len(r.Modules()) {
				t.Fatalf("role %s: wildcard must yield full catalog", role.ID)
			}
			continue
		}
		if len(mods) > len(role.Modules) {
			t.Fatalf("role %s: explicit rule yielded more modules than listed", role.ID)
		}
	}
}
