package access

// Registry is the read-only lookup surface over the static role/module catalog.
// Build one at startup and share it; it is safe for concurrent use because the
// underlying data never changes.
type Registry struct {
	modulesByID map[string]*Module
	rolesByID   map[string]*RoleDefinition
}

func NewRegistry() *Registry {
	r := &Registry{
		modulesByID: make(map[string]*Module, len(modules)),
		rolesByID:   make(map[string]*RoleDefinition, len(roleDefinitions)),
	}
	for i := range modules {
		r.modulesByID[modules[i].ID] = &modules[i]
	}
	for i := range roleDefinitions {
		r.rolesByID[roleDefinitions[i].ID] = &roleDefinitions[i]
	}
	return r
}

// ResolveRole returns the role definition for an id. Unknown ids return
// (nil, false); callers degrade to a no-access state rather than failing.
func (r *Registry) ResolveRole(roleID string) (*RoleDefinition, bool) {
	role, ok := r.rolesByID[roleID]
	return role, ok
}

// Roles returns the full role directory in definition order.
func (r *Registry) Roles() []RoleDefinition {
	out := make([]RoleDefinition, len(roleDefinitions))
	copy(out, roleDefinitions)
	return out
}

// Modules returns the full module catalog in definition order.
func (r *Registry) Modules() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}

// Module returns a single module by id.
func (r *Registry) Module(moduleID string) (*Module, bool) {
	m, ok := r.modulesByID[moduleID]
	return m, ok
}

// VisibleModules resolves the modules a role may see. A role holding the
// wildcard permission sees the entire catalog regardless of its explicit
// module list; otherwise only the ids listed on the role, in catalog order.
// Unknown roles see nothing.
func (r *Registry) VisibleModules(roleID string) []Module {
	role, ok := r.rolesByID[roleID]
	if !ok {
		return []Module{}
	}

	if hasWildcard(role.Permissions) {
		return r.Modules()
	}

	allowed := make(map[string]bool, len(role.Modules))
	for _, id := range role.Modules {
		allowed[id] = true
	}

	out := make([]Module, 0, len(role.Modules))
	for _, m := range modules {
		if allowed[m.ID] {
			out = append(out, m)
		}
	}
	return out
}

// HasPermission reports whether a role holds a permission token. The wildcard
// grants everything; unknown roles hold nothing.
func (r *Registry) HasPermission(roleID, permission string) bool {
	role, ok := r.rolesByID[roleID]
	if !ok {
		return false
	}
	for _, p := range role.Permissions {
		if p == PermissionAll || p == permission {
			return true
		}
	}
	return false
}

// ModuleContent returns the dashboard widgets for a (module, role) pair.
// Pairs with no configured content get empty slices, never nil.
func (r *Registry) ModuleContent(moduleID, roleID string) ModuleContent {
	content := ModuleContent{
		Stats:          []Stat{},
		Actions:        []Action{},
		RecentActivity: []Activity{},
	}

	if byRole, ok := moduleStats[moduleID]; ok {
		if stats, ok := byRole[roleID]; ok {
			content.Stats = append(content.Stats, stats...)
		}
	}
	if byRole, ok := moduleActions[moduleID]; ok {
		if actions, ok := byRole[roleID]; ok {
			content.Actions = append(content.Actions, actions...)
		}
	}
	if activity, ok := recentActivity[roleID]; ok {
		content.RecentActivity = append(content.RecentActivity, activity...)
	}

	return content
}

func hasWildcard(permissions []string) bool {
	for _, p := range permissions {
		if p == PermissionAll {
			return true
		}
	}
	return false
}
