package access

// Permission tokens are plain "resource:action" strings, e.g. "bookings:read".
// PermissionAll short-circuits every check: a role holding it sees the full
// module catalog and passes every permission gate.
const PermissionAll = "*"

// SubModule is a named section inside a module's navigation tree.
type SubModule struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Permissions []string `json:"permissions"`
	ReportingTo []string `json:"reporting_to,omitempty"`
}

// Module is a top-level dashboard area with an ordered sub-module list.
type Module struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	SubModules  []SubModule `json:"sub_modules"`
	Permissions []string    `json:"permissions"`
}

// RoleDefinition describes a role and the modules/permissions it grants.
// ReportsTo and CanManage form an advisory hierarchy only; nothing enforces
// or validates it at runtime.
type RoleDefinition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Modules     []string `json:"modules"`
	Permissions []string `json:"permissions"`
	ReportsTo   []string `json:"reports_to,omitempty"`
	CanManage   []string `json:"can_manage,omitempty"`
}

// Stat is a single dashboard statistic card.
type Stat struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
	Change    string `json:"change,omitempty"`
}

// Action is a quick-action tile on a module dashboard.
type Action struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon"`
}

// Activity is a recent-activity feed entry.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

// ModuleContent bundles everything the generic dashboard renders for one
// (module, role) pair. Slices are always non-nil; missing combinations
// yield empty content, never an error.
type ModuleContent struct {
	Stats          []Stat     `json:"stats"`
	Actions        []Action   `json:"actions"`
	RecentActivity []Activity `json:"recent_activity"`
}
