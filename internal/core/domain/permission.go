package domain

// Action is one of the fixed gated operations. The names are the wire
// contract between the API and its callers: UI labels and stored records
// key off them, so they must be preserved exactly.
type Action string

const (
	ActionViewClients   Action = "VIEW_CLIENTS"
	ActionCreateClient  Action = "CREATE_CLIENT"
	ActionCreateProject Action = "CREATE_PROJECT"
	ActionCreateTask    Action = "CREATE_TASK"
	ActionUploadFiles   Action = "UPLOAD_FILES"
	ActionApproveWork   Action = "APPROVE_WORK"
	ActionViewReports   Action = "VIEW_REPORTS"
	ActionManageTeam    Action = "MANAGE_TEAM"
)

// RoleCatalog holds the immutable permission table mapping each action to
// the functional roles allowed to perform it. It is built once at startup;
// lookups fail closed: an unknown action or role denies.
type RoleCatalog struct {
	table map[Action]map[FunctionalRole]struct{}
}

// NewRoleCatalog builds a catalog from an action → allowed-roles table.
// The input is copied, so later mutation of the argument has no effect.
func NewRoleCatalog(table map[Action][]FunctionalRole) *RoleCatalog {
	c := &RoleCatalog{table: make(map[Action]map[FunctionalRole]struct{}, len(table))}
	for action, roles := range table {
		allowed := make(map[FunctionalRole]struct{}, len(roles))
		for _, r := range roles {
			allowed[r] = struct{}{}
		}
		c.table[action] = allowed
	}
	return c
}

// IsActionAllowed reports whether the functional role is listed for the
// action. Owner/Admin tier overrides are not applied here; that is the
// authorization policy's concern.
func (c *RoleCatalog) IsActionAllowed(role FunctionalRole, action Action) bool {
	allowed, ok := c.table[action]
	if !ok {
		return false
	}
	_, ok = allowed[role]
	return ok
}

// DefaultPermissionTable returns the built-in permission table. Organizations
// can override individual actions through the settings store at startup.
func DefaultPermissionTable() map[Action][]FunctionalRole {
	return map[Action][]FunctionalRole{
		ActionViewClients:   {"Account Manager", "Sales Manager"},
		ActionCreateClient:  {"Account Manager", "Sales Manager"},
		ActionCreateProject: {"Account Manager"},
		ActionCreateTask:    {"Account Manager", "Sales Manager", "Graphic Designer", "Content Creator", "Media Buyer"},
		ActionUploadFiles:   {"Account Manager", "Graphic Designer", "Content Creator", "Media Buyer"},
		ActionApproveWork:   {"Account Manager"},
		ActionViewReports:   {"Account Manager", "Sales Manager"},
		// MANAGE_TEAM is intentionally absent: team management is tier-gated
		// (Owner/Admin override), never granted by functional role.
	}
}
