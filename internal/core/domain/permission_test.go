package domain

import "testing"

func TestRoleCatalog_IsActionAllowed(t *testing.T) {
	catalog := NewRoleCatalog(DefaultPermissionTable())

	cases := []struct {
		role   FunctionalRole
		action Action
		want   bool
	}{
		{"Account Manager", ActionApproveWork, true},
		{"Account Manager", ActionViewClients, true},
		{"Graphic Designer", ActionCreateTask, true},
		{"Graphic Designer", ActionApproveWork, false},
		{"Sales Manager", ActionViewReports, true},
		{"Sales Manager", ActionCreateProject, false},
	}

	for _, tc := range cases {
		if got := catalog.IsActionAllowed(tc.role, tc.action); got != tc.want {
			t.Errorf("IsActionAllowed(%q, %s): expected %v, got %v", tc.role, tc.action, tc.want, got)
		}
	}
}

func TestRoleCatalog_FailsClosed(t *testing.T) {
	catalog := NewRoleCatalog(DefaultPermissionTable())

	// Unknown action denies everyone.
	if catalog.IsActionAllowed("Account Manager", Action("DELETE_EVERYTHING")) {
		t.Error("unknown action must deny")
	}
	// Unknown role denies on every action.
	if catalog.IsActionAllowed("Astronaut", ActionCreateTask) {
		t.Error("unknown role must deny")
	}
	// MANAGE_TEAM is tier-gated: no functional role is ever listed.
	if catalog.IsActionAllowed("Account Manager", ActionManageTeam) {
		t.Error("MANAGE_TEAM must not be grantable by functional role")
	}
}

func TestRoleCatalog_CopiesInput(t *testing.T) {
	table := map[Action][]FunctionalRole{
		ActionCreateTask: {"Copywriter"},
	}
	catalog := NewRoleCatalog(table)

	table[ActionCreateTask] = nil
	table[ActionApproveWork] = []FunctionalRole{"Copywriter"}

	if !catalog.IsActionAllowed("Copywriter", ActionCreateTask) {
		t.Error("catalog must not share state with the input table")
	}
	if catalog.IsActionAllowed("Copywriter", ActionApproveWork) {
		t.Error("catalog must not see additions made after construction")
	}
}
