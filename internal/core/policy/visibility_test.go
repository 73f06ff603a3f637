package policy

import (
	"testing"

	"github.com/agencyhub/agency-api/internal/core/domain"
)

func task(id, clientID, assignedTo, createdBy string) *domain.Task {
	return &domain.Task{ID: id, ClientID: clientID, AssignedToUserID: assignedTo, CreatedByUserID: createdBy, Status: domain.StatusTodo}
}

func client(id string) *domain.Client {
	return &domain.Client{ID: id, Name: "Client " + id}
}

func TestVisibleTasks_PrivilegedTiersSeeAll(t *testing.T) {
	tasks := []*domain.Task{
		task("t-1", "c-1", "", "u-a"),
		task("t-2", "c-2", "u-b", "u-a"),
		task("t-3", "c-3", "u-c", "u-c"),
		task("t-4", "c-1", "u-d", "u-b"),
		task("t-5", "c-2", "", "u-e"),
	}

	for _, tier := range []domain.Tier{domain.TierOwner, domain.TierAdmin, domain.TierAccountManager} {
		u := user("u-boss", tier, "")
		got := VisibleTasks(u, tasks)
		if len(got) != len(tasks) {
			t.Errorf("tier %s: expected %d tasks, got %d", tier, len(tasks), len(got))
		}
		for i := range got {
			if got[i] != tasks[i] {
				t.Errorf("tier %s: order not preserved at index %d", tier, i)
			}
		}
	}
}

func TestVisibleTasks_TeamMemberSeesOwnOnly(t *testing.T) {
	u := user("u-tm-1", domain.TierTeamMember, "Graphic Designer")
	t1 := task("t-1", "c-1", "", "u-tm-1")      // created by u-tm-1
	t2 := task("t-2", "c-3", "u-tm-1", "u-am")  // assigned to u-tm-1
	t3 := task("t-3", "c-2", "u-other", "u-am") // someone else's

	got := VisibleTasks(u, []*domain.Task{t1, t2, t3})
	if len(got) != 2 {
		t.Fatalf("expected 2 visible tasks, got %d", len(got))
	}
	if got[0].ID != "t-1" || got[1].ID != "t-2" {
		t.Errorf("expected [t-1 t-2] in input order, got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestVisibleTasks_EmptyAndNil(t *testing.T) {
	u := user("u-tm-1", domain.TierTeamMember, "Graphic Designer")

	if got := VisibleTasks(u, nil); len(got) != 0 {
		t.Errorf("nil input: expected empty, got %d", len(got))
	}
	if got := VisibleTasks(nil, []*domain.Task{task("t-1", "c-1", "", "u-a")}); got != nil {
		t.Error("nil user must see nothing")
	}
}

func TestVisibleClients_PrivilegedTiersSeeAll(t *testing.T) {
	clients := []*domain.Client{client("c-1"), client("c-2"), client("c-3")}
	tasks := []*domain.Task{task("t-1", "c-1", "u-x", "u-y")}

	for _, tier := range []domain.Tier{domain.TierOwner, domain.TierAdmin, domain.TierAccountManager} {
		u := user("u-boss", tier, "")
		got := VisibleClients(u, clients, tasks)
		if len(got) != 3 {
			t.Errorf("tier %s: expected all 3 clients, got %d", tier, len(got))
		}
	}
}

func TestVisibleClients_DerivedFromTasks(t *testing.T) {
	u := user("u-tm-1", domain.TierTeamMember, "Graphic Designer")
	clients := []*domain.Client{client("c-1"), client("c-2"), client("c-3")}
	tasks := []*domain.Task{
		task("t-1", "c-1", "", "u-tm-1"),
		task("t-2", "c-3", "u-tm-1", "u-am"),
		task("t-3", "c-2", "u-other", "u-am"),
	}

	got := VisibleClients(u, clients, tasks)
	if len(got) != 2 {
		t.Fatalf("expected 2 visible clients, got %d", len(got))
	}
	if got[0].ID != "c-1" || got[1].ID != "c-3" {
		t.Errorf("expected [c-1 c-3], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestVisibleClients_ReassignmentRemovesVisibility(t *testing.T) {
	u := user("u-tm-1", domain.TierTeamMember, "Graphic Designer")
	clients := []*domain.Client{client("c-3")}
	t2 := task("t-2", "c-3", "u-tm-1", "u-am")

	before := VisibleClients(u, clients, []*domain.Task{t2})
	if len(before) != 1 {
		t.Fatalf("expected c-3 visible before reassignment, got %d clients", len(before))
	}

	// Reassign the only qualifying task to someone else; the derivation is
	// recomputed on every call, so the client disappears immediately.
	t2.AssignedToUserID = "u-other"
	after := VisibleClients(u, clients, []*domain.Task{t2})
	if len(after) != 0 {
		t.Errorf("expected no visible clients after reassignment, got %d", len(after))
	}
}

func TestVisibility_OwnerScenario(t *testing.T) {
	// Owner, 5 tasks, 3 clients: everything visible.
	u := user("u-owner", domain.TierOwner, "")
	tasks := []*domain.Task{
		task("t-1", "c-1", "u-a", "u-b"),
		task("t-2", "c-1", "u-b", "u-c"),
		task("t-3", "c-2", "u-c", "u-a"),
		task("t-4", "c-3", "", "u-a"),
		task("t-5", "c-3", "u-a", "u-a"),
	}
	clients := []*domain.Client{client("c-1"), client("c-2"), client("c-3")}

	if got := VisibleTasks(u, tasks); len(got) != 5 {
		t.Errorf("expected 5 tasks, got %d", len(got))
	}
	if got := VisibleClients(u, clients, tasks); len(got) != 3 {
		t.Errorf("expected 3 clients, got %d", len(got))
	}
}

func TestVisibility_Idempotent(t *testing.T) {
	u := user("u-tm-1", domain.TierTeamMember, "Graphic Designer")
	tasks := []*domain.Task{
		task("t-1", "c-1", "u-tm-1", "u-am"),
		task("t-2", "c-2", "u-other", "u-am"),
	}
	clients := []*domain.Client{client("c-1"), client("c-2")}

	first := VisibleTasks(u, tasks)
	second := VisibleTasks(u, tasks)
	if len(first) != len(second) {
		t.Error("VisibleTasks must be idempotent")
	}

	firstClients := VisibleClients(u, clients, tasks)
	secondClients := VisibleClients(u, clients, tasks)
	if len(firstClients) != len(secondClients) {
		t.Error("VisibleClients must be idempotent")
	}
}
