package policy

import "github.com/agencyhub/agency-api/internal/core/domain"

// seesEverything reports whether the tier bypasses visibility filtering.
// Owner, Admin and Account Manager see all tasks and clients unfiltered.
func seesEverything(tier domain.Tier) bool {
	return tier == domain.TierOwner || tier == domain.TierAdmin || tier == domain.TierAccountManager
}

// CanSeeTask reports whether a single task is visible to the user.
func CanSeeTask(user *domain.User, task *domain.Task) bool {
	if user == nil || task == nil {
		return false
	}
	if seesEverything(user.Tier) {
		return true
	}
	return task.AssignedToUserID == user.ID || task.CreatedByUserID == user.ID
}

// VisibleTasks returns the subset of tasks the user may see. Privileged
// tiers get the input back unchanged; everyone else gets the tasks they
// created or are assigned to. The filter is stable: input order is kept.
func VisibleTasks(user *domain.User, allTasks []*domain.Task) []*domain.Task {
	if user == nil {
		return nil
	}
	if seesEverything(user.Tier) {
		return allTasks
	}

	visible := make([]*domain.Task, 0, len(allTasks))
	for _, t := range allTasks {
		if t.AssignedToUserID == user.ID || t.CreatedByUserID == user.ID {
			visible = append(visible, t)
		}
	}
	return visible
}

// VisibleClients returns the subset of clients the user may see. Client
// visibility is never stored; for non-privileged users it is derived on
// every call from the clients referenced by their assigned tasks.
func VisibleClients(user *domain.User, allClients []*domain.Client, allTasks []*domain.Task) []*domain.Client {
	if user == nil {
		return nil
	}
	if seesEverything(user.Tier) {
		return allClients
	}

	reachable := make(map[string]struct{})
	for _, t := range allTasks {
		if t.AssignedToUserID == user.ID || t.CreatedByUserID == user.ID {
			reachable[t.ClientID] = struct{}{}
		}
	}

	visible := make([]*domain.Client, 0, len(reachable))
	for _, c := range allClients {
		if _, ok := reachable[c.ID]; ok {
			visible = append(visible, c)
		}
	}
	return visible
}
