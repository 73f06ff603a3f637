package service

import (
	"context"
	"fmt"

	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     []*domain.User
	createErr error
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	clone := *u
	r.users = append(r.users, &clone)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *u
	clone.ID = fmt.Sprintf("u-%d", len(r.users)+1)
	r.users = append(r.users, &clone)
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) CountByTier(_ context.Context, tier domain.Tier) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Tier == tier {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, tier domain.Tier, role domain.FunctionalRole) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Tier = tier
			u.FunctionalRole = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Active = active
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubTaskRepo struct {
	tasks     []*domain.Task
	createErr error
	updateErr error
}

func (r *stubTaskRepo) add(t *domain.Task) *domain.Task {
	clone := *t
	r.tasks = append(r.tasks, &clone)
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *t
	clone.ID = fmt.Sprintf("t-%d", len(r.tasks)+1)
	r.tasks = append(r.tasks, &clone)
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) List(_ context.Context) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTaskRepo) UpdateStatus(_ context.Context, id string, status domain.TaskStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, t := range r.tasks {
		if t.ID == id {
			t.Status = status
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

func (r *stubTaskRepo) UpdateAssignee(_ context.Context, id string, assignedTo string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, t := range r.tasks {
		if t.ID == id {
			t.AssignedToUserID = assignedTo
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

type stubClientRepo struct {
	clients []*domain.Client
}

func (r *stubClientRepo) add(c *domain.Client) *domain.Client {
	clone := *c
	r.clients = append(r.clients, &clone)
	return &clone
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	clone := *c
	clone.ID = fmt.Sprintf("c-%d", len(r.clients)+1)
	r.clients = append(r.clients, &clone)
	out := clone
	return &out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

type stubActivityRepo struct {
	entries   []*domain.ActivityEntry
	appendErr error
}

func (r *stubActivityRepo) Append(_ context.Context, e *domain.ActivityEntry) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	clone := *e
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *stubActivityRepo) ListForTask(_ context.Context, taskID string) ([]*domain.ActivityEntry, error) {
	var out []*domain.ActivityEntry
	for _, e := range r.entries {
		if e.TaskID == taskID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubNotifier struct {
	enqueued []ports.NotificationInput
}

func (n *stubNotifier) Enqueue(in ports.NotificationInput) {
	n.enqueued = append(n.enqueued, in)
}

type stubNotificationRepo struct {
	inserted  []*domain.Notification
	insertErr error
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *n
	r.inserted = append(r.inserted, &clone)
	return nil
}

func (r *stubNotificationRepo) ListForUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.inserted {
		if n.RecipientID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubThrottle struct {
	suppressed map[string]bool
	checkErr   error
	markErr    error
	marked     []string
}

func throttleKey(taskID, status, recipientID string) string {
	return taskID + ":" + status + ":" + recipientID
}

func (t *stubThrottle) IsSuppressed(_ context.Context, taskID, status, recipientID string) (bool, error) {
	if t.checkErr != nil {
		return false, t.checkErr
	}
	return t.suppressed[throttleKey(taskID, status, recipientID)], nil
}

func (t *stubThrottle) Mark(_ context.Context, taskID, status, recipientID string) error {
	if t.markErr != nil {
		return t.markErr
	}
	t.marked = append(t.marked, throttleKey(taskID, status, recipientID))
	return nil
}

type stubSettingsStore struct {
	tables  map[string][]ports.SettingsRecord
	listErr error
}

func (s *stubSettingsStore) Get(_ context.Context, table, id string) (ports.SettingsRecord, error) {
	for _, rec := range s.tables[table] {
		if rec["id"] == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("settings record %s/%s not found", table, id)
}

func (s *stubSettingsStore) List(_ context.Context, table string) ([]ports.SettingsRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.tables[table], nil
}

func (s *stubSettingsStore) Upsert(_ context.Context, table string, record ports.SettingsRecord) error {
	s.tables[table] = append(s.tables[table], record)
	return nil
}
