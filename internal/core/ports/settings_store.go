package ports

import "context"

// SettingsRecord is a schemaless settings row keyed by "id".
type SettingsRecord map[string]any

// SettingsStore is the generic key-value settings collaborator. The policy
// core never calls it; it is read once at startup to build the role catalog
// and written by the settings UI.
type SettingsStore interface {
	Get(ctx context.Context, table, id string) (SettingsRecord, error)
	List(ctx context.Context, table string) ([]SettingsRecord, error)
	Upsert(ctx context.Context, table string, record SettingsRecord) error
}
