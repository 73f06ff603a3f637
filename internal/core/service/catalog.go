package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/ports"
)

const settingsTableRolePermissions = "role_permissions"

// LoadRoleCatalog builds the immutable permission catalog at startup.
// It starts from the built-in table and applies per-action overrides from
// the settings store. Records look like:
//
//	{"id": "CREATE_TASK", "roles": ["Account Manager", "Copywriter"]}
//
// Malformed records are skipped with a warning; a missing or failing store
// leaves the defaults in place. The catalog never changes after this call.
func LoadRoleCatalog(ctx context.Context, store ports.SettingsStore, log zerolog.Logger) *domain.RoleCatalog {
	table := domain.DefaultPermissionTable()

	records, err := store.List(ctx, settingsTableRolePermissions)
	if err != nil {
		log.Warn().Err(err).Msg("permission overrides unavailable, using defaults")
		return domain.NewRoleCatalog(table)
	}

	for _, rec := range records {
		action, ok := rec["id"].(string)
		if !ok || action == "" {
			log.Warn().Interface("record", rec).Msg("permission override missing id, skipped")
			continue
		}
		raw, ok := rec["roles"].([]any)
		if !ok {
			log.Warn().Str("action", action).Msg("permission override missing roles, skipped")
			continue
		}
		roles := make([]domain.FunctionalRole, 0, len(raw))
		for _, r := range raw {
			if s, ok := r.(string); ok {
				roles = append(roles, domain.FunctionalRole(s))
			}
		}
		table[domain.Action(action)] = roles
	}

	return domain.NewRoleCatalog(table)
}
