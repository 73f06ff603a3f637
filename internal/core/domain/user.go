package domain

import "time"

// Tier is the coarse global role governing cross-cutting authority.
// It is orthogonal to the functional role: the tier decides who overrides
// the permission table and who may manage whom.
type Tier string

const (
	TierOwner          Tier = "owner"
	TierAdmin          Tier = "admin"
	TierAccountManager Tier = "account_manager"
	TierTeamMember     Tier = "team_member"
)

// KnownTier reports whether t is one of the recognized tiers.
func KnownTier(t Tier) bool {
	switch t {
	case TierOwner, TierAdmin, TierAccountManager, TierTeamMember:
		return true
	}
	return false
}

// FunctionalRole is a job-title string ("Account Manager", "Graphic Designer").
// The set is configurable per organization, so it stays an open string type
// rather than a closed enum. The permission table is keyed by it.
type FunctionalRole string

// User models a member of the agency organization.
type User struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	Name           string         `json:"name" bson:"name"`
	Email          string         `json:"email" bson:"email"`
	PasswordHash   string         `json:"-" bson:"password_hash"`
	Tier           Tier           `json:"tier" bson:"tier"`
	FunctionalRole FunctionalRole `json:"functional_role" bson:"functional_role"`
	Active         bool           `json:"active" bson:"active"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}
