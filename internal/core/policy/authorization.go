// Package policy contains the pure authorization and visibility rules.
// Every function here is a side-effect-free predicate or filter over
// in-memory values; persistence and transport live elsewhere.
package policy

import "github.com/agencyhub/agency-api/internal/core/domain"

// Authorizer answers "may this user perform this action" and "may this
// actor manage this target user". It never errors: unknown input denies.
type Authorizer struct {
	catalog *domain.RoleCatalog
}

// NewAuthorizer builds an Authorizer over the given permission catalog.
func NewAuthorizer(catalog *domain.RoleCatalog) *Authorizer {
	return &Authorizer{catalog: catalog}
}

// CanUserDo reports whether the user may perform the action. Owner and
// Admin tiers pass unconditionally; everyone else is looked up in the
// permission table by functional role.
func (a *Authorizer) CanUserDo(user *domain.User, action domain.Action) bool {
	if user == nil {
		return false
	}
	if user.Tier == domain.TierOwner || user.Tier == domain.TierAdmin {
		return true
	}
	return a.catalog.IsActionAllowed(user.FunctionalRole, action)
}

// CanManageTargetUser reports whether actor may edit, disable, delete, or
// change the role of target. Rule precedence is strict:
//
//  1. An Owner-tier target is never manageable, by anyone. This also blocks
//     an Owner from managing itself through this path, guarding against
//     accidental self-demotion and duplicate-owner conflicts.
//  2. An Owner actor manages everyone else.
//  3. An Admin actor manages only tiers strictly below Admin.
func (a *Authorizer) CanManageTargetUser(actor, target *domain.User) bool {
	if actor == nil || target == nil {
		return false
	}
	if target.Tier == domain.TierOwner {
		return false
	}
	if actor.Tier == domain.TierOwner {
		return true
	}
	if actor.Tier == domain.TierAdmin && target.Tier != domain.TierAdmin {
		return true
	}
	return false
}
