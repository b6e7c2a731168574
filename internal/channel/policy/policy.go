// Package policy is the pure role/permission decision logic for channel
// administration. It never touches storage: callers resolve both
// memberships first, Decide only inspects them.
package policy

import (
	appErrors "github.com/Jerome-JJT/ft-transcendence/pkg/errors"

	"github.com/Jerome-JJT/ft-transcendence/internal/channel/model"
)

// Request is the change an actor wants applied to the target membership.
// An empty field means "leave unchanged".
type Request struct {
	Role       model.Role
	Permission model.Permission
}

// Transition is the resulting write. RemoveTarget reports that the
// membership row must be deleted instead of updated (a kick).
type Transition struct {
	Role         model.Role
	Permission   model.Permission
	RemoveTarget bool
}

// Decide returns the transition to apply, or an error when the actor's
// role does not authorize the request.
//
//   - OWNER may set a non-owner member to ADMIN/MEMBER, kick, and set any
//     permission. Nobody may act on the OWNER, the owner included.
//   - ADMIN may only set/clear a permission on a plain MEMBER, and may
//     not kick.
//   - MEMBER has no administrative actions.
func Decide(actor, target *model.Membership, req Request) (Transition, error) {
	if actor == nil || target == nil {
		return Transition{}, appErrors.ErrNotAMember
	}
	if req.Role != "" && !req.Role.Valid() {
		return Transition{}, appErrors.InvalidArg("invalid role")
	}
	if req.Permission != "" && !req.Permission.Valid() {
		return Transition{}, appErrors.InvalidArg("invalid permission")
	}

	// Ownership never moves through this path, succession handles it
	if req.Role == model.RoleOwner {
		return Transition{}, appErrors.ErrForbidden
	}
	if target.Role == model.RoleOwner {
		return Transition{}, appErrors.ErrForbidden
	}

	switch actor.Role {
	case model.RoleOwner:
		// full control over non-owner members
	case model.RoleAdmin:
		if target.Role != model.RoleMember {
			return Transition{}, appErrors.ErrForbidden
		}
		if req.Role != "" {
			return Transition{}, appErrors.ErrForbidden
		}
		if req.Permission == model.PermissionKicked {
			return Transition{}, appErrors.ErrForbidden
		}
	default:
		return Transition{}, appErrors.ErrForbidden
	}

	tr := Transition{Role: target.Role, Permission: target.Permission}
	if req.Role != "" {
		tr.Role = req.Role
	}
	if req.Permission != "" {
		tr.Permission = req.Permission
	}
	if tr.Permission == model.PermissionKicked {
		tr.RemoveTarget = true
	}
	return tr, nil
}
