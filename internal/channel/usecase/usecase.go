package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/Jerome-JJT/ft-transcendence/internal/channel"
	"github.com/Jerome-JJT/ft-transcendence/internal/channel/model"
	"github.com/Jerome-JJT/ft-transcendence/internal/channel/policy"
	"github.com/Jerome-JJT/ft-transcendence/pkg/errors"
	"github.com/Jerome-JJT/ft-transcendence/pkg/logger"
)

// ChannelUsecase is the channel lifecycle engine. Every mutating
// operation runs its whole read-decide-write sequence inside one
// repository transaction and re-reads current state there, never acting
// on memberships cached across calls.
type ChannelUsecase struct {
	repo   channel.Repository
	guard  channel.CredentialGuard
	logger logger.Logger
}

var _ channel.ChannelUsecase = (*ChannelUsecase)(nil)

func NewChannelUsecase(repo channel.Repository, guard channel.CredentialGuard, logger logger.Logger) *ChannelUsecase {
	return &ChannelUsecase{repo: repo, guard: guard, logger: logger}
}

func (uc *ChannelUsecase) CreateChannel(ctx context.Context, actor channel.Actor, cmd channel.CreateChannelCommand) (*model.Channel, error) {
	if !cmd.Type.Valid() {
		return nil, errors.ErrInvalidChannelType
	}
	if cmd.Type == model.ChannelRestricted && cmd.Password == "" {
		return nil, errors.ErrInvalidChannelConfig
	}

	ch := &model.Channel{
		Name: cmd.Name,
		Type: cmd.Type,
	}
	if cmd.Type == model.ChannelRestricted {
		digest, err := uc.guard.Hash(cmd.Password)
		if err != nil {
			uc.logger.Error("failed to hash channel password", "err", err)
			return nil, errors.ErrStorage(err)
		}
		ch.PasswordDigest = digest
	}

	// Channel and owner membership commit together; an orphaned channel
	// without an owner must never become visible.
	err := uc.repo.RunInTx(ctx, func(ctx context.Context, repo channel.Repository) error {
		if err := repo.CreateChannel(ctx, ch); err != nil {
			return err
		}
		owner := &model.Membership{
			ChannelID:  ch.ID,
			UserID:     actor.ID,
			Role:       model.RoleOwner,
			Permission: model.PermissionNone,
		}
		return repo.CreateMembership(ctx, owner)
	})
	if err != nil {
		uc.logger.Error("channel creation failed", "err", err)
		return nil, errors.ErrStorage(err)
	}
	return ch, nil
}

func (uc *ChannelUsecase) JoinChannel(ctx context.Context, actor channel.Actor, cmd channel.JoinChannelCommand) (*model.Channel, error) {
	var joined *model.Channel

	err := uc.repo.RunInTx(ctx, func(ctx context.Context, repo channel.Repository) error {
		ch, err := repo.GetChannelByID(ctx, cmd.ChannelID)
		if err != nil {
			return errors.ErrStorage(err)
		}
		if ch == nil {
			return errors.ErrChannelNotFound
		}

		me, err := repo.FindMembership(ctx, cmd.ChannelID, actor.ID)
		if err != nil {
			return errors.ErrStorage(err)
		}
		if me != nil && me.Permission == model.PermissionBanned {
			return errors.ErrBanned
		}
		if me != nil {
			// already a member, nothing to do
			joined = ch
			return nil
		}

		if ch.Type == model.ChannelRestricted {
			if cmd.Password == "" || !uc.guard.Verify(cmd.Password, ch.PasswordDigest) {
				return errors.ErrWrongPassword
			}
		}
		if ch.Type == model.ChannelPrivate {
			return errors.ErrPrivateChannel
		}
		if ch.Type == model.ChannelDirect {
			// direct channels are never joined through this path
			return errors.ErrForbidden
		}

		m := &model.Membership{
			ChannelID:  ch.ID,
			UserID:     actor.ID,
			Role:       model.RoleMember,
			Permission: model.PermissionNone,
		}
		if err := repo.CreateMembership(ctx, m); err != nil {
			return errors.ErrStorage(err)
		}
		joined = ch
		return nil
	})
	if err != nil {
		return nil, uc.reportError("join channel failed", err)
	}
	return joined, nil
}

func (uc *ChannelUsecase) LeaveChannel(ctx context.Context, actor channel.Actor, channelID uuid.UUID) (*model.Channel, error) {
	err := uc.repo.RunInTx(ctx, func(ctx context.Context, repo channel.Repository) error {
		me, err := repo.FindMembership(ctx, channelID, actor.ID)
		if err != nil {
			return errors.ErrStorage(err)
		}
		if me == nil {
			return errors.ErrNotAMember
		}

		if me.Role == model.RoleOwner {
			deleted, err := uc.handOver(ctx, repo, channelID)
			if err != nil {
				return err
			}
			if deleted {
				// channel gone, our membership with it
				return nil
			}
		}
		if err := repo.DeleteMembership(ctx, channelID, actor.ID); err != nil {
			return errors.ErrStorage(err)
		}
		return nil
	})
	if err != nil {
		return nil, uc.reportError("leave channel failed", err)
	}

	// Next channel for the departing user's view, nil when none remain
	remaining, err := uc.repo.ListChannelsByUser(ctx, actor.ID)
	if err != nil {
		uc.logger.Error("failed to list remaining channels", "err", err)
		return nil, errors.ErrStorage(err)
	}
	if len(remaining) == 0 {
		return nil, nil
	}
	return remaining[0], nil
}

// handOver promotes the next owner when the current one departs:
// earliest-joined ADMIN first, else earliest-joined MEMBER, else the
// channel is deleted outright. Reports whether the channel was deleted.
func (uc *ChannelUsecase) handOver(ctx context.Context, repo channel.Repository, channelID uuid.UUID) (bool, error) {
	heir, err := repo.FirstMemberByRole(ctx, channelID, model.RoleAdmin)
	if err != nil {
		return false, errors.ErrStorage(err)
	}
	if heir == nil {
		heir, err = repo.FirstMemberByRole(ctx, channelID, model.RoleMember)
		if err != nil {
			return false, errors.ErrStorage(err)
		}
	}
	if heir == nil {
		// no one left to own the channel
		if err := repo.DeleteChannelMemberships(ctx, channelID); err != nil {
			return false, errors.ErrStorage(err)
		}
		if err := repo.DeleteChannel(ctx, channelID); err != nil {
			return false, errors.ErrStorage(err)
		}
		return true, nil
	}

	heir.Role = model.RoleOwner
	if err := repo.UpdateMembership(ctx, heir); err != nil {
		return false, errors.ErrStorage(err)
	}
	return false, nil
}

func (uc *ChannelUsecase) MemberStatus(ctx context.Context, actor channel.Actor, cmd channel.MemberStatusCommand) (*model.Membership, error) {
	var result *model.Membership

	err := uc.repo.RunInTx(ctx, func(ctx context.Context, repo channel.Repository) error {
		ch, err := repo.GetChannelByID(ctx, cmd.ChannelID)
		if err != nil {
			return errors.ErrStorage(err)
		}
		if ch == nil {
			return errors.ErrChannelNotFound
		}

		me, err := repo.FindMembership(ctx, cmd.ChannelID, actor.ID)
		if err != nil {
			return errors.ErrStorage(err)
		}
		if me == nil {
			return errors.ErrNotAMember
		}
		target, err := repo.FindMembership(ctx, cmd.ChannelID, cmd.TargetUserID)
		if err != nil {
			return errors.ErrStorage(err)
		}
		if target == nil {
			return errors.ErrMembershipNotFound
		}

		tr, err := policy.Decide(me, target, policy.Request{Role: cmd.Role, Permission: cmd.Permission})
		if err != nil {
			return err
		}

		if tr.RemoveTarget {
			if err := repo.DeleteMembership(ctx, cmd.ChannelID, cmd.TargetUserID); err != nil {
				return errors.ErrStorage(err)
			}
			target.Permission = model.PermissionKicked
			result = target
			return nil
		}

		target.Role = tr.Role
		target.Permission = tr.Permission
		if err := repo.UpdateMembership(ctx, target); err != nil {
			return errors.ErrStorage(err)
		}
		result = target
		return nil
	})
	if err != nil {
		return nil, uc.reportError("member status change failed", err)
	}
	return result, nil
}

func (uc *ChannelUsecase) EditChannel(ctx context.Context, actor channel.Actor, cmd channel.EditChannelCommand) (*model.Channel, error) {
	if !cmd.Type.Valid() {
		return nil, errors.ErrInvalidChannelType
	}
	if cmd.Type == model.ChannelDirect {
		return nil, errors.ErrDirectImmutable
	}
	// No silent password removal: keeping or adopting RESTRICTED always
	// needs the password spelled out.
	if cmd.Type == model.ChannelRestricted && cmd.Password == "" {
		return nil, errors.ErrInvalidChannelConfig
	}

	var edited *model.Channel
	err := uc.repo.RunInTx(ctx, func(ctx context.Context, repo channel.Repository) error {
		ch, err := repo.GetChannelByID(ctx, cmd.ChannelID)
		if err != nil {
			return errors.ErrStorage(err)
		}
		if ch == nil {
			return errors.ErrChannelNotFound
		}
		if ch.Type == model.ChannelDirect {
			return errors.ErrDirectImmutable
		}

		me, err := repo.FindMembership(ctx, cmd.ChannelID, actor.ID)
		if err != nil {
			return errors.ErrStorage(err)
		}
		if me == nil || me.Role != model.RoleOwner {
			return errors.ErrForbidden
		}

		ch.Name = cmd.Name
		ch.Type = cmd.Type
		if cmd.Type == model.ChannelRestricted {
			digest, err := uc.guard.Hash(cmd.Password)
			if err != nil {
				return errors.ErrStorage(err)
			}
			ch.PasswordDigest = digest
		} else {
			ch.PasswordDigest = ""
		}

		if err := repo.UpdateChannel(ctx, ch); err != nil {
			return errors.ErrStorage(err)
		}
		edited = ch
		return nil
	})
	if err != nil {
		return nil, uc.reportError("edit channel failed", err)
	}
	return edited, nil
}

func (uc *ChannelUsecase) DeleteChannel(ctx context.Context, actor channel.Actor, channelID uuid.UUID) error {
	err := uc.repo.RunInTx(ctx, func(ctx context.Context, repo channel.Repository) error {
		ch, err := repo.GetChannelByID(ctx, channelID)
		if err != nil {
			return errors.ErrStorage(err)
		}
		if ch == nil {
			return errors.ErrChannelNotFound
		}

		// Platform admins may delete any channel, everyone else must own it
		if !actor.PlatformAdmin {
			me, err := repo.FindMembership(ctx, channelID, actor.ID)
			if err != nil {
				return errors.ErrStorage(err)
			}
			if me == nil || me.Role != model.RoleOwner {
				return errors.ErrForbidden
			}
		}

		if err := repo.DeleteChannelMemberships(ctx, channelID); err != nil {
			return errors.ErrStorage(err)
		}
		if err := repo.DeleteChannel(ctx, channelID); err != nil {
			return errors.ErrStorage(err)
		}
		return nil
	})
	if err != nil {
		return uc.reportError("delete channel failed", err)
	}
	return nil
}

func (uc *ChannelUsecase) GetChannelByID(ctx context.Context, channelID uuid.UUID) (*model.Channel, error) {
	ch, err := uc.repo.GetChannelByID(ctx, channelID)
	if err != nil {
		uc.logger.Error("channel lookup failed", "err", err)
		return nil, errors.ErrStorage(err)
	}
	if ch == nil {
		return nil, errors.ErrChannelNotFound
	}
	return ch, nil
}

func (uc *ChannelUsecase) GetChannelMembers(ctx context.Context, actor channel.Actor, channelID uuid.UUID) ([]*model.Membership, error) {
	me, err := uc.repo.FindMembership(ctx, channelID, actor.ID)
	if err != nil {
		uc.logger.Error("membership lookup failed", "err", err)
		return nil, errors.ErrStorage(err)
	}
	if me == nil {
		return nil, errors.ErrNotAMember
	}

	// banned members stay invisible to the roster
	members, err := uc.repo.ListMembers(ctx, channelID, model.PermissionBanned)
	if err != nil {
		uc.logger.Error("member listing failed", "err", err)
		return nil, errors.ErrStorage(err)
	}
	return members, nil
}

func (uc *ChannelUsecase) GetChannelsForUser(ctx context.Context, userID uuid.UUID) ([]*model.Channel, error) {
	chs, err := uc.repo.ListChannelsByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("channel listing failed", "err", err)
		return nil, errors.ErrStorage(err)
	}
	return chs, nil
}

func (uc *ChannelUsecase) GetMembershipOf(ctx context.Context, channelID, userID uuid.UUID) (*model.Membership, error) {
	m, err := uc.repo.FindMembership(ctx, channelID, userID)
	if err != nil {
		uc.logger.Error("membership lookup failed", "err", err)
		return nil, errors.ErrStorage(err)
	}
	if m == nil {
		return nil, errors.ErrMembershipNotFound
	}
	return m, nil
}

func (uc *ChannelUsecase) ListChannels(ctx context.Context) ([]*model.Channel, error) {
	chs, err := uc.repo.ListChannels(ctx)
	if err != nil {
		uc.logger.Error("channel discovery failed", "err", err)
		return nil, errors.ErrStorage(err)
	}
	return chs, nil
}

// reportError logs storage failures and passes business denials through
// untouched, so "you can't" never masks "the system broke".
func (uc *ChannelUsecase) reportError(msg string, err error) error {
	if errors.CodeOf(err) == errors.CodeInternal || errors.CodeOf(err) == errors.CodeUnknown {
		uc.logger.Error(msg, "err", err)
		if errors.CodeOf(err) == errors.CodeUnknown {
			return errors.ErrStorage(err)
		}
	}
	return err
}
