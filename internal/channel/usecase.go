package channel

import (
	"context"

	"github.com/google/uuid"

	"github.com/Jerome-JJT/ft-transcendence/internal/channel/model"
)

type ChannelUsecase interface {
	// Create a channel and make the actor its OWNER
	CreateChannel(ctx context.Context, actor Actor, cmd CreateChannelCommand) (*model.Channel, error)

	// Join as MEMBER; idempotent for existing non-banned members
	JoinChannel(ctx context.Context, actor Actor, cmd JoinChannelCommand) (*model.Channel, error)

	// Leave; a departing OWNER hands the channel to the earliest-joined
	// ADMIN, else MEMBER, else the channel is deleted. Returns the
	// actor's next remaining channel (nil if none) so callers can
	// redirect the user's view.
	LeaveChannel(ctx context.Context, actor Actor, channelID uuid.UUID) (*model.Channel, error)

	// Change a member's role and/or permission; KICKED removes the row.
	// Returns the membership as it was written (or deleted).
	MemberStatus(ctx context.Context, actor Actor, cmd MemberStatusCommand) (*model.Membership, error)

	// Owner-only reconfiguration of name/type/password
	EditChannel(ctx context.Context, actor Actor, cmd EditChannelCommand) (*model.Channel, error)

	// Owner-only, or unconditional for platform admins
	DeleteChannel(ctx context.Context, actor Actor, channelID uuid.UUID) error

	// Reads
	GetChannelByID(ctx context.Context, channelID uuid.UUID) (*model.Channel, error)
	GetChannelMembers(ctx context.Context, actor Actor, channelID uuid.UUID) ([]*model.Membership, error)
	GetChannelsForUser(ctx context.Context, userID uuid.UUID) ([]*model.Channel, error)
	GetMembershipOf(ctx context.Context, channelID, userID uuid.UUID) (*model.Membership, error)

	// Discovery listing, DIRECT channels excluded
	ListChannels(ctx context.Context) ([]*model.Channel, error)
}
