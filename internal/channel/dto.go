package channel

import (
	"github.com/google/uuid"

	"github.com/Jerome-JJT/ft-transcendence/internal/channel/model"
)

// NOTE: commands travel from handler to usecase

// Actor is the already-resolved identity making the request. PlatformAdmin
// is the platform-level role flag, only consulted by DeleteChannel.
type Actor struct {
	ID            uuid.UUID
	PlatformAdmin bool
}

// Input commands
type CreateChannelCommand struct {
	Name     string
	Type     model.ChannelType
	Password string // required iff Type == RESTRICTED
}

type JoinChannelCommand struct {
	ChannelID uuid.UUID
	Password  string // checked only for RESTRICTED channels
}

type EditChannelCommand struct {
	ChannelID uuid.UUID
	Name      string
	Type      model.ChannelType
	Password  string // empty = keep the digest unchanged
}

type MemberStatusCommand struct {
	ChannelID    uuid.UUID
	TargetUserID uuid.UUID
	Role         model.Role       // empty = leave role unchanged
	Permission   model.Permission // empty = leave permission unchanged
}
