package channel

import (
	"context"

	"github.com/google/uuid"

	"github.com/Jerome-JJT/ft-transcendence/internal/channel/model"
)

// ChannelStore persists channel records. No authorization logic here —
// pure persistence. Lookups return (nil, nil) when the record is absent;
// a non-nil error always means the backend itself failed.
type ChannelStore interface {
	CreateChannel(ctx context.Context, ch *model.Channel) error
	GetChannelByID(ctx context.Context, id uuid.UUID) (*model.Channel, error)
	UpdateChannel(ctx context.Context, ch *model.Channel) error
	DeleteChannel(ctx context.Context, id uuid.UUID) error

	// Discovery: DIRECT channels are never listed
	ListChannels(ctx context.Context) ([]*model.Channel, error)
	ListChannelsByUser(ctx context.Context, userID uuid.UUID) ([]*model.Channel, error)
}

// MembershipStore persists membership records, keyed by the
// (channel, user) pair.
type MembershipStore interface {
	FindMembership(ctx context.Context, channelID, userID uuid.UUID) (*model.Membership, error)
	// excludePermission filters rows out when non-empty (e.g. BANNED)
	ListMembers(ctx context.Context, channelID uuid.UUID, excludePermission model.Permission) ([]*model.Membership, error)
	ListMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error)
	CreateMembership(ctx context.Context, m *model.Membership) error
	UpdateMembership(ctx context.Context, m *model.Membership) error
	DeleteMembership(ctx context.Context, channelID, userID uuid.UUID) error
	DeleteChannelMemberships(ctx context.Context, channelID uuid.UUID) error

	// Earliest-joined membership with the given role, nil if none.
	// Locks the row when called inside RunInTx.
	FirstMemberByRole(ctx context.Context, channelID uuid.UUID, role model.Role) (*model.Membership, error)
}

// Repository is what the lifecycle engine depends on. RunInTx runs fn
// against a transaction-scoped Repository so every read-decide-write
// sequence commits or rolls back as one unit.
type Repository interface {
	ChannelStore
	MembershipStore

	RunInTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}

// CredentialGuard hashes and verifies channel passwords.
type CredentialGuard interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}
