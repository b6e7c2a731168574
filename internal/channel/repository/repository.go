package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/Jerome-JJT/ft-transcendence/internal/channel"
	"github.com/Jerome-JJT/ft-transcendence/internal/channel/model"
	"github.com/Jerome-JJT/ft-transcendence/pkg/logger"
)

// ChannelRepository implements channel.Repository on Postgres via bun.
// Outside a transaction idb is the root *bun.DB; RunInTx rebinds it to
// the transaction so every method runs against the same tx.
type ChannelRepository struct {
	db     *bun.DB
	idb    bun.IDB
	logger *logger.Logger
}

var _ channel.Repository = (*ChannelRepository)(nil)

func NewChannelRepository(db *bun.DB, logger logger.Logger) *ChannelRepository {
	return &ChannelRepository{
		db:     db,
		idb:    db,
		logger: &logger,
	}
}

func (r *ChannelRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, repo channel.Repository) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		scoped := &ChannelRepository{db: r.db, idb: tx, logger: r.logger}
		return fn(ctx, scoped)
	})
}

func (r *ChannelRepository) CreateChannel(ctx context.Context, ch *model.Channel) error {

	_, err := r.idb.NewInsert().Model(ch).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.CreateChannel.Insert: ")
	}
	return nil
}

func (r *ChannelRepository) GetChannelByID(ctx context.Context, id uuid.UUID) (*model.Channel, error) {

	ch := new(model.Channel)
	err := r.idb.NewSelect().Model(ch).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "channelRepo.GetChannelByID.Scan: ")
	}
	return ch, nil
}

func (r *ChannelRepository) UpdateChannel(ctx context.Context, ch *model.Channel) error {
	_, err := r.idb.NewUpdate().
		Model(ch).
		Column("name", "type", "passwd").
		Set("updated_at = current_timestamp").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.UpdateChannel.Update: ")
	}
	return nil
}

func (r *ChannelRepository) DeleteChannel(ctx context.Context, id uuid.UUID) error {
	_, err := r.idb.NewDelete().Model((*model.Channel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.DeleteChannel.Delete: ")
	}
	return nil
}

func (r *ChannelRepository) ListChannels(ctx context.Context) ([]*model.Channel, error) {

	var chs []*model.Channel
	err := r.idb.NewSelect().
		Model(&chs).
		Where("type != ?", model.ChannelDirect).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "channelRepo.ListChannels.Scan: ")
	}
	return chs, nil
}

func (r *ChannelRepository) ListChannelsByUser(ctx context.Context, userID uuid.UUID) ([]*model.Channel, error) {

	var chs []*model.Channel
	err := r.idb.NewSelect().
		Model(&chs).
		Join("JOIN memberships AS m ON m.channel_id = channel.id").
		Where("m.user_id = ?", userID).
		Where("channel.type != ?", model.ChannelDirect).
		Order("m.joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "channelRepo.ListChannelsByUser.Scan: ")
	}
	return chs, nil
}

func (r *ChannelRepository) FindMembership(ctx context.Context, channelID, userID uuid.UUID) (*model.Membership, error) {

	m := new(model.Membership)
	err := r.idb.NewSelect().
		Model(m).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "channelRepo.FindMembership.Scan: ")
	}
	return m, nil
}

func (r *ChannelRepository) ListMembers(ctx context.Context, channelID uuid.UUID, excludePermission model.Permission) ([]*model.Membership, error) {

	var ms []*model.Membership
	q := r.idb.NewSelect().
		Model(&ms).
		Where("channel_id = ?", channelID)
	if excludePermission != "" {
		q = q.Where("permission != ?", excludePermission)
	}
	err := q.Order("joined_at ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "channelRepo.ListMembers.Scan: ")
	}
	return ms, nil
}

func (r *ChannelRepository) ListMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error) {

	var ms []*model.Membership
	err := r.idb.NewSelect().
		Model(&ms).
		Where("user_id = ?", userID).
		Order("joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "channelRepo.ListMembershipsByUser.Scan: ")
	}
	return ms, nil
}

func (r *ChannelRepository) CreateMembership(ctx context.Context, m *model.Membership) error {

	_, err := r.idb.NewInsert().Model(m).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.CreateMembership.Insert: ")
	}
	return nil
}

func (r *ChannelRepository) UpdateMembership(ctx context.Context, m *model.Membership) error {
	_, err := r.idb.NewUpdate().
		Model(m).
		Column("role", "permission").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.UpdateMembership.Update: ")
	}
	return nil
}

func (r *ChannelRepository) DeleteMembership(ctx context.Context, channelID, userID uuid.UUID) error {
	_, err := r.idb.NewDelete().
		Model((*model.Membership)(nil)).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.DeleteMembership.Delete: ")
	}
	return nil
}

func (r *ChannelRepository) DeleteChannelMemberships(ctx context.Context, channelID uuid.UUID) error {
	_, err := r.idb.NewDelete().
		Model((*model.Membership)(nil)).
		Where("channel_id = ?", channelID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.DeleteChannelMemberships.Delete: ")
	}
	return nil
}

// FirstMemberByRole is the succession lookup: the earliest-joined row with
// the given role, user id as a deterministic tie-break. "FOR UPDATE" locks
// the row so a racing promotion on the same channel serializes behind us.
func (r *ChannelRepository) FirstMemberByRole(ctx context.Context, channelID uuid.UUID, role model.Role) (*model.Membership, error) {

	m := new(model.Membership)
	err := r.idb.NewSelect().
		Model(m).
		Where("channel_id = ? AND role = ?", channelID, role).
		Order("joined_at ASC", "user_id ASC").
		Limit(1).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "channelRepo.FirstMemberByRole.Scan: ")
	}
	return m, nil
}
