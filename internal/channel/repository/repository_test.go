package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Jerome-JJT/ft-transcendence/internal/channel"
	"github.com/Jerome-JJT/ft-transcendence/internal/channel/model"
	"github.com/Jerome-JJT/ft-transcendence/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	dbName := "transcendence"
	dbUser := "pong"
	dbPassword := "password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*model.Channel)(nil),
		(*model.Membership)(nil),
	}

	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func newRepo(t *testing.T) *ChannelRepository {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE memberships, channels`)
		require.NoError(t, err)
	})
	return NewChannelRepository(testDB, logger.Logger{})
}

func seedChannel(t *testing.T, repo *ChannelRepository, chType model.ChannelType) *model.Channel {
	ch := &model.Channel{Name: "test", Type: chType}
	require.NoError(t, repo.CreateChannel(context.Background(), ch))
	return ch
}

func seedMembership(t *testing.T, repo *ChannelRepository, channelID uuid.UUID, role model.Role, joinedAt time.Time) *model.Membership {
	m := &model.Membership{
		ChannelID:  channelID,
		UserID:     uuid.New(),
		Role:       role,
		Permission: model.PermissionNone,
		JoinedAt:   joinedAt,
	}
	require.NoError(t, repo.CreateMembership(context.Background(), m))
	return m
}

func Test_CreateAndGetChannel(t *testing.T) {
	repo := newRepo(t)

	ch := &model.Channel{Name: "general", Type: model.ChannelPublic}
	err := repo.CreateChannel(context.Background(), ch)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ch.ID)

	fetched, err := repo.GetChannelByID(context.Background(), ch.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "general", fetched.Name)
	assert.Equal(t, model.ChannelPublic, fetched.Type)
}

func Test_GetChannelByID_Absent(t *testing.T) {
	repo := newRepo(t)

	fetched, err := repo.GetChannelByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func Test_UpdateChannel(t *testing.T) {
	repo := newRepo(t)

	ch := seedChannel(t, repo, model.ChannelPublic)
	ch.Name = "renamed"
	ch.Type = model.ChannelRestricted
	ch.PasswordDigest = "$2a$10$digest"
	require.NoError(t, repo.UpdateChannel(context.Background(), ch))

	fetched, err := repo.GetChannelByID(context.Background(), ch.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", fetched.Name)
	assert.Equal(t, model.ChannelRestricted, fetched.Type)
	assert.Equal(t, "$2a$10$digest", fetched.PasswordDigest)
}

func Test_DeleteChannel(t *testing.T) {
	repo := newRepo(t)

	ch := seedChannel(t, repo, model.ChannelPublic)
	require.NoError(t, repo.DeleteChannel(context.Background(), ch.ID))

	fetched, err := repo.GetChannelByID(context.Background(), ch.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func Test_ListChannels_ExcludesDirect(t *testing.T) {
	repo := newRepo(t)

	seedChannel(t, repo, model.ChannelPublic)
	seedChannel(t, repo, model.ChannelRestricted)
	seedChannel(t, repo, model.ChannelDirect)

	chs, err := repo.ListChannels(context.Background())
	require.NoError(t, err)
	require.Len(t, chs, 2)
	for _, ch := range chs {
		assert.NotEqual(t, model.ChannelDirect, ch.Type)
	}
}

func Test_CreateMembership_DuplicatePairRejected(t *testing.T) {
	repo := newRepo(t)

	ch := seedChannel(t, repo, model.ChannelPublic)
	m := seedMembership(t, repo, ch.ID, model.RoleMember, time.Now())

	dup := &model.Membership{ChannelID: ch.ID, UserID: m.UserID, Role: model.RoleMember}
	err := repo.CreateMembership(context.Background(), dup)
	assert.Error(t, err)
}

func Test_FindMembership(t *testing.T) {
	repo := newRepo(t)

	ch := seedChannel(t, repo, model.ChannelPublic)
	m := seedMembership(t, repo, ch.ID, model.RoleOwner, time.Now())

	fetched, err := repo.FindMembership(context.Background(), ch.ID, m.UserID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, model.RoleOwner, fetched.Role)

	absent, err := repo.FindMembership(context.Background(), ch.ID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func Test_UpdateMembership(t *testing.T) {
	repo := newRepo(t)

	ch := seedChannel(t, repo, model.ChannelPublic)
	m := seedMembership(t, repo, ch.ID, model.RoleMember, time.Now())

	m.Role = model.RoleAdmin
	m.Permission = model.PermissionMuted
	require.NoError(t, repo.UpdateMembership(context.Background(), m))

	fetched, err := repo.FindMembership(context.Background(), ch.ID, m.UserID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, fetched.Role)
	assert.Equal(t, model.PermissionMuted, fetched.Permission)
}

func Test_ListMembers_ExcludesPermission(t *testing.T) {
	repo := newRepo(t)

	ch := seedChannel(t, repo, model.ChannelPublic)
	seedMembership(t, repo, ch.ID, model.RoleOwner, time.Now())
	banned := seedMembership(t, repo, ch.ID, model.RoleMember, time.Now())
	banned.Permission = model.PermissionBanned
	require.NoError(t, repo.UpdateMembership(context.Background(), banned))

	all, err := repo.ListMembers(context.Background(), ch.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	visible, err := repo.ListMembers(context.Background(), ch.ID, model.PermissionBanned)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, model.RoleOwner, visible[0].Role)
}

func Test_FirstMemberByRole_EarliestJoinedWins(t *testing.T) {
	repo := newRepo(t)

	ch := seedChannel(t, repo, model.ChannelPublic)
	base := time.Now().Add(-time.Hour)
	seedMembership(t, repo, ch.ID, model.RoleAdmin, base.Add(30*time.Minute))
	earliest := seedMembership(t, repo, ch.ID, model.RoleAdmin, base)
	seedMembership(t, repo, ch.ID, model.RoleMember, base.Add(-time.Hour))

	first, err := repo.FirstMemberByRole(context.Background(), ch.ID, model.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, earliest.UserID, first.UserID)

	none, err := repo.FirstMemberByRole(context.Background(), ch.ID, model.RoleOwner)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func Test_ListChannelsByUser_ExcludesDirect(t *testing.T) {
	repo := newRepo(t)

	public := seedChannel(t, repo, model.ChannelPublic)
	direct := seedChannel(t, repo, model.ChannelDirect)

	userID := uuid.New()
	for _, ch := range []*model.Channel{public, direct} {
		m := &model.Membership{ChannelID: ch.ID, UserID: userID, Role: model.RoleMember}
		require.NoError(t, repo.CreateMembership(context.Background(), m))
	}

	chs, err := repo.ListChannelsByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, chs, 1)
	assert.Equal(t, public.ID, chs[0].ID)
}

func Test_DeleteChannelMemberships(t *testing.T) {
	repo := newRepo(t)

	ch := seedChannel(t, repo, model.ChannelPublic)
	seedMembership(t, repo, ch.ID, model.RoleOwner, time.Now())
	seedMembership(t, repo, ch.ID, model.RoleMember, time.Now())

	require.NoError(t, repo.DeleteChannelMemberships(context.Background(), ch.ID))

	all, err := repo.ListMembers(context.Background(), ch.ID, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func Test_RunInTx_RollsBackOnError(t *testing.T) {
	repo := newRepo(t)

	ch := seedChannel(t, repo, model.ChannelPublic)
	userID := uuid.New()

	err := repo.RunInTx(context.Background(), func(ctx context.Context, r channel.Repository) error {
		m := &model.Membership{ChannelID: ch.ID, UserID: userID, Role: model.RoleMember}
		if err := r.CreateMembership(ctx, m); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	fetched, err := repo.FindMembership(context.Background(), ch.ID, userID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func Test_RunInTx_CommitsOnSuccess(t *testing.T) {
	repo := newRepo(t)

	ch := seedChannel(t, repo, model.ChannelPublic)
	userID := uuid.New()

	err := repo.RunInTx(context.Background(), func(ctx context.Context, r channel.Repository) error {
		m := &model.Membership{ChannelID: ch.ID, UserID: userID, Role: model.RoleOwner}
		return r.CreateMembership(ctx, m)
	})
	require.NoError(t, err)

	fetched, err := repo.FindMembership(context.Background(), ch.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, model.RoleOwner, fetched.Role)
}
