package followerapp

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"peyvand/internal/adapters/database"
	"peyvand/internal/config"
	"peyvand/internal/core/apperrors"
	"peyvand/internal/core/comment"
	"peyvand/internal/core/follower"
	"peyvand/internal/core/like"
	"peyvand/internal/core/policy"
	"peyvand/internal/core/post"
	"peyvand/internal/core/user"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &follower.Follower{}, &post.Post{}, &comment.Comment{}, &like.Like{},
	))
	config.DB = db
	config.Logger = zap.NewNop()
}

func newService() *FollowerService {
	return NewFollowerService(
		database.NewFollowerRepositoryDatabase(),
		database.NewUserRepositoryDatabase(),
	)
}

func createUser(t *testing.T, username string) *user.User {
	t.Helper()
	u := &user.User{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     fmt.Sprintf("%s@example.com", username),
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "hashed",
	}
	require.NoError(t, config.DB.Create(u).Error)
	return u
}

func TestFollowUser(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	alice := createUser(t, "alice")
	bob := createUser(t, "bob")

	actor := policy.Principal{ID: alice.ID}
	require.NoError(t, svc.FollowUser(ctx, actor, bob.ID.String()))

	following, err := svc.IsFollowing(ctx, alice.ID.String(), bob.ID.String())
	require.NoError(t, err)
	assert.True(t, following)

	count, err := svc.FollowersCount(ctx, bob.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFollowUserIdempotent(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	actor := policy.Principal{ID: alice.ID}

	require.NoError(t, svc.FollowUser(ctx, actor, bob.ID.String()))
	require.NoError(t, svc.FollowUser(ctx, actor, bob.ID.String()))

	var count int64
	require.NoError(t, config.DB.Model(&follower.Follower{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSelfFollowIsNoop(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	alice := createUser(t, "alice")
	actor := policy.Principal{ID: alice.ID}

	require.NoError(t, svc.FollowUser(ctx, actor, alice.ID.String()))

	var count int64
	require.NoError(t, config.DB.Model(&follower.Follower{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestFollowUnknownUser(t *testing.T) {
	setupTestDB(t)
	svc := newService()

	alice := createUser(t, "alice")
	actor := policy.Principal{ID: alice.ID}

	err := svc.FollowUser(context.Background(), actor, uuid.Must(uuid.NewV4()).String())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFollowUnauthenticated(t *testing.T) {
	setupTestDB(t)
	svc := newService()

	bob := createUser(t, "bob")
	err := svc.FollowUser(context.Background(), policy.Anonymous, bob.ID.String())
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestUnfollowUser(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	actor := policy.Principal{ID: alice.ID}

	require.NoError(t, svc.FollowUser(ctx, actor, bob.ID.String()))
	require.NoError(t, svc.UnfollowUser(ctx, actor, bob.ID.String()))

	following, err := svc.IsFollowing(ctx, alice.ID.String(), bob.ID.String())
	require.NoError(t, err)
	assert.False(t, following)

	// آنفالوی تکراری بی‌اثر است
	require.NoError(t, svc.UnfollowUser(ctx, actor, bob.ID.String()))
}

func TestFollowerAndFollowingLists(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	carol := createUser(t, "carol")

	require.NoError(t, svc.FollowUser(ctx, policy.Principal{ID: alice.ID}, carol.ID.String()))
	require.NoError(t, svc.FollowUser(ctx, policy.Principal{ID: bob.ID}, carol.ID.String()))
	require.NoError(t, svc.FollowUser(ctx, policy.Principal{ID: carol.ID}, alice.ID.String()))

	followers, err := svc.GetFollowersByUserID(ctx, carol.ID.String())
	require.NoError(t, err)
	require.Len(t, followers, 2)

	names := []string{followers[0].Username, followers[1].Username}
	assert.ElementsMatch(t, []string{"alice", "bob"}, names)

	following, err := svc.GetFollowingByUserID(ctx, carol.ID.String())
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "alice", following[0].Username)
}
