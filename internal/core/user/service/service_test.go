package userapp

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisclient "github.com/go-redis/redis/v8"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"peyvand/internal/adapters/database"
	redisadapter "peyvand/internal/adapters/redis"
	"peyvand/internal/config"
	"peyvand/internal/core/apperrors"
	"peyvand/internal/core/auth"
	"peyvand/internal/core/comment"
	"peyvand/internal/core/follower"
	"peyvand/internal/core/like"
	"peyvand/internal/core/policy"
	"peyvand/internal/core/post"
	"peyvand/internal/core/user"
)

var testJWTKey = []byte("test-secret")

func setupService(t *testing.T) *UserService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &follower.Follower{}, &post.Post{}, &comment.Comment{}, &like.Like{},
	))
	config.DB = db
	config.Logger = zap.NewNop()

	mr := miniredis.RunT(t)
	client := redisclient.NewClient(&redisclient.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewUserService(
		database.NewUserRepositoryDatabase(),
		database.NewFollowerRepositoryDatabase(),
		redisadapter.NewTokenBlacklistRedis(client),
		testJWTKey,
	)
}

func register(t *testing.T, svc *UserService, username string) policy.Principal {
	t.Helper()
	dto, err := svc.RegisterUser(context.Background(),
		fmt.Sprintf("%s@example.com", username), username, "Test", "User", "", "long-enough-password")
	require.NoError(t, err)
	return policy.Principal{ID: uuid.FromStringOrNil(dto.ID)}
}

func TestRegisterUser(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	dto, err := svc.RegisterUser(ctx, "alice@example.com", "alice", "Alice", "A", "hi there", "long-enough-password")
	require.NoError(t, err)

	assert.Equal(t, "alice", dto.Username)
	assert.Equal(t, "alice@example.com", dto.Email)
	assert.False(t, dto.IsStaff)

	// پسورد هش شده ذخیره می‌شود
	var u user.User
	require.NoError(t, config.DB.First(&u, "username = ?", "alice").Error)
	assert.NotEqual(t, "long-enough-password", u.Password)
}

func TestRegisterUserValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "", "alice", "Alice", "A", "", "long-enough-password")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.RegisterUser(ctx, "alice@example.com", "", "Alice", "A", "", "long-enough-password")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.RegisterUser(ctx, "alice@example.com", "alice", "Alice", "A", "", "short")
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegisterUserDuplicates(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "alice@example.com", "alice", "Alice", "A", "", "long-enough-password")
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "alice@example.com", "alice2", "Alice", "A", "", "long-enough-password")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.RegisterUser(ctx, "alice2@example.com", "alice", "Alice", "A", "", "long-enough-password")
	assert.True(t, apperrors.IsValidation(err))
}

func TestLoginUser(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	register(t, svc, "alice")

	resp, err := svc.LoginUser(ctx, "alice@example.com", "long-enough-password")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))

	claims, err := auth.Parse(resp.AccessToken, testJWTKey)
	require.NoError(t, err)
	assert.Equal(t, auth.KindAccess, claims.Kind)

	claims, err = auth.Parse(resp.RefreshToken, testJWTKey)
	require.NoError(t, err)
	assert.Equal(t, auth.KindRefresh, claims.Kind)
}

func TestLoginUserBadCredentials(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	register(t, svc, "alice")

	_, err := svc.LoginUser(ctx, "alice@example.com", "wrong-password")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.LoginUser(ctx, "nobody@example.com", "long-enough-password")
	assert.True(t, apperrors.IsValidation(err))
}

func TestRefreshToken(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	register(t, svc, "alice")
	resp, err := svc.LoginUser(ctx, "alice@example.com", "long-enough-password")
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// access token جای refresh قبول نمی‌شود
	_, err = svc.RefreshToken(ctx, resp.AccessToken)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.RefreshToken(ctx, "garbage")
	assert.True(t, apperrors.IsValidation(err))
}

func TestLogoutRevokesRefresh(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	register(t, svc, "alice")
	resp, err := svc.LoginUser(ctx, "alice@example.com", "long-enough-password")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.RefreshToken))

	// رفرش باطل‌شده دیگر کار نمی‌کند
	_, err = svc.RefreshToken(ctx, resp.RefreshToken)
	assert.True(t, apperrors.IsValidation(err))
}

func TestListUsersFilter(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	actor := register(t, svc, "alice")
	register(t, svc, "bob")
	register(t, svc, "bobby")

	users, err := svc.ListUsers(ctx, actor, "", "bob")
	require.NoError(t, err)
	require.Len(t, users, 2)

	users, err = svc.ListUsers(ctx, actor, "bobby@", "")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bobby", users[0].Username)

	_, err = svc.ListUsers(ctx, policy.Anonymous, "", "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestMeAndUpdateMe(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	actor := register(t, svc, "alice")

	me, err := svc.Me(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)

	bio := "updated bio"
	dto, err := svc.UpdateMe(ctx, actor, ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "updated bio", dto.Bio)

	// نام کاربری گرفته‌شده رد می‌شود
	register(t, svc, "bob")
	taken := "bob"
	_, err = svc.UpdateMe(ctx, actor, ProfileUpdate{Username: &taken})
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetUserWithRelations(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	alice := register(t, svc, "alice")
	bob := register(t, svc, "bob")

	require.NoError(t, config.DB.Create(&follower.Follower{
		ID: uuid.Must(uuid.NewV4()), UserID: bob.ID, FollowerID: alice.ID,
	}).Error)

	detail, err := svc.GetUser(ctx, alice, bob.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.FollowersCount)
	assert.Equal(t, []string{"alice"}, detail.Followers)

	_, err = svc.GetUser(ctx, alice, uuid.Must(uuid.NewV4()).String())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	alice := register(t, svc, "alice")
	bob := register(t, svc, "bob")

	// کاربر عادی نمی‌تواند دیگری را حذف کند
	err := svc.DeleteUser(ctx, alice, bob.ID.String())
	assert.ErrorIs(t, err, apperrors.ErrPermission)

	// staff می‌تواند
	staff := policy.Principal{ID: alice.ID, IsStaff: true}
	require.NoError(t, svc.DeleteUser(ctx, staff, bob.ID.String()))

	_, err = svc.GetUser(ctx, alice, bob.ID.String())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// حذف حساب خود
	require.NoError(t, svc.DeleteUser(ctx, alice, alice.ID.String()))
}

func TestDeleteUserCascade(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	alice := register(t, svc, "alice")
	bob := register(t, svc, "bob")

	p := &post.Post{
		ID: uuid.Must(uuid.NewV4()), Hashtag: "Golang", Title: "post", Content: "c", CreatedBy: alice.ID,
	}
	require.NoError(t, config.DB.Create(p).Error)
	require.NoError(t, config.DB.Create(&comment.Comment{
		ID: uuid.Must(uuid.NewV4()), PostID: p.ID, UserID: bob.ID, Content: "hi",
	}).Error)
	require.NoError(t, config.DB.Create(&like.Like{
		ID: uuid.Must(uuid.NewV4()), PostID: p.ID, UserID: bob.ID, IsLiked: true,
	}).Error)
	require.NoError(t, config.DB.Create(&follower.Follower{
		ID: uuid.Must(uuid.NewV4()), UserID: alice.ID, FollowerID: bob.ID,
	}).Error)

	require.NoError(t, svc.DeleteUser(ctx, alice, alice.ID.String()))

	var posts, comments, likes, follows int64
	require.NoError(t, config.DB.Model(&post.Post{}).Count(&posts).Error)
	require.NoError(t, config.DB.Model(&comment.Comment{}).Count(&comments).Error)
	require.NoError(t, config.DB.Model(&like.Like{}).Count(&likes).Error)
	require.NoError(t, config.DB.Model(&follower.Follower{}).Count(&follows).Error)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
	assert.Zero(t, likes)
	assert.Zero(t, follows)
}
