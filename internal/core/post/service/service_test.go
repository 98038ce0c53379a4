package postapp

import (
	"context"
	"fmt"
	"testing"
	"time"

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
	postEntity "peyvand/internal/core/post"
	"peyvand/internal/core/user"
	postPort "peyvand/internal/ports/post"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &follower.Follower{}, &postEntity.Post{}, &comment.Comment{}, &like.Like{},
	))
	config.DB = db
	config.Logger = zap.NewNop()
}

func newService() *PostService {
	return NewPostService(database.NewPostRepositoryDatabase())
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

func follow(t *testing.T, followerID, followeeID uuid.UUID) {
	t.Helper()
	f := &follower.Follower{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     followeeID,
		FollowerID: followerID,
	}
	require.NoError(t, config.DB.Create(f).Error)
}

func seedPost(t *testing.T, author *user.User, hashtag, title string, createdAt time.Time) *postEntity.Post {
	t.Helper()
	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Hashtag:   hashtag,
		Title:     title,
		Content:   "content of " + title,
		CreatedBy: author.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, config.DB.Create(p).Error)
	return p
}

func TestCreatePost(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	alice := createUser(t, "alice")
	actor := policy.Principal{ID: alice.ID}

	dto, err := svc.CreatePost(ctx, actor, "Golang", "First post", "hello world")
	require.NoError(t, err)

	assert.Equal(t, "Golang", dto.Hashtag)
	assert.Equal(t, "First post", dto.Title)
	assert.Equal(t, "alice", dto.CreatedBy)
	assert.Zero(t, dto.CommentsCount)
	assert.Zero(t, dto.LikesCount)
}

func TestCreatePostValidation(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	alice := createUser(t, "alice")
	actor := policy.Principal{ID: alice.ID}

	_, err := svc.CreatePost(ctx, actor, "Golang", "", "hello")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreatePost(ctx, actor, "", "Title", "hello")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreatePost(ctx, policy.Anonymous, "Golang", "Title", "hello")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestFeedVisibility(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	carol := createUser(t, "carol")

	// alice فقط bob را دنبال می‌کند
	follow(t, alice.ID, bob.ID)

	now := time.Now()
	seedPost(t, alice, "Golang", "alice post", now.Add(-3*time.Hour))
	seedPost(t, bob, "Travel", "bob post", now.Add(-2*time.Hour))
	seedPost(t, carol, "Food", "carol post", now.Add(-1*time.Hour))

	feed, err := svc.ListPosts(ctx, policy.Principal{ID: alice.ID}, postPort.Filters{})
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// جدیدترین اول
	assert.Equal(t, "bob post", feed[0].Title)
	assert.Equal(t, "alice post", feed[1].Title)

	// carol کسی را دنبال نمی‌کند؛ فقط پست خودش
	feed, err = svc.ListPosts(ctx, policy.Principal{ID: carol.ID}, postPort.Filters{})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "carol post", feed[0].Title)
}

func TestFeedHashtagFilter(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	alice := createUser(t, "alice")
	now := time.Now()
	seedPost(t, alice, "GoLang", "go post", now.Add(-2*time.Hour))
	seedPost(t, alice, "Travel", "travel post", now.Add(-time.Hour))

	// فیلتر هشتگ زیررشته‌ای و بدون حساسیت به بزرگی حروف
	feed, err := svc.ListPosts(ctx, policy.Principal{ID: alice.ID}, postPort.Filters{Hashtag: "golan"})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "go post", feed[0].Title)
}

func TestFeedUsernameFilter(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	follow(t, alice.ID, bob.ID)

	now := time.Now()
	seedPost(t, alice, "Golang", "alice post", now.Add(-2*time.Hour))
	seedPost(t, bob, "Golang", "bob post", now.Add(-time.Hour))

	feed, err := svc.ListPosts(ctx, policy.Principal{ID: alice.ID}, postPort.Filters{Username: "bob"})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "bob post", feed[0].Title)

	// نام کاربری باید دقیق باشد
	feed, err = svc.ListPosts(ctx, policy.Principal{ID: alice.ID}, postPort.Filters{Username: "bo"})
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestGetPostInvisible(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	bob := createUser(t, "bob")
	carol := createUser(t, "carol")
	p := seedPost(t, bob, "Golang", "bob post", time.Now())

	// carol دنبال‌کننده نیست؛ پست برایش وجود ندارد
	_, err := svc.GetPost(ctx, policy.Principal{ID: carol.ID}, p.ID.String())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdatePostOwnership(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	bob := createUser(t, "bob")
	alice := createUser(t, "alice")
	follow(t, alice.ID, bob.ID)
	p := seedPost(t, bob, "Golang", "bob post", time.Now())

	newTitle := "edited"

	// دنبال‌کننده پست را می‌بیند ولی مالک نیست
	_, err := svc.UpdatePost(ctx, policy.Principal{ID: alice.ID}, p.ID.String(), PostUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrPermission)

	// staff هم مالک نیست
	_, err = svc.UpdatePost(ctx, policy.Principal{ID: alice.ID, IsStaff: true}, p.ID.String(), PostUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrPermission)

	dto, err := svc.UpdatePost(ctx, policy.Principal{ID: bob.ID}, p.ID.String(), PostUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "edited", dto.Title)
}

func TestDeletePostCascade(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	bob := createUser(t, "bob")
	alice := createUser(t, "alice")
	follow(t, alice.ID, bob.ID)
	p := seedPost(t, bob, "Golang", "bob post", time.Now())

	require.NoError(t, config.DB.Create(&comment.Comment{
		ID: uuid.Must(uuid.NewV4()), PostID: p.ID, UserID: alice.ID, Content: "nice",
	}).Error)
	require.NoError(t, config.DB.Create(&like.Like{
		ID: uuid.Must(uuid.NewV4()), PostID: p.ID, UserID: alice.ID, IsLiked: true,
	}).Error)

	require.NoError(t, svc.DeletePost(ctx, policy.Principal{ID: bob.ID}, p.ID.String()))

	var comments, likes, posts int64
	require.NoError(t, config.DB.Model(&comment.Comment{}).Count(&comments).Error)
	require.NoError(t, config.DB.Model(&like.Like{}).Count(&likes).Error)
	require.NoError(t, config.DB.Model(&postEntity.Post{}).Count(&posts).Error)
	assert.Zero(t, comments)
	assert.Zero(t, likes)
	assert.Zero(t, posts)
}

func TestPostCountsAreLive(t *testing.T) {
	setupTestDB(t)
	svc := newService()
	ctx := context.Background()

	bob := createUser(t, "bob")
	alice := createUser(t, "alice")
	follow(t, alice.ID, bob.ID)
	p := seedPost(t, bob, "Golang", "bob post", time.Now())

	require.NoError(t, config.DB.Create(&comment.Comment{
		ID: uuid.Must(uuid.NewV4()), PostID: p.ID, UserID: alice.ID, Content: "nice",
	}).Error)
	require.NoError(t, config.DB.Create(&like.Like{
		ID: uuid.Must(uuid.NewV4()), PostID: p.ID, UserID: alice.ID, IsLiked: true,
	}).Error)

	dto, err := svc.GetPost(ctx, policy.Principal{ID: alice.ID}, p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), dto.CommentsCount)
	assert.Equal(t, int64(1), dto.LikesCount)
}
