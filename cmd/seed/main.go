// Seed tool: populates the database with demo users, follows, posts,
// comments and likes. Goes through the services so passwords get hashed
// and the usual invariants hold.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	dbadapter "peyvand/internal/adapters/database"
	"peyvand/internal/config"
	"peyvand/internal/core/comment"
	commentapp "peyvand/internal/core/comment/service"
	"peyvand/internal/core/follower"
	followerapp "peyvand/internal/core/follower/service"
	"peyvand/internal/core/like"
	likeapp "peyvand/internal/core/like/service"
	"peyvand/internal/core/policy"
	"peyvand/internal/core/post"
	postapp "peyvand/internal/core/post/service"
	"peyvand/internal/core/user"
	userapp "peyvand/internal/core/user/service"
	userPort "peyvand/internal/ports/user"
)

var hashtags = []string{"Golang", "Travel", "Food", "Music", "Photography"}

func main() {
	var numUsers int
	var postsPerUser int
	flag.IntVar(&numUsers, "users", 10, "number of demo users")
	flag.IntVar(&postsPerUser, "posts", 3, "posts per user")
	flag.Parse()

	config.InitLogger()
	config.Init()
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&follower.Follower{},
		&post.Post{},
		&comment.Comment{},
		&like.Like{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepositoryDatabase()
	followerRepo := dbadapter.NewFollowerRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	commentRepo := dbadapter.NewCommentRepositoryDatabase()
	likeRepo := dbadapter.NewLikeRepositoryDatabase()

	userSvc := userapp.NewUserService(userRepo, followerRepo, nil, config.JWTSecret())
	followerSvc := followerapp.NewFollowerService(followerRepo, userRepo)
	postSvc := postapp.NewPostService(postRepo)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo)
	likeSvc := likeapp.NewLikeService(likeRepo, postRepo)

	ctx := context.Background()
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now()

	// ساخت کاربران دمو
	users := make([]*userPort.UserDTO, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		username := fmt.Sprintf("demo%02d", i)
		dto, err := userSvc.RegisterUser(ctx,
			username+"@example.com",
			username,
			"Demo",
			fmt.Sprintf("User%02d", i),
			"Just a demo account",
			"demo-password",
		)
		if err != nil {
			config.Logger.Fatal("seeding user failed", zap.String("username", username), zap.Error(err))
		}
		users = append(users, dto)
	}
	config.Logger.Info("✅ demo users created", zap.Int("count", len(users)))

	// هر کاربر چند کاربر دیگر را دنبال می‌کند
	for i, u := range users {
		actor := policy.Principal{ID: uuid.FromStringOrNil(u.ID)}
		for j := 1; j <= 3 && len(users) > 1; j++ {
			target := users[(i+j)%len(users)]
			if err := followerSvc.FollowUser(ctx, actor, target.ID); err != nil {
				config.Logger.Fatal("seeding follow failed", zap.Error(err))
			}
		}
	}

	// پست‌ها، کامنت‌ها و لایک‌ها
	for i, u := range users {
		actor := policy.Principal{ID: uuid.FromStringOrNil(u.ID)}
		for p := 0; p < postsPerUser; p++ {
			tag := hashtags[r.Intn(len(hashtags))]
			created, err := postSvc.CreatePost(ctx, actor,
				tag,
				fmt.Sprintf("Post %d by %s", p+1, u.Username),
				fmt.Sprintf("Hello from %s, talking about %s.", u.Username, tag),
			)
			if err != nil {
				config.Logger.Fatal("seeding post failed", zap.Error(err))
			}

			// دنبال‌کننده‌ها روی پست تعامل می‌کنند
			for j := 1; j <= 2 && len(users) > 1; j++ {
				engager := users[(i-j+len(users))%len(users)]
				engagerActor := policy.Principal{ID: uuid.FromStringOrNil(engager.ID)}
				if _, err := likeSvc.ToggleLike(ctx, engagerActor, created.ID); err != nil {
					continue // پست برای این کاربر قابل مشاهده نیست
				}
				_ = commentSvc.AddComment(ctx, engagerActor, created.ID,
					fmt.Sprintf("Nice one, %s!", u.Username))
			}
		}
	}

	config.Logger.Info("✅ seeding done",
		zap.Int("users", numUsers),
		zap.Int("posts_per_user", postsPerUser),
		zap.Duration("took", time.Since(start).Truncate(time.Millisecond)))
}
