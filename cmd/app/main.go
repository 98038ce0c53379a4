package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	dbadapter "peyvand/internal/adapters/database"
	"peyvand/internal/adapters/httpapi"
	mediaadapter "peyvand/internal/adapters/media"
	redisadapter "peyvand/internal/adapters/redis"
	"peyvand/internal/config"
	"peyvand/internal/core/comment"
	commentapp "peyvand/internal/core/comment/service"
	"peyvand/internal/core/follower"
	followerapp "peyvand/internal/core/follower/service"
	"peyvand/internal/core/like"
	likeapp "peyvand/internal/core/like/service"
	"peyvand/internal/core/post"
	postapp "peyvand/internal/core/post/service"
	"peyvand/internal/core/user"
	userapp "peyvand/internal/core/user/service"
	"peyvand/internal/workers"
)

func main() {
	config.InitLogger()
	config.Init() // بارگذاری تنظیمات از .env

	// اتصال به دیتابیس و اجرای مایگریشن‌ها
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
	config.Logger.Info("✅ Database migrations completed")

	// اتصال به Redis
	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	userRepo := dbadapter.NewUserRepositoryDatabase()            // آداپتر خروجی
	followerRepo := dbadapter.NewFollowerRepositoryDatabase()    // آداپتر خروجی
	postRepo := dbadapter.NewPostRepositoryDatabase()            // آداپتر خروجی
	commentRepo := dbadapter.NewCommentRepositoryDatabase()      // آداپتر خروجی
	likeRepo := dbadapter.NewLikeRepositoryDatabase()            // آداپتر خروجی
	blacklist := redisadapter.NewTokenBlacklistRedis(config.RedisClient)
	mediaStore := mediaadapter.NewLocalStorage(config.MediaDir())

	userSvc := userapp.NewUserService(userRepo, followerRepo, blacklist, config.JWTSecret()) // یوزکیس/سرویس
	followerSvc := followerapp.NewFollowerService(followerRepo, userRepo)                    // یوزکیس/سرویس
	postSvc := postapp.NewPostService(postRepo)                                              // یوزکیس/سرویس
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo)                        // یوزکیس/سرویس
	likeSvc := likeapp.NewLikeService(likeRepo, postRepo)                                    // یوزکیس/سرویس

	r := httpapi.SetupRoutes(userSvc, followerSvc, postSvc, commentSvc, likeSvc, blacklist, mediaStore)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// worker انتشار دوره‌ای در پس‌زمینه
	publishWorker := workers.NewPublishWorker(
		userSvc,
		postSvc,
		publishUsernames(),
		publishInterval(),
		config.Logger,
	)
	go publishWorker.Run(ctx)

	// اجرای سرور Gin (بلوکینگ)
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// publishUsernames کاربران هدف worker انتشار؛ خالی یعنی غیرفعال
func publishUsernames() []string {
	raw := os.Getenv("PUBLISH_USERNAMES")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	usernames := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			usernames = append(usernames, p)
		}
	}
	return usernames
}

func publishInterval() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("PUBLISH_INTERVAL_SECONDS"))
	if err != nil || seconds <= 0 {
		return time.Hour
	}
	return time.Duration(seconds) * time.Second
}

// closeResources بستن اتصالات به Redis و دیتابیس
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB() // گرفتن *sql.DB از *gorm.DB
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
