package config

import (
	"context"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// RedisClient متغیر برای دسترسی به Redis
var RedisClient *redis.Client

// InitRedis اتصال به Redis را راه‌اندازی می‌کند
func InitRedis() {
	redisDB, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		redisDB = 0 // مقدار پیش‌فرض دیتابیس Redis
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})

	// بررسی اتصال به Redis
	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		Logger.Fatal("Error connecting to Redis: " + err.Error())
	}
	Logger.Info("Connected to Redis")
}
