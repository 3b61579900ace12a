package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var RedisClient *redis.Client

// InitRedis connects the cache client. The application runs without a cache
// when Redis is unreachable, so every failure path here just logs and clears
// the client.
func InitRedis() {
	var opt *redis.Options
	if AppConfig.RedisURL != "" {
		parsedOpt, err := redis.ParseURL(AppConfig.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     AppConfig.RedisAddr,
			Password: AppConfig.RedisPassword,
			DB:       0,
		}
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
