package database

import (
	"context"
	"log"
	"mado-service/internal/app/config"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the send-lock store and exits the process when
// redis cannot be reached at startup.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", rdb.Options().Addr, err)
	}

	log.Println("Successfully connected to redis")
	return rdb
}
