package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient redis.UniversalClient

func InitConnection() error {
	var tlsConf *tls.Config
	if configData.EnableTLS {
		tlsConf = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", configData.RedisHost, configData.RedisPort),
		Password:     configData.RedisPassword,
		DB:           configData.RedisDB,
		TLSConfig:    tlsConf,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MaxRetries:   2,
	})

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("cannot connect to redis: %w", err)
	}
	return nil
}

func GetClient() redis.UniversalClient {
	return redisClient
}
