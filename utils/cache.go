// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"wukala/config"

	"github.com/go-redis/redis/v8"
)

var (
	// KVClient backs the durable key-value store (sessions, ledger, bookmarks).
	KVClient *redis.Client
	// AssistantCacheClient is the dedicated client for assistant chat context.
	AssistantCacheClient *redis.Client
)

// InitKV initializes the Redis client for the key-value store.
func InitKV() {
	KVClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisKVDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := KVClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (KV): %v", err)
	}
}

// GetKVClient returns the Redis client for the key-value store.
func GetKVClient() *redis.Client {
	if KVClient == nil {
		InitKV()
	}
	return KVClient
}

// InitAssistantCache initializes the Redis client for assistant chat context.
func InitAssistantCache() {
	AssistantCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAssistantDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AssistantCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Assistant Cache): %v", err)
	}
}

// GetAssistantCacheClient returns the Redis client for assistant chat context.
func GetAssistantCacheClient() *redis.Client {
	if AssistantCacheClient == nil {
		InitAssistantCache()
	}
	return AssistantCacheClient
}
