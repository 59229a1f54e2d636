package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus reports reachability of the backing stores: Mongo (catalogs),
// the session/ledger KV store, and the assistant context cache.
type HealthStatus struct {
	Mongo          bool      `json:"mongo"`
	KV             bool      `json:"kv"`
	AssistantCache bool      `json:"assistantCache"`
	CheckedAt      time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(kvClient, assistantClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			snapshot := HealthStatus{
				Mongo:          mongoClient.Ping(ctx, nil) == nil,
				KV:             kvClient.Ping(ctx).Err() == nil,
				AssistantCache: assistantClient.Ping(ctx).Err() == nil,
				CheckedAt:      time.Now(),
			}

			mu.Lock()
			currentHealth = snapshot
			mu.Unlock()
		}
	}()
}
