package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wukala/config"
	"wukala/services/assistant"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeAssistantReply = "assistant:reply"

// ReplyPayload is the queued task body for a delayed assistant reply.
type ReplyPayload struct {
	Handle string `json:"handle"`
	Text   string `json:"text"`
}

// AsynqReplyQueue schedules assistant replies through asynq so the typing
// delay survives process restarts.
type AsynqReplyQueue struct {
	client *asynq.Client
}

func NewAsynqReplyQueue() *AsynqReplyQueue {
	return &AsynqReplyQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

func (q *AsynqReplyQueue) EnqueueReply(handle, text string, delay time.Duration) error {
	payload, err := json.Marshal(ReplyPayload{Handle: handle, Text: text})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeAssistantReply, payload)
	_, err = q.client.Enqueue(task, asynq.ProcessIn(delay), asynq.MaxRetry(3))
	return err
}

// InitAssistantWorker runs the async reply worker in background.
func InitAssistantWorker(svc assistant.AssistantService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAssistantReply, handleReplyTask(svc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[AssistantWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AssistantWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AssistantWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReplyTask(svc assistant.AssistantService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReplyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReplyHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		reply, err := svc.Reply(p.Handle, p.Text)
		if err != nil {
			log.Printf("[ReplyHandler] ❌ Failed to deliver reply for %s: %v", p.Handle, err)
			return err
		}

		log.Printf("[ReplyHandler] 💬 Delivered reply for %s: %.40s", p.Handle, reply)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[AssistantWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
