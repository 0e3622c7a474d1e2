package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"voyago/config"
	"voyago/services/booking"
	"voyago/services/orders"
	"voyago/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitIssuanceWorker runs the async worker in background.
func InitIssuanceWorker(orderSvc orders.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
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
	mux.HandleFunc(tasks.TypeIssuanceDeliver, handleIssuanceTask(orderSvc))

	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[IssuanceWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[IssuanceWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[IssuanceWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleIssuanceTask(orderSvc orders.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.IssuancePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[IssuanceHandler] invalid payload: %v", err)
			return err
		}

		order, err := orderSvc.GetOrder(ctx, p.OrderID)
		if err != nil {
			log.Printf("[IssuanceHandler] order %s not found: %v", p.OrderID, err)
			return err
		}

		pack := booking.PresentIssuance(order)
		for _, doc := range pack.Documents {
			log.Printf("[IssuanceHandler] delivering %s %s for %s (order %s)",
				doc.Kind, doc.Reference, doc.AttendeeName, order.ID)
		}
		log.Printf("[IssuanceHandler] order %s issued: code %s, %d documents",
			order.ID, pack.Summary.ConfirmationCode, len(pack.Documents))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[IssuanceWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
