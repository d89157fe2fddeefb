package queue

import (
	"planner-api/core/config"
	"planner-api/core/logger"

	"github.com/hibiken/asynq"
)

// RedisOpt builds the asynq redis connection options from app config.
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewClient creates an asynq client for enqueueing tasks.
func NewClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(RedisOpt(cfg))
}

// NewServer creates the asynq worker server.
func NewServer(redisCfg config.RedisConfig, queueCfg config.QueueConfig) *asynq.Server {
	concurrency := queueCfg.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	return asynq.NewServer(RedisOpt(redisCfg), asynq.Config{
		Concurrency: concurrency,
		Logger:      asynqLogger{},
	})
}

// NewScheduler creates the asynq scheduler used for periodic tasks.
func NewScheduler(cfg config.RedisConfig) *asynq.Scheduler {
	return asynq.NewScheduler(RedisOpt(cfg), &asynq.SchedulerOpts{
		Logger: asynqLogger{},
	})
}

// asynqLogger routes asynq's internal logging through core/logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug("Queue:Asynq", "detail", args) }
func (asynqLogger) Info(args ...any)  { logger.Info("Queue:Asynq", "detail", args) }
func (asynqLogger) Warn(args ...any)  { logger.Warn("Queue:Asynq", "detail", args) }
func (asynqLogger) Error(args ...any) { logger.Error("Queue:Asynq", "detail", args) }
func (asynqLogger) Fatal(args ...any) { logger.Error("Queue:Asynq:Fatal", "detail", args) }
