package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planner-api/core/cache"
	"planner-api/core/config"
	"planner-api/core/constants"
	"planner-api/core/database"
	"planner-api/core/logger"
	"planner-api/core/middleware"
	"planner-api/core/queue"
	"planner-api/modules/auth"
	"planner-api/modules/backup"
	"planner-api/modules/notification"
	notifRepository "planner-api/modules/notification/repository"
	notifService "planner-api/modules/notification/service"
	"planner-api/modules/schedule"
	scheduleRepo "planner-api/modules/schedule/repository"
	scheduleService "planner-api/modules/schedule/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run boots the HTTP server and, when the queue is enabled, the asynq
// worker and scheduler. It blocks until SIGINT/SIGTERM, then shuts
// everything down gracefully.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	eventRepo, notifRepo, err := buildStores(cfg)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())

	mw := middleware.New(cfg)

	var reminders scheduleService.ReminderScheduler
	var asynqClient *asynq.Client
	if cfg.Queue.Enabled {
		asynqClient = queue.NewClient(cfg.Redis)
		reminders = notifService.NewReminderEnqueuer(asynqClient)
	}

	auth.Init(e, cfg)
	schedule.Init(e, cfg, eventRepo, reminders, mw)
	notifModule := notification.Init(e, notifRepo, eventRepo, mw)
	backupModule := backup.Init(e, cfg, eventRepo, mw)

	var worker *asynq.Server
	var scheduler *asynq.Scheduler
	if cfg.Queue.Enabled {
		worker = queue.NewServer(cfg.Redis, cfg.Queue)
		mux := asynq.NewServeMux()
		mux.HandleFunc(constants.TaskTypeEventReminder, notifModule.Worker.HandleEventReminder)
		mux.HandleFunc(constants.TaskTypeBackupExport, backupModule.ExportHandler.HandleExport)

		go func() {
			if err := worker.Run(mux); err != nil {
				logger.Error("Server:QueueWorker", "error", err)
			}
		}()

		if cfg.Backup.Enabled && cfg.Backup.Cron != "" {
			scheduler = queue.NewScheduler(cfg.Redis)
			if _, err := scheduler.Register(cfg.Backup.Cron, asynq.NewTask(constants.TaskTypeBackupExport, nil)); err != nil {
				logger.Error("Server:SchedulerRegister", "error", err)
			} else {
				go func() {
					if err := scheduler.Run(); err != nil {
						logger.Error("Server:Scheduler", "error", err)
					}
				}()
			}
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start", "error", err)
		}
	}()
	logger.Info("Server:Run", "addr", addr, "driver", cfg.Schedule.Driver, "queue", cfg.Queue.Enabled)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server:Shutdown:Begin")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if scheduler != nil {
		scheduler.Shutdown()
	}
	if worker != nil {
		worker.Shutdown()
	}
	if asynqClient != nil {
		if err := asynqClient.Close(); err != nil {
			logger.Warn("Server:Shutdown:QueueClient", "error", err)
		}
	}
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("Server:Shutdown:Done")
	return nil
}

// buildStores selects the event and notification stores per the configured
// driver, wrapping the event store with the Redis cache when enabled.
func buildStores(cfg *config.Config) (scheduleRepo.EventRepository, notifRepository.NotificationRepository, error) {
	var events scheduleRepo.EventRepository
	var notifs notifRepository.NotificationRepository

	switch cfg.Schedule.Driver {
	case constants.StoreDriverMemory:
		events = scheduleRepo.NewMemoryEventRepository()
		notifs = notifRepository.NewMemoryNotificationRepository()
	case constants.StoreDriverPostgres:
		db, err := database.InitDB(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("init database: %w", err)
		}
		events = scheduleRepo.NewPostgresEventRepository(db)
		notifs = notifRepository.NewPostgresNotificationRepository(db)
	default:
		return nil, nil, fmt.Errorf("unknown schedule driver %q", cfg.Schedule.Driver)
	}

	if cfg.Redis.Enabled {
		rdb, err := cache.InitRedis(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("init redis: %w", err)
		}
		ttl := time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second
		events = scheduleRepo.NewCachedEventRepository(events, rdb, ttl)
	}

	return events, notifs, nil
}
