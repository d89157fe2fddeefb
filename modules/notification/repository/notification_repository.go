package repository

import (
	"context"
	"sort"
	"sync"

	"planner-api/core/database"
	"planner-api/core/logger"
	"planner-api/core/params"
	"planner-api/modules/notification/entity"
)

// NotificationRepository is the persistence contract for reminders.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	List(ctx context.Context, p params.QueryParams) (*entity.PaginatedNotifications, error)
	// MarkRead returns (false, nil) when the id does not exist.
	MarkRead(ctx context.Context, id string) (bool, error)
}

// ===================== Postgres =====================

type PostgresNotificationRepository struct {
	db database.IDatabase
}

func NewPostgresNotificationRepository(db database.IDatabase) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, event_id, title, message, is_read, created_at)
		VALUES (:id, :event_id, :title, :message, :is_read, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		logger.Error("PostgresNotificationRepository:Create", err)
		return err
	}
	return nil
}

func (r *PostgresNotificationRepository) List(ctx context.Context, p params.QueryParams) (*entity.PaginatedNotifications, error) {
	var totalItems int
	if err := r.db.GetContext(ctx, &totalItems, `SELECT COUNT(*) FROM notifications`); err != nil {
		logger.Error("PostgresNotificationRepository:List:Count", err)
		return nil, err
	}

	query := `
		SELECT id, event_id, title, message, is_read, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	items := []entity.Notification{}
	if err := r.db.SelectContext(ctx, &items, query, p.PageSize, p.Offset()); err != nil {
		logger.Error("PostgresNotificationRepository:List", err)
		return nil, err
	}

	return &entity.PaginatedNotifications{
		Items:      items,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	res, err := r.db.SQLx().ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		logger.Error("PostgresNotificationRepository:MarkRead", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ===================== Memory =====================

// MemoryNotificationRepository backs the embedded store driver and tests.
type MemoryNotificationRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Notification
}

func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{items: make(map[string]entity.Notification)}
}

func (r *MemoryNotificationRepository) Create(_ context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[notification.ID] = *notification
	return nil
}

func (r *MemoryNotificationRepository) List(_ context.Context, p params.QueryParams) (*entity.PaginatedNotifications, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]entity.Notification, 0, len(r.items))
	for _, n := range r.items {
		all = append(all, n)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + p.PageSize
	if end > len(all) {
		end = len(all)
	}

	return &entity.PaginatedNotifications{
		Items:      all[start:end],
		TotalItems: len(all),
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *MemoryNotificationRepository) MarkRead(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.items[id]
	if !ok {
		return false, nil
	}
	n.IsRead = true
	r.items[id] = n
	return true, nil
}
