package service

import (
	"context"
	"fmt"
	"time"

	"planner-api/core/errors"
	"planner-api/core/params"
	"planner-api/core/utils"
	"planner-api/modules/notification/entity"
	"planner-api/modules/notification/repository"
)

// NotificationServiceInterface defines the service contract
type NotificationServiceInterface interface {
	List(ctx context.Context, p params.QueryParams) (*entity.PaginatedNotifications, *errors.AppError)
	MarkRead(ctx context.Context, id string) *errors.AppError
	// Deliver records a reminder for an event. Called by the queue worker.
	Deliver(ctx context.Context, eventID, title, message string) *errors.AppError
}

type NotificationService struct {
	repo repository.NotificationRepository
	now  func() time.Time
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo, now: time.Now}
}

func (s *NotificationService) List(ctx context.Context, p params.QueryParams) (*entity.PaginatedNotifications, *errors.AppError) {
	page, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list notifications", err)
	}
	return page, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) *errors.AppError {
	ok, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark notification read", err)
	}
	if !ok {
		return errors.NewAppError(errors.ErrNotFound, "Notification not found", nil)
	}
	return nil
}

func (s *NotificationService) Deliver(ctx context.Context, eventID, title, message string) *errors.AppError {
	n := &entity.Notification{
		ID:        utils.GenerateID(),
		EventID:   eventID,
		Title:     title,
		Message:   message,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, fmt.Sprintf("Failed to store notification for event %s", eventID), err)
	}
	return nil
}
