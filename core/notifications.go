package core

import (
	"context"
	"log/slog"
)

type NotificationService struct {
	log *slog.Logger
	db  NotificationDB
}

func NewNotificationService(log *slog.Logger, db NotificationDB) *NotificationService {
	return &NotificationService{
		log: log,
		db:  db,
	}
}

func (n *NotificationService) Create(ctx context.Context, notification Notification) (Notification, error) {
	created, err := n.db.Add(ctx, notification)
	if err != nil {
		n.log.Error("failed to create notification", "error", err)
		return Notification{}, err
	}
	return created, nil
}

func (n *NotificationService) List(ctx context.Context, filter NotificationFilter, opts ListOptions) ([]Notification, error) {
	notifications, err := n.db.List(ctx, filter, opts)
	if err != nil {
		n.log.Error("failed to list notifications", "error", err)
		return nil, err
	}
	return notifications, nil
}

func (n *NotificationService) Close(ctx context.Context, id int) (Notification, error) {
	notification, err := n.db.SetClosed(ctx, id)
	if err != nil {
		n.log.Error("failed to close notification", "id", id, "error", err)
		return Notification{}, err
	}
	return notification, nil
}
