package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"project_factory/core"
)

type NotificationDB struct {
	db *DB
}

func NewNotificationDB(db *DB) *NotificationDB {
	return &NotificationDB{db}
}

type notificationRow struct {
	ID           int       `db:"id"`
	Subject      *string   `db:"subject"`
	SenderID     uuid.UUID `db:"sender_id"`
	ReceiverID   uuid.UUID `db:"receiver_id"`
	Message      *string   `db:"message"`
	CreationTime time.Time `db:"creation_time"`
	Closed       bool      `db:"closed"`
}

func (r notificationRow) toCore() core.Notification {
	return core.Notification{
		ID:           r.ID,
		Subject:      r.Subject,
		SenderID:     r.SenderID,
		ReceiverID:   r.ReceiverID,
		Message:      r.Message,
		CreationTime: r.CreationTime,
		Closed:       r.Closed,
	}
}

func (n *NotificationDB) Add(ctx context.Context, notification core.Notification) (core.Notification, error) {
	var inserted notificationRow
	err := n.db.conn.GetContext(
		ctx,
		&inserted,
		`INSERT INTO notifications (subject, sender_id, receiver_id, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, subject, sender_id, receiver_id, message, creation_time, closed`,
		notification.Subject, notification.SenderID, notification.ReceiverID, notification.Message,
	)
	if err != nil {
		return core.Notification{}, translateError(err)
	}
	return inserted.toCore(), nil
}

func (n *NotificationDB) List(ctx context.Context, filter core.NotificationFilter, opts core.ListOptions) ([]core.Notification, error) {
	query, args := listQuery{table: "notifications", orderBy: "id", opts: opts}.
		withFilter("subject", filter.Subject).
		build()

	var rows []notificationRow
	if err := n.db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	notifications := make([]core.Notification, len(rows))
	for i, r := range rows {
		notifications[i] = r.toCore()
	}
	return notifications, nil
}

func (n *NotificationDB) SetClosed(ctx context.Context, id int) (core.Notification, error) {
	var row notificationRow
	err := n.db.conn.GetContext(
		ctx,
		&row,
		`UPDATE notifications SET closed = TRUE WHERE id = $1
		 RETURNING id, subject, sender_id, receiver_id, message, creation_time, closed`,
		id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Notification{}, core.ErrNotFound
		}
		return core.Notification{}, err
	}
	return row.toCore(), nil
}
