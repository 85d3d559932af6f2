package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"project_factory/core"
)

type Notification struct {
	ID           int       `json:"id"`
	Subject      *string   `json:"subject"`
	SenderID     uuid.UUID `json:"sender_id"`
	ReceiverID   uuid.UUID `json:"receiver_id"`
	Message      *string   `json:"message"`
	CreationTime time.Time `json:"creation_time"`
	Closed       bool      `json:"closed"`
}

func toNotification(n core.Notification) Notification {
	return Notification{
		ID:           n.ID,
		Subject:      n.Subject,
		SenderID:     n.SenderID,
		ReceiverID:   n.ReceiverID,
		Message:      n.Message,
		CreationTime: n.CreationTime,
		Closed:       n.Closed,
	}
}

type createNotificationRequest struct {
	Subject    *string   `json:"subject"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Message    *string   `json:"message"`
}

type notificationResponse struct {
	Status       string       `json:"status"`
	Notification Notification `json:"notification"`
}

type notificationListResponse struct {
	Status        string         `json:"status"`
	Result        int            `json:"result"`
	Notifications []Notification `json:"notifications"`
}

func NewCreateNotificationHandler(log *slog.Logger, notifications core.NotificationPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("decode body problem", "error", err)
			writeError(log, w, http.StatusBadRequest, "bad request body")
			return
		}

		notification, err := notifications.Create(r.Context(), core.Notification{
			Subject:    req.Subject,
			SenderID:   req.SenderID,
			ReceiverID: req.ReceiverID,
			Message:    req.Message,
		})
		if err != nil {
			if errors.Is(err, core.ErrDependencyNotFound) {
				writeError(log, w, http.StatusNotFound, "sender or receiver not found")
				return
			}
			log.Error("create notification problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to create notification")
			return
		}

		writeJSON(log, w, http.StatusOK, notificationResponse{
			Status:       statusSuccess,
			Notification: toNotification(notification),
		})
	}
}

func NewListNotificationsHandler(log *slog.Logger, notifications core.NotificationPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := listOptions(r).Normalize()
		filter := core.NotificationFilter{Subject: r.URL.Query().Get("subject")}

		found, err := notifications.List(r.Context(), filter, opts)
		if err != nil {
			log.Error("list notifications problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to list notifications")
			return
		}

		resp := notificationListResponse{
			Status:        statusSuccess,
			Result:        len(found),
			Notifications: make([]Notification, len(found)),
		}
		for i, n := range found {
			resp.Notifications[i] = toNotification(n)
		}
		writeJSON(log, w, http.StatusOK, resp)
	}
}

func NewCloseNotificationHandler(log *slog.Logger, notifications core.NotificationPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			writeError(log, w, http.StatusBadRequest, "invalid notification id")
			return
		}

		notification, err := notifications.Close(r.Context(), id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				writeError(log, w, http.StatusNotFound, "notification not found")
				return
			}
			log.Error("close notification problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to close notification")
			return
		}

		writeJSON(log, w, http.StatusOK, notificationResponse{
			Status:       statusSuccess,
			Notification: toNotification(notification),
		})
	}
}
