package models

import "time"

// NotificationKind distinguishes success toasts from failure toasts.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient message for the presentation layer.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	AutoClose int              `json:"auto_close_ms"`
	CreatedAt time.Time        `json:"created_at"`
}
