// Package notify delivers transient save/update/delete notifications to
// one or more sinks.
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
)

// AutoClose is how long the presentation layer keeps a toast on screen.
const AutoClose = 3 * time.Second

// Notifier delivers a notification.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// New builds a notification with a fresh id.
func New(kind models.NotificationKind, message string) models.Notification {
	return models.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		AutoClose: int(AutoClose / time.Millisecond),
		CreatedAt: time.Now().UTC(),
	}
}

// Multi fans a notification out to every sink and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n models.Notification) error {
	var errs []error
	for _, sink := range m {
		if err := sink.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogNotifier writes notifications to a logrus logger.
type LogNotifier struct {
	Logger logrus.FieldLogger
}

func (l LogNotifier) Notify(_ context.Context, n models.Notification) error {
	entry := l.Logger.WithFields(logrus.Fields{
		"notification_id": n.ID,
		"kind":            n.Kind,
	})
	if n.Kind == models.NotificationError {
		entry.Warn(n.Message)
	} else {
		entry.Info(n.Message)
	}
	return nil
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (r *Recorder) Notify(_ context.Context, n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

// Messages returns the recorded messages in delivery order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.sent))
	for i, n := range r.sent {
		out[i] = n.Message
	}
	return out
}

// Recent returns the recorded notifications, newest first.
func (r *Recorder) Recent(context.Context) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Notification, len(r.sent))
	for i, n := range r.sent {
		out[len(r.sent)-1-i] = n
	}
	return out, nil
}
