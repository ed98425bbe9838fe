package controller

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

type NotificationKind string

const (
	EpicCreated NotificationKind = "epic.created"
	EpicUpdated NotificationKind = "epic.updated"
	PathCreated NotificationKind = "path.created"
)

// Notification marks a point where a backend call would be made. Nothing
// waits on it.
type Notification struct {
	RequestID string           `json:"requestId"`
	Kind      NotificationKind `json:"kind"`
	Epic      *model.Epic      `json:"epic,omitempty"`
	Path      *model.Path      `json:"path,omitempty"`
}

type Notifier interface {
	Notify(n Notification)
}

type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}

// LogNotifier writes every notification to a slog logger at Info level.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Notify(n Notification) {
	if l.Logger == nil {
		return
	}
	attrs := []any{"kind", string(n.Kind), "request_id", n.RequestID}
	if n.Epic != nil {
		attrs = append(attrs, "epic_id", n.Epic.ID)
	}
	if n.Path != nil {
		attrs = append(attrs, "path_id", n.Path.ID, "from", n.Path.From, "to", n.Path.To)
	}
	l.Logger.Info("notify", attrs...)
}

// RecordingNotifier keeps every notification in memory.
type RecordingNotifier struct {
	Got []Notification
}

func (r *RecordingNotifier) Notify(n Notification) { r.Got = append(r.Got, n) }

func newNotification(kind NotificationKind) Notification {
	return Notification{RequestID: uuid.NewString(), Kind: kind}
}
