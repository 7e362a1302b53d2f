package service

import (
	"context"
	"time"
)

// EvidenceStore uploads evidence photos and returns their public URL.
// The storage backend is opaque to the core.
type EvidenceStore interface {
	UploadEvidence(ctx context.Context, filename string, data []byte) (string, error)
}

// NotificationService delivers push notifications. Failures must never
// abort the workflow that triggered the notification.
type NotificationService interface {
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}

// LogEvent is published after a daily log changes, for downstream
// consumers such as feed refreshers.
type LogEvent struct {
	LogID    string `json:"log_id"`
	UserID   string `json:"user_id"`
	Date     string `json:"date"`
	Verified bool   `json:"verified"`
	Source   string `json:"source"`
}

// EventPublisher emits log events. A no-op implementation is used when
// publishing is not configured.
type EventPublisher interface {
	PublishLogEvent(ctx context.Context, event *LogEvent) error
	Close() error
}

// PhotoTimestamper extracts the capture time embedded in a photo's
// metadata. Implementations fall back to the supplied file modification
// time when no metadata is present.
type PhotoTimestamper interface {
	CaptureTime(data []byte, fallbackModTime time.Time) (time.Time, error)
}
