package usecase

import (
	"context"

	"gravity/internal/domain/entity"
)

// LogNotifier fans out the side effects of a reconciled daily log:
// teammate push notifications and the pub/sub log event. Both are
// fire-and-forget; failures are logged and never propagate to the
// workflow that triggered them.
type LogNotifier interface {
	NotifyLogReconciled(ctx context.Context, log *entity.DailyLog, source entity.LogSource)
}
