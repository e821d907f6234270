package interfaces

import (
	"context"

	"offertehub/internal/domain/entities"
)

// IActivityLogRepository appends audit entries. Best-effort from the caller's
// perspective: a failed append is logged and swallowed.
type IActivityLogRepository interface {
	Append(ctx context.Context, entry entities.ActivityLogEntry) error
}
