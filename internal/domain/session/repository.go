package session

import (
	"context"
	"time"
)

// Repository defines read access to the schedule source. The salary engine
// consumes completed sessions; booking and editing live elsewhere.
// The from and to bounds are calendar days, both inclusive.
type Repository interface {
	ListCompleted(ctx context.Context, consultantID string, from, to time.Time) ([]Session, error)
}
