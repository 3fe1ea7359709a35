package consultant

import "context"

// Repository defines read access to consultant records. Account management
// lives in the user administration system.
type Repository interface {
	GetByID(ctx context.Context, id string) (Consultant, error)
}
