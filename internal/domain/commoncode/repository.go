package commoncode

import "context"

// Repository defines read access to the externally managed code table.
type Repository interface {
	GetByGroupAndValue(ctx context.Context, group, value string) (Code, error)
	ListByGroup(ctx context.Context, group string) ([]Code, error)
}
