package tax

import (
	"context"

	"github.com/shopspring/decimal"
)

// LineItemRepository defines data access for tax line items.
type LineItemRepository interface {
	Create(ctx context.Context, item LineItem) (LineItem, error)
	ListByCalculationID(ctx context.Context, calculationID string) ([]LineItem, error)
	ListByType(ctx context.Context, taxType string) ([]LineItem, error)
	Deactivate(ctx context.Context, id string) error
	TotalByPeriod(ctx context.Context, period string) (decimal.Decimal, error)
}
