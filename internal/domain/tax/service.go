package tax

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service is the tax calculation engine.
type Service interface {
	// CalculateTax produces the ordered tax line items for a gross amount.
	// The items are not yet persisted and carry no calculation id.
	CalculateTax(ctx context.Context, employmentType string, businessRegistered bool, gross decimal.Decimal) ([]LineItem, error)

	// SaveLineItems assigns the owning calculation id and persists every item.
	SaveLineItems(ctx context.Context, calculationID string, items []LineItem) ([]LineItem, error)

	GetLineItems(ctx context.Context, calculationID string) ([]LineItemResponse, error)
	DeactivateLineItem(ctx context.Context, id string) error

	GetPeriodStatistics(ctx context.Context, period string) (PeriodStatisticsResponse, error)
}
