package tax

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax type codes
const (
	TypeWithholding = "WITHHOLDING_TAX"
	TypeVAT         = "VAT"
	TypeIncome      = "INCOME_TAX"
)

// LineItem - One tax or deduction line belonging to a salary calculation.
// Multiple line items compose the total tax; net pay = gross - sum(amounts).
type LineItem struct {
	ID            string
	CalculationID string
	TaxType       string
	TaxName       string
	Rate          decimal.Decimal // fraction, e.g. 0.033
	TaxableAmount decimal.Decimal
	TaxAmount     decimal.Decimal
	Description   *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
