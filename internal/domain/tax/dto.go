package tax

import "github.com/shopspring/decimal"

type LineItemResponse struct {
	ID            string          `json:"id"`
	CalculationID string          `json:"calculation_id"`
	TaxType       string          `json:"tax_type"`
	TaxName       string          `json:"tax_name"`
	Rate          decimal.Decimal `json:"rate"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Description   *string         `json:"description,omitempty"`
}

// InsuranceEstimate - Statutory insurance contributions estimated on a monthly
// gross. Computed by the statistics path only, never as calculation line items.
type InsuranceEstimate struct {
	NationalPension decimal.Decimal `json:"national_pension"`
	HealthInsurance decimal.Decimal `json:"health_insurance"`
	LongTermCare    decimal.Decimal `json:"long_term_care"`
	Employment      decimal.Decimal `json:"employment_insurance"`
}

type PeriodStatisticsResponse struct {
	Period         string                     `json:"period"`
	TaxByType      map[string]decimal.Decimal `json:"tax_by_type"`
	TotalTaxAmount decimal.Decimal            `json:"total_tax_amount"`
	TotalGross     decimal.Decimal            `json:"total_gross"`
	Insurance      InsuranceEstimate          `json:"insurance"`
}
