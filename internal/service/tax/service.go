package tax

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mindgarden/counseling-backend-go/internal/domain/salary"
	"github.com/mindgarden/counseling-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// Flat rates for freelance payouts.
var (
	withholdingRate = decimal.RequireFromString("0.033")
	vatRate         = decimal.RequireFromString("0.10")
)

// Progressive income tax brackets. Each bracket taxes the slice of income
// above the previous upper bound, so the total is the marginal sum.
type bracket struct {
	upTo decimal.Decimal // zero value means no upper bound
	rate decimal.Decimal
}

var incomeBrackets = []bracket{
	{upTo: decimal.NewFromInt(12_000_000), rate: decimal.RequireFromString("0.06")},
	{upTo: decimal.NewFromInt(46_000_000), rate: decimal.RequireFromString("0.15")},
	{upTo: decimal.NewFromInt(88_000_000), rate: decimal.RequireFromString("0.24")},
	{upTo: decimal.NewFromInt(150_000_000), rate: decimal.RequireFromString("0.35")},
	{upTo: decimal.NewFromInt(300_000_000), rate: decimal.RequireFromString("0.38")},
	{upTo: decimal.NewFromInt(500_000_000), rate: decimal.RequireFromString("0.40")},
	{rate: decimal.RequireFromString("0.42")},
}

// Statutory insurance contribution rates, used for estimates only.
var (
	pensionRate      = decimal.RequireFromString("0.045")
	healthRate       = decimal.RequireFromString("0.03545")
	longTermCareRate = decimal.RequireFromString("0.00545")
	employmentRate   = decimal.RequireFromString("0.009")

	// Annual income below this produces zero contributions.
	insuranceAnnualFloor = decimal.NewFromInt(12_000_000)
)

type TaxServiceImpl struct {
	lineItemRepo    tax.LineItemRepository
	calculationRepo salary.CalculationRepository
}

func NewTaxService(
	lineItemRepo tax.LineItemRepository,
	calculationRepo salary.CalculationRepository,
) tax.Service {
	return &TaxServiceImpl{
		lineItemRepo:    lineItemRepo,
		calculationRepo: calculationRepo,
	}
}

// ========== CALCULATION ==========

func (s *TaxServiceImpl) CalculateTax(ctx context.Context, employmentType string, businessRegistered bool, gross decimal.Decimal) ([]tax.LineItem, error) {
	if gross.IsNegative() {
		return nil, tax.ErrInvalidAmount
	}

	if employmentType == string(salary.EmploymentFreelance) {
		return s.freelanceItems(gross, businessRegistered), nil
	}
	return s.regularItems(gross), nil
}

func (s *TaxServiceImpl) freelanceItems(gross decimal.Decimal, businessRegistered bool) []tax.LineItem {
	items := []tax.LineItem{
		{
			TaxType:       tax.TypeWithholding,
			TaxName:       "Withholding Tax",
			Rate:          withholdingRate,
			TaxableAmount: gross,
			TaxAmount:     gross.Mul(withholdingRate).Round(0),
			IsActive:      true,
		},
	}

	if businessRegistered {
		items = append(items, tax.LineItem{
			TaxType:       tax.TypeVAT,
			TaxName:       "Value Added Tax",
			Rate:          vatRate,
			TaxableAmount: gross,
			TaxAmount:     gross.Mul(vatRate).Round(0),
			IsActive:      true,
		})
	}

	return items
}

func (s *TaxServiceImpl) regularItems(gross decimal.Decimal) []tax.LineItem {
	total := decimal.Zero
	lower := decimal.Zero
	for _, b := range incomeBrackets {
		if gross.LessThanOrEqual(lower) {
			break
		}
		upper := gross
		if !b.upTo.IsZero() && b.upTo.LessThan(gross) {
			upper = b.upTo
		}
		total = total.Add(upper.Sub(lower).Mul(b.rate))
		lower = upper
	}
	total = total.Round(0)

	// Effective rate is recorded on the line item since the bracket rate
	// is not a single number.
	effectiveRate := decimal.Zero
	if gross.IsPositive() {
		effectiveRate = total.DivRound(gross, 4)
	}

	return []tax.LineItem{
		{
			TaxType:       tax.TypeIncome,
			TaxName:       "Income Tax",
			Rate:          effectiveRate,
			TaxableAmount: gross,
			TaxAmount:     total,
			IsActive:      true,
		},
	}
}

// ========== PERSISTENCE ==========

func (s *TaxServiceImpl) SaveLineItems(ctx context.Context, calculationID string, items []tax.LineItem) ([]tax.LineItem, error) {
	saved := make([]tax.LineItem, 0, len(items))
	for _, item := range items {
		item.CalculationID = calculationID
		created, err := s.lineItemRepo.Create(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("failed to save tax line item: %w", err)
		}
		saved = append(saved, created)
	}
	return saved, nil
}

func (s *TaxServiceImpl) GetLineItems(ctx context.Context, calculationID string) ([]tax.LineItemResponse, error) {
	items, err := s.lineItemRepo.ListByCalculationID(ctx, calculationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tax line items: %w", err)
	}

	responses := make([]tax.LineItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toLineItemResponse(item))
	}
	return responses, nil
}

func (s *TaxServiceImpl) DeactivateLineItem(ctx context.Context, id string) error {
	if err := s.lineItemRepo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate tax line item: %w", err)
	}
	return nil
}

// ========== STATISTICS ==========

func (s *TaxServiceImpl) GetPeriodStatistics(ctx context.Context, period string) (tax.PeriodStatisticsResponse, error) {
	calculations, err := s.calculationRepo.ListByPeriod(ctx, period)
	if err != nil {
		return tax.PeriodStatisticsResponse{}, fmt.Errorf("failed to list calculations for period: %w", err)
	}

	byType := make(map[string]decimal.Decimal)
	totalTax := decimal.Zero
	totalGross := decimal.Zero

	for _, calc := range calculations {
		totalGross = totalGross.Add(calc.GrossAmount)

		items, err := s.lineItemRepo.ListByCalculationID(ctx, calc.ID)
		if err != nil {
			slog.Warn("Skipping calculation in period statistics", "calculation_id", calc.ID, "error", err)
			continue
		}
		for _, item := range items {
			if !item.IsActive {
				continue
			}
			byType[item.TaxType] = byType[item.TaxType].Add(item.TaxAmount)
			totalTax = totalTax.Add(item.TaxAmount)
		}
	}

	return tax.PeriodStatisticsResponse{
		Period:         period,
		TaxByType:      byType,
		TotalTaxAmount: totalTax,
		TotalGross:     totalGross,
		Insurance:      estimateInsurance(totalGross),
	}, nil
}

// estimateInsurance computes statutory contributions on a monthly gross.
// Incomes below the annual floor contribute nothing.
func estimateInsurance(monthlyGross decimal.Decimal) tax.InsuranceEstimate {
	annual := monthlyGross.Mul(decimal.NewFromInt(12))
	if annual.LessThan(insuranceAnnualFloor) {
		return tax.InsuranceEstimate{
			NationalPension: decimal.Zero,
			HealthInsurance: decimal.Zero,
			LongTermCare:    decimal.Zero,
			Employment:      decimal.Zero,
		}
	}

	return tax.InsuranceEstimate{
		NationalPension: monthlyGross.Mul(pensionRate).Round(0),
		HealthInsurance: monthlyGross.Mul(healthRate).Round(0),
		LongTermCare:    monthlyGross.Mul(longTermCareRate).Round(0),
		Employment:      monthlyGross.Mul(employmentRate).Round(0),
	}
}

func toLineItemResponse(item tax.LineItem) tax.LineItemResponse {
	return tax.LineItemResponse{
		ID:            item.ID,
		CalculationID: item.CalculationID,
		TaxType:       item.TaxType,
		TaxName:       item.TaxName,
		Rate:          item.Rate,
		TaxableAmount: item.TaxableAmount,
		TaxAmount:     item.TaxAmount,
		Description:   item.Description,
	}
}
