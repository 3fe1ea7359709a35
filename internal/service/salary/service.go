package salary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mindgarden/counseling-backend-go/internal/domain/commoncode"
	"github.com/mindgarden/counseling-backend-go/internal/domain/consultant"
	"github.com/mindgarden/counseling-backend-go/internal/domain/salary"
	"github.com/mindgarden/counseling-backend-go/internal/domain/session"
	"github.com/mindgarden/counseling-backend-go/internal/domain/tax"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/database"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// defaultSessionRate applies when neither the profile nor the grade rate
// table yields a per-session rate.
var defaultSessionRate = decimal.NewFromInt(30_000)

// Per-session bonuses applied when the option type code group is empty.
var defaultOptionAmounts = map[string]decimal.Decimal{
	"INITIAL_CONSULTATION": decimal.NewFromInt(5_000),
	"FAMILY_CONSULTATION":  decimal.NewFromInt(3_000),
}

// expenseEmitter mirrors finished calculations into the accounting ledger.
type expenseEmitter interface {
	EmitSalaryExpense(ctx context.Context, calc salary.Calculation, profile salary.Profile)
}

type SalaryServiceImpl struct {
	tx             database.TxRunner
	profileRepo    salary.ProfileRepository
	optionRepo     salary.OptionRepository
	calcRepo       salary.CalculationRepository
	sessionRepo    session.Repository
	codeRepo       commoncode.Repository
	consultantRepo consultant.Repository
	taxService     tax.Service
	payPeriods     *PayPeriodResolver
	emitter        expenseEmitter
}

func NewSalaryService(
	tx database.TxRunner,
	profileRepo salary.ProfileRepository,
	optionRepo salary.OptionRepository,
	calcRepo salary.CalculationRepository,
	sessionRepo session.Repository,
	codeRepo commoncode.Repository,
	consultantRepo consultant.Repository,
	taxService tax.Service,
	emitter expenseEmitter,
) salary.Service {
	return &SalaryServiceImpl{
		tx:             tx,
		profileRepo:    profileRepo,
		optionRepo:     optionRepo,
		calcRepo:       calcRepo,
		sessionRepo:    sessionRepo,
		codeRepo:       codeRepo,
		consultantRepo: consultantRepo,
		taxService:     taxService,
		payPeriods:     NewPayPeriodResolver(codeRepo),
		emitter:        emitter,
	}
}

// ========== PROFILES ==========

func (s *SalaryServiceImpl) CreateProfile(ctx context.Context, req salary.CreateProfileRequest) (salary.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.ProfileResponse{}, err
	}

	profile := salary.Profile{
		ConsultantID:               req.ConsultantID,
		EmploymentType:             salary.EmploymentType(req.EmploymentType),
		BaseRate:                   req.BaseRate,
		BusinessRegistrationNumber: req.BusinessRegistrationNumber,
		BusinessName:               req.BusinessName,
		ContractTerms:              req.ContractTerms,
		IsActive:                   true,
	}
	if req.IsBusinessRegistered != nil {
		profile.IsBusinessRegistered = *req.IsBusinessRegistered
	}

	var created salary.Profile
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		// A consultant holds at most one active profile.
		if _, err := s.profileRepo.Deactivate(ctx, req.ConsultantID); err != nil {
			return fmt.Errorf("failed to deactivate prior profile: %w", err)
		}

		var err error
		created, err = s.profileRepo.Create(ctx, profile)
		if err != nil {
			return fmt.Errorf("failed to create compensation profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return salary.ProfileResponse{}, err
	}

	return toProfileResponse(created), nil
}

func (s *SalaryServiceImpl) GetActiveProfile(ctx context.Context, consultantID string) (salary.ProfileResponse, error) {
	profile, err := s.profileRepo.GetActiveByConsultantID(ctx, consultantID)
	if err != nil {
		return salary.ProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

func (s *SalaryServiceImpl) DeactivateProfile(ctx context.Context, consultantID string) (bool, error) {
	deactivated, err := s.profileRepo.Deactivate(ctx, consultantID)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate profile: %w", err)
	}
	return deactivated, nil
}

func (s *SalaryServiceImpl) ListActiveProfiles(ctx context.Context) ([]salary.ProfileResponse, error) {
	profiles, err := s.profileRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active profiles: %w", err)
	}

	responses := make([]salary.ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, toProfileResponse(profile))
	}
	return responses, nil
}

// ========== OPTIONS ==========

func (s *SalaryServiceImpl) AddOption(ctx context.Context, req salary.AddOptionRequest) (salary.OptionResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.OptionResponse{}, err
	}

	exists, err := s.profileRepo.ExistsByID(ctx, req.ProfileID)
	if err != nil {
		return salary.OptionResponse{}, fmt.Errorf("failed to check profile: %w", err)
	}
	if !exists {
		return salary.OptionResponse{}, salary.ErrProfileNotFound
	}

	created, err := s.optionRepo.Create(ctx, salary.Option{
		ProfileID:   req.ProfileID,
		OptionType:  req.OptionType,
		Amount:      req.Amount,
		Description: req.Description,
		IsActive:    true,
	})
	if err != nil {
		return salary.OptionResponse{}, fmt.Errorf("failed to create option: %w", err)
	}

	return toOptionResponse(created), nil
}

func (s *SalaryServiceImpl) ListOptions(ctx context.Context, profileID string) ([]salary.OptionResponse, error) {
	options, err := s.optionRepo.ListActiveByProfileID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list options: %w", err)
	}

	responses := make([]salary.OptionResponse, 0, len(options))
	for _, option := range options {
		responses = append(responses, toOptionResponse(option))
	}
	return responses, nil
}

func (s *SalaryServiceImpl) UpdateOption(ctx context.Context, req salary.UpdateOptionRequest) (salary.OptionResponse, error) {
	option, err := s.optionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return salary.OptionResponse{}, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return salary.OptionResponse{}, salary.ErrInvalidBaseSalary
		}
		option.Amount = *req.Amount
	}
	if req.Description != nil {
		option.Description = req.Description
	}

	updated, err := s.optionRepo.Update(ctx, option)
	if err != nil {
		return salary.OptionResponse{}, fmt.Errorf("failed to update option: %w", err)
	}
	return toOptionResponse(updated), nil
}

// RemoveOption soft-deactivates; option rows are never hard-deleted.
func (s *SalaryServiceImpl) RemoveOption(ctx context.Context, id string) error {
	return s.optionRepo.Deactivate(ctx, id)
}

// ========== CALCULATION ==========

func (s *SalaryServiceImpl) CalculateFreelanceSalary(ctx context.Context, req salary.CalculateFreelanceRequest) (salary.CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.CalculationResponse{}, err
	}

	payPeriod, err := s.payPeriods.Resolve(ctx, req.Period, req.PayDayCode)
	if err != nil {
		return salary.CalculationResponse{}, err
	}

	profile, err := s.profileRepo.GetActiveByConsultantID(ctx, req.ConsultantID)
	if err != nil {
		return salary.CalculationResponse{}, err
	}
	if !profile.IsFreelance() {
		return salary.CalculationResponse{}, salary.ErrProfileTypeMismatch
	}

	sessions, err := s.sessionRepo.ListCompleted(ctx, req.ConsultantID, payPeriod.WorkStart, payPeriod.WorkEnd)
	if err != nil {
		return salary.CalculationResponse{}, fmt.Errorf("failed to list completed sessions: %w", err)
	}

	rate := s.resolveSessionRate(ctx, profile)
	baseAmount := rate.Mul(decimal.NewFromInt(int64(len(sessions))))
	optionAmount := s.sessionOptionAmount(ctx, sessions)
	grossAmount := baseAmount.Add(optionAmount)

	calc := salary.Calculation{
		ConsultantID:  req.ConsultantID,
		ProfileID:     profile.ID,
		Period:        req.Period,
		WorkStartDate: payPeriod.WorkStart,
		WorkEndDate:   payPeriod.WorkEnd,
		PayDate:       payPeriod.PayDate,
		BaseAmount:    baseAmount,
		OptionAmount:  optionAmount,
		GrossAmount:   grossAmount,
		SessionCount:  len(sessions),
		TotalHours:    totalHours(sessions),
		Status:        salary.CalculationStatusCalculated,
	}

	saved, err := s.persistCalculation(ctx, calc, profile, rate)
	if err != nil {
		return salary.CalculationResponse{}, err
	}

	s.emitter.EmitSalaryExpense(ctx, saved, profile)

	return toCalculationResponse(saved), nil
}

func (s *SalaryServiceImpl) CalculateRegularSalary(ctx context.Context, req salary.CalculateRegularRequest) (salary.CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.CalculationResponse{}, err
	}
	if req.BaseSalary.IsNegative() {
		return salary.CalculationResponse{}, salary.ErrInvalidBaseSalary
	}

	payPeriod, err := s.payPeriods.Resolve(ctx, req.Period, req.PayDayCode)
	if err != nil {
		return salary.CalculationResponse{}, err
	}

	profile, err := s.profileRepo.GetActiveByConsultantID(ctx, req.ConsultantID)
	if err != nil {
		return salary.CalculationResponse{}, err
	}
	if !profile.IsRegular() {
		return salary.CalculationResponse{}, salary.ErrProfileTypeMismatch
	}

	sessions, err := s.sessionRepo.ListCompleted(ctx, req.ConsultantID, payPeriod.WorkStart, payPeriod.WorkEnd)
	if err != nil {
		return salary.CalculationResponse{}, fmt.Errorf("failed to list completed sessions: %w", err)
	}

	calc := salary.Calculation{
		ConsultantID:  req.ConsultantID,
		ProfileID:     profile.ID,
		Period:        req.Period,
		WorkStartDate: payPeriod.WorkStart,
		WorkEndDate:   payPeriod.WorkEnd,
		PayDate:       payPeriod.PayDate,
		BaseAmount:    req.BaseSalary,
		OptionAmount:  decimal.Zero,
		GrossAmount:   req.BaseSalary,
		SessionCount:  len(sessions),
		TotalHours:    totalHours(sessions),
		Status:        salary.CalculationStatusCalculated,
	}

	saved, err := s.persistCalculation(ctx, calc, profile, req.BaseSalary)
	if err != nil {
		return salary.CalculationResponse{}, err
	}

	s.emitter.EmitSalaryExpense(ctx, saved, profile)

	return toCalculationResponse(saved), nil
}

// persistCalculation replaces any prior calculation for the same consultant
// and period, saves the new record with its tax line items, and returns the
// final state. The whole replacement is a single transaction.
func (s *SalaryServiceImpl) persistCalculation(ctx context.Context, calc salary.Calculation, profile salary.Profile, appliedRate decimal.Decimal) (salary.Calculation, error) {
	var saved salary.Calculation

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.calcRepo.FindByConsultantAndPeriod(ctx, calc.ConsultantID, calc.Period)
		if err != nil {
			return fmt.Errorf("failed to find prior calculations: %w", err)
		}
		for _, prior := range existing {
			if err := s.calcRepo.Delete(ctx, prior.ID); err != nil {
				return fmt.Errorf("failed to delete prior calculation: %w", err)
			}
		}

		created, err := s.calcRepo.Create(ctx, calc)
		if err != nil {
			return fmt.Errorf("failed to create calculation: %w", err)
		}

		taxItems, err := s.taxService.CalculateTax(ctx, string(profile.EmploymentType), profile.IsBusinessRegistered, created.GrossAmount)
		if err != nil {
			return fmt.Errorf("failed to calculate tax: %w", err)
		}
		savedItems, err := s.taxService.SaveLineItems(ctx, created.ID, taxItems)
		if err != nil {
			return err
		}

		taxTotal := decimal.Zero
		for _, item := range savedItems {
			taxTotal = taxTotal.Add(item.TaxAmount)
		}

		created.TaxAmount = taxTotal
		created.Details = renderDetails(created, appliedRate, savedItems)

		saved, err = s.calcRepo.Update(ctx, created)
		if err != nil {
			return fmt.Errorf("failed to update calculation: %w", err)
		}
		return nil
	})
	if err != nil {
		return salary.Calculation{}, err
	}

	return saved, nil
}

// resolveSessionRate picks the per-session rate: profile override, then the
// grade rate table, then the default.
func (s *SalaryServiceImpl) resolveSessionRate(ctx context.Context, profile salary.Profile) decimal.Decimal {
	if profile.BaseRate != nil && profile.BaseRate.IsPositive() {
		return *profile.BaseRate
	}

	grade := consultant.DefaultGrade
	c, err := s.consultantRepo.GetByID(ctx, profile.ConsultantID)
	if err == nil && c.Grade != "" {
		grade = c.Grade
	} else if err != nil && !errors.Is(err, consultant.ErrConsultantNotFound) {
		slog.Warn("Consultant lookup failed, using default grade",
			"consultant_id", profile.ConsultantID, "grade", grade, "error", err)
	}

	rateCode := strings.TrimPrefix(grade, "CONSULTANT_") + "_RATE"
	code, err := s.codeRepo.GetByGroupAndValue(ctx, commoncode.GroupFreelanceRate, rateCode)
	if err != nil {
		slog.Warn("Grade rate code not found, using default rate",
			"consultant_id", profile.ConsultantID, "rate_code", rateCode, "default", defaultSessionRate)
		return defaultSessionRate
	}

	rate, ok := code.ExtraDecimal("rate")
	if !ok {
		slog.Warn("Grade rate code has no usable rate, using default",
			"consultant_id", profile.ConsultantID, "rate_code", rateCode, "default", defaultSessionRate)
		return defaultSessionRate
	}
	return rate
}

// sessionOptionAmount sums per-session bonuses keyed by consultation type.
func (s *SalaryServiceImpl) sessionOptionAmount(ctx context.Context, sessions []session.Session) decimal.Decimal {
	amounts := defaultOptionAmounts

	codes, err := s.codeRepo.ListByGroup(ctx, commoncode.GroupOptionType)
	if err != nil {
		slog.Warn("Option type code group lookup failed, using defaults", "error", err)
	} else if len(codes) > 0 {
		amounts = make(map[string]decimal.Decimal, len(codes))
		for _, code := range codes {
			if !code.IsActive {
				continue
			}
			if amount, ok := code.ExtraDecimal("baseAmount"); ok {
				amounts[code.CodeValue] = amount
			}
		}
	}

	total := decimal.Zero
	for _, sess := range sessions {
		if amount, ok := amounts[sess.ConsultationType]; ok {
			total = total.Add(amount)
		}
	}
	return total
}

func totalHours(sessions []session.Session) decimal.Decimal {
	minutes := 0
	for _, sess := range sessions {
		minutes += sess.DurationMinutes
	}
	return decimal.NewFromInt(int64(minutes)).DivRound(decimal.NewFromInt(60), 2)
}

type detailTaxLine struct {
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

type calculationDetails struct {
	SessionCount int             `json:"session_count"`
	AppliedRate  decimal.Decimal `json:"applied_rate"`
	BaseAmount   decimal.Decimal `json:"base_amount"`
	OptionAmount decimal.Decimal `json:"option_amount"`
	GrossAmount  decimal.Decimal `json:"gross_amount"`
	TaxLines     []detailTaxLine `json:"tax_lines"`
	TaxTotal     decimal.Decimal `json:"tax_total"`
	NetAmount    decimal.Decimal `json:"net_amount"`
}

func renderDetails(calc salary.Calculation, appliedRate decimal.Decimal, items []tax.LineItem) string {
	details := calculationDetails{
		SessionCount: calc.SessionCount,
		AppliedRate:  appliedRate,
		BaseAmount:   calc.BaseAmount,
		OptionAmount: calc.OptionAmount,
		GrossAmount:  calc.GrossAmount,
		TaxLines:     make([]detailTaxLine, 0, len(items)),
	}

	taxTotal := decimal.Zero
	for _, item := range items {
		details.TaxLines = append(details.TaxLines, detailTaxLine{
			Name:   item.TaxName,
			Rate:   item.Rate,
			Amount: item.TaxAmount,
		})
		taxTotal = taxTotal.Add(item.TaxAmount)
	}
	details.TaxTotal = taxTotal
	details.NetAmount = calc.GrossAmount.Sub(taxTotal)

	encoded, err := json.Marshal(details)
	if err != nil {
		slog.Warn("Failed to render calculation details", "error", err)
		return ""
	}
	return string(encoded)
}

// CleanupDuplicateCalculations removes zero-gross records wherever a
// consultant holds more than one calculation for the same period. Returns the
// number of deleted records.
func (s *SalaryServiceImpl) CleanupDuplicateCalculations(ctx context.Context) (int, error) {
	consultantIDs, err := s.calcRepo.DistinctConsultantIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list consultants with calculations: %w", err)
	}

	deleted := 0
	for _, consultantID := range consultantIDs {
		calcs, err := s.calcRepo.ListByConsultant(ctx, consultantID)
		if err != nil {
			return deleted, fmt.Errorf("failed to list calculations: %w", err)
		}

		byPeriod := make(map[string][]salary.Calculation)
		for _, calc := range calcs {
			byPeriod[calc.Period] = append(byPeriod[calc.Period], calc)
		}

		for period, group := range byPeriod {
			if len(group) < 2 {
				continue
			}
			for _, calc := range group {
				if !calc.GrossAmount.IsZero() {
					continue
				}
				if err := s.calcRepo.Delete(ctx, calc.ID); err != nil {
					return deleted, fmt.Errorf("failed to delete duplicate calculation: %w", err)
				}
				deleted++
				slog.Info("Removed zero-gross duplicate calculation",
					"calculation_id", calc.ID, "consultant_id", consultantID, "period", period)
			}
		}
	}

	return deleted, nil
}

// ========== LIFECYCLE ==========

func (s *SalaryServiceImpl) ApproveCalculation(ctx context.Context, id string) error {
	calc, err := s.calcRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if calc.Status != salary.CalculationStatusCalculated {
		return salary.ErrInvalidStatusChange
	}

	calc.Status = salary.CalculationStatusApproved
	if _, err := s.calcRepo.Update(ctx, calc); err != nil {
		return fmt.Errorf("failed to approve calculation: %w", err)
	}
	return nil
}

func (s *SalaryServiceImpl) MarkCalculationPaid(ctx context.Context, id string) error {
	calc, err := s.calcRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !calc.IsPayable() {
		return salary.ErrCalculationNotPayable
	}

	calc.Status = salary.CalculationStatusPaid
	if _, err := s.calcRepo.Update(ctx, calc); err != nil {
		return fmt.Errorf("failed to mark calculation paid: %w", err)
	}
	return nil
}

func (s *SalaryServiceImpl) GetCalculations(ctx context.Context, consultantID string) ([]salary.CalculationResponse, error) {
	calcs, err := s.calcRepo.ListByConsultant(ctx, consultantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	return toCalculationResponses(calcs), nil
}

func (s *SalaryServiceImpl) GetCalculationByPeriod(ctx context.Context, consultantID, period string) (salary.CalculationResponse, error) {
	calcs, err := s.calcRepo.FindByConsultantAndPeriod(ctx, consultantID, period)
	if err != nil {
		return salary.CalculationResponse{}, fmt.Errorf("failed to find calculation: %w", err)
	}
	if len(calcs) == 0 {
		return salary.CalculationResponse{}, salary.ErrCalculationNotFound
	}
	return toCalculationResponse(calcs[0]), nil
}

func (s *SalaryServiceImpl) ListPendingApproval(ctx context.Context) ([]salary.CalculationResponse, error) {
	calcs, err := s.calcRepo.ListByStatus(ctx, salary.CalculationStatusCalculated)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return toCalculationResponses(calcs), nil
}

func (s *SalaryServiceImpl) ListPendingPayment(ctx context.Context) ([]salary.CalculationResponse, error) {
	calcs, err := s.calcRepo.ListByStatus(ctx, salary.CalculationStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}
	return toCalculationResponses(calcs), nil
}

// ========== STATISTICS ==========

func (s *SalaryServiceImpl) GetMonthlyStatistics(ctx context.Context, period string) (salary.MonthlyStatisticsResponse, error) {
	if !validator.IsValidPeriod(period) {
		return salary.MonthlyStatisticsResponse{}, salary.ErrInvalidPeriod
	}

	calcs, err := s.calcRepo.ListByPeriod(ctx, period)
	if err != nil {
		return salary.MonthlyStatisticsResponse{}, fmt.Errorf("failed to list calculations for period: %w", err)
	}

	total := decimal.Zero
	for _, calc := range calcs {
		total = total.Add(calc.GrossAmount)
	}

	average := decimal.Zero
	if len(calcs) > 0 {
		average = total.DivRound(decimal.NewFromInt(int64(len(calcs))), 0)
	}

	return salary.MonthlyStatisticsResponse{
		Period:            period,
		TotalCalculations: len(calcs),
		TotalAmount:       total,
		AverageAmount:     average,
	}, nil
}

func (s *SalaryServiceImpl) GetProfileTypeStatistics(ctx context.Context) (salary.ProfileTypeStatisticsResponse, error) {
	profiles, err := s.profileRepo.ListActive(ctx)
	if err != nil {
		return salary.ProfileTypeStatisticsResponse{}, fmt.Errorf("failed to list active profiles: %w", err)
	}

	counts := make(map[string]int)
	for _, profile := range profiles {
		counts[string(profile.EmploymentType)]++
	}

	return salary.ProfileTypeStatisticsResponse{
		TypeCount:     counts,
		TotalProfiles: len(profiles),
	}, nil
}

func (s *SalaryServiceImpl) GetTotalPaidByConsultant(ctx context.Context, consultantID string) (decimal.Decimal, error) {
	calcs, err := s.calcRepo.ListByConsultant(ctx, consultantID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list calculations: %w", err)
	}

	total := decimal.Zero
	for _, calc := range calcs {
		if calc.Status == salary.CalculationStatusPaid {
			total = total.Add(calc.GrossAmount)
		}
	}
	return total, nil
}

// ========== MAPPING ==========

func toProfileResponse(profile salary.Profile) salary.ProfileResponse {
	return salary.ProfileResponse{
		ID:                         profile.ID,
		ConsultantID:               profile.ConsultantID,
		EmploymentType:             string(profile.EmploymentType),
		BaseRate:                   profile.BaseRate,
		IsBusinessRegistered:       profile.IsBusinessRegistered,
		BusinessRegistrationNumber: profile.BusinessRegistrationNumber,
		BusinessName:               profile.BusinessName,
		ContractTerms:              profile.ContractTerms,
		IsActive:                   profile.IsActive,
		CreatedAt:                  profile.CreatedAt,
	}
}

func toOptionResponse(option salary.Option) salary.OptionResponse {
	return salary.OptionResponse{
		ID:          option.ID,
		ProfileID:   option.ProfileID,
		OptionType:  option.OptionType,
		Amount:      option.Amount,
		Description: option.Description,
		IsActive:    option.IsActive,
	}
}

func toCalculationResponse(calc salary.Calculation) salary.CalculationResponse {
	return salary.CalculationResponse{
		ID:            calc.ID,
		ConsultantID:  calc.ConsultantID,
		ProfileID:     calc.ProfileID,
		Period:        calc.Period,
		WorkStartDate: calc.WorkStartDate.Format("2006-01-02"),
		WorkEndDate:   calc.WorkEndDate.Format("2006-01-02"),
		PayDate:       calc.PayDate.Format("2006-01-02"),
		BaseAmount:    calc.BaseAmount,
		OptionAmount:  calc.OptionAmount,
		GrossAmount:   calc.GrossAmount,
		TaxAmount:     calc.TaxAmount,
		NetAmount:     calc.NetAmount(),
		SessionCount:  calc.SessionCount,
		TotalHours:    calc.TotalHours,
		Status:        string(calc.Status),
		Details:       calc.Details,
	}
}

func toCalculationResponses(calcs []salary.Calculation) []salary.CalculationResponse {
	responses := make([]salary.CalculationResponse, 0, len(calcs))
	for _, calc := range calcs {
		responses = append(responses, toCalculationResponse(calc))
	}
	return responses
}
