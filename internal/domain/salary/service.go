package salary

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service is the salary calculation engine plus profile and option management.
type Service interface {
	// Profiles
	CreateProfile(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error)
	GetActiveProfile(ctx context.Context, consultantID string) (ProfileResponse, error)
	DeactivateProfile(ctx context.Context, consultantID string) (bool, error)
	ListActiveProfiles(ctx context.Context) ([]ProfileResponse, error)

	// Options
	AddOption(ctx context.Context, req AddOptionRequest) (OptionResponse, error)
	ListOptions(ctx context.Context, profileID string) ([]OptionResponse, error)
	UpdateOption(ctx context.Context, req UpdateOptionRequest) (OptionResponse, error)
	RemoveOption(ctx context.Context, id string) error

	// Calculation
	CalculateFreelanceSalary(ctx context.Context, req CalculateFreelanceRequest) (CalculationResponse, error)
	CalculateRegularSalary(ctx context.Context, req CalculateRegularRequest) (CalculationResponse, error)
	CleanupDuplicateCalculations(ctx context.Context) (int, error)

	// Lifecycle
	ApproveCalculation(ctx context.Context, id string) error
	MarkCalculationPaid(ctx context.Context, id string) error
	GetCalculations(ctx context.Context, consultantID string) ([]CalculationResponse, error)
	GetCalculationByPeriod(ctx context.Context, consultantID, period string) (CalculationResponse, error)
	ListPendingApproval(ctx context.Context) ([]CalculationResponse, error)
	ListPendingPayment(ctx context.Context) ([]CalculationResponse, error)

	// Statistics
	GetMonthlyStatistics(ctx context.Context, period string) (MonthlyStatisticsResponse, error)
	GetProfileTypeStatistics(ctx context.Context) (ProfileTypeStatisticsResponse, error)
	GetTotalPaidByConsultant(ctx context.Context, consultantID string) (decimal.Decimal, error)
}
