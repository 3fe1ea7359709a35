package salary

import "context"

// ProfileRepository defines data access for compensation profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile Profile) (Profile, error)
	GetActiveByConsultantID(ctx context.Context, consultantID string) (Profile, error)
	ListActive(ctx context.Context) ([]Profile, error)
	// Deactivate clears the active flag on the consultant's current profile.
	// Returns false when no active profile existed.
	Deactivate(ctx context.Context, consultantID string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// OptionRepository defines data access for compensation options.
type OptionRepository interface {
	Create(ctx context.Context, option Option) (Option, error)
	GetByID(ctx context.Context, id string) (Option, error)
	ListActiveByProfileID(ctx context.Context, profileID string) ([]Option, error)
	Update(ctx context.Context, option Option) (Option, error)
	Deactivate(ctx context.Context, id string) error
}

// CalculationRepository defines data access for salary calculations.
type CalculationRepository interface {
	Create(ctx context.Context, calc Calculation) (Calculation, error)
	Update(ctx context.Context, calc Calculation) (Calculation, error)
	GetByID(ctx context.Context, id string) (Calculation, error)
	FindByConsultantAndPeriod(ctx context.Context, consultantID, period string) ([]Calculation, error)
	ListByConsultant(ctx context.Context, consultantID string) ([]Calculation, error)
	ListByPeriod(ctx context.Context, period string) ([]Calculation, error)
	ListByStatus(ctx context.Context, status CalculationStatus) ([]Calculation, error)
	DistinctConsultantIDs(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}
