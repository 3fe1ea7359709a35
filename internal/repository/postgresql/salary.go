package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mindgarden/counseling-backend-go/internal/domain/salary"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/database"
)

// ========== PROFILES ==========

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) salary.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, consultant_id, employment_type, base_rate, is_business_registered,
	business_registration_number, business_name, contract_terms, is_active, created_at, updated_at`

func scanProfile(row pgx.Row) (salary.Profile, error) {
	var p salary.Profile
	err := row.Scan(
		&p.ID, &p.ConsultantID, &p.EmploymentType, &p.BaseRate, &p.IsBusinessRegistered,
		&p.BusinessRegistrationNumber, &p.BusinessName, &p.ContractTerms, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *profileRepository) Create(ctx context.Context, profile salary.Profile) (salary.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_profiles (
			consultant_id, employment_type, base_rate, is_business_registered,
			business_registration_number, business_name, contract_terms, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + profileColumns

	created, err := scanProfile(q.QueryRow(ctx, query,
		profile.ConsultantID, profile.EmploymentType, profile.BaseRate, profile.IsBusinessRegistered,
		profile.BusinessRegistrationNumber, profile.BusinessName, profile.ContractTerms, profile.IsActive,
	))
	if err != nil {
		return salary.Profile{}, fmt.Errorf("failed to create salary profile: %w", err)
	}

	return created, nil
}

func (r *profileRepository) GetActiveByConsultantID(ctx context.Context, consultantID string) (salary.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + profileColumns + `
		FROM salary_profiles
		WHERE consultant_id = $1 AND is_active = true
		ORDER BY created_at DESC
		LIMIT 1
	`

	profile, err := scanProfile(q.QueryRow(ctx, query, consultantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Profile{}, salary.ErrProfileNotFound
		}
		return salary.Profile{}, fmt.Errorf("failed to get active salary profile: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) ListActive(ctx context.Context) ([]salary.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + profileColumns + `
		FROM salary_profiles
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active salary profiles: %w", err)
	}
	defer rows.Close()

	var profiles []salary.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

func (r *profileRepository) Deactivate(ctx context.Context, consultantID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_profiles
		SET is_active = false, updated_at = NOW()
		WHERE consultant_id = $1 AND is_active = true
	`

	tag, err := q.Exec(ctx, query, consultantID)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate salary profile: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *profileRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM salary_profiles WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check salary profile: %w", err)
	}

	return exists, nil
}

// ========== OPTIONS ==========

type optionRepository struct {
	db *database.DB
}

func NewOptionRepository(db *database.DB) salary.OptionRepository {
	return &optionRepository{db: db}
}

const optionColumns = `id, profile_id, option_type, amount, description, is_active, created_at, updated_at`

func scanOption(row pgx.Row) (salary.Option, error) {
	var o salary.Option
	err := row.Scan(
		&o.ID, &o.ProfileID, &o.OptionType, &o.Amount, &o.Description, &o.IsActive,
		&o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (r *optionRepository) Create(ctx context.Context, option salary.Option) (salary.Option, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_options (profile_id, option_type, amount, description, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + optionColumns

	created, err := scanOption(q.QueryRow(ctx, query,
		option.ProfileID, option.OptionType, option.Amount, option.Description, option.IsActive,
	))
	if err != nil {
		return salary.Option{}, fmt.Errorf("failed to create salary option: %w", err)
	}

	return created, nil
}

func (r *optionRepository) GetByID(ctx context.Context, id string) (salary.Option, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + optionColumns + ` FROM salary_options WHERE id = $1`

	option, err := scanOption(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Option{}, salary.ErrOptionNotFound
		}
		return salary.Option{}, fmt.Errorf("failed to get salary option: %w", err)
	}

	return option, nil
}

func (r *optionRepository) ListActiveByProfileID(ctx context.Context, profileID string) ([]salary.Option, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + optionColumns + `
		FROM salary_options
		WHERE profile_id = $1 AND is_active = true
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary options: %w", err)
	}
	defer rows.Close()

	var options []salary.Option
	for rows.Next() {
		option, err := scanOption(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary option: %w", err)
		}
		options = append(options, option)
	}

	return options, rows.Err()
}

func (r *optionRepository) Update(ctx context.Context, option salary.Option) (salary.Option, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_options
		SET amount = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + optionColumns

	updated, err := scanOption(q.QueryRow(ctx, query, option.ID, option.Amount, option.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Option{}, salary.ErrOptionNotFound
		}
		return salary.Option{}, fmt.Errorf("failed to update salary option: %w", err)
	}

	return updated, nil
}

func (r *optionRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE salary_options
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate salary option: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrOptionNotFound
	}

	return nil
}

// ========== CALCULATIONS ==========

type calculationRepository struct {
	db *database.DB
}

func NewCalculationRepository(db *database.DB) salary.CalculationRepository {
	return &calculationRepository{db: db}
}

const calculationColumns = `id, consultant_id, profile_id, period, work_start_date, work_end_date,
	pay_date, base_amount, option_amount, gross_amount, tax_amount, session_count, total_hours,
	status, details, created_at, updated_at`

func scanCalculation(row pgx.Row) (salary.Calculation, error) {
	var c salary.Calculation
	err := row.Scan(
		&c.ID, &c.ConsultantID, &c.ProfileID, &c.Period, &c.WorkStartDate, &c.WorkEndDate,
		&c.PayDate, &c.BaseAmount, &c.OptionAmount, &c.GrossAmount, &c.TaxAmount, &c.SessionCount,
		&c.TotalHours, &c.Status, &c.Details, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *calculationRepository) Create(ctx context.Context, calc salary.Calculation) (salary.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_calculations (
			consultant_id, profile_id, period, work_start_date, work_end_date, pay_date,
			base_amount, option_amount, gross_amount, tax_amount, session_count, total_hours,
			status, details
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + calculationColumns

	created, err := scanCalculation(q.QueryRow(ctx, query,
		calc.ConsultantID, calc.ProfileID, calc.Period, calc.WorkStartDate, calc.WorkEndDate,
		calc.PayDate, calc.BaseAmount, calc.OptionAmount, calc.GrossAmount, calc.TaxAmount,
		calc.SessionCount, calc.TotalHours, calc.Status, calc.Details,
	))
	if err != nil {
		return salary.Calculation{}, fmt.Errorf("failed to create salary calculation: %w", err)
	}

	return created, nil
}

func (r *calculationRepository) Update(ctx context.Context, calc salary.Calculation) (salary.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_calculations
		SET base_amount = $2, option_amount = $3, gross_amount = $4, tax_amount = $5,
			session_count = $6, total_hours = $7, status = $8, details = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + calculationColumns

	updated, err := scanCalculation(q.QueryRow(ctx, query,
		calc.ID, calc.BaseAmount, calc.OptionAmount, calc.GrossAmount, calc.TaxAmount,
		calc.SessionCount, calc.TotalHours, calc.Status, calc.Details,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Calculation{}, salary.ErrCalculationNotFound
		}
		return salary.Calculation{}, fmt.Errorf("failed to update salary calculation: %w", err)
	}

	return updated, nil
}

func (r *calculationRepository) GetByID(ctx context.Context, id string) (salary.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + calculationColumns + ` FROM salary_calculations WHERE id = $1`

	calc, err := scanCalculation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Calculation{}, salary.ErrCalculationNotFound
		}
		return salary.Calculation{}, fmt.Errorf("failed to get salary calculation: %w", err)
	}

	return calc, nil
}

func (r *calculationRepository) FindByConsultantAndPeriod(ctx context.Context, consultantID, period string) ([]salary.Calculation, error) {
	return r.list(ctx, `
		SELECT `+calculationColumns+`
		FROM salary_calculations
		WHERE consultant_id = $1 AND period = $2
		ORDER BY created_at DESC
	`, consultantID, period)
}

func (r *calculationRepository) ListByConsultant(ctx context.Context, consultantID string) ([]salary.Calculation, error) {
	return r.list(ctx, `
		SELECT `+calculationColumns+`
		FROM salary_calculations
		WHERE consultant_id = $1
		ORDER BY period DESC, created_at DESC
	`, consultantID)
}

func (r *calculationRepository) ListByPeriod(ctx context.Context, period string) ([]salary.Calculation, error) {
	return r.list(ctx, `
		SELECT `+calculationColumns+`
		FROM salary_calculations
		WHERE period = $1
		ORDER BY created_at DESC
	`, period)
}

func (r *calculationRepository) ListByStatus(ctx context.Context, status salary.CalculationStatus) ([]salary.Calculation, error) {
	return r.list(ctx, `
		SELECT `+calculationColumns+`
		FROM salary_calculations
		WHERE status = $1
		ORDER BY period DESC, created_at DESC
	`, status)
}

func (r *calculationRepository) list(ctx context.Context, query string, args ...interface{}) ([]salary.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary calculations: %w", err)
	}
	defer rows.Close()

	var calcs []salary.Calculation
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary calculation: %w", err)
		}
		calcs = append(calcs, calc)
	}

	return calcs, rows.Err()
}

func (r *calculationRepository) DistinctConsultantIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT consultant_id FROM salary_calculations`)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultant ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan consultant id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *calculationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_calculations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary calculation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrCalculationNotFound
	}

	return nil
}
