package salary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mindgarden/counseling-backend-go/internal/domain/commoncode"
	"github.com/mindgarden/counseling-backend-go/internal/domain/consultant"
	"github.com/mindgarden/counseling-backend-go/internal/domain/salary"
	"github.com/mindgarden/counseling-backend-go/internal/domain/session"
	domtax "github.com/mindgarden/counseling-backend-go/internal/domain/tax"
	"github.com/mindgarden/counseling-backend-go/internal/service/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== FAKES ==========

type fakeTx struct{}

func (fakeTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeProfileRepo struct {
	profiles []salary.Profile
}

func (f *fakeProfileRepo) Create(_ context.Context, profile salary.Profile) (salary.Profile, error) {
	profile.ID = uuid.New().String()
	f.profiles = append(f.profiles, profile)
	return profile, nil
}

func (f *fakeProfileRepo) GetActiveByConsultantID(_ context.Context, consultantID string) (salary.Profile, error) {
	for _, p := range f.profiles {
		if p.ConsultantID == consultantID && p.IsActive {
			return p, nil
		}
	}
	return salary.Profile{}, salary.ErrProfileNotFound
}

func (f *fakeProfileRepo) ListActive(_ context.Context) ([]salary.Profile, error) {
	var out []salary.Profile
	for _, p := range f.profiles {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Deactivate(_ context.Context, consultantID string) (bool, error) {
	deactivated := false
	for i := range f.profiles {
		if f.profiles[i].ConsultantID == consultantID && f.profiles[i].IsActive {
			f.profiles[i].IsActive = false
			deactivated = true
		}
	}
	return deactivated, nil
}

func (f *fakeProfileRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeOptionRepo struct {
	options []salary.Option
}

func (f *fakeOptionRepo) Create(_ context.Context, option salary.Option) (salary.Option, error) {
	option.ID = uuid.New().String()
	f.options = append(f.options, option)
	return option, nil
}

func (f *fakeOptionRepo) GetByID(_ context.Context, id string) (salary.Option, error) {
	for _, o := range f.options {
		if o.ID == id {
			return o, nil
		}
	}
	return salary.Option{}, salary.ErrOptionNotFound
}

func (f *fakeOptionRepo) ListActiveByProfileID(_ context.Context, profileID string) ([]salary.Option, error) {
	var out []salary.Option
	for _, o := range f.options {
		if o.ProfileID == profileID && o.IsActive {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOptionRepo) Update(_ context.Context, option salary.Option) (salary.Option, error) {
	for i := range f.options {
		if f.options[i].ID == option.ID {
			f.options[i] = option
			return option, nil
		}
	}
	return salary.Option{}, salary.ErrOptionNotFound
}

func (f *fakeOptionRepo) Deactivate(_ context.Context, id string) error {
	for i := range f.options {
		if f.options[i].ID == id {
			f.options[i].IsActive = false
			return nil
		}
	}
	return salary.ErrOptionNotFound
}

type fakeCalcRepo struct {
	calcs []salary.Calculation
}

func (f *fakeCalcRepo) Create(_ context.Context, calc salary.Calculation) (salary.Calculation, error) {
	calc.ID = uuid.New().String()
	f.calcs = append(f.calcs, calc)
	return calc, nil
}

func (f *fakeCalcRepo) Update(_ context.Context, calc salary.Calculation) (salary.Calculation, error) {
	for i := range f.calcs {
		if f.calcs[i].ID == calc.ID {
			f.calcs[i] = calc
			return calc, nil
		}
	}
	return salary.Calculation{}, salary.ErrCalculationNotFound
}

func (f *fakeCalcRepo) GetByID(_ context.Context, id string) (salary.Calculation, error) {
	for _, c := range f.calcs {
		if c.ID == id {
			return c, nil
		}
	}
	return salary.Calculation{}, salary.ErrCalculationNotFound
}

func (f *fakeCalcRepo) FindByConsultantAndPeriod(_ context.Context, consultantID, period string) ([]salary.Calculation, error) {
	var out []salary.Calculation
	for _, c := range f.calcs {
		if c.ConsultantID == consultantID && c.Period == period {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCalcRepo) ListByConsultant(_ context.Context, consultantID string) ([]salary.Calculation, error) {
	var out []salary.Calculation
	for _, c := range f.calcs {
		if c.ConsultantID == consultantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCalcRepo) ListByPeriod(_ context.Context, period string) ([]salary.Calculation, error) {
	var out []salary.Calculation
	for _, c := range f.calcs {
		if c.Period == period {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCalcRepo) ListByStatus(_ context.Context, status salary.CalculationStatus) ([]salary.Calculation, error) {
	var out []salary.Calculation
	for _, c := range f.calcs {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCalcRepo) DistinctConsultantIDs(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, c := range f.calcs {
		if !seen[c.ConsultantID] {
			seen[c.ConsultantID] = true
			out = append(out, c.ConsultantID)
		}
	}
	return out, nil
}

func (f *fakeCalcRepo) Delete(_ context.Context, id string) error {
	for i := range f.calcs {
		if f.calcs[i].ID == id {
			f.calcs = append(f.calcs[:i], f.calcs[i+1:]...)
			return nil
		}
	}
	return salary.ErrCalculationNotFound
}

type fakeSessionRepo struct {
	sessions []session.Session
}

func (f *fakeSessionRepo) ListCompleted(_ context.Context, consultantID string, from, to time.Time) ([]session.Session, error) {
	end := to.AddDate(0, 0, 1)
	var out []session.Session
	for _, s := range f.sessions {
		if s.ConsultantID != consultantID || s.Status != session.StatusCompleted {
			continue
		}
		if s.Date.Before(from) || !s.Date.Before(end) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeConsultantRepo struct {
	consultants map[string]consultant.Consultant
}

func (f *fakeConsultantRepo) GetByID(_ context.Context, id string) (consultant.Consultant, error) {
	c, ok := f.consultants[id]
	if !ok {
		return consultant.Consultant{}, consultant.ErrConsultantNotFound
	}
	return c, nil
}

type fakeLineItemRepo struct {
	items []domtax.LineItem
}

func (f *fakeLineItemRepo) Create(_ context.Context, item domtax.LineItem) (domtax.LineItem, error) {
	item.ID = uuid.New().String()
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeLineItemRepo) ListByCalculationID(_ context.Context, calculationID string) ([]domtax.LineItem, error) {
	var out []domtax.LineItem
	for _, item := range f.items {
		if item.CalculationID == calculationID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeLineItemRepo) ListByType(_ context.Context, taxType string) ([]domtax.LineItem, error) {
	return nil, nil
}

func (f *fakeLineItemRepo) Deactivate(_ context.Context, id string) error { return nil }

func (f *fakeLineItemRepo) TotalByPeriod(_ context.Context, _ string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeEmitter struct {
	emitted []salary.Calculation
}

func (f *fakeEmitter) EmitSalaryExpense(_ context.Context, calc salary.Calculation, _ salary.Profile) {
	f.emitted = append(f.emitted, calc)
}

type testEnv struct {
	profiles    *fakeProfileRepo
	options     *fakeOptionRepo
	calcs       *fakeCalcRepo
	sessions    *fakeSessionRepo
	codes       *fakeCodeRepo
	consultants *fakeConsultantRepo
	lineItems   *fakeLineItemRepo
	emitter     *fakeEmitter
	svc         salary.Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		profiles:    &fakeProfileRepo{},
		options:     &fakeOptionRepo{},
		calcs:       &fakeCalcRepo{},
		sessions:    &fakeSessionRepo{},
		codes:       &fakeCodeRepo{codes: map[string]commoncode.Code{}},
		consultants: &fakeConsultantRepo{consultants: map[string]consultant.Consultant{}},
		lineItems:   &fakeLineItemRepo{},
		emitter:     &fakeEmitter{},
	}
	taxService := tax.NewTaxService(env.lineItems, env.calcs)
	env.svc = NewSalaryService(
		fakeTx{},
		env.profiles,
		env.options,
		env.calcs,
		env.sessions,
		env.codes,
		env.consultants,
		taxService,
		env.emitter,
	)
	return env
}

func (e *testEnv) addProfile(consultantID string, empType salary.EmploymentType, rate *decimal.Decimal, businessRegistered bool) salary.Profile {
	p, _ := e.profiles.Create(context.Background(), salary.Profile{
		ConsultantID:         consultantID,
		EmploymentType:       empType,
		BaseRate:             rate,
		IsBusinessRegistered: businessRegistered,
		IsActive:             true,
	})
	return p
}

func (e *testEnv) addSession(consultantID string, date time.Time, status session.Status, consultationType string) {
	e.sessions.sessions = append(e.sessions.sessions, session.Session{
		ID:               uuid.New().String(),
		ConsultantID:     consultantID,
		ConsultationType: consultationType,
		Date:             date,
		DurationMinutes:  60,
		Status:           status,
	})
}

func rateCode(value string, extra string) commoncode.Code {
	return commoncode.Code{
		CodeGroup: commoncode.GroupFreelanceRate,
		CodeValue: value,
		ExtraData: []byte(extra),
		IsActive:  true,
	}
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// ========== CALCULATION ==========

func TestCalculateFreelanceSalaryCountsCompletedOnly(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentFreelance, nil, false)

	jan := func(day int) time.Time { return time.Date(2025, 1, day, 10, 0, 0, 0, time.UTC) }
	env.addSession("c-1", jan(3), session.StatusCompleted, "")
	env.addSession("c-1", jan(8), session.StatusCompleted, "")
	env.addSession("c-1", jan(15), session.StatusCompleted, "")
	env.addSession("c-1", jan(20), session.StatusCancelled, "")
	env.addSession("c-1", jan(25), session.StatusNoShow, "")
	env.addSession("c-1", time.Date(2025, 2, 2, 10, 0, 0, 0, time.UTC), session.StatusCompleted, "")
	env.addSession("c-2", jan(5), session.StatusCompleted, "")

	resp, err := env.svc.CalculateFreelanceSalary(context.Background(), salary.CalculateFreelanceRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.SessionCount)
	assert.True(t, resp.BaseAmount.Equal(decimal.NewFromInt(90_000)), "got base %s", resp.BaseAmount)
	assert.True(t, resp.GrossAmount.Equal(decimal.NewFromInt(90_000)))
	assert.Equal(t, string(salary.CalculationStatusCalculated), resp.Status)
	assert.Equal(t, "2025-01-01", resp.WorkStartDate)
	assert.Equal(t, "2025-01-31", resp.WorkEndDate)
	assert.Equal(t, "2025-02-10", resp.PayDate)
	assert.True(t, resp.TotalHours.Equal(decimal.NewFromInt(3)))

	// 90,000 x 0.033 withholding
	assert.True(t, resp.TaxAmount.Equal(decimal.NewFromInt(2_970)), "got tax %s", resp.TaxAmount)
	assert.True(t, resp.NetAmount.Equal(decimal.NewFromInt(87_030)))
}

func TestCalculateFreelanceSalaryIncludesLastDayOfMonth(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentFreelance, nil, false)

	// last work day counts regardless of time of day
	env.addSession("c-1", time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC), session.StatusCompleted, "")
	env.addSession("c-1", time.Date(2025, 1, 31, 23, 30, 0, 0, time.UTC), session.StatusCompleted, "")
	env.addSession("c-1", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), session.StatusCompleted, "")

	resp, err := env.svc.CalculateFreelanceSalary(context.Background(), salary.CalculateFreelanceRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.SessionCount)
	assert.True(t, resp.BaseAmount.Equal(decimal.NewFromInt(60_000)), "got base %s", resp.BaseAmount)
}

func TestCalculateFreelanceSalaryProfileRateOverride(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentFreelance, dec(50_000), false)
	env.addSession("c-1", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), session.StatusCompleted, "")

	resp, err := env.svc.CalculateFreelanceSalary(context.Background(), salary.CalculateFreelanceRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
	})
	require.NoError(t, err)
	assert.True(t, resp.BaseAmount.Equal(decimal.NewFromInt(50_000)))
}

func TestCalculateFreelanceSalaryGradeRate(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentFreelance, nil, false)
	env.consultants.consultants["c-1"] = consultant.Consultant{ID: "c-1", Name: "Kim", Grade: "CONSULTANT_SENIOR"}
	env.codes.codes["FREELANCE_BASE_RATE/SENIOR_RATE"] = rateCode("SENIOR_RATE", `{"rate": 40000}`)
	env.addSession("c-1", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), session.StatusCompleted, "")

	resp, err := env.svc.CalculateFreelanceSalary(context.Background(), salary.CalculateFreelanceRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
	})
	require.NoError(t, err)
	assert.True(t, resp.BaseAmount.Equal(decimal.NewFromInt(40_000)), "got base %s", resp.BaseAmount)
}

func TestCalculateFreelanceSalaryOptionBonuses(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentFreelance, nil, false)

	jan := func(day int) time.Time { return time.Date(2025, 1, day, 10, 0, 0, 0, time.UTC) }
	env.addSession("c-1", jan(3), session.StatusCompleted, "INITIAL_CONSULTATION")
	env.addSession("c-1", jan(8), session.StatusCompleted, "FAMILY_CONSULTATION")
	env.addSession("c-1", jan(15), session.StatusCompleted, "INDIVIDUAL")

	resp, err := env.svc.CalculateFreelanceSalary(context.Background(), salary.CalculateFreelanceRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
	})
	require.NoError(t, err)

	assert.True(t, resp.BaseAmount.Equal(decimal.NewFromInt(90_000)))
	assert.True(t, resp.OptionAmount.Equal(decimal.NewFromInt(8_000)), "got option %s", resp.OptionAmount)
	assert.True(t, resp.GrossAmount.Equal(decimal.NewFromInt(98_000)))
}

func TestCalculateFreelanceSalaryIdempotentRecompute(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentFreelance, nil, false)
	env.addSession("c-1", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), session.StatusCompleted, "")

	req := salary.CalculateFreelanceRequest{ConsultantID: "c-1", Period: "2025-01"}

	first, err := env.svc.CalculateFreelanceSalary(context.Background(), req)
	require.NoError(t, err)

	env.addSession("c-1", time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC), session.StatusCompleted, "")

	second, err := env.svc.CalculateFreelanceSalary(context.Background(), req)
	require.NoError(t, err)

	remaining, err := env.calcs.FindByConsultantAndPeriod(context.Background(), "c-1", "2025-01")
	require.NoError(t, err)
	require.Len(t, remaining, 1, "recompute must replace the prior calculation")
	assert.Equal(t, second.ID, remaining[0].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, remaining[0].GrossAmount.Equal(decimal.NewFromInt(60_000)))
}

func TestCalculateFreelanceSalaryProfileErrors(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.CalculateFreelanceSalary(context.Background(), salary.CalculateFreelanceRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
	})
	assert.ErrorIs(t, err, salary.ErrProfileNotFound)

	env.addProfile("c-1", salary.EmploymentRegular, nil, false)
	_, err = env.svc.CalculateFreelanceSalary(context.Background(), salary.CalculateFreelanceRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
	})
	assert.ErrorIs(t, err, salary.ErrProfileTypeMismatch)
}

func TestCalculateFreelanceSalaryBusinessRegisteredAddsVAT(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentFreelance, nil, true)
	env.addSession("c-1", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), session.StatusCompleted, "")

	resp, err := env.svc.CalculateFreelanceSalary(context.Background(), salary.CalculateFreelanceRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
	})
	require.NoError(t, err)

	// 30,000 x (0.033 + 0.10) = 990 + 3,000
	assert.True(t, resp.TaxAmount.Equal(decimal.NewFromInt(3_990)), "got tax %s", resp.TaxAmount)

	items, err := env.lineItems.ListByCalculationID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCalculateRegularSalary(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentRegular, nil, false)

	resp, err := env.svc.CalculateRegularSalary(context.Background(), salary.CalculateRegularRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
		BaseSalary:   decimal.NewFromInt(1_000_000),
	})
	require.NoError(t, err)

	assert.True(t, resp.GrossAmount.Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, resp.OptionAmount.IsZero())
	// 1,000,000 x 0.06 income tax
	assert.True(t, resp.TaxAmount.Equal(decimal.NewFromInt(60_000)), "got tax %s", resp.TaxAmount)
	assert.True(t, resp.NetAmount.Equal(decimal.NewFromInt(940_000)))
}

func TestCalculateRegularSalaryTypeMismatch(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentFreelance, nil, false)

	_, err := env.svc.CalculateRegularSalary(context.Background(), salary.CalculateRegularRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
		BaseSalary:   decimal.NewFromInt(1_000_000),
	})
	assert.ErrorIs(t, err, salary.ErrProfileTypeMismatch)
}

func TestCalculationEmitsExpense(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentFreelance, nil, false)
	env.addSession("c-1", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), session.StatusCompleted, "")

	_, err := env.svc.CalculateFreelanceSalary(context.Background(), salary.CalculateFreelanceRequest{
		ConsultantID: "c-1",
		Period:       "2025-01",
	})
	require.NoError(t, err)
	require.Len(t, env.emitter.emitted, 1)
	assert.Equal(t, "2025-01", env.emitter.emitted[0].Period)
}

func TestCleanupDuplicateCalculations(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// three records for the same consultant and period, two of them zero-gross
	_, _ = env.calcs.Create(ctx, salary.Calculation{ConsultantID: "c-1", Period: "2025-01", GrossAmount: decimal.Zero})
	_, _ = env.calcs.Create(ctx, salary.Calculation{ConsultantID: "c-1", Period: "2025-01", GrossAmount: decimal.Zero})
	keep, _ := env.calcs.Create(ctx, salary.Calculation{ConsultantID: "c-1", Period: "2025-01", GrossAmount: decimal.NewFromInt(90_000)})

	// a lone zero-gross record in another period must survive
	lone, _ := env.calcs.Create(ctx, salary.Calculation{ConsultantID: "c-1", Period: "2025-02", GrossAmount: decimal.Zero})

	deleted, err := env.svc.CleanupDuplicateCalculations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, _ := env.calcs.ListByConsultant(ctx, "c-1")
	require.Len(t, remaining, 2)
	ids := []string{remaining[0].ID, remaining[1].ID}
	assert.Contains(t, ids, keep.ID)
	assert.Contains(t, ids, lone.ID)
}

// ========== LIFECYCLE ==========

func TestCalculationLifecycle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	calc, _ := env.calcs.Create(ctx, salary.Calculation{
		ConsultantID: "c-1", Period: "2025-01",
		GrossAmount: decimal.NewFromInt(90_000),
		Status:      salary.CalculationStatusCalculated,
	})

	// paying before approval fails
	err := env.svc.MarkCalculationPaid(ctx, calc.ID)
	assert.ErrorIs(t, err, salary.ErrCalculationNotPayable)

	require.NoError(t, env.svc.ApproveCalculation(ctx, calc.ID))

	// approving twice fails
	err = env.svc.ApproveCalculation(ctx, calc.ID)
	assert.ErrorIs(t, err, salary.ErrInvalidStatusChange)

	require.NoError(t, env.svc.MarkCalculationPaid(ctx, calc.ID))

	updated, _ := env.calcs.GetByID(ctx, calc.ID)
	assert.Equal(t, salary.CalculationStatusPaid, updated.Status)

	total, err := env.svc.GetTotalPaidByConsultant(ctx, "c-1")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(90_000)))
}

func TestApproveCalculationNotFound(t *testing.T) {
	env := newTestEnv()
	err := env.svc.ApproveCalculation(context.Background(), "missing")
	assert.ErrorIs(t, err, salary.ErrCalculationNotFound)
}

// ========== PROFILES & OPTIONS ==========

func TestCreateProfileDeactivatesPrior(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	first, err := env.svc.CreateProfile(ctx, salary.CreateProfileRequest{
		ConsultantID:   "c-1",
		EmploymentType: string(salary.EmploymentFreelance),
	})
	require.NoError(t, err)

	second, err := env.svc.CreateProfile(ctx, salary.CreateProfileRequest{
		ConsultantID:   "c-1",
		EmploymentType: string(salary.EmploymentRegular),
	})
	require.NoError(t, err)

	active, err := env.svc.GetActiveProfile(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	assert.NotEqual(t, first.ID, active.ID)

	profiles, err := env.svc.ListActiveProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestRemoveOptionSoftDeactivates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	profile := env.addProfile("c-1", salary.EmploymentFreelance, nil, false)

	option, err := env.svc.AddOption(ctx, salary.AddOptionRequest{
		ProfileID:  profile.ID,
		OptionType: "INITIAL_CONSULTATION",
		Amount:     decimal.NewFromInt(5_000),
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.RemoveOption(ctx, option.ID))

	listed, err := env.svc.ListOptions(ctx, profile.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// the row survives, deactivated
	stored, err := env.options.GetByID(ctx, option.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestAddOptionUnknownProfile(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.AddOption(context.Background(), salary.AddOptionRequest{
		ProfileID:  "missing",
		OptionType: "INITIAL_CONSULTATION",
		Amount:     decimal.NewFromInt(5_000),
	})
	assert.ErrorIs(t, err, salary.ErrProfileNotFound)
}

// ========== STATISTICS ==========

func TestGetMonthlyStatistics(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, _ = env.calcs.Create(ctx, salary.Calculation{ConsultantID: "c-1", Period: "2025-01", GrossAmount: decimal.NewFromInt(90_000)})
	_, _ = env.calcs.Create(ctx, salary.Calculation{ConsultantID: "c-2", Period: "2025-01", GrossAmount: decimal.NewFromInt(110_000)})
	_, _ = env.calcs.Create(ctx, salary.Calculation{ConsultantID: "c-3", Period: "2025-02", GrossAmount: decimal.NewFromInt(50_000)})

	stats, err := env.svc.GetMonthlyStatistics(ctx, "2025-01")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalCalculations)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(200_000)))
	assert.True(t, stats.AverageAmount.Equal(decimal.NewFromInt(100_000)))
}

func TestGetMonthlyStatisticsInvalidPeriod(t *testing.T) {
	env := newTestEnv()
	_, err := env.svc.GetMonthlyStatistics(context.Background(), "2025-13")
	assert.ErrorIs(t, err, salary.ErrInvalidPeriod)
}

func TestGetProfileTypeStatistics(t *testing.T) {
	env := newTestEnv()
	env.addProfile("c-1", salary.EmploymentFreelance, nil, false)
	env.addProfile("c-2", salary.EmploymentFreelance, nil, false)
	env.addProfile("c-3", salary.EmploymentRegular, nil, false)

	stats, err := env.svc.GetProfileTypeStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProfiles)
	assert.Equal(t, 2, stats.TypeCount["FREELANCE"])
	assert.Equal(t, 1, stats.TypeCount["REGULAR"])
}
