package salary

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mindgarden/counseling-backend-go/internal/domain/commoncode"
	"github.com/mindgarden/counseling-backend-go/internal/domain/salary"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/validator"
)

// fallbackPayDay is used whenever the pay-day code cannot be resolved.
const fallbackPayDay = 10

// PayPeriodResolver turns a "YYYY-MM" period token into the work range and
// the pay date in the following month.
type PayPeriodResolver struct {
	codeRepo commoncode.Repository
}

func NewPayPeriodResolver(codeRepo commoncode.Repository) *PayPeriodResolver {
	return &PayPeriodResolver{codeRepo: codeRepo}
}

// Resolve computes the pay period for a calculation. An unresolvable pay-day
// code never aborts the calculation; it falls back to day 10 with a warning.
func (r *PayPeriodResolver) Resolve(ctx context.Context, period string, payDayCode string) (salary.PayPeriod, error) {
	monthStart, ok := validator.ParsePeriod(period)
	if !ok {
		return salary.PayPeriod{}, salary.ErrInvalidPeriod
	}

	workStart := monthStart
	workEnd := monthStart.AddDate(0, 1, -1)

	dayOfMonth := r.resolvePayDay(ctx, period, payDayCode)
	followingMonth := monthStart.AddDate(0, 1, 0)
	lastOfFollowing := followingMonth.AddDate(0, 1, -1)

	var payDate time.Time
	switch {
	case dayOfMonth == 0:
		payDate = lastOfFollowing
	case dayOfMonth > lastOfFollowing.Day():
		slog.Warn("Pay day exceeds month length, using fallback",
			"period", period, "pay_day_code", payDayCode, "day_of_month", dayOfMonth, "fallback", fallbackPayDay)
		payDate = time.Date(followingMonth.Year(), followingMonth.Month(), fallbackPayDay, 0, 0, 0, 0, time.UTC)
	default:
		payDate = time.Date(followingMonth.Year(), followingMonth.Month(), dayOfMonth, 0, 0, 0, 0, time.UTC)
	}

	return salary.PayPeriod{
		WorkStart: workStart,
		WorkEnd:   workEnd,
		PayDate:   payDate,
	}, nil
}

// resolvePayDay looks up the configured day of month for a pay-day code.
// Missing code or malformed extra data falls back to day 10.
func (r *PayPeriodResolver) resolvePayDay(ctx context.Context, period string, payDayCode string) int {
	if payDayCode == "" {
		return fallbackPayDay
	}

	code, err := r.codeRepo.GetByGroupAndValue(ctx, commoncode.GroupPayDay, payDayCode)
	if err != nil {
		if !errors.Is(err, commoncode.ErrCodeNotFound) {
			slog.Warn("Pay day code lookup failed, using fallback",
				"period", period, "pay_day_code", payDayCode, "error", err, "fallback", fallbackPayDay)
			return fallbackPayDay
		}
		slog.Warn("Pay day code not found, using fallback",
			"period", period, "pay_day_code", payDayCode, "fallback", fallbackPayDay)
		return fallbackPayDay
	}

	dayOfMonth, ok := code.ExtraInt("dayOfMonth")
	if !ok || dayOfMonth < 0 {
		slog.Warn("Pay day code has no usable dayOfMonth, using fallback",
			"period", period, "pay_day_code", payDayCode, "fallback", fallbackPayDay)
		return fallbackPayDay
	}

	return dayOfMonth
}
