package salary

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mindgarden/counseling-backend-go/internal/domain/commoncode"
	"github.com/mindgarden/counseling-backend-go/internal/domain/salary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCodeRepo struct {
	codes map[string]commoncode.Code // keyed by group + "/" + value
}

func (f *fakeCodeRepo) GetByGroupAndValue(_ context.Context, group, value string) (commoncode.Code, error) {
	code, ok := f.codes[group+"/"+value]
	if !ok {
		return commoncode.Code{}, commoncode.ErrCodeNotFound
	}
	return code, nil
}

func (f *fakeCodeRepo) ListByGroup(_ context.Context, group string) ([]commoncode.Code, error) {
	var out []commoncode.Code
	for _, code := range f.codes {
		if code.CodeGroup == group {
			out = append(out, code)
		}
	}
	return out, nil
}

func payDayCode(value string, extra string) commoncode.Code {
	return commoncode.Code{
		CodeGroup: commoncode.GroupPayDay,
		CodeValue: value,
		ExtraData: json.RawMessage(extra),
		IsActive:  true,
	}
}

func TestResolveWorkRange(t *testing.T) {
	resolver := NewPayPeriodResolver(&fakeCodeRepo{})

	pp, err := resolver.Resolve(context.Background(), "2025-01", "")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), pp.WorkStart)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), pp.WorkEnd)
}

func TestResolvePayDateLastDayOfMonth(t *testing.T) {
	repo := &fakeCodeRepo{codes: map[string]commoncode.Code{
		"SALARY_PAY_DAY/END_OF_MONTH": payDayCode("END_OF_MONTH", `{"dayOfMonth": 0}`),
	}}
	resolver := NewPayPeriodResolver(repo)

	pp, err := resolver.Resolve(context.Background(), "2025-01", "END_OF_MONTH")
	require.NoError(t, err)

	// dayOfMonth 0 means the last day of the following month
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), pp.PayDate)
}

func TestResolvePayDateFixedDay(t *testing.T) {
	repo := &fakeCodeRepo{codes: map[string]commoncode.Code{
		"SALARY_PAY_DAY/DAY_10": payDayCode("DAY_10", `{"dayOfMonth": 10}`),
	}}
	resolver := NewPayPeriodResolver(repo)

	pp, err := resolver.Resolve(context.Background(), "2025-01", "DAY_10")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), pp.PayDate)
}

func TestResolvePayDateStringExtraData(t *testing.T) {
	repo := &fakeCodeRepo{codes: map[string]commoncode.Code{
		"SALARY_PAY_DAY/DAY_15": payDayCode("DAY_15", `{"dayOfMonth": "15"}`),
	}}
	resolver := NewPayPeriodResolver(repo)

	pp, err := resolver.Resolve(context.Background(), "2025-03", "DAY_15")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), pp.PayDate)
}

func TestResolvePayDateFallbacks(t *testing.T) {
	repo := &fakeCodeRepo{codes: map[string]commoncode.Code{
		"SALARY_PAY_DAY/NO_EXTRA": payDayCode("NO_EXTRA", `{}`),
		"SALARY_PAY_DAY/BAD_DATA": payDayCode("BAD_DATA", `{"dayOfMonth": "tenth"}`),
		"SALARY_PAY_DAY/DAY_31":   payDayCode("DAY_31", `{"dayOfMonth": 31}`),
	}}
	resolver := NewPayPeriodResolver(repo)

	cases := []struct {
		name        string
		period      string
		payDayCode  string
		wantPayDate time.Time
	}{
		{"unknown code", "2025-01", "MISSING", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
		{"empty code", "2025-01", "", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
		{"missing dayOfMonth", "2025-01", "NO_EXTRA", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
		{"non-numeric dayOfMonth", "2025-01", "BAD_DATA", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
		{"day exceeds february", "2025-01", "DAY_31", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pp, err := resolver.Resolve(context.Background(), c.period, c.payDayCode)
			require.NoError(t, err)
			assert.Equal(t, c.wantPayDate, pp.PayDate)
		})
	}
}

func TestResolveInvalidPeriod(t *testing.T) {
	resolver := NewPayPeriodResolver(&fakeCodeRepo{})

	for _, period := range []string{"2025-13", "2025/01", "202501", "abc", ""} {
		_, err := resolver.Resolve(context.Background(), period, "")
		assert.ErrorIs(t, err, salary.ErrInvalidPeriod, "period %q", period)
	}
}
