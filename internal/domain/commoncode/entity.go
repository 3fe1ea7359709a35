package commoncode

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Code groups consumed by the salary engine.
const (
	GroupPayDay        = "SALARY_PAY_DAY"
	GroupFreelanceRate = "FREELANCE_BASE_RATE"
	GroupOptionType    = "SALARY_OPTION_TYPE"
)

// Code - One externally managed configuration value. ExtraData carries
// code-specific JSON (dayOfMonth, rate, baseAmount).
type Code struct {
	ID        string
	CodeGroup string
	CodeValue string
	Label     string
	ExtraData json.RawMessage
	SortOrder int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExtraInt extracts an integer field from ExtraData. The value may be stored
// as a JSON number or a numeric string.
func (c Code) ExtraInt(key string) (int, bool) {
	v, ok := c.extra(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// ExtraDecimal extracts a decimal field from ExtraData.
func (c Code) ExtraDecimal(key string) (decimal.Decimal, bool) {
	v, ok := c.extra(key)
	if !ok {
		return decimal.Zero, false
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

func (c Code) extra(key string) (any, bool) {
	if len(c.ExtraData) == 0 {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(c.ExtraData, &m); err != nil {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}
