package salary

import "errors"

var (
	ErrInvalidPeriod         = errors.New("invalid calculation period, expected YYYY-MM")
	ErrProfileNotFound       = errors.New("active compensation profile not found")
	ErrProfileTypeMismatch   = errors.New("compensation profile type does not match calculation")
	ErrOptionNotFound        = errors.New("compensation option not found")
	ErrCalculationNotFound   = errors.New("salary calculation not found")
	ErrCalculationNotPayable = errors.New("salary calculation is not in a payable state")
	ErrInvalidStatusChange   = errors.New("invalid calculation status change")
	ErrInvalidBaseSalary     = errors.New("base salary must be a non-negative amount")
)
