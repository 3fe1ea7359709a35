package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentType enum
type EmploymentType string

const (
	EmploymentFreelance EmploymentType = "FREELANCE"
	EmploymentRegular   EmploymentType = "REGULAR"
)

// Profile - Consultant compensation profile. At most one active per consultant;
// creating a new one deactivates the prior.
type Profile struct {
	ID                         string
	ConsultantID               string
	EmploymentType             EmploymentType
	BaseRate                   *decimal.Decimal // per-session rate (freelance) or monthly base (regular)
	IsBusinessRegistered       bool
	BusinessRegistrationNumber *string
	BusinessName               *string
	ContractTerms              *string
	IsActive                   bool
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

func (p Profile) IsFreelance() bool {
	return p.EmploymentType == EmploymentFreelance
}

func (p Profile) IsRegular() bool {
	return p.EmploymentType == EmploymentRegular
}

// Option - Named additional-amount item attached to a profile.
// Soft-deactivated, never hard-deleted.
type Option struct {
	ID          string
	ProfileID   string
	OptionType  string
	Amount      decimal.Decimal
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CalculationStatus enum
type CalculationStatus string

const (
	CalculationStatusPending    CalculationStatus = "PENDING"
	CalculationStatusCalculated CalculationStatus = "CALCULATED"
	CalculationStatusApproved   CalculationStatus = "APPROVED"
	CalculationStatusPaid       CalculationStatus = "PAID"
)

// Calculation - One salary calculation per (consultant, period).
// Recomputing a period replaces the prior record.
type Calculation struct {
	ID            string
	ConsultantID  string
	ProfileID     string
	Period        string // "YYYY-MM"
	WorkStartDate time.Time
	WorkEndDate   time.Time
	PayDate       time.Time
	BaseAmount    decimal.Decimal
	OptionAmount  decimal.Decimal
	GrossAmount   decimal.Decimal
	TaxAmount     decimal.Decimal
	SessionCount  int
	TotalHours    decimal.Decimal
	Status        CalculationStatus
	Details       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NetAmount returns gross minus total tax.
func (c Calculation) NetAmount() decimal.Decimal {
	return c.GrossAmount.Sub(c.TaxAmount)
}

// IsPayable reports whether the calculation can be marked as paid.
func (c Calculation) IsPayable() bool {
	return c.Status == CalculationStatusApproved
}

// PayPeriod - Resolved work range and statutory pay date for a period token.
type PayPeriod struct {
	WorkStart time.Time
	WorkEnd   time.Time
	PayDate   time.Time
}
