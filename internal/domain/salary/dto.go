package salary

import (
	"time"

	"github.com/mindgarden/counseling-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PROFILE DTOs ==========

type CreateProfileRequest struct {
	ConsultantID               string           `json:"-"`
	EmploymentType             string           `json:"employment_type"` // "FREELANCE" or "REGULAR"
	BaseRate                   *decimal.Decimal `json:"base_rate,omitempty"`
	IsBusinessRegistered       *bool            `json:"is_business_registered,omitempty"`
	BusinessRegistrationNumber *string          `json:"business_registration_number,omitempty"`
	BusinessName               *string          `json:"business_name,omitempty"`
	ContractTerms              *string          `json:"contract_terms,omitempty"`
}

func (r *CreateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ConsultantID) {
		errs = append(errs, validator.ValidationError{Field: "consultant_id", Message: "is required"})
	}
	if r.EmploymentType != string(EmploymentFreelance) && r.EmploymentType != string(EmploymentRegular) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "must be 'FREELANCE' or 'REGULAR'"})
	}
	if r.BaseRate != nil && r.BaseRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_rate", Message: "must be non-negative"})
	}
	registered := r.IsBusinessRegistered != nil && *r.IsBusinessRegistered
	if registered && (r.BusinessRegistrationNumber == nil || validator.IsEmpty(*r.BusinessRegistrationNumber)) {
		errs = append(errs, validator.ValidationError{Field: "business_registration_number", Message: "is required when business registered"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfileResponse struct {
	ID                         string           `json:"id"`
	ConsultantID               string           `json:"consultant_id"`
	EmploymentType             string           `json:"employment_type"`
	BaseRate                   *decimal.Decimal `json:"base_rate,omitempty"`
	IsBusinessRegistered       bool             `json:"is_business_registered"`
	BusinessRegistrationNumber *string          `json:"business_registration_number,omitempty"`
	BusinessName               *string          `json:"business_name,omitempty"`
	ContractTerms              *string          `json:"contract_terms,omitempty"`
	IsActive                   bool             `json:"is_active"`
	CreatedAt                  time.Time        `json:"created_at"`
}

// ========== OPTION DTOs ==========

type AddOptionRequest struct {
	ProfileID   string          `json:"-"`
	OptionType  string          `json:"option_type"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
}

func (r *AddOptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProfileID) {
		errs = append(errs, validator.ValidationError{Field: "profile_id", Message: "is required"})
	}
	if validator.IsEmpty(r.OptionType) {
		errs = append(errs, validator.ValidationError{Field: "option_type", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOptionRequest struct {
	ID          string
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
}

type OptionResponse struct {
	ID          string          `json:"id"`
	ProfileID   string          `json:"profile_id"`
	OptionType  string          `json:"option_type"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	IsActive    bool            `json:"is_active"`
}

// ========== CALCULATION DTOs ==========

type CalculateFreelanceRequest struct {
	ConsultantID string `json:"-"`
	Period       string `json:"period"` // "YYYY-MM"
	PayDayCode   string `json:"pay_day_code,omitempty"`
}

func (r *CalculateFreelanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ConsultantID) {
		errs = append(errs, validator.ValidationError{Field: "consultant_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be formatted as YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculateRegularRequest struct {
	ConsultantID string          `json:"-"`
	Period       string          `json:"period"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	PayDayCode   string          `json:"pay_day_code,omitempty"`
}

func (r *CalculateRegularRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ConsultantID) {
		errs = append(errs, validator.ValidationError{Field: "consultant_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be formatted as YYYY-MM"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculationResponse struct {
	ID            string          `json:"id"`
	ConsultantID  string          `json:"consultant_id"`
	ProfileID     string          `json:"profile_id"`
	Period        string          `json:"period"`
	WorkStartDate string          `json:"work_start_date"`
	WorkEndDate   string          `json:"work_end_date"`
	PayDate       string          `json:"pay_date"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	OptionAmount  decimal.Decimal `json:"option_amount"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	SessionCount  int             `json:"session_count"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	Status        string          `json:"status"`
	Details       string          `json:"details,omitempty"`
}

// ========== STATISTICS DTOs ==========

type MonthlyStatisticsResponse struct {
	Period            string          `json:"period"`
	TotalCalculations int             `json:"total_calculations"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	AverageAmount     decimal.Decimal `json:"average_amount"`
}

type ProfileTypeStatisticsResponse struct {
	TypeCount     map[string]int `json:"type_count"`
	TotalProfiles int            `json:"total_profiles"`
}
