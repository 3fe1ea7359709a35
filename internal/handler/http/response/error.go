package response

import (
	"errors"
	"net/http"

	"github.com/mindgarden/counseling-backend-go/internal/domain/auth"
	"github.com/mindgarden/counseling-backend-go/internal/domain/commoncode"
	"github.com/mindgarden/counseling-backend-go/internal/domain/consultant"
	"github.com/mindgarden/counseling-backend-go/internal/domain/salary"
	"github.com/mindgarden/counseling-backend-go/internal/domain/tax"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Salary domain errors
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Period must be formatted as YYYY-MM", nil)
	case errors.Is(err, salary.ErrInvalidBaseSalary):
		BadRequest(w, "Base salary must be a non-negative amount", nil)
	case errors.Is(err, salary.ErrProfileNotFound):
		NotFound(w, "Active compensation profile not found")
	case errors.Is(err, salary.ErrProfileTypeMismatch):
		Conflict(w, "Compensation profile type does not match calculation")
	case errors.Is(err, salary.ErrOptionNotFound):
		NotFound(w, "Compensation option not found")
	case errors.Is(err, salary.ErrCalculationNotFound):
		NotFound(w, "Salary calculation not found")
	case errors.Is(err, salary.ErrCalculationNotPayable):
		Conflict(w, "Salary calculation is not in a payable state")
	case errors.Is(err, salary.ErrInvalidStatusChange):
		Conflict(w, "Invalid calculation status change")

	// Tax domain errors
	case errors.Is(err, tax.ErrInvalidAmount):
		BadRequest(w, "Taxable amount must be a non-negative value", nil)
	case errors.Is(err, tax.ErrLineItemNotFound):
		NotFound(w, "Tax line item not found")

	// Lookup errors
	case errors.Is(err, consultant.ErrConsultantNotFound):
		NotFound(w, "Consultant not found")
	case errors.Is(err, commoncode.ErrCodeNotFound):
		NotFound(w, "Common code not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
