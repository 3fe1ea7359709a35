package finance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mindgarden/counseling-backend-go/internal/domain/consultant"
	"github.com/mindgarden/counseling-backend-go/internal/domain/salary"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/ledger"
)

const (
	expenseCategory      = "salary"
	relatedEntityType    = "SALARY_CALCULATION"
	subcategoryFreelance = "freelance_salary"
	subcategoryRegular   = "regular_salary"
)

type ledgerAPI interface {
	CreateExpenseTransaction(ctx context.Context, req ledger.TransactionRequest) (string, error)
}

// Emitter mirrors finished salary calculations into the accounting ledger.
// Emission is best-effort: the calculation stands whether or not the ledger
// accepted the expense.
type Emitter struct {
	ledger         ledgerAPI
	consultantRepo consultant.Repository
}

func NewEmitter(ledgerClient ledgerAPI, consultantRepo consultant.Repository) *Emitter {
	return &Emitter{
		ledger:         ledgerClient,
		consultantRepo: consultantRepo,
	}
}

// EmitSalaryExpense posts one expense transaction for a calculation.
// Failures are logged and swallowed.
func (e *Emitter) EmitSalaryExpense(ctx context.Context, calc salary.Calculation, profile salary.Profile) {
	subcategory := subcategoryRegular
	if profile.IsFreelance() {
		subcategory = subcategoryFreelance
	}

	consultantName := calc.ConsultantID
	c, err := e.consultantRepo.GetByID(ctx, calc.ConsultantID)
	if err != nil {
		if !errors.Is(err, consultant.ErrConsultantNotFound) {
			slog.Warn("Consultant lookup failed for expense description",
				"consultant_id", calc.ConsultantID, "error", err)
		}
	} else {
		consultantName = c.Name
	}

	req := ledger.TransactionRequest{
		Category:          expenseCategory,
		Subcategory:       subcategory,
		Amount:            calc.GrossAmount,
		AmountBeforeTax:   calc.GrossAmount,
		TaxAmount:         calc.TaxAmount,
		Description:       fmt.Sprintf("%s salary - %s (%s)", consultantName, calc.Period, profile.EmploymentType),
		TransactionDate:   calc.PayDate.Format("2006-01-02"),
		RelatedEntityID:   calc.ID,
		RelatedEntityType: relatedEntityType,
	}

	transactionID, err := e.ledger.CreateExpenseTransaction(ctx, req)
	if err != nil {
		slog.Error("Failed to emit salary expense transaction",
			"calculation_id", calc.ID, "consultant_id", calc.ConsultantID, "period", calc.Period, "error", err)
		return
	}

	slog.Info("Salary expense transaction emitted",
		"calculation_id", calc.ID, "transaction_id", transactionID, "period", calc.Period)
}
