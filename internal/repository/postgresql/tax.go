package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mindgarden/counseling-backend-go/internal/domain/tax"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type taxLineItemRepository struct {
	db *database.DB
}

func NewTaxLineItemRepository(db *database.DB) tax.LineItemRepository {
	return &taxLineItemRepository{db: db}
}

const lineItemColumns = `id, calculation_id, tax_type, tax_name, rate, taxable_amount, tax_amount,
	description, is_active, created_at, updated_at`

func scanLineItem(row pgx.Row) (tax.LineItem, error) {
	var item tax.LineItem
	err := row.Scan(
		&item.ID, &item.CalculationID, &item.TaxType, &item.TaxName, &item.Rate,
		&item.TaxableAmount, &item.TaxAmount, &item.Description, &item.IsActive,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (r *taxLineItemRepository) Create(ctx context.Context, item tax.LineItem) (tax.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tax_line_items (
			calculation_id, tax_type, tax_name, rate, taxable_amount, tax_amount, description, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + lineItemColumns

	created, err := scanLineItem(q.QueryRow(ctx, query,
		item.CalculationID, item.TaxType, item.TaxName, item.Rate,
		item.TaxableAmount, item.TaxAmount, item.Description, item.IsActive,
	))
	if err != nil {
		return tax.LineItem{}, fmt.Errorf("failed to create tax line item: %w", err)
	}

	return created, nil
}

func (r *taxLineItemRepository) ListByCalculationID(ctx context.Context, calculationID string) ([]tax.LineItem, error) {
	return r.list(ctx, `
		SELECT `+lineItemColumns+`
		FROM tax_line_items
		WHERE calculation_id = $1
		ORDER BY created_at
	`, calculationID)
}

func (r *taxLineItemRepository) ListByType(ctx context.Context, taxType string) ([]tax.LineItem, error) {
	return r.list(ctx, `
		SELECT `+lineItemColumns+`
		FROM tax_line_items
		WHERE tax_type = $1 AND is_active = true
		ORDER BY created_at DESC
	`, taxType)
}

func (r *taxLineItemRepository) list(ctx context.Context, query string, args ...interface{}) ([]tax.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax line items: %w", err)
	}
	defer rows.Close()

	var items []tax.LineItem
	for rows.Next() {
		item, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax line item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *taxLineItemRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE tax_line_items
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate tax line item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tax.ErrLineItemNotFound
	}

	return nil
}

func (r *taxLineItemRepository) TotalByPeriod(ctx context.Context, period string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(t.tax_amount), 0)
		FROM tax_line_items t
		JOIN salary_calculations c ON c.id = t.calculation_id
		WHERE c.period = $1 AND t.is_active = true
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, period).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to total tax by period: %w", err)
	}

	return total, nil
}
