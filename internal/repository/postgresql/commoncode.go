package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mindgarden/counseling-backend-go/internal/domain/commoncode"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/database"
)

type commonCodeRepository struct {
	db *database.DB
}

func NewCommonCodeRepository(db *database.DB) commoncode.Repository {
	return &commonCodeRepository{db: db}
}

const codeColumns = `id, code_group, code_value, label, extra_data, sort_order, is_active, created_at, updated_at`

func scanCode(row pgx.Row) (commoncode.Code, error) {
	var c commoncode.Code
	err := row.Scan(
		&c.ID, &c.CodeGroup, &c.CodeValue, &c.Label, &c.ExtraData, &c.SortOrder, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *commonCodeRepository) GetByGroupAndValue(ctx context.Context, group, value string) (commoncode.Code, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + codeColumns + `
		FROM common_codes
		WHERE code_group = $1 AND code_value = $2 AND is_active = true
	`

	code, err := scanCode(q.QueryRow(ctx, query, group, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return commoncode.Code{}, commoncode.ErrCodeNotFound
		}
		return commoncode.Code{}, fmt.Errorf("failed to get common code: %w", err)
	}

	return code, nil
}

func (r *commonCodeRepository) ListByGroup(ctx context.Context, group string) ([]commoncode.Code, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + codeColumns + `
		FROM common_codes
		WHERE code_group = $1 AND is_active = true
		ORDER BY sort_order, code_value
	`

	rows, err := q.Query(ctx, query, group)
	if err != nil {
		return nil, fmt.Errorf("failed to list common codes: %w", err)
	}
	defer rows.Close()

	var codes []commoncode.Code
	for rows.Next() {
		code, err := scanCode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan common code: %w", err)
		}
		codes = append(codes, code)
	}

	return codes, rows.Err()
}
