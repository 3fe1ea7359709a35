package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mindgarden/counseling-backend-go/internal/domain/consultant"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/database"
)

type consultantRepository struct {
	db *database.DB
}

func NewConsultantRepository(db *database.DB) consultant.Repository {
	return &consultantRepository{db: db}
}

func (r *consultantRepository) GetByID(ctx context.Context, id string) (consultant.Consultant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, COALESCE(grade, ''), branch_id, is_active, created_at, updated_at
		FROM consultants
		WHERE id = $1
	`

	var c consultant.Consultant
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Grade, &c.BranchID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return consultant.Consultant{}, consultant.ErrConsultantNotFound
		}
		return consultant.Consultant{}, fmt.Errorf("failed to get consultant: %w", err)
	}

	return c, nil
}
