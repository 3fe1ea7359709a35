package postgresql

import (
	"context"

	"github.com/mindgarden/counseling-backend-go/internal/pkg/database"
)

// GetQuerier returns either the in-flight transaction or the pool.
// Used in repositories to support both transactional and non-transactional operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	return database.QuerierFromContext(ctx, db)
}
