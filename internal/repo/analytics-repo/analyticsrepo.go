package analyticsrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/pg"
	"github.com/GlebRadaev/furniture-crm/pkg/money"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Totals aggregates the order book per status. When fromLog is set the paid
// sum is taken from the payment log instead of the cached paid_amount.
func (r *Repository) Totals(ctx context.Context, fromLog bool) ([]domain.StatusTotals, error) {
	query := `
        SELECT o.status, COUNT(*),
               COALESCE(SUM(o.total_price), 0)::BIGINT,
               COALESCE(SUM(CASE WHEN $1 THEN COALESCE(p.paid, 0) ELSE o.paid_amount END), 0)::BIGINT
        FROM orders o
        LEFT JOIN (
            SELECT order_id, SUM(amount) AS paid FROM payments GROUP BY order_id
        ) p ON p.order_id = o.id
        GROUP BY o.status
    `
	rows, err := r.db.Query(ctx, query, fromLog)
	if err != nil {
		zap.L().Error("failed to aggregate orders", zap.Error(err))
		return nil, pg.StorageErr(err)
	}
	defer rows.Close()

	var result []domain.StatusTotals
	for rows.Next() {
		var (
			status      string
			count       int
			total, paid int64
		)
		if err := rows.Scan(&status, &count, &total, &paid); err != nil {
			zap.L().Error("failed to scan aggregate row", zap.Error(err))
			return nil, pg.StorageErr(err)
		}
		result = append(result, domain.StatusTotals{
			Status: domain.Status(status),
			Count:  count,
			Totals: domain.Totals{
				Total: money.FromMinor(total),
				Paid:  money.FromMinor(paid),
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StorageErr(err)
	}
	return result, nil
}
