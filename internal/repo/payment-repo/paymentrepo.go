package paymentrepo

import (
	"context"

	"github.com/shopspring/decimal"
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

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (order_id, amount, paid_at, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, payment.OrderID, money.ToMinor(payment.Amount), payment.PaidAt, payment.Comment).
		Scan(&payment.ID)
	if err != nil {
		zap.L().Error("can't save payment", zap.Int64("order_id", payment.OrderID), zap.Error(err))
		return nil, pg.StorageErr(err)
	}
	return payment, nil
}

// ListByOrder returns the payment log of an order, oldest first.
func (r *Repository) ListByOrder(ctx context.Context, orderID int64) ([]domain.Payment, error) {
	query := `
        SELECT id, order_id, amount, paid_at, comment
        FROM payments
        WHERE order_id = $1
        ORDER BY paid_at, id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Int64("order_id", orderID), zap.Error(err))
		return nil, pg.StorageErr(err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var (
			p      domain.Payment
			amount int64
		)
		if err := rows.Scan(&p.ID, &p.OrderID, &amount, &p.PaidAt, &p.Comment); err != nil {
			zap.L().Error("failed to scan payment row", zap.Error(err))
			return nil, pg.StorageErr(err)
		}
		p.Amount = money.FromMinor(amount)
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StorageErr(err)
	}
	return payments, nil
}

// Delete removes a payment from the order's log. It reports whether a row
// was removed.
func (r *Repository) Delete(ctx context.Context, orderID, paymentID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1 AND order_id = $2`, paymentID, orderID)
	if err != nil {
		zap.L().Error("failed to delete payment", zap.Int64("payment_id", paymentID), zap.Error(err))
		return false, pg.StorageErr(err)
	}
	return tag.RowsAffected() > 0, nil
}

// SumByOrder returns the logged sum of every order that has payments.
func (r *Repository) SumByOrder(ctx context.Context) (map[int64]decimal.Decimal, error) {
	rows, err := r.db.Query(ctx, `SELECT order_id, SUM(amount)::BIGINT FROM payments GROUP BY order_id`)
	if err != nil {
		zap.L().Error("failed to sum payments", zap.Error(err))
		return nil, pg.StorageErr(err)
	}
	defer rows.Close()

	sums := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var orderID, sum int64
		if err := rows.Scan(&orderID, &sum); err != nil {
			return nil, pg.StorageErr(err)
		}
		sums[orderID] = money.FromMinor(sum)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StorageErr(err)
	}
	return sums, nil
}
