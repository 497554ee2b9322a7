package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/pg"
	"github.com/GlebRadaev/furniture-crm/pkg/money"
)

const orderColumns = `o.id, o.client_name, o.phone, o.address, o.furniture_type, o.status,
        o.total_price, o.paid_amount, o.comment, o.responsible_id, COALESCE(u.full_name, ''), o.created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
        INSERT INTO orders (client_name, phone, address, furniture_type, status, total_price, paid_amount, comment, responsible_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		order.ClientName, order.Phone, order.Address, order.FurnitureType, string(order.Status),
		money.ToMinor(order.TotalPrice), money.ToMinor(order.PaidAmount), order.Comment, order.ResponsibleID,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, pg.StorageErr(err)
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders o
        LEFT JOIN users u ON u.id = o.responsible_id
        WHERE o.id = $1
    `
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate reads the order and locks its row until the surrounding
// transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders o
        LEFT JOIN users u ON u.id = o.responsible_id
        WHERE o.id = $1
        FOR UPDATE OF o
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) findOne(ctx context.Context, query string, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Int64("order_id", id), zap.Error(err))
		return nil, pg.StorageErr(err)
	}
	return order, nil
}

func (r *Repository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders o
        LEFT JOIN users u ON u.id = o.responsible_id
        WHERE ($1 = '' OR o.status = $1)
        ORDER BY o.id DESC
    `
	rows, err := r.db.Query(ctx, query, string(filter.Status))
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, pg.StorageErr(err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, pg.StorageErr(err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StorageErr(err)
	}
	return orders, nil
}

func (r *Repository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM orders ORDER BY id`)
	if err != nil {
		zap.L().Error("can't get order ids", zap.Error(err))
		return nil, pg.StorageErr(err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, pg.StorageErr(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StorageErr(err)
	}
	return ids, nil
}

// Update writes the editable fields. paid_amount is owned by the ledger and
// left untouched.
func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET client_name = $1, phone = $2, address = $3, furniture_type = $4, status = $5,
            total_price = $6, comment = $7, responsible_id = $8
        WHERE id = $9
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			order.ClientName, order.Phone, order.Address, order.FurnitureType, string(order.Status),
			money.ToMinor(order.TotalPrice), order.Comment, order.ResponsibleID, order.ID,
		)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return pg.StorageErr(err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrOrderNotFound
		}
		return nil
	})
}

func (r *Repository) UpdatePaidAmount(ctx context.Context, id int64, paid decimal.Decimal) error {
	query := `
        UPDATE orders
        SET paid_amount = $1
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, money.ToMinor(paid), id)
		if err != nil {
			zap.L().Error("failed to update paid amount", zap.Int64("order_id", id), zap.Error(err))
			return pg.StorageErr(err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("update paid amount of order %d: %w", id, domain.ErrOrderNotFound)
		}
		return nil
	})
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order      domain.Order
		status     string
		totalMinor int64
		paidMinor  int64
	)
	err := row.Scan(
		&order.ID, &order.ClientName, &order.Phone, &order.Address, &order.FurnitureType, &status,
		&totalMinor, &paidMinor, &order.Comment, &order.ResponsibleID, &order.ResponsibleName, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Status = domain.Status(status)
	order.TotalPrice = money.FromMinor(totalMinor)
	order.PaidAmount = money.FromMinor(paidMinor)
	return &order, nil
}
