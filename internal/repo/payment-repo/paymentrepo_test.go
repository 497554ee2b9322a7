package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/pkg/money"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	paidAt := time.Now()
	insert := `INSERT INTO payments (order_id, amount, paid_at, comment) VALUES ($1, $2, $3, $4) RETURNING id`

	tests := []struct {
		name      string
		payment   *domain.Payment
		mockSetup func()
		expectErr bool
		result    *domain.Payment
	}{
		{
			name: "Create payment successfully",
			payment: &domain.Payment{
				OrderID: 7,
				Amount:  money.FromMinor(60000),
				PaidAt:  paidAt,
				Comment: "deposit",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insert)).
					WithArgs(int64(7), int64(60000), pgxmock.AnyArg(), "deposit").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
			},
			result: &domain.Payment{
				ID:      1,
				OrderID: 7,
				Amount:  money.FromMinor(60000),
				PaidAt:  paidAt,
				Comment: "deposit",
			},
		},
		{
			name: "Database error",
			payment: &domain.Payment{
				OrderID: 7,
				Amount:  money.FromMinor(60000),
				PaidAt:  paidAt,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insert)).
					WithArgs(int64(7), int64(60000), pgxmock.AnyArg(), "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(ctx, tt.payment)

			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListByOrder(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	paidAt := time.Now()
	query := `SELECT id, order_id, amount, paid_at, comment FROM payments WHERE order_id = $1 ORDER BY paid_at, id`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Payment
	}{
		{
			name: "Payments listed",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "order_id", "amount", "paid_at", "comment"}).
					AddRow(int64(1), int64(7), int64(30000), paidAt, "").
					AddRow(int64(2), int64(7), int64(40000), paidAt, "second")
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(7)).WillReturnRows(rows)
			},
			result: []domain.Payment{
				{ID: 1, OrderID: 7, Amount: money.FromMinor(30000), PaidAt: paidAt},
				{ID: 2, OrderID: 7, Amount: money.FromMinor(40000), PaidAt: paidAt, Comment: "second"},
			},
		},
		{
			name: "Empty log",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "order_id", "amount", "paid_at", "comment"})
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(7)).WillReturnRows(rows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(7)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Scan error",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "order_id", "amount", "paid_at", "comment"}).
					AddRow(int64(1), int64(7), "invalid_value", paidAt, "")
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(7)).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByOrder(ctx, 7)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	query := `DELETE FROM payments WHERE id = $1 AND order_id = $2`

	tests := []struct {
		name      string
		mockSetup func()
		deleted   bool
		expectErr bool
	}{
		{
			name: "Payment deleted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(int64(3), int64(7)).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			deleted: true,
		},
		{
			name: "Payment missing",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(int64(3), int64(7)).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(int64(3), int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.Delete(ctx, 7, 3)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.deleted, deleted)
		})
	}
}

func TestRepository_SumByOrder(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"order_id", "sum"}).
		AddRow(int64(1), int64(70000)).
		AddRow(int64(2), int64(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT order_id, SUM(amount)::BIGINT FROM payments GROUP BY order_id`)).
		WillReturnRows(rows)

	sums, err := repo.SumByOrder(context.Background())

	assert.NoError(t, err)
	assert.Len(t, sums, 2)
	assert.Equal(t, "700.00", money.Format(sums[1]))
	assert.Equal(t, "0.01", money.Format(sums[2]))
	assert.NoError(t, mock.ExpectationsWereMet())
}
