package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/ledger"
	"github.com/GlebRadaev/furniture-crm/internal/reconcile"
)

func TestOrderRequestDTO_ToInput(t *testing.T) {
	responsible := int64(3)
	tests := []struct {
		name    string
		req     OrderRequestDTO
		wantErr bool
	}{
		{
			name: "Valid request",
			req: OrderRequestDTO{
				ClientName:    "Anna",
				FurnitureType: "Kitchen",
				Status:        "Design",
				TotalPrice:    "1500.50",
				ResponsibleID: &responsible,
			},
		},
		{
			name:    "Unparsable price",
			req:     OrderRequestDTO{ClientName: "Anna", TotalPrice: "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := tt.req.ToInput()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Anna", in.ClientName)
			assert.Equal(t, domain.StatusDesign, in.Status)
			assert.True(t, decimal.RequireFromString("1500.5").Equal(in.TotalPrice))
			assert.Equal(t, &responsible, in.ResponsibleID)
		})
	}
}

func TestNewOrderResponse(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	resp := NewOrderResponse(domain.Order{
		ID:              42,
		ClientName:      "Anna",
		Status:          domain.StatusProduction,
		TotalPrice:      decimal.RequireFromString("150000"),
		PaidAmount:      decimal.RequireFromString("25000.5"),
		ResponsibleName: "Petrov",
		CreatedAt:       created,
	})

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Production", resp.Status)
	assert.Equal(t, "150000.00", resp.TotalPrice)
	assert.Equal(t, "25000.50", resp.PaidAmount)
	assert.Equal(t, "124999.50", resp.Remaining)
	assert.Equal(t, "Petrov", resp.ResponsibleName)
	assert.Equal(t, created, resp.CreatedAt)
}

func TestNewReconcileResponse(t *testing.T) {
	resp := NewReconcileResponse(ledger.Reconciliation{
		Balance: ledger.Balance{
			Total:     decimal.NewFromInt(100),
			Paid:      decimal.NewFromInt(40),
			Remaining: decimal.NewFromInt(60),
		},
		Stored:  decimal.NewFromInt(30),
		Changed: true,
	})

	assert.Equal(t, "100.00", resp.Total)
	assert.Equal(t, "40.00", resp.Paid)
	assert.Equal(t, "60.00", resp.Remaining)
	assert.Equal(t, "30.00", resp.Stored)
	assert.True(t, resp.Changed)
}

func TestNewBulkReconcileResponse(t *testing.T) {
	resp := NewBulkReconcileResponse(reconcile.Report{
		Checked:  10,
		Repaired: 2,
		Failed:   1,
		Duration: 1500 * time.Millisecond,
	})

	assert.Equal(t, BulkReconcileResponseDTO{Checked: 10, Repaired: 2, Failed: 1, DurationMs: 1500}, resp)
}

func TestNewAnalyticsResponse(t *testing.T) {
	resp := NewAnalyticsResponse(domain.Analytics{
		OrdersCount: 2,
		Turnover:    decimal.NewFromInt(300),
		Cash:        decimal.NewFromInt(120),
		Debt:        decimal.NewFromInt(180),
		ByStatus:    []domain.StatusCount{{Status: domain.StatusLead, Count: 2}},
	})

	assert.Equal(t, "300.00", resp.Turnover)
	assert.Equal(t, "120.00", resp.Cash)
	assert.Equal(t, "180.00", resp.Debt)
	assert.Equal(t, []StatusCountDTO{{Status: "Lead", Count: 2}}, resp.ByStatus)
}
