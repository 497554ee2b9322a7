package dto

import (
	"time"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/ledger"
	"github.com/GlebRadaev/furniture-crm/pkg/money"
)

type PaymentRequestDTO struct {
	Amount  string     `json:"amount" validate:"required,money" example:"25000.00"`
	Comment string     `json:"comment" validate:"max=500" example:"Deposit"`
	PaidAt  *time.Time `json:"paid_at,omitempty" example:"2024-03-01T10:00:00Z"`
}

type PaymentResponseDTO struct {
	ID      int64     `json:"id" example:"7"`
	OrderID int64     `json:"order_id" example:"42"`
	Amount  string    `json:"amount" example:"25000.00"`
	PaidAt  time.Time `json:"paid_at" example:"2024-03-01T10:00:00Z"`
	Comment string    `json:"comment" example:"Deposit"`
}

func NewPaymentResponse(p domain.Payment) PaymentResponseDTO {
	return PaymentResponseDTO{
		ID:      p.ID,
		OrderID: p.OrderID,
		Amount:  money.Format(p.Amount),
		PaidAt:  p.PaidAt,
		Comment: p.Comment,
	}
}

type BalanceResponseDTO struct {
	Total     string `json:"total" example:"150000.00"`
	Paid      string `json:"paid" example:"25000.00"`
	Remaining string `json:"remaining" example:"125000.00"`
}

func NewBalanceResponse(b ledger.Balance) BalanceResponseDTO {
	return BalanceResponseDTO{
		Total:     money.Format(b.Total),
		Paid:      money.Format(b.Paid),
		Remaining: money.Format(b.Remaining),
	}
}

type PaymentsResponseDTO struct {
	OrderID  int64                `json:"order_id" example:"42"`
	Payments []PaymentResponseDTO `json:"payments"`
	Balance  BalanceResponseDTO   `json:"balance"`
}

type RecordPaymentResponseDTO struct {
	Payment PaymentResponseDTO `json:"payment"`
	Balance BalanceResponseDTO `json:"balance"`
}

type ReconcileResponseDTO struct {
	BalanceResponseDTO
	Stored  string `json:"stored" example:"20000.00"`
	Changed bool   `json:"changed" example:"true"`
}

func NewReconcileResponse(r ledger.Reconciliation) ReconcileResponseDTO {
	return ReconcileResponseDTO{
		BalanceResponseDTO: NewBalanceResponse(r.Balance),
		Stored:             money.Format(r.Stored),
		Changed:            r.Changed,
	}
}
