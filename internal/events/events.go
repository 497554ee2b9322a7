// Package events publishes ledger changes after they are committed.
package events

//go:generate mockgen -source=events.go -destination=events_mock.go -package=events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/furniture-crm/pkg/money"
)

type Type string

const (
	PaymentRecorded   Type = "payment.recorded"
	PaymentDeleted    Type = "payment.deleted"
	BalanceReconciled Type = "balance.reconciled"
)

type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OrderID    int64     `json:"order_id"`
	PaymentID  int64     `json:"payment_id,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	Total      string    `json:"total"`
	Paid       string    `json:"paid"`
	Remaining  string    `json:"remaining"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New builds an event carrying the order's balance after the change.
func New(t Type, orderID int64, total, paid decimal.Decimal) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		OrderID:    orderID,
		Total:      money.Format(total),
		Paid:       money.Format(paid),
		Remaining:  money.Format(total.Sub(paid)),
		OccurredAt: time.Now().UTC(),
	}
}

// WithPayment attaches the payment the event is about.
func (e Event) WithPayment(id int64, amount decimal.Decimal) Event {
	e.PaymentID = id
	e.Amount = money.Format(amount)
	return e
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
