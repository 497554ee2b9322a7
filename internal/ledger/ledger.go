// Package ledger keeps an order's paid amount consistent with its payment log.
//
// All functions are pure: they take the current order and its full payment
// log and return the computed result. Persisting the outcome, and serialising
// calls per order, is the caller's job.
package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/pkg/money"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrOverpaymentRejected = errors.New("payment exceeds the remaining balance")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrTotalBelowPaid      = errors.New("total price is below the amount already paid")
	ErrLedgerOverTotal     = errors.New("payment log exceeds the order total")
)

// Mode says how the order's paid_amount column is maintained.
type Mode string

const (
	// ModeMaterialized rewrites paid_amount in the same transaction as every
	// payment change and on reconcile.
	ModeMaterialized Mode = "materialized"
	// ModeDerived never writes paid_amount; reads project it from the log.
	ModeDerived Mode = "derived"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMaterialized, ModeDerived:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown paid amount mode %q", s)
}

// LockKey names the lock every writer of an order's ledger must hold.
func LockKey(orderID int64) string {
	return "order:" + strconv.FormatInt(orderID, 10)
}

type Balance struct {
	Total     decimal.Decimal
	Paid      decimal.Decimal
	Remaining decimal.Decimal
}

type Reconciliation struct {
	Balance
	// Stored is the paid_amount the order carried before reconciliation.
	Stored  decimal.Decimal
	Changed bool
}

// OverTotal reports a log that sums to more than the order total. Such a
// paid amount can not be stored and needs a manual correction.
func (r Reconciliation) OverTotal() bool {
	return r.Remaining.IsNegative()
}

func ComputeBalance(total decimal.Decimal, payments []domain.Payment) Balance {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	return newBalance(total, paid)
}

// RecordPayment validates a new payment against the log and returns the
// payment to insert together with the resulting balance. On error nothing
// must be written.
func RecordPayment(order domain.Order, payments []domain.Payment, amount decimal.Decimal, comment string, at time.Time) (domain.Payment, Balance, error) {
	if !amount.IsPositive() || !money.HasScale(amount) || !money.Fits(amount) {
		return domain.Payment{}, Balance{}, ErrInvalidAmount
	}

	current := ComputeBalance(order.TotalPrice, payments)
	paid := current.Paid.Add(amount)
	if paid.GreaterThan(order.TotalPrice) {
		return domain.Payment{}, current, ErrOverpaymentRejected
	}

	payment := domain.Payment{
		OrderID: order.ID,
		Amount:  amount,
		PaidAt:  at,
		Comment: comment,
	}
	return payment, newBalance(order.TotalPrice, paid), nil
}

// DeletePayment removes paymentID from the log and returns what is left.
func DeletePayment(order domain.Order, payments []domain.Payment, paymentID int64) ([]domain.Payment, Balance, error) {
	idx := -1
	for i, p := range payments {
		if p.ID == paymentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ComputeBalance(order.TotalPrice, payments), ErrPaymentNotFound
	}

	rest := make([]domain.Payment, 0, len(payments)-1)
	rest = append(rest, payments[:idx]...)
	rest = append(rest, payments[idx+1:]...)
	return rest, ComputeBalance(order.TotalPrice, rest), nil
}

// Reconcile recomputes the paid total from the log and reports whether the
// order's stored paid_amount has drifted from it.
func Reconcile(order domain.Order, payments []domain.Payment) Reconciliation {
	balance := ComputeBalance(order.TotalPrice, payments)
	return Reconciliation{
		Balance: balance,
		Stored:  order.PaidAmount,
		Changed: !balance.Paid.Equal(order.PaidAmount),
	}
}

// CheckTotal guards a price correction: the new total can not be negative,
// exceed the storable range or drop below what has already been paid.
func CheckTotal(total decimal.Decimal, payments []domain.Payment) error {
	if total.IsNegative() || !money.HasScale(total) || !money.Fits(total) {
		return ErrInvalidAmount
	}
	if ComputeBalance(total, payments).Remaining.IsNegative() {
		return ErrTotalBelowPaid
	}
	return nil
}

func newBalance(total, paid decimal.Decimal) Balance {
	return Balance{
		Total:     total,
		Paid:      paid,
		Remaining: total.Sub(paid),
	}
}
