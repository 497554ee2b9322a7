package paymentservice

//go:generate mockgen -source=paymentservice.go -destination=paymentservice_mock.go -package=paymentservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/events"
	"github.com/GlebRadaev/furniture-crm/internal/ledger"
	"github.com/GlebRadaev/furniture-crm/internal/pg"
	"github.com/GlebRadaev/furniture-crm/pkg/lock"
)

type OrderRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	UpdatePaidAmount(ctx context.Context, id int64, paid decimal.Decimal) error
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Payment, error)
	Delete(ctx context.Context, orderID, paymentID int64) (bool, error)
}

// Statement is an order together with its payment log and balance.
type Statement struct {
	Order    domain.Order
	Payments []domain.Payment
	Balance  ledger.Balance
}

type Service struct {
	orderRepo   OrderRepo
	paymentRepo PaymentRepo
	txManager   pg.TXManager
	locker      lock.Locker
	publisher   events.Publisher
	mode        ledger.Mode
	now         func() time.Time
}

func New(
	orderRepo OrderRepo,
	paymentRepo PaymentRepo,
	txManager pg.TXManager,
	locker lock.Locker,
	publisher events.Publisher,
	mode ledger.Mode,
) *Service {
	return &Service{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		locker:      locker,
		publisher:   publisher,
		mode:        mode,
		now:         time.Now,
	}
}

func (s *Service) Mode() ledger.Mode {
	return s.mode
}

// ListPayments returns the order's payment log and balance. A stored
// paid_amount that has drifted from the log is repaired on the way.
func (s *Service) ListPayments(ctx context.Context, orderID int64) (*Statement, error) {
	order, payments, err := s.load(ctx, orderID, s.orderRepo.FindByID)
	if err != nil {
		return nil, err
	}

	rec := ledger.Reconcile(*order, payments)
	if rec.Changed && rec.OverTotal() {
		zap.L().Error("payment log exceeds order total, paid amount left as stored",
			zap.Int64("order_id", orderID),
			zap.String("total", rec.Total.String()),
			zap.String("logged", rec.Paid.String()))
	} else if rec.Changed {
		zap.L().Warn("paid amount drifted from payment log",
			zap.Int64("order_id", orderID),
			zap.String("stored", rec.Stored.String()),
			zap.String("logged", rec.Paid.String()))
		if _, err := s.Reconcile(ctx, orderID); err != nil {
			return nil, err
		}
		order.PaidAmount = rec.Paid
	}

	return &Statement{
		Order:    *order,
		Payments: payments,
		Balance:  rec.Balance,
	}, nil
}

// RecordPayment appends a payment to the order's log. Invalid and
// over-paying amounts are rejected without writing anything.
func (s *Service) RecordPayment(ctx context.Context, orderID int64, amount decimal.Decimal, comment string, at time.Time) (*domain.Payment, ledger.Balance, error) {
	if at.IsZero() {
		at = s.now()
	}

	var (
		created *domain.Payment
		balance ledger.Balance
	)
	err := s.withOrder(ctx, orderID, func(ctx context.Context, order *domain.Order, payments []domain.Payment) error {
		payment, next, err := ledger.RecordPayment(*order, payments, amount, comment, at)
		if err != nil {
			zap.L().Info("payment rejected",
				zap.Int64("order_id", orderID), zap.String("amount", amount.String()), zap.Error(err))
			return err
		}
		created, err = s.paymentRepo.Create(ctx, &payment)
		if err != nil {
			return err
		}
		balance = next
		return s.storePaid(ctx, orderID, next.Paid)
	})
	if err != nil {
		return nil, ledger.Balance{}, err
	}

	zap.L().Info("payment recorded",
		zap.Int64("order_id", orderID), zap.Int64("payment_id", created.ID), zap.String("amount", amount.String()))
	s.publish(ctx, events.New(events.PaymentRecorded, orderID, balance.Total, balance.Paid).
		WithPayment(created.ID, created.Amount))
	return created, balance, nil
}

// DeletePayment removes a payment from the order's log.
func (s *Service) DeletePayment(ctx context.Context, orderID, paymentID int64) (ledger.Balance, error) {
	var (
		removed domain.Payment
		balance ledger.Balance
	)
	err := s.withOrder(ctx, orderID, func(ctx context.Context, order *domain.Order, payments []domain.Payment) error {
		for _, p := range payments {
			if p.ID == paymentID {
				removed = p
			}
		}
		_, next, err := ledger.DeletePayment(*order, payments, paymentID)
		if err != nil {
			return err
		}
		deleted, err := s.paymentRepo.Delete(ctx, orderID, paymentID)
		if err != nil {
			return err
		}
		if !deleted {
			return ledger.ErrPaymentNotFound
		}
		balance = next
		return s.storePaid(ctx, orderID, next.Paid)
	})
	if err != nil {
		return ledger.Balance{}, err
	}

	zap.L().Info("payment deleted", zap.Int64("order_id", orderID), zap.Int64("payment_id", paymentID))
	s.publish(ctx, events.New(events.PaymentDeleted, orderID, balance.Total, balance.Paid).
		WithPayment(removed.ID, removed.Amount))
	return balance, nil
}

// Reconcile recomputes the order's paid amount from its log and, in
// materialized mode, stores it if it drifted.
func (s *Service) Reconcile(ctx context.Context, orderID int64) (ledger.Reconciliation, error) {
	var rec ledger.Reconciliation
	err := s.withOrder(ctx, orderID, func(ctx context.Context, order *domain.Order, payments []domain.Payment) error {
		rec = ledger.Reconcile(*order, payments)
		if !rec.Changed {
			return nil
		}
		if rec.OverTotal() {
			zap.L().Error("can't reconcile order, payment log exceeds total",
				zap.Int64("order_id", orderID),
				zap.String("total", rec.Total.String()),
				zap.String("logged", rec.Paid.String()))
			return ledger.ErrLedgerOverTotal
		}
		return s.storePaid(ctx, orderID, rec.Paid)
	})
	if err != nil {
		return ledger.Reconciliation{}, err
	}

	if rec.Changed {
		zap.L().Info("paid amount reconciled",
			zap.Int64("order_id", orderID),
			zap.String("stored", rec.Stored.String()),
			zap.String("paid", rec.Paid.String()))
		s.publish(ctx, events.New(events.BalanceReconciled, orderID, rec.Total, rec.Paid))
	}
	return rec, nil
}

type orderFn func(ctx context.Context, order *domain.Order, payments []domain.Payment) error

// withOrder runs fn holding the order's ledger lock, inside a transaction
// that has the order row locked.
func (s *Service) withOrder(ctx context.Context, orderID int64, fn orderFn) error {
	unlock, err := s.locker.Lock(ctx, ledger.LockKey(orderID))
	if err != nil {
		zap.L().Error("can't lock order ledger", zap.Int64("order_id", orderID), zap.Error(err))
		return err
	}
	defer unlock()

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, payments, err := s.load(ctx, orderID, s.orderRepo.FindByIDForUpdate)
		if err != nil {
			return err
		}
		return fn(ctx, order, payments)
	})
}

func (s *Service) load(ctx context.Context, orderID int64, find func(context.Context, int64) (*domain.Order, error)) (*domain.Order, []domain.Payment, error) {
	order, err := find(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrOrderNotFound
	}
	payments, err := s.paymentRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if s.mode == ledger.ModeDerived {
		order.PaidAmount = ledger.ComputeBalance(order.TotalPrice, payments).Paid
	}
	return order, payments, nil
}

func (s *Service) storePaid(ctx context.Context, orderID int64, paid decimal.Decimal) error {
	if s.mode == ledger.ModeDerived {
		return nil
	}
	return s.orderRepo.UpdatePaidAmount(ctx, orderID, paid)
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		zap.L().Error("event not published",
			zap.String("type", string(event.Type)), zap.Int64("order_id", event.OrderID), zap.Error(err))
	}
}
