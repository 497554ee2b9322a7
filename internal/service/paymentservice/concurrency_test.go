package paymentservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/events"
	"github.com/GlebRadaev/furniture-crm/internal/ledger"
	"github.com/GlebRadaev/furniture-crm/internal/pg"
	"github.com/GlebRadaev/furniture-crm/pkg/lock"
)

// memStore keeps one order and its log in memory. Reads are deliberately
// slow so that unserialised writers would interleave.
type memStore struct {
	mu       sync.Mutex
	order    domain.Order
	payments []domain.Payment
	nextID   int64
}

func (s *memStore) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.order.ID {
		return nil, nil
	}
	o := s.order
	return &o, nil
}

func (s *memStore) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	time.Sleep(5 * time.Millisecond)
	return s.FindByID(ctx, id)
}

func (s *memStore) UpdatePaidAmount(_ context.Context, _ int64, paid decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.PaidAmount = paid
	return nil
}

func (s *memStore) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	s.payments = append(s.payments, *p)
	return p, nil
}

func (s *memStore) ListByOrder(_ context.Context, _ int64) ([]domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Payment(nil), s.payments...), nil
}

func (s *memStore) Delete(_ context.Context, _, paymentID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.payments {
		if p.ID == paymentID {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type passthroughTx struct{}

func (passthroughTx) Begin(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }

func TestRecordPayment_ConcurrentPaymentsAreSerialised(t *testing.T) {
	store := &memStore{order: domain.Order{ID: 1, TotalPrice: decimal.NewFromInt(1000)}}
	service := New(store, store, passthroughTx{}, lock.NewKeyedMutex(), events.NopPublisher{}, ledger.ModeMaterialized)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = service.RecordPayment(context.Background(), 1, decimal.NewFromInt(600), "", time.Now())
		}(i)
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ledger.ErrOverpaymentRejected):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, rejected)

	st, err := service.ListPayments(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, st.Payments, 1)
	assert.Equal(t, "600.00", st.Balance.Paid.StringFixed(2))
	assert.True(t, store.order.PaidAmount.Equal(decimal.NewFromInt(600)))
}
