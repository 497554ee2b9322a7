// Package reconcile repairs the paid amount of every order on demand.
package reconcile

//go:generate mockgen -source=reconcile.go -destination=reconcile_mock.go -package=reconcile

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/furniture-crm/internal/ledger"
)

type OrderRepo interface {
	ListIDs(ctx context.Context) ([]int64, error)
}

type Ledger interface {
	Reconcile(ctx context.Context, orderID int64) (ledger.Reconciliation, error)
}

type Report struct {
	Checked  int           `json:"checked"`
	Repaired int           `json:"repaired"`
	Failed   int           `json:"failed"`
	Skipped  int           `json:"skipped"`
	Duration time.Duration `json:"-"`
}

type Service struct {
	orderRepo  OrderRepo
	ledger     Ledger
	workerPool WorkerPoolI
	inFlight   sync.Map
}

func New(orderRepo OrderRepo, ledger Ledger, workerPool WorkerPoolI) *Service {
	return &Service{
		orderRepo:  orderRepo,
		ledger:     ledger,
		workerPool: workerPool,
	}
}

// Run reconciles every order once. Orders already being reconciled by an
// overlapping run are skipped. A failure on one order does not stop the
// others; it is counted in the report.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	started := time.Now()
	ids, err := s.orderRepo.ListIDs(ctx)
	if err != nil {
		zap.L().Error("failed to fetch orders for reconciliation", zap.Error(err))
		return nil, err
	}

	var (
		checked, repaired, failed, skipped atomic.Int64
		done                               sync.WaitGroup
		g                                  errgroup.Group
	)
	for _, id := range ids {
		id := id

		if _, loaded := s.inFlight.LoadOrStore(id, struct{}{}); loaded {
			skipped.Add(1)
			continue
		}

		done.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer done.Done()
				defer s.inFlight.Delete(id)

				rec, err := s.ledger.Reconcile(ctx, id)
				checked.Add(1)
				if err != nil {
					failed.Add(1)
					return fmt.Errorf("reconcile order %d: %w", id, err)
				}
				if rec.Changed {
					repaired.Add(1)
				}
				return nil
			})
			if err != nil {
				done.Done()
				s.inFlight.Delete(id)
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	done.Wait()

	report := &Report{
		Checked:  int(checked.Load()),
		Repaired: int(repaired.Load()),
		Failed:   int(failed.Load()),
		Skipped:  int(skipped.Load()),
		Duration: time.Since(started),
	}
	zap.L().Info("reconciliation finished",
		zap.Int("orders", len(ids)),
		zap.Int("checked", report.Checked),
		zap.Int("repaired", report.Repaired),
		zap.Int("failed", report.Failed),
		zap.Int("skipped", report.Skipped),
		zap.Duration("duration", report.Duration))
	return report, err
}
