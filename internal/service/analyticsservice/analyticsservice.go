package analyticsservice

//go:generate mockgen -source=analyticsservice.go -destination=analyticsservice_mock.go -package=analyticsservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/ledger"
)

type Repo interface {
	Totals(ctx context.Context, fromLog bool) ([]domain.StatusTotals, error)
}

type Service struct {
	repo Repo
	mode ledger.Mode
}

func New(repo Repo, mode ledger.Mode) *Service {
	return &Service{
		repo: repo,
		mode: mode,
	}
}

// Summary returns turnover, cash and debt over all orders along with the
// number of orders in every status, in progression order.
func (s *Service) Summary(ctx context.Context) (*domain.Analytics, error) {
	buckets, err := s.repo.Totals(ctx, s.mode == ledger.ModeDerived)
	if err != nil {
		zap.L().Error("failed to aggregate orders", zap.Error(err))
		return nil, err
	}

	counts := make(map[domain.Status]int, len(buckets))
	totals := domain.Totals{Total: decimal.Zero, Paid: decimal.Zero}
	count := 0
	for _, b := range buckets {
		counts[b.Status] += b.Count
		count += b.Count
		totals = totals.Add(b.Totals)
	}

	byStatus := make([]domain.StatusCount, 0, len(domain.Statuses))
	for _, st := range domain.Statuses {
		byStatus = append(byStatus, domain.StatusCount{Status: st, Count: counts[st]})
	}

	return &domain.Analytics{
		OrdersCount: count,
		Turnover:    totals.Total,
		Cash:        totals.Paid,
		Debt:        totals.Debt(),
		ByStatus:    byStatus,
	}, nil
}
