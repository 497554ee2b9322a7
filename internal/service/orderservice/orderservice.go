package orderservice

//go:generate mockgen -source=orderservice.go -destination=orderservice_mock.go -package=orderservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/ledger"
	"github.com/GlebRadaev/furniture-crm/internal/pg"
	"github.com/GlebRadaev/furniture-crm/pkg/lock"
)

type Repo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}

type PaymentRepo interface {
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Payment, error)
	SumByOrder(ctx context.Context) (map[int64]decimal.Decimal, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type Service struct {
	repo        Repo
	paymentRepo PaymentRepo
	userRepo    UserRepo
	txManager   pg.TXManager
	locker      lock.Locker
	mode        ledger.Mode
}

func New(repo Repo, paymentRepo PaymentRepo, userRepo UserRepo, txManager pg.TXManager, locker lock.Locker, mode ledger.Mode) *Service {
	return &Service{
		repo:        repo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		locker:      locker,
		mode:        mode,
	}
}

// CreateOrder registers a new lead. The order starts with nothing paid.
func (s *Service) CreateOrder(ctx context.Context, input domain.OrderInput) (*domain.Order, error) {
	if err := ledger.CheckTotal(input.TotalPrice, nil); err != nil {
		return nil, err
	}
	responsibleName, err := s.responsibleName(ctx, input.ResponsibleID)
	if err != nil {
		return nil, err
	}
	furnitureType := input.FurnitureType
	if furnitureType == "" {
		furnitureType = domain.FurnitureOther
	}

	order := &domain.Order{
		ClientName:      input.ClientName,
		Phone:           input.Phone,
		Address:         input.Address,
		FurnitureType:   furnitureType,
		Status:          domain.StatusLead,
		TotalPrice:      input.TotalPrice,
		PaidAmount:      decimal.Zero,
		Comment:         input.Comment,
		ResponsibleID:   input.ResponsibleID,
		ResponsibleName: responsibleName,
	}
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return nil, err
	}
	zap.L().Info("order created", zap.Int64("order_id", created.ID), zap.String("client", created.ClientName))
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if s.mode == ledger.ModeDerived {
		payments, err := s.paymentRepo.ListByOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		order.PaidAmount = ledger.ComputeBalance(order.TotalPrice, payments).Paid
	}
	return order, nil
}

// ListOrders returns orders newest first. In derived mode the paid amount of
// every row is projected from the payment log.
func (s *Service) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	if s.mode != ledger.ModeDerived || len(orders) == 0 {
		return orders, nil
	}

	sums, err := s.paymentRepo.SumByOrder(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].PaidAmount = decimal.Zero
		if paid, ok := sums[orders[i].ID]; ok {
			orders[i].PaidAmount = paid
		}
	}
	return orders, nil
}

// UpdateOrder applies an edit. A price change is checked against the payment
// log under the order's ledger lock, so it can't race a payment.
func (s *Service) UpdateOrder(ctx context.Context, id int64, input domain.OrderInput) (*domain.Order, error) {
	responsibleName, err := s.responsibleName(ctx, input.ResponsibleID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, ledger.LockKey(id))
	if err != nil {
		zap.L().Error("can't lock order ledger", zap.Int64("order_id", id), zap.Error(err))
		return nil, err
	}
	defer unlock()

	var updated *domain.Order
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		payments, err := s.paymentRepo.ListByOrder(ctx, id)
		if err != nil {
			return err
		}
		if err := ledger.CheckTotal(input.TotalPrice, payments); err != nil {
			zap.L().Info("price correction rejected",
				zap.Int64("order_id", id), zap.String("total", input.TotalPrice.String()), zap.Error(err))
			return err
		}

		order.ClientName = input.ClientName
		order.Phone = input.Phone
		order.Address = input.Address
		if input.FurnitureType != "" {
			order.FurnitureType = input.FurnitureType
		}
		if input.Status != "" {
			order.Status = input.Status
		}
		order.TotalPrice = input.TotalPrice
		order.Comment = input.Comment
		order.ResponsibleID = input.ResponsibleID
		order.ResponsibleName = responsibleName
		if s.mode == ledger.ModeDerived {
			order.PaidAmount = ledger.ComputeBalance(order.TotalPrice, payments).Paid
		}

		if err := s.repo.Update(ctx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order updated", zap.Int64("order_id", id), zap.String("status", string(updated.Status)))
	return updated, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to get users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// responsibleName resolves the assigned user. An unassigned order has no
// name; an unknown user is rejected.
func (s *Service) responsibleName(ctx context.Context, id *int64) (string, error) {
	if id == nil {
		return "", nil
	}
	user, err := s.userRepo.FindByID(ctx, *id)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	return user.FullName, nil
}
