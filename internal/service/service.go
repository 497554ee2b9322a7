package service

import (
	"fmt"

	"github.com/GlebRadaev/furniture-crm/internal/events"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/admin"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/analytics"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/auth"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/files"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/orders"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/payments"
	"github.com/GlebRadaev/furniture-crm/internal/ledger"
	"github.com/GlebRadaev/furniture-crm/internal/pg"
	"github.com/GlebRadaev/furniture-crm/internal/reconcile"
	"github.com/GlebRadaev/furniture-crm/internal/repo"
	analyticsservice "github.com/GlebRadaev/furniture-crm/internal/service/analyticsservice"
	authservice "github.com/GlebRadaev/furniture-crm/internal/service/authservice"
	fileservice "github.com/GlebRadaev/furniture-crm/internal/service/fileservice"
	orderservice "github.com/GlebRadaev/furniture-crm/internal/service/orderservice"
	paymentservice "github.com/GlebRadaev/furniture-crm/internal/service/paymentservice"
	pkgauth "github.com/GlebRadaev/furniture-crm/pkg/auth"
	"github.com/GlebRadaev/furniture-crm/pkg/lock"
)

// Deps are the collaborators the services share besides the repositories.
type Deps struct {
	TxManager     pg.TXManager
	Locker        lock.Locker
	Publisher     events.Publisher
	Store         fileservice.Store
	WorkerPool    reconcile.WorkerPoolI
	Mode          ledger.Mode
	MaxUploadSize int64
	Secrets       map[pkgauth.Role]string
	HashService   pkgauth.HashServiceInterface
	JWTService    pkgauth.JWTServiceInterface
}

type Services struct {
	AuthService      auth.Service
	OrderService     orders.Service
	PaymentService   payments.Service
	FileService      files.Service
	AnalyticsService analytics.Service
	ReconcileService admin.ReconcileService
}

func New(repo *repo.Repositories, deps Deps) (*Services, error) {
	authService, err := authservice.New(deps.Secrets, deps.HashService, deps.JWTService)
	if err != nil {
		return nil, fmt.Errorf("can't init auth service: %w", err)
	}
	paymentService := paymentservice.New(repo.OrderRepo, repo.PaymentRepo, deps.TxManager, deps.Locker, deps.Publisher, deps.Mode)
	orderService := orderservice.New(repo.OrderRepo, repo.PaymentRepo, repo.UserRepo, deps.TxManager, deps.Locker, deps.Mode)
	fileService := fileservice.New(deps.Store, repo.OrderRepo, deps.MaxUploadSize)
	analyticsService := analyticsservice.New(repo.AnalyticsRepo, deps.Mode)
	reconcileService := reconcile.New(repo.OrderRepo, paymentService, deps.WorkerPool)

	return &Services{
		AuthService:      authService,
		OrderService:     orderService,
		PaymentService:   paymentService,
		FileService:      fileService,
		AnalyticsService: analyticsService,
		ReconcileService: reconcileService,
	}, nil
}
