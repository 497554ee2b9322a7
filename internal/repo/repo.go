package repo

import (
	"github.com/GlebRadaev/furniture-crm/internal/pg"
	analyticsrepo "github.com/GlebRadaev/furniture-crm/internal/repo/analytics-repo"
	orderrepo "github.com/GlebRadaev/furniture-crm/internal/repo/order-repo"
	paymentrepo "github.com/GlebRadaev/furniture-crm/internal/repo/payment-repo"
	userrepo "github.com/GlebRadaev/furniture-crm/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo      *userrepo.Repository
	OrderRepo     *orderrepo.Repository
	PaymentRepo   *paymentrepo.Repository
	AnalyticsRepo *analyticsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:      userrepo.New(conn),
		OrderRepo:     orderrepo.New(conn, txManager),
		PaymentRepo:   paymentrepo.New(conn),
		AnalyticsRepo: analyticsrepo.New(conn),
	}
}
