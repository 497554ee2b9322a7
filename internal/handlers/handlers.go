package handlers

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/furniture-crm/docs"
	adminhandlers "github.com/GlebRadaev/furniture-crm/internal/handlers/admin"
	analyticshandlers "github.com/GlebRadaev/furniture-crm/internal/handlers/analytics"
	authhandlers "github.com/GlebRadaev/furniture-crm/internal/handlers/auth"
	fileshandlers "github.com/GlebRadaev/furniture-crm/internal/handlers/files"
	ordershandlers "github.com/GlebRadaev/furniture-crm/internal/handlers/orders"
	paymentshandlers "github.com/GlebRadaev/furniture-crm/internal/handlers/payments"
	"github.com/GlebRadaev/furniture-crm/internal/service"
	"github.com/GlebRadaev/furniture-crm/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	ExportOrders(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	ListPayments(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type FileHandler interface {
	UploadFile(w http.ResponseWriter, r *http.Request)
	ListFiles(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandler interface {
	GetAnalytics(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ReconcileAll(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	OrderHandler     OrderHandler
	PaymentHandler   PaymentHandler
	FileHandler      FileHandler
	AnalyticsHandler AnalyticsHandler
	AdminHandler     AdminHandler

	Tokens     auth.JWTServiceInterface
	Authorizer auth.Authorizer
	// Static serves stored attachments under /files/.
	Static http.Handler
}

func New(s *service.Services, tokens auth.JWTServiceInterface, authorizer auth.Authorizer, filesDir string) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		OrderHandler:     ordershandlers.New(s.OrderService),
		PaymentHandler:   paymentshandlers.New(s.PaymentService),
		FileHandler:      fileshandlers.New(s.FileService),
		AnalyticsHandler: analyticshandlers.New(s.AnalyticsService),
		AdminHandler:     adminhandlers.New(s.ReconcileService),
		Tokens:           tokens,
		Authorizer:       authorizer,
		Static:           http.StripPrefix("/files/", http.FileServer(http.Dir(filesDir))),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/files/*", h.Static)

	can := func(obj, act string) func(http.Handler) http.Handler {
		return auth.Authorize(h.Authorizer, obj, act)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.Tokens))

			r.With(can(auth.ObjOrders, auth.ActRead)).Get("/users", h.OrderHandler.ListUsers)

			r.Route("/orders", func(r chi.Router) {
				r.With(can(auth.ObjOrders, auth.ActRead)).Get("/", h.OrderHandler.ListOrders)
				r.With(can(auth.ObjOrders, auth.ActWrite)).Post("/", h.OrderHandler.CreateOrder)
				r.With(can(auth.ObjOrders, auth.ActRead)).Get("/export", h.OrderHandler.ExportOrders)

				r.Route("/{id}", func(r chi.Router) {
					r.With(can(auth.ObjOrders, auth.ActRead)).Get("/", h.OrderHandler.GetOrder)
					r.With(can(auth.ObjOrders, auth.ActWrite)).Put("/", h.OrderHandler.UpdateOrder)

					r.With(can(auth.ObjPayments, auth.ActRead)).Get("/payments", h.PaymentHandler.ListPayments)
					r.With(can(auth.ObjPayments, auth.ActWrite)).Post("/payments", h.PaymentHandler.RecordPayment)
					r.With(can(auth.ObjPayments, auth.ActWrite)).Delete("/payments/{paymentID}", h.PaymentHandler.DeletePayment)
					r.With(can(auth.ObjPayments, auth.ActWrite)).Post("/reconcile", h.PaymentHandler.Reconcile)

					r.With(can(auth.ObjFiles, auth.ActRead)).Get("/files", h.FileHandler.ListFiles)
					r.With(can(auth.ObjFiles, auth.ActWrite)).Post("/files", h.FileHandler.UploadFile)
				})
			})

			r.With(can(auth.ObjAnalytics, auth.ActRead)).Get("/analytics", h.AnalyticsHandler.GetAnalytics)
			r.With(can(auth.ObjReconcile, auth.ActWrite)).Post("/admin/reconcile", h.AdminHandler.ReconcileAll)
		})
	})

	return r
}
