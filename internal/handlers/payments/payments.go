package payments

//go:generate mockgen -source=payments.go -destination=payments_mock.go -package=payments

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/dto"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/httperr"
	"github.com/GlebRadaev/furniture-crm/internal/ledger"
	"github.com/GlebRadaev/furniture-crm/internal/service/paymentservice"
	"github.com/GlebRadaev/furniture-crm/pkg/utils"
	"github.com/GlebRadaev/furniture-crm/pkg/validate"
)

type Service interface {
	ListPayments(ctx context.Context, orderID int64) (*paymentservice.Statement, error)
	RecordPayment(ctx context.Context, orderID int64, amount decimal.Decimal, comment string, at time.Time) (*domain.Payment, ledger.Balance, error)
	DeletePayment(ctx context.Context, orderID, paymentID int64) (ledger.Balance, error)
	Reconcile(ctx context.Context, orderID int64) (ledger.Reconciliation, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// ListPayments godoc
//
//	@Summary		Get payment history of an order
//	@Description	Payment log oldest first with the balance computed from it
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{object}	dto.PaymentsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/orders/{id}/payments [get]
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	statement, err := h.paymentService.ListPayments(r.Context(), orderID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	payments := make([]dto.PaymentResponseDTO, len(statement.Payments))
	for i, p := range statement.Payments {
		payments[i] = dto.NewPaymentResponse(p)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentsResponseDTO{
		OrderID:  orderID,
		Payments: payments,
		Balance:  dto.NewBalanceResponse(statement.Balance),
	})
}

// RecordPayment godoc
//
//	@Summary		Record a payment
//	@Description	Append a payment to the order. Amounts must be positive with at most two fraction digits and may not exceed the remaining balance.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"Order ID"
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment"
//	@Success		201		{object}	dto.RecordPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Payment exceeds the remaining balance"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/orders/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	var paidAt time.Time
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	payment, balance, err := h.paymentService.RecordPayment(r.Context(), orderID, amount, req.Comment, paidAt)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RecordPaymentResponseDTO{
		Payment: dto.NewPaymentResponse(*payment),
		Balance: dto.NewBalanceResponse(balance),
	})
}

// DeletePayment godoc
//
//	@Summary		Delete a payment
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		int	true	"Order ID"
//	@Param			paymentID	path		int	true	"Payment ID"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid id"
//	@Failure		404			{object}	utils.Response	"Order or payment not found"
//	@Failure		503			{object}	utils.Response	"Storage unavailable"
//	@Router			/api/orders/{id}/payments/{paymentID} [delete]
func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	paymentID, ok := utils.IDParam(r, "paymentID")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	balance, err := h.paymentService.DeletePayment(r.Context(), orderID, paymentID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(balance))
}

// Reconcile godoc
//
//	@Summary		Reconcile the paid amount of an order
//	@Description	Recompute the paid amount from the payment log and repair the stored value if it drifted
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{object}	dto.ReconcileResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Payment log exceeds the order total"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/orders/{id}/reconcile [post]
func (h *PaymentHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	rec, err := h.paymentService.Reconcile(r.Context(), orderID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReconcileResponse(rec))
}
