package orders

//go:generate mockgen -source=orders.go -destination=orders_mock.go -package=orders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/dto"
	"github.com/GlebRadaev/furniture-crm/internal/export"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/httperr"
	"github.com/GlebRadaev/furniture-crm/pkg/utils"
	"github.com/GlebRadaev/furniture-crm/pkg/validate"
)

type Service interface {
	CreateOrder(ctx context.Context, input domain.OrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, id int64, input domain.OrderInput) (*domain.Order, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	Register a new lead. Status starts at Lead and nothing is paid.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.OrderRequestDTO	true	"Order fields"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		422		{object}	utils.Response	"Invalid amount or unknown responsible user"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeOrder(w, r)
	if !ok {
		return
	}
	order, err := h.orderService.CreateOrder(r.Context(), input)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderResponse(*order))
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*order))
}

// ListOrders godoc
//
//	@Summary		List orders
//	@Description	Orders newest first, optionally filtered by status
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			status	query		string	false	"Status filter"
//	@Success		200		{array}		dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown status"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	orders, err := h.orderService.ListOrders(r.Context(), filter)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrdersResponse(orders))
}

// UpdateOrder godoc
//
//	@Summary		Update an order
//	@Description	Edit order fields. A new total may not drop below the amount already paid.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int					true	"Order ID"
//	@Param			request	body		dto.OrderRequestDTO	true	"Order fields"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Total price is below the amount already paid"
//	@Failure		422		{object}	utils.Response	"Invalid amount or unknown responsible user"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/orders/{id} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	input, ok := decodeOrder(w, r)
	if !ok {
		return
	}
	order, err := h.orderService.UpdateOrder(r.Context(), id, input)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*order))
}

// ListUsers godoc
//
//	@Summary		List responsible users
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/users [get]
func (h *OrderHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.orderService.ListUsers(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.UserResponseDTO, len(users))
	for i, u := range users {
		response[i] = dto.UserResponseDTO{ID: u.ID, FullName: u.FullName}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ExportOrders godoc
//
//	@Summary		Export orders to XLSX
//	@Description	Render the order list into an Excel workbook with the selected columns and a totals row
//	@Tags			Orders
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Security		BearerAuth
//	@Param			status	query		string	false	"Status filter"
//	@Param			columns	query		string	false	"Comma separated columns, e.g. ID,Client,Total"
//	@Success		200		{file}		file
//	@Failure		400		{object}	utils.Response	"Unknown column or status"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/orders/export [get]
func (h *OrderHandler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	columns, err := export.ParseColumns(r.URL.Query().Get("columns"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	orders, err := h.orderService.ListOrders(r.Context(), filter)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteOrders(&buf, orders, columns); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="orders.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func decodeOrder(w http.ResponseWriter, r *http.Request) (domain.OrderInput, bool) {
	var req dto.OrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return domain.OrderInput{}, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return domain.OrderInput{}, false
	}
	input, err := req.ToInput()
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid total price")
		return domain.OrderInput{}, false
	}
	return input, true
}

func parseFilter(w http.ResponseWriter, r *http.Request) (domain.OrderFilter, bool) {
	status := r.URL.Query().Get("status")
	if status == "" {
		return domain.OrderFilter{}, true
	}
	st, err := domain.ParseStatus(status)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return domain.OrderFilter{}, false
	}
	return domain.OrderFilter{Status: st}, true
}
