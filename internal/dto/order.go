package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/pkg/money"
)

type OrderRequestDTO struct {
	ClientName    string `json:"client_name" validate:"required,max=200" example:"Anna Ivanova"`
	Phone         string `json:"phone" validate:"max=50" example:"+7 900 123-45-67"`
	Address       string `json:"address" validate:"max=500" example:"Lenina 1, apt. 5"`
	FurnitureType string `json:"furniture_type" validate:"omitempty,furniture" example:"Kitchen"`
	Status        string `json:"status" validate:"omitempty,status" example:"Measurement"`
	TotalPrice    string `json:"total_price" validate:"required,money" example:"150000.00"`
	Comment       string `json:"comment" validate:"max=2000" example:"Oak facades"`
	ResponsibleID *int64 `json:"responsible_id,omitempty" example:"1"`
}

// ToInput converts a validated request into service input.
func (r OrderRequestDTO) ToInput() (domain.OrderInput, error) {
	total, err := decimal.NewFromString(r.TotalPrice)
	if err != nil {
		return domain.OrderInput{}, err
	}
	return domain.OrderInput{
		ClientName:    r.ClientName,
		Phone:         r.Phone,
		Address:       r.Address,
		FurnitureType: r.FurnitureType,
		Status:        domain.Status(r.Status),
		TotalPrice:    total,
		Comment:       r.Comment,
		ResponsibleID: r.ResponsibleID,
	}, nil
}

type OrderResponseDTO struct {
	ID              int64     `json:"id" example:"42"`
	ClientName      string    `json:"client_name" example:"Anna Ivanova"`
	Phone           string    `json:"phone" example:"+7 900 123-45-67"`
	Address         string    `json:"address" example:"Lenina 1, apt. 5"`
	FurnitureType   string    `json:"furniture_type" example:"Kitchen"`
	Status          string    `json:"status" example:"Production"`
	TotalPrice      string    `json:"total_price" example:"150000.00"`
	PaidAmount      string    `json:"paid_amount" example:"50000.00"`
	Remaining       string    `json:"remaining" example:"100000.00"`
	Comment         string    `json:"comment" example:"Oak facades"`
	ResponsibleID   *int64    `json:"responsible_id,omitempty" example:"1"`
	ResponsibleName string    `json:"responsible_name,omitempty" example:"Petr Petrov"`
	CreatedAt       time.Time `json:"created_at" example:"2024-03-01T10:00:00Z"`
}

func NewOrderResponse(o domain.Order) OrderResponseDTO {
	return OrderResponseDTO{
		ID:              o.ID,
		ClientName:      o.ClientName,
		Phone:           o.Phone,
		Address:         o.Address,
		FurnitureType:   o.FurnitureType,
		Status:          string(o.Status),
		TotalPrice:      money.Format(o.TotalPrice),
		PaidAmount:      money.Format(o.PaidAmount),
		Remaining:       money.Format(o.Remaining()),
		Comment:         o.Comment,
		ResponsibleID:   o.ResponsibleID,
		ResponsibleName: o.ResponsibleName,
		CreatedAt:       o.CreatedAt,
	}
}

func NewOrdersResponse(orders []domain.Order) []OrderResponseDTO {
	response := make([]OrderResponseDTO, len(orders))
	for i, o := range orders {
		response[i] = NewOrderResponse(o)
	}
	return response
}

type UserResponseDTO struct {
	ID       int64  `json:"id" example:"1"`
	FullName string `json:"full_name" example:"Petr Petrov"`
}
