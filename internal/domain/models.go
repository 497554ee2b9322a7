package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64     `db:"id"`
	FullName  string    `db:"full_name"`
	CreatedAt time.Time `db:"created_at"`
}

type Order struct {
	ID              int64           `db:"id"`
	ClientName      string          `db:"client_name"`
	Phone           string          `db:"phone"`
	Address         string          `db:"address"`
	FurnitureType   string          `db:"furniture_type"`
	Status          Status          `db:"status"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	PaidAmount      decimal.Decimal `db:"paid_amount"`
	Comment         string          `db:"comment"`
	ResponsibleID   *int64          `db:"responsible_id"`
	ResponsibleName string          `db:"-"`
	CreatedAt       time.Time       `db:"created_at"`
}

// Remaining is the unpaid part of the contracted price as cached on the order.
func (o Order) Remaining() decimal.Decimal {
	return o.TotalPrice.Sub(o.PaidAmount)
}

type Payment struct {
	ID      int64           `db:"id"`
	OrderID int64           `db:"order_id"`
	Amount  decimal.Decimal `db:"amount"`
	PaidAt  time.Time       `db:"paid_at"`
	Comment string          `db:"comment"`
}

// OrderInput carries the editable fields of an order.
type OrderInput struct {
	ClientName    string
	Phone         string
	Address       string
	FurnitureType string
	Status        Status
	TotalPrice    decimal.Decimal
	Comment       string
	ResponsibleID *int64
}

type OrderFilter struct {
	Status Status
}

type Attachment struct {
	Name      string
	Path      string
	URL       string
	Size      int64
	UpdatedAt time.Time
}

type Analytics struct {
	OrdersCount int
	Turnover    decimal.Decimal
	Cash        decimal.Decimal
	Debt        decimal.Decimal
	ByStatus    []StatusCount
}

// Totals sums contracted prices and payments over a set of orders.
type Totals struct {
	Total decimal.Decimal
	Paid  decimal.Decimal
}

func (t Totals) Add(o Totals) Totals {
	return Totals{Total: t.Total.Add(o.Total), Paid: t.Paid.Add(o.Paid)}
}

func (t Totals) Debt() decimal.Decimal {
	return t.Total.Sub(t.Paid)
}

// StatusTotals is one status bucket of the order book.
type StatusTotals struct {
	Status Status
	Count  int
	Totals Totals
}

type StatusCount struct {
	Status Status
	Count  int
}

const FurnitureOther = "Other"

var FurnitureTypes = []string{
	"Kitchen",
	"Sliding wardrobe",
	"Walk-in closet",
	"Hallway",
	FurnitureOther,
}

func IsFurnitureType(s string) bool {
	for _, t := range FurnitureTypes {
		if t == s {
			return true
		}
	}
	return false
}
