// AngelaMos | 2026
// entity.go

package order

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusDelivered},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Delivered and cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

type Order struct {
	ID              string          `db:"id"`
	BuyerID         string          `db:"buyer_id"`
	FarmerID        string          `db:"farmer_id"`
	ProductID       string          `db:"product_id"`
	QuantityOrdered decimal.Decimal `db:"quantity_ordered"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          Status          `db:"status"`
	DeliveryAddress *string         `db:"delivery_address"`
	Notes           *string         `db:"notes"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// View is an order joined with the product name and the counterparty.
type View struct {
	Order
	ProductName       string `db:"product_name"`
	CounterpartyName  string `db:"counterparty_name"`
	CounterpartyPhone string `db:"counterparty_phone"`
}

// StockItem is the locked product row an order is placed against.
type StockItem struct {
	ID                string          `db:"id"`
	FarmerID          string          `db:"farmer_id"`
	Name              string          `db:"name"`
	PricePerUnit      decimal.Decimal `db:"price_per_unit"`
	QuantityAvailable decimal.Decimal `db:"quantity_available"`
	IsAvailable       bool            `db:"is_available"`
}

const quantityDecimals = 3

// maxQuantity is the largest value a NUMERIC(12, 3) quantity holds.
var maxQuantity = decimal.RequireFromString("999999999.999")
