// AngelaMos | 2026
// dto.go

package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	ProductID       string          `json:"product_id"                 validate:"required,uuid"`
	QuantityOrdered decimal.Decimal `json:"quantity_ordered"           validate:"required,gt=0,lte=999999999.999"`
	DeliveryAddress *string         `json:"delivery_address,omitempty" validate:"omitempty,max=500"`
	Notes           *string         `json:"notes,omitempty"            validate:"omitempty,max=1000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_progress delivered cancelled"`
}

type OrderResponse struct {
	ID              string          `json:"id"`
	BuyerID         string          `json:"buyer_id"`
	FarmerID        string          `json:"farmer_id"`
	ProductID       string          `json:"product_id"`
	QuantityOrdered decimal.Decimal `json:"quantity_ordered"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          Status          `json:"status"`
	DeliveryAddress *string         `json:"delivery_address"`
	Notes           *string         `json:"notes"`
	ProductName     string          `json:"product_name,omitempty"`
	BuyerName       string          `json:"buyer_name,omitempty"`
	BuyerPhone      string          `json:"buyer_phone,omitempty"`
	FarmerName      string          `json:"farmer_name,omitempty"`
	FarmerPhone     string          `json:"farmer_phone,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func ToOrderResponse(o *Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		FarmerID:        o.FarmerID,
		ProductID:       o.ProductID,
		QuantityOrdered: o.QuantityOrdered,
		UnitPrice:       o.UnitPrice,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		DeliveryAddress: o.DeliveryAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToViewResponseList labels the counterparty as buyer when the viewer is
// the farmer, and as farmer otherwise.
func ToViewResponseList(views []View, viewerIsFarmer bool) []OrderResponse {
	out := make([]OrderResponse, 0, len(views))
	for i := range views {
		v := &views[i]
		resp := ToOrderResponse(&v.Order)
		resp.ProductName = v.ProductName
		if viewerIsFarmer {
			resp.BuyerName = v.CounterpartyName
			resp.BuyerPhone = v.CounterpartyPhone
		} else {
			resp.FarmerName = v.CounterpartyName
			resp.FarmerPhone = v.CounterpartyPhone
		}
		out = append(out, resp)
	}
	return out
}

type StatusChange struct {
	OrderID string `json:"order_id"`
	From    Status `json:"from"`
	To      Status `json:"to"`
}
