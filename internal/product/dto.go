// AngelaMos | 2026
// dto.go

package product

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name              string           `json:"name"                  validate:"required,min=1,max=200"`
	Description       *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category          string           `json:"category"              validate:"required,min=1,max=100"`
	QuantityAvailable *decimal.Decimal `json:"quantity_available"    validate:"required,gte=0,lte=999999999.999"`
	Unit              string           `json:"unit"                  validate:"required,min=1,max=32"`
	PricePerUnit      decimal.Decimal  `json:"price_per_unit"        validate:"required,gt=0,lte=9999999999.99"`
	Location          string           `json:"location"              validate:"required,min=1,max=255"`
	HarvestDate       *string          `json:"harvest_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate        *string          `json:"expiry_date,omitempty"  validate:"omitempty,datetime=2006-01-02"`
	IsOrganic         bool             `json:"is_organic"`
}

type UpdateProductRequest struct {
	Name              *string          `json:"name,omitempty"               validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description,omitempty"        validate:"omitempty,max=2000"`
	Category          *string          `json:"category,omitempty"           validate:"omitempty,min=1,max=100"`
	QuantityAvailable *decimal.Decimal `json:"quantity_available,omitempty" validate:"omitempty,gte=0,lte=999999999.999"`
	Unit              *string          `json:"unit,omitempty"               validate:"omitempty,min=1,max=32"`
	PricePerUnit      *decimal.Decimal `json:"price_per_unit,omitempty"     validate:"omitempty,gt=0,lte=9999999999.99"`
	Location          *string          `json:"location,omitempty"           validate:"omitempty,min=1,max=255"`
	HarvestDate       *string          `json:"harvest_date,omitempty"       validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate        *string          `json:"expiry_date,omitempty"        validate:"omitempty,datetime=2006-01-02"`
	IsAvailable       *bool            `json:"is_available,omitempty"`
	IsOrganic         *bool            `json:"is_organic,omitempty"`
}

func (r UpdateProductRequest) changes() Changes {
	return Changes{
		Name:              trimmed(r.Name),
		Description:       r.Description,
		Category:          trimmed(r.Category),
		QuantityAvailable: r.QuantityAvailable,
		Unit:              trimmed(r.Unit),
		PricePerUnit:      r.PricePerUnit,
		Location:          trimmed(r.Location),
		IsAvailable:       r.IsAvailable,
		IsOrganic:         r.IsOrganic,
		HarvestDate:       r.HarvestDate,
		ExpiryDate:        r.ExpiryDate,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

type ListParams struct {
	Category string
	Location string
	Search   string
}

type ProductResponse struct {
	ID                string          `json:"id"`
	FarmerID          string          `json:"farmer_id"`
	Name              string          `json:"name"`
	Description       *string         `json:"description"`
	Category          string          `json:"category"`
	QuantityAvailable decimal.Decimal `json:"quantity_available"`
	Unit              string          `json:"unit"`
	PricePerUnit      decimal.Decimal `json:"price_per_unit"`
	Location          string          `json:"location"`
	IsAvailable       bool            `json:"is_available"`
	IsOrganic         bool            `json:"is_organic"`
	HarvestDate       *string         `json:"harvest_date"`
	ExpiryDate        *string         `json:"expiry_date"`
	FarmerName        string          `json:"farmer_name,omitempty"`
	FarmerPhone       string          `json:"farmer_phone,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func ToProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		FarmerID:          p.FarmerID,
		Name:              p.Name,
		Description:       p.Description,
		Category:          p.Category,
		QuantityAvailable: p.QuantityAvailable,
		Unit:              p.Unit,
		PricePerUnit:      p.PricePerUnit,
		Location:          p.Location,
		IsAvailable:       p.IsAvailable,
		IsOrganic:         p.IsOrganic,
		HarvestDate:       p.HarvestDate,
		ExpiryDate:        p.ExpiryDate,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func ToListingResponse(l *Listing) ProductResponse {
	resp := ToProductResponse(&l.Product)
	resp.FarmerName = l.FarmerName
	resp.FarmerPhone = l.FarmerPhone
	return resp
}

func ToProductResponseList(products []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i]))
	}
	return out
}

func ToListingResponseList(listings []Listing) []ProductResponse {
	out := make([]ProductResponse, 0, len(listings))
	for i := range listings {
		out = append(out, ToListingResponse(&listings[i]))
	}
	return out
}
