// AngelaMos | 2026
// entity.go

package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dates are carried as YYYY-MM-DD strings; the repository formats them.
type Product struct {
	ID                string          `db:"id"`
	FarmerID          string          `db:"farmer_id"`
	Name              string          `db:"name"`
	Description       *string         `db:"description"`
	Category          string          `db:"category"`
	QuantityAvailable decimal.Decimal `db:"quantity_available"`
	Unit              string          `db:"unit"`
	PricePerUnit      decimal.Decimal `db:"price_per_unit"`
	Location          string          `db:"location"`
	IsAvailable       bool            `db:"is_available"`
	IsOrganic         bool            `db:"is_organic"`
	HarvestDate       *string         `db:"harvest_date"`
	ExpiryDate        *string         `db:"expiry_date"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

func (p *Product) OwnedBy(userID string) bool {
	return userID != "" && p.FarmerID == userID
}

// Changes holds the columns an update sets; nil leaves a column as it is.
type Changes struct {
	Name              *string
	Description       *string
	Category          *string
	QuantityAvailable *decimal.Decimal
	Unit              *string
	PricePerUnit      *decimal.Decimal
	Location          *string
	IsAvailable       *bool
	IsOrganic         *bool
	HarvestDate       *string
	ExpiryDate        *string
}

// Apply copies the set fields onto p.
func (c Changes) Apply(p *Product) {
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Description != nil {
		p.Description = c.Description
	}
	if c.Category != nil {
		p.Category = *c.Category
	}
	if c.QuantityAvailable != nil {
		p.QuantityAvailable = *c.QuantityAvailable
	}
	if c.Unit != nil {
		p.Unit = *c.Unit
	}
	if c.PricePerUnit != nil {
		p.PricePerUnit = *c.PricePerUnit
	}
	if c.Location != nil {
		p.Location = *c.Location
	}
	if c.IsAvailable != nil {
		p.IsAvailable = *c.IsAvailable
	}
	if c.IsOrganic != nil {
		p.IsOrganic = *c.IsOrganic
	}
	if c.HarvestDate != nil {
		p.HarvestDate = c.HarvestDate
	}
	if c.ExpiryDate != nil {
		p.ExpiryDate = c.ExpiryDate
	}
}

// Listing is a product as shown in the public catalogue.
type Listing struct {
	Product
	FarmerName  string `db:"farmer_name"`
	FarmerPhone string `db:"farmer_phone"`
}

const (
	priceDecimals    = 2
	quantityDecimals = 3
)

// Largest values the NUMERIC(12, 2) price and NUMERIC(12, 3) quantity
// columns hold.
var (
	maxPrice    = decimal.RequireFromString("9999999999.99")
	maxQuantity = decimal.RequireFromString("999999999.999")
)
