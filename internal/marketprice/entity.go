// AngelaMos | 2026
// entity.go

package marketprice

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketPrice is a reference price observation. Rows are loaded by an
// external feed; the API only reads them.
type MarketPrice struct {
	ID          string          `db:"id"`
	ProductName string          `db:"product_name"`
	Category    string          `db:"category"`
	Region      string          `db:"region"`
	Price       decimal.Decimal `db:"price"`
	Unit        string          `db:"unit"`
	PriceDate   string          `db:"price_date"`
	Source      *string         `db:"source"`
	CreatedAt   time.Time       `db:"created_at"`
}
