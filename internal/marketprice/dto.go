// AngelaMos | 2026
// dto.go

package marketprice

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListParams struct {
	ProductName string `json:"product_name" validate:"omitempty,max=200"`
	Region      string `json:"region"       validate:"omitempty,max=100"`
	Date        string `json:"date"         validate:"omitempty,datetime=2006-01-02"`
}

type MarketPriceResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Region      string          `json:"region"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	PriceDate   string          `json:"price_date"`
	Source      *string         `json:"source"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ToResponseList(prices []MarketPrice) []MarketPriceResponse {
	out := make([]MarketPriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, MarketPriceResponse(p))
	}
	return out
}
