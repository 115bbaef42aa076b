// AngelaMos | 2026
// repository.go

package marketprice

import (
	"context"
	"fmt"

	"github.com/efarmlink/efarmlink-api/internal/core"
)

type Repository interface {
	List(ctx context.Context, params ListParams) ([]MarketPrice, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const listSelect = `
	SELECT id, product_name, category, region, price, unit,
	       to_char(price_date, 'YYYY-MM-DD') AS price_date, source, created_at
	FROM market_prices`

func (r *repository) List(ctx context.Context, params ListParams) ([]MarketPrice, error) {
	query, args := core.NewFilter().
		Equal("product_name", params.ProductName).
		Equal("region", params.Region).
		Equal("price_date", params.Date).
		Build(listSelect, "price_date DESC, product_name")

	prices := []MarketPrice{}
	if err := r.db.SelectContext(ctx, &prices, query, args...); err != nil {
		return nil, fmt.Errorf("list market prices: %w", err)
	}

	return prices, nil
}
