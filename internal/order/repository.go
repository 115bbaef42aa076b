// AngelaMos | 2026
// repository.go

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/efarmlink/efarmlink-api/internal/core"
)

type Repository interface {
	// WithTx runs fn against a repository bound to one transaction.
	WithTx(ctx context.Context, fn func(repo Repository) error) error
	LockProduct(ctx context.Context, productID string) (*StockItem, error)
	AdjustStock(ctx context.Context, productID string, delta decimal.Decimal) error
	Create(ctx context.Context, o *Order) error
	LockByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, o *Order, from Status) error
	ListForFarmer(ctx context.Context, farmerID string) ([]View, error)
	ListForBuyer(ctx context.Context, buyerID string) ([]View, error)
}

type repository struct {
	db   core.DBTX
	root *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db, root: db}
}

func (r *repository) WithTx(
	ctx context.Context,
	fn func(repo Repository) error,
) error {
	if r.root == nil {
		return fn(r)
	}

	return core.InTx(ctx, r.root, func(tx *sqlx.Tx) error {
		return fn(&repository{db: tx})
	})
}

const orderColumns = `o.id, o.buyer_id, o.farmer_id, o.product_id,
		o.quantity_ordered, o.unit_price, o.total_amount, o.status,
		o.delivery_address, o.notes, o.created_at, o.updated_at`

func (r *repository) LockProduct(
	ctx context.Context,
	productID string,
) (*StockItem, error) {
	query := `
		SELECT id, farmer_id, name, price_per_unit, quantity_available, is_available
		FROM products
		WHERE id = $1
		FOR UPDATE`

	var item StockItem
	err := r.db.GetContext(ctx, &item, query, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lock product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lock product: %w", err)
	}

	return &item, nil
}

// AdjustStock adds delta to the product's quantity, refusing to go below
// zero.
func (r *repository) AdjustStock(
	ctx context.Context,
	productID string,
	delta decimal.Decimal,
) error {
	query := `
		UPDATE products
		SET quantity_available = quantity_available + $2, updated_at = NOW()
		WHERE id = $1 AND quantity_available + $2 >= 0`

	result, err := r.db.ExecContext(ctx, query, productID, delta)
	if err != nil {
		if core.IsOutOfRangeError(err) {
			return fmt.Errorf("adjust stock: %w: quantity_available would exceed %s",
				core.ErrInvalidInput, maxQuantity)
		}
		return fmt.Errorf("adjust stock: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("adjust stock: %w", ErrInsufficientStock)
	}

	return nil
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	query := `
		INSERT INTO orders (
			id, buyer_id, farmer_id, product_id, quantity_ordered,
			unit_price, total_amount, status, delivery_address, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		o.ID,
		o.BuyerID,
		o.FarmerID,
		o.ProductID,
		o.QuantityOrdered,
		o.UnitPrice,
		o.TotalAmount,
		o.Status,
		o.DeliveryAddress,
		o.Notes,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if core.IsForeignKeyError(err) {
			return fmt.Errorf("create order: %w", core.ErrNotFound)
		}
		if core.IsOutOfRangeError(err) {
			return fmt.Errorf("create order: %w: total_amount is out of range", core.ErrInvalidInput)
		}
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (r *repository) LockByID(ctx context.Context, id string) (*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o WHERE o.id = $1 FOR UPDATE`

	var o Order
	err := r.db.GetContext(ctx, &o, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lock order: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lock order: %w", err)
	}

	return &o, nil
}

// UpdateStatus only applies while the row is still owned by o.FarmerID and
// still in status from.
func (r *repository) UpdateStatus(ctx context.Context, o *Order, from Status) error {
	query := `
		UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND farmer_id = $2 AND status = $4
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		o.ID,
		o.FarmerID,
		o.Status,
		from,
	).Scan(&o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update order status: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	return nil
}

func (r *repository) ListForFarmer(
	ctx context.Context,
	farmerID string,
) ([]View, error) {
	query := `
		SELECT ` + orderColumns + `,
		       p.name AS product_name,
		       u.name AS counterparty_name, u.phone AS counterparty_phone
		FROM orders o
		JOIN products p ON p.id = o.product_id
		JOIN users u ON u.id = o.buyer_id
		WHERE o.farmer_id = $1
		ORDER BY o.created_at DESC`

	views := []View{}
	if err := r.db.SelectContext(ctx, &views, query, farmerID); err != nil {
		return nil, fmt.Errorf("list farmer orders: %w", err)
	}

	return views, nil
}

func (r *repository) ListForBuyer(
	ctx context.Context,
	buyerID string,
) ([]View, error) {
	query := `
		SELECT ` + orderColumns + `,
		       p.name AS product_name,
		       u.name AS counterparty_name, u.phone AS counterparty_phone
		FROM orders o
		JOIN products p ON p.id = o.product_id
		JOIN users u ON u.id = o.farmer_id
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC`

	views := []View{}
	if err := r.db.SelectContext(ctx, &views, query, buyerID); err != nil {
		return nil, fmt.Errorf("list buyer orders: %w", err)
	}

	return views, nil
}
