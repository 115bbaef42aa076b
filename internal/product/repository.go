// AngelaMos | 2026
// repository.go

package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/efarmlink/efarmlink-api/internal/core"
)

type Repository interface {
	// WithTx runs fn against a repository bound to one transaction.
	WithTx(ctx context.Context, fn func(repo Repository) error) error
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	LockByID(ctx context.Context, id string) (*Product, error)
	GetListing(ctx context.Context, id string) (*Listing, error)
	ListAvailable(ctx context.Context, params ListParams) ([]Listing, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]Product, error)
	Update(ctx context.Context, id, farmerID string, c Changes) (*Product, error)
	Delete(ctx context.Context, id, farmerID string) error
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

const productColumns = `p.id, p.farmer_id, p.name, p.description, p.category,
		p.quantity_available, p.unit, p.price_per_unit, p.location,
		p.is_available, p.is_organic,
		to_char(p.harvest_date, 'YYYY-MM-DD') AS harvest_date,
		to_char(p.expiry_date, 'YYYY-MM-DD') AS expiry_date,
		p.created_at, p.updated_at`

const listingSelect = `SELECT ` + productColumns + `,
		u.name AS farmer_name, u.phone AS farmer_phone
	FROM products p
	JOIN users u ON u.id = p.farmer_id`

func (r *repository) Create(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (
			id, farmer_id, name, description, category, quantity_available,
			unit, price_per_unit, location, is_available, is_organic,
			harvest_date, expiry_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		p.ID,
		p.FarmerID,
		p.Name,
		p.Description,
		p.Category,
		p.QuantityAvailable,
		p.Unit,
		p.PricePerUnit,
		p.Location,
		p.IsAvailable,
		p.IsOrganic,
		p.HarvestDate,
		p.ExpiryDate,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if core.IsForeignKeyError(err) {
			return fmt.Errorf("create product: farmer: %w", core.ErrNotFound)
		}
		if core.IsOutOfRangeError(err) {
			return fmt.Errorf("create product: %w: value out of range", core.ErrInvalidInput)
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`

	var p Product
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &p, nil
}

// LockByID reads the product row FOR UPDATE; call it inside WithTx.
func (r *repository) LockByID(ctx context.Context, id string) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1 FOR UPDATE`

	var p Product
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lock product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lock product: %w", err)
	}

	return &p, nil
}

func (r *repository) GetListing(ctx context.Context, id string) (*Listing, error) {
	query := listingSelect + ` WHERE p.id = $1 AND p.is_available = TRUE`

	var l Listing
	err := r.db.GetContext(ctx, &l, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get listing: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	return &l, nil
}

func (r *repository) ListAvailable(
	ctx context.Context,
	params ListParams,
) ([]Listing, error) {
	query, args := core.NewFilter("p.is_available = TRUE").
		Equal("p.category", params.Category).
		Contains(params.Location, "p.location").
		Contains(params.Search, "p.name", "p.description").
		Build(listingSelect, "p.created_at DESC")

	listings := []Listing{}
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return listings, nil
}

func (r *repository) ListByFarmer(
	ctx context.Context,
	farmerID string,
) ([]Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p
		WHERE p.farmer_id = $1
		ORDER BY p.created_at DESC`

	products := []Product{}
	if err := r.db.SelectContext(ctx, &products, query, farmerID); err != nil {
		return nil, fmt.Errorf("list farmer products: %w", err)
	}

	return products, nil
}

// Update sets only the columns present in c, scoped to the owning farmer.
// Stock is left to concurrent orders unless c carries a new quantity.
func (r *repository) Update(
	ctx context.Context,
	id, farmerID string,
	c Changes,
) (*Product, error) {
	query := `
		UPDATE products AS p
		SET name = COALESCE($3, p.name),
		    description = COALESCE($4, p.description),
		    category = COALESCE($5, p.category),
		    quantity_available = COALESCE($6, p.quantity_available),
		    unit = COALESCE($7, p.unit),
		    price_per_unit = COALESCE($8, p.price_per_unit),
		    location = COALESCE($9, p.location),
		    is_available = COALESCE($10, p.is_available),
		    is_organic = COALESCE($11, p.is_organic),
		    harvest_date = COALESCE($12::date, p.harvest_date),
		    expiry_date = COALESCE($13::date, p.expiry_date),
		    updated_at = NOW()
		WHERE p.id = $1 AND p.farmer_id = $2
		RETURNING ` + productColumns

	var p Product
	err := r.db.GetContext(ctx, &p, query,
		id,
		farmerID,
		c.Name,
		c.Description,
		c.Category,
		c.QuantityAvailable,
		c.Unit,
		c.PricePerUnit,
		c.Location,
		c.IsAvailable,
		c.IsOrganic,
		c.HarvestDate,
		c.ExpiryDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update product: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsOutOfRangeError(err) {
			return nil, fmt.Errorf("update product: %w: value out of range", core.ErrInvalidInput)
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id, farmerID string) error {
	query := `DELETE FROM products WHERE id = $1 AND farmer_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, farmerID)
	if err != nil {
		if core.IsForeignKeyError(err) {
			return fmt.Errorf("delete product: %w", core.ErrStillReferred)
		}
		return fmt.Errorf("delete product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete product: %w", core.ErrNotFound)
	}

	return nil
}
