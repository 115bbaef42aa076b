// AngelaMos | 2026
// service.go

package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/efarmlink/efarmlink-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, params ListParams) ([]Listing, error) {
	params.Category = strings.TrimSpace(params.Category)
	params.Location = strings.TrimSpace(params.Location)
	params.Search = strings.TrimSpace(params.Search)

	return s.repo.ListAvailable(ctx, params)
}

func (s *Service) Get(ctx context.Context, id string) (*Listing, error) {
	return s.repo.GetListing(ctx, id)
}

func (s *Service) ListByFarmer(ctx context.Context, farmerID string) ([]Product, error) {
	if farmerID == "" {
		return nil, fmt.Errorf("list farmer products: %w", core.ErrUnauthorized)
	}
	return s.repo.ListByFarmer(ctx, farmerID)
}

// Create stamps the product with the caller's id; the body never chooses
// the owner.
func (s *Service) Create(
	ctx context.Context,
	farmerID string,
	req CreateProductRequest,
) (*Product, error) {
	if farmerID == "" {
		return nil, fmt.Errorf("create product: %w", core.ErrUnauthorized)
	}

	p := &Product{
		ID:           uuid.New().String(),
		FarmerID:     farmerID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Category:     strings.TrimSpace(req.Category),
		Unit:         strings.TrimSpace(req.Unit),
		PricePerUnit: req.PricePerUnit,
		Location:     strings.TrimSpace(req.Location),
		IsAvailable:  true,
		IsOrganic:    req.IsOrganic,
		HarvestDate:  req.HarvestDate,
		ExpiryDate:   req.ExpiryDate,
	}
	if req.QuantityAvailable != nil {
		p.QuantityAvailable = *req.QuantityAvailable
	}

	if err := checkProduct(p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Update applies the supplied fields to a product the caller owns. A
// product owned by someone else is reported exactly like a missing one.
func (s *Service) Update(
	ctx context.Context,
	farmerID, id string,
	req UpdateProductRequest,
) (*Product, error) {
	if farmerID == "" {
		return nil, fmt.Errorf("update product: %w", core.ErrUnauthorized)
	}

	changes := req.changes()

	var updated *Product
	err := s.repo.WithTx(ctx, func(repo Repository) error {
		p, err := repo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if !p.OwnedBy(farmerID) {
			return core.ErrNotFound
		}

		changes.Apply(p)
		if err := checkProduct(p); err != nil {
			return err
		}

		updated, err = repo.Update(ctx, id, farmerID, changes)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, farmerID, id string) error {
	if _, err := s.owned(ctx, farmerID, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	return s.repo.Delete(ctx, id, farmerID)
}

func (s *Service) owned(ctx context.Context, farmerID, id string) (*Product, error) {
	if farmerID == "" {
		return nil, core.ErrUnauthorized
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.OwnedBy(farmerID) {
		return nil, core.ErrNotFound
	}

	return p, nil
}

func checkProduct(p *Product) error {
	if !p.PricePerUnit.IsPositive() {
		return fmt.Errorf("%w: price_per_unit must be greater than 0", core.ErrInvalidInput)
	}
	if p.PricePerUnit.GreaterThan(maxPrice) {
		return fmt.Errorf("%w: price_per_unit must be at most %s", core.ErrInvalidInput, maxPrice)
	}
	if !core.HasMaxDecimals(p.PricePerUnit, priceDecimals) {
		return fmt.Errorf("%w: price_per_unit supports at most %d decimal places",
			core.ErrInvalidInput, priceDecimals)
	}
	if p.QuantityAvailable.IsNegative() {
		return fmt.Errorf("%w: quantity_available must be at least 0", core.ErrInvalidInput)
	}
	if p.QuantityAvailable.GreaterThan(maxQuantity) {
		return fmt.Errorf("%w: quantity_available must be at most %s",
			core.ErrInvalidInput, maxQuantity)
	}
	if !core.HasMaxDecimals(p.QuantityAvailable, quantityDecimals) {
		return fmt.Errorf("%w: quantity_available supports at most %d decimal places",
			core.ErrInvalidInput, quantityDecimals)
	}
	if p.HarvestDate != nil && p.ExpiryDate != nil && *p.ExpiryDate < *p.HarvestDate {
		return fmt.Errorf("%w: expiry_date must not be before harvest_date", core.ErrInvalidInput)
	}
	return nil
}
