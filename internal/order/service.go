// AngelaMos | 2026
// service.go

package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/efarmlink/efarmlink-api/internal/core"
	"github.com/efarmlink/efarmlink-api/internal/events"
)

var (
	ErrInsufficientStock  = fmt.Errorf("%w: requested quantity exceeds available stock", core.ErrInvalidInput)
	ErrProductUnavailable = fmt.Errorf("%w: product is not available", core.ErrInvalidInput)
	ErrInvalidTransition  = errors.New("invalid status transition")
)

type Service struct {
	repo   Repository
	events events.Publisher
}

func NewService(repo Repository, publisher events.Publisher) *Service {
	return &Service{repo: repo, events: publisher}
}

// Place reserves stock and records a pending order in one transaction.
// Price and farmer come from the product row, never from the request.
func (s *Service) Place(
	ctx context.Context,
	buyerID string,
	req CreateOrderRequest,
) (*Order, error) {
	if buyerID == "" {
		return nil, fmt.Errorf("place order: %w", core.ErrUnauthorized)
	}

	qty := req.QuantityOrdered
	if !qty.IsPositive() {
		return nil, fmt.Errorf("place order: %w: quantity_ordered must be greater than 0",
			core.ErrInvalidInput)
	}
	if qty.GreaterThan(maxQuantity) {
		return nil, fmt.Errorf("place order: %w: quantity_ordered must be at most %s",
			core.ErrInvalidInput, maxQuantity)
	}
	if !core.HasMaxDecimals(qty, quantityDecimals) {
		return nil, fmt.Errorf("place order: %w: quantity_ordered supports at most %d decimal places",
			core.ErrInvalidInput, quantityDecimals)
	}

	var placed *Order
	err := s.repo.WithTx(ctx, func(repo Repository) error {
		item, err := repo.LockProduct(ctx, req.ProductID)
		if err != nil {
			return err
		}

		if item.FarmerID == buyerID {
			return fmt.Errorf("%w: you cannot order your own product", core.ErrInvalidInput)
		}
		if !item.IsAvailable {
			return ErrProductUnavailable
		}
		if qty.GreaterThan(item.QuantityAvailable) {
			return ErrInsufficientStock
		}

		if err := repo.AdjustStock(ctx, item.ID, qty.Neg()); err != nil {
			return err
		}

		o := &Order{
			ID:              uuid.New().String(),
			BuyerID:         buyerID,
			FarmerID:        item.FarmerID,
			ProductID:       item.ID,
			QuantityOrdered: qty,
			UnitPrice:       item.PricePerUnit,
			TotalAmount:     item.PricePerUnit.Mul(qty),
			Status:          StatusPending,
			DeliveryAddress: req.DeliveryAddress,
			Notes:           req.Notes,
		}
		if err := repo.Create(ctx, o); err != nil {
			return err
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	events.Emit(ctx, s.events, events.New(
		events.OrderCreated, placed.ID, buyerID, ToOrderResponse(placed),
	))

	return placed, nil
}

// List returns the orders the caller is a party to, as seller for farmers
// and as purchaser for buyers.
func (s *Service) List(ctx context.Context, userID string, isFarmer bool) ([]View, error) {
	if userID == "" {
		return nil, fmt.Errorf("list orders: %w", core.ErrUnauthorized)
	}

	if isFarmer {
		return s.repo.ListForFarmer(ctx, userID)
	}
	return s.repo.ListForBuyer(ctx, userID)
}

// UpdateStatus moves an order the farmer owns along its lifecycle.
// Cancelling returns the reserved quantity to the product.
func (s *Service) UpdateStatus(
	ctx context.Context,
	farmerID, id string,
	next Status,
) (*Order, error) {
	if farmerID == "" {
		return nil, fmt.Errorf("update order status: %w", core.ErrUnauthorized)
	}
	if !next.Valid() {
		return nil, fmt.Errorf("update order status: %w: unknown status %q",
			core.ErrInvalidInput, next)
	}

	var (
		updated *Order
		from    Status
	)
	err := s.repo.WithTx(ctx, func(repo Repository) error {
		o, err := repo.LockByID(ctx, id)
		if err != nil {
			return err
		}

		if o.FarmerID != farmerID {
			return core.ErrNotFound
		}

		if !o.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %w: cannot change status from %s to %s",
				core.ErrInvalidInput, ErrInvalidTransition, o.Status, next)
		}

		from = o.Status
		o.Status = next
		if err := repo.UpdateStatus(ctx, o, from); err != nil {
			return err
		}

		if next == StatusCancelled {
			if err := repo.AdjustStock(ctx, o.ProductID, o.QuantityOrdered); err != nil {
				return err
			}
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	events.Emit(ctx, s.events, events.New(
		events.OrderStatusChanged, updated.ID, farmerID,
		StatusChange{OrderID: updated.ID, From: from, To: next},
	))

	return updated, nil
}
