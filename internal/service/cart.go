package service

import (
	"context"
	"errors"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/shopspring/decimal"
)

// CartRepository is interface for interacting with cart data
type CartRepository interface {
	// GetCartSnapshot returns user cart items joined with current product state
	GetCartSnapshot(ctx context.Context, userID uint64) ([]models.CartItem, error)
	// GetCartItemByID returns user cart item by id
	GetCartItemByID(ctx context.Context, itemID, userID uint64) (*models.CartItem, error)
	// GetCartQuantity returns quantity of the product in user cart
	GetCartQuantity(ctx context.Context, userID, productID uint64) (int32, error)
	// SetCartItem inserts cart row or replaces its quantity
	SetCartItem(ctx context.Context, userID, productID uint64, quantity int32) error
	// UpdateCartQuantity sets quantity of existing cart item
	UpdateCartQuantity(ctx context.Context, itemID, userID uint64, quantity int32) error
	// RemoveCartItem deletes user cart item
	RemoveCartItem(ctx context.Context, itemID, userID uint64) error
	// ClearCart deletes all user cart items
	ClearCart(ctx context.Context, userID uint64) error
}

// ProductRepository is interface for interacting with product data
type ProductRepository interface {
	// GetProductByID returns product by id
	GetProductByID(ctx context.Context, productID uint64) (*models.Product, error)
}

// CartService implements CartService interface
type CartService struct {
	repo     CartRepository
	products ProductRepository
}

// NewCartService creates new CartService instance
func NewCartService(repo CartRepository, products ProductRepository) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
	}
}

// AddItem puts quantity units of the product into user cart on top of
// what the cart already holds. The combined quantity must not exceed stock.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint64, quantity int32) error {
	if quantity <= 0 {
		return models.NewValidationError("quantity", "must be positive")
	}

	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.Active {
		return models.ErrDataNotFound
	}

	current, err := s.repo.GetCartQuantity(ctx, userID, productID)
	if err != nil && !errors.Is(err, models.ErrDataNotFound) {
		return err
	}

	target := current + quantity
	if target > product.Stock {
		return models.NewInsufficientStockError(product.ID, product.Name, target, product.Stock)
	}

	return s.repo.SetCartItem(ctx, userID, productID, target)
}

// ListItems returns user cart items and their running total
func (s *CartService) ListItems(ctx context.Context, userID uint64) ([]models.CartItem, decimal.Decimal, error) {
	items, err := s.repo.GetCartSnapshot(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return items, total, nil
}

// UpdateQuantity replaces quantity of the cart item
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uint64, quantity int32) error {
	if quantity <= 0 {
		return models.NewValidationError("quantity", "must be positive")
	}

	item, err := s.repo.GetCartItemByID(ctx, itemID, userID)
	if err != nil {
		return err
	}
	if quantity > item.Stock {
		return models.NewInsufficientStockError(item.ProductID, item.ProductName, quantity, item.Stock)
	}

	return s.repo.UpdateCartQuantity(ctx, itemID, userID, quantity)
}

// RemoveItem deletes the cart item
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint64) error {
	return s.repo.RemoveCartItem(ctx, itemID, userID)
}

// Clear empties user cart
func (s *CartService) Clear(ctx context.Context, userID uint64) error {
	return s.repo.ClearCart(ctx, userID)
}
