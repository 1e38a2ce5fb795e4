package repository

import (
	"context"
	"errors"
	"github.com/jackc/pgx/v5"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/rookgm/shopmart/internal/repository/postgres"
)

const (
	selectCartSnapshotQuery = `
						SELECT c.id, c.user_id, c.product_id, p.name, p.price, c.quantity,
							   p.stock, p.is_active, c.added_at
						FROM cart c
						JOIN products p ON p.id = c.product_id
						WHERE c.user_id = $1
						ORDER BY c.product_id
`
	selectCartItemByIDQuery = `
						SELECT c.id, c.user_id, c.product_id, p.name, p.price, c.quantity,
							   p.stock, p.is_active, c.added_at
						FROM cart c
						JOIN products p ON p.id = c.product_id
						WHERE c.id = $1 AND c.user_id = $2
`
	selectCartQuantityQuery = `
						SELECT quantity FROM cart
						WHERE user_id = $1 AND product_id = $2
`
	upsertCartItemQuery = `
						INSERT INTO cart (user_id, product_id, quantity)
						VALUES ($1, $2, $3)
						ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity
`
	updateCartQuantityQuery = `
						UPDATE cart
						SET quantity = $3
						WHERE id = $1 AND user_id = $2
`
	deleteCartItemQuery = `
						DELETE FROM cart
						WHERE id = $1 AND user_id = $2
`
	deleteUserCartQuery = `
						DELETE FROM cart
						WHERE user_id = $1
`
)

// CartRepository implements CartRepository interface
type CartRepository struct {
	db *postgres.DB
}

// NewCartRepository creates new CartRepository instance
func NewCartRepository(db *postgres.DB) *CartRepository {
	return &CartRepository{db: db}
}

// scanCartItem reads one cart row joined with product state
func scanCartItem(row pgx.Row, item *models.CartItem) error {
	return row.Scan(&item.ID, &item.UserID, &item.ProductID, &item.ProductName,
		&item.UnitPrice, &item.Quantity, &item.Stock, &item.Active, &item.AddedAt)
}

// GetCartSnapshot returns the user's cart joined with live product state,
// ordered by product id. Pure read, no side effects.
func (cr *CartRepository) GetCartSnapshot(ctx context.Context, userID uint64) ([]models.CartItem, error) {
	rows, err := cr.db.Query(ctx, selectCartSnapshotQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}

	for rows.Next() {
		item := models.CartItem{}
		if err := scanCartItem(rows, &item); err != nil {
			continue
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetCartItemByID returns one cart entry owned by the user
func (cr *CartRepository) GetCartItemByID(ctx context.Context, itemID, userID uint64) (*models.CartItem, error) {
	item := models.CartItem{}
	if err := scanCartItem(cr.db.QueryRow(ctx, selectCartItemByIDQuery, itemID, userID), &item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &item, nil
}

// GetCartQuantity returns the current quantity of a (user, product) entry
func (cr *CartRepository) GetCartQuantity(ctx context.Context, userID, productID uint64) (int32, error) {
	var quantity int32
	if err := cr.db.QueryRow(ctx, selectCartQuantityQuery, userID, productID).Scan(&quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, models.ErrDataNotFound
		}
		return 0, err
	}

	return quantity, nil
}

// SetCartItem inserts a cart entry or replaces its quantity
func (cr *CartRepository) SetCartItem(ctx context.Context, userID, productID uint64, quantity int32) error {
	_, err := cr.db.Exec(ctx, upsertCartItemQuery, userID, productID, quantity)
	return err
}

// UpdateCartQuantity replaces the quantity of one cart entry
func (cr *CartRepository) UpdateCartQuantity(ctx context.Context, itemID, userID uint64, quantity int32) error {
	cmd, err := cr.db.Exec(ctx, updateCartQuantityQuery, itemID, userID, quantity)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

// RemoveCartItem deletes one cart entry owned by the user
func (cr *CartRepository) RemoveCartItem(ctx context.Context, itemID, userID uint64) error {
	cmd, err := cr.db.Exec(ctx, deleteCartItemQuery, itemID, userID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

// ClearCart deletes all cart entries of the user
func (cr *CartRepository) ClearCart(ctx context.Context, userID uint64) error {
	_, err := cr.db.Exec(ctx, deleteUserCartQuery, userID)
	return err
}
