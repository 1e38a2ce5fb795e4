package repository

import (
	"context"
	"errors"
	"github.com/jackc/pgx/v5"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/rookgm/shopmart/internal/repository/postgres"
)

const (
	selectProductByIDQuery = `
						SELECT id, name, description, brand, price, stock, is_active, created_at, updated_at
						FROM products
						WHERE id = $1
`
)

// ProductRepository implements ProductRepository interface
type ProductRepository struct {
	db *postgres.DB
}

// NewProductRepository creates new ProductRepository instance
func NewProductRepository(db *postgres.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetProductByID returns product by id
func (pr *ProductRepository) GetProductByID(ctx context.Context, productID uint64) (*models.Product, error) {
	product := models.Product{}
	err := pr.db.QueryRow(ctx, selectProductByIDQuery, productID).Scan(
		&product.ID, &product.Name, &product.Description, &product.Brand,
		&product.Price, &product.Stock, &product.Active, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}
