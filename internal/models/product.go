package models

import (
	"github.com/shopspring/decimal"
	"time"
)

// Product is catalog product entity
type Product struct {
	ID          uint64
	Name        string
	Description string
	Brand       string
	Price       decimal.Decimal
	Stock       int32
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
