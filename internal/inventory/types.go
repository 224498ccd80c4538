package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	ProductType *int64          `json:"product_type"`
	Brand       *int64          `json:"brand"`
	Material    *int64          `json:"material"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock"`
	IsArchived  bool            `json:"is_archived"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ProductType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Material struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArchiveResult is the server's answer to a toggle-archive request.
type ArchiveResult struct {
	ID         int64  `json:"id"`
	IsArchived bool   `json:"is_archived"`
	Detail     string `json:"detail,omitempty"`
}
