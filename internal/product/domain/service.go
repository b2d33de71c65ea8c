package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidAccount    = errors.New("invalid_account")
	ErrInvalidID         = errors.New("invalid_id")
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidPrice      = errors.New("invalid_price")
	ErrInvalidQuantity   = errors.New("invalid_quantity")
	ErrInsufficientStock = errors.New("insufficient_stock")
	ErrNotFound          = errors.New("not_found")
)

type UpsertRequest struct {
	ID             string `json:"id,omitempty"`
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	CostPriceCents int64  `json:"cost_price_cents"`
	SalePriceCents int64  `json:"sale_price_cents"`
	CurrentStock   int64  `json:"current_stock"`
	MinStock       int64  `json:"min_stock"`
}

type SaleRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// InventorySummary values use cost price for stock value, and unit margin
// times remaining stock for potential profit.
type InventorySummary struct {
	ProductCount         int       `json:"product_count"`
	StockValueCents      int64     `json:"stock_value_cents"`
	SalesTotalCents      int64     `json:"sales_total_cents"`
	PotentialProfitCents int64     `json:"potential_profit_cents"`
	LowStock             []Product `json:"low_stock"`
}

type Service interface {
	Upsert(ctx context.Context, req UpsertRequest) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, id string) error

	// RecordSale appends a sale and decrements the product's stock in one
	// transaction. Quantities beyond the available stock are rejected.
	RecordSale(ctx context.Context, req SaleRequest) (*Sale, error)
	ListSales(ctx context.Context) ([]Sale, error)
	Inventory(ctx context.Context) (*InventorySummary, error)
}
