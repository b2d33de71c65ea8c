package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Product is a stock-tracked item in the account's catalog.
type Product struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID        snowflake.ID `gorm:"column:owner_id;not null;index" json:"owner_id"`
	SKU            string       `gorm:"column:sku;type:text;not null" json:"sku"`
	Name           string       `gorm:"type:text;not null" json:"name"`
	Category       string       `gorm:"type:text" json:"category"`
	CostPriceCents int64        `gorm:"column:cost_price_cents;not null" json:"cost_price_cents"`
	SalePriceCents int64        `gorm:"column:sale_price_cents;not null" json:"sale_price_cents"`
	CurrentStock   int64        `gorm:"column:current_stock;not null" json:"current_stock"`
	MinStock       int64        `gorm:"column:min_stock;not null" json:"min_stock"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// LowOnStock reports whether the product is at or below its restock floor.
func (p Product) LowOnStock() bool {
	return p.CurrentStock <= p.MinStock
}

// Sale is an append-only record of units leaving stock. Sales are never
// edited after the fact; corrections are compensating entries.
type Sale struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID    snowflake.ID `gorm:"column:owner_id;not null;index" json:"owner_id"`
	ProductID  snowflake.ID `gorm:"column:product_id;not null;index" json:"product_id"`
	Quantity   int64        `gorm:"not null" json:"quantity"`
	TotalCents int64        `gorm:"column:total_cents;not null" json:"total_cents"`
	SoldAt     time.Time    `gorm:"column:sold_at;not null" json:"sold_at"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Sale) TableName() string { return "product_sales" }
