package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	Save(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*Product, error)
	List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]*Product, error)
	Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) error

	InsertSale(ctx context.Context, db *gorm.DB, sale *Sale) error
	ListSales(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]*Sale, error)
}
