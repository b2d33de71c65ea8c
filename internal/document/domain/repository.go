package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListFilter struct {
	Type   DocumentType
	Status DocumentStatus
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, doc *Document) error
	Save(ctx context.Context, db *gorm.DB, doc *Document) error
	FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*Document, error)
	List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, filter ListFilter) ([]*Document, error)
	FindPendingGuide(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, competence, regime string) (*Document, error)
}
