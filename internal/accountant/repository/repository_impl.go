package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/contafacil/portal/internal/accountant/domain"
)

type messageRepository struct{}

func NewRepository() domain.Repository {
	return &messageRepository{}
}

func (r *messageRepository) Insert(ctx context.Context, db *gorm.DB, msg *domain.SupportMessage) error {
	return db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]*domain.SupportMessage, error) {
	var msgs []*domain.SupportMessage
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}
