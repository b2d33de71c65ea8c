package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/contafacil/portal/internal/partner/domain"
)

type partnerRepository struct{}

func NewRepository() domain.Repository {
	return &partnerRepository{}
}

func (r *partnerRepository) Insert(ctx context.Context, db *gorm.DB, partner *domain.Partner) error {
	return db.WithContext(ctx).Create(partner).Error
}

func (r *partnerRepository) Save(ctx context.Context, db *gorm.DB, partner *domain.Partner) error {
	return db.WithContext(ctx).Save(partner).Error
}

func (r *partnerRepository) FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*domain.Partner, error) {
	var partner domain.Partner
	err := db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&partner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]*domain.Partner, error) {
	var partners []*domain.Partner
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("share_percentage DESC, name ASC").
		Find(&partners).Error
	return partners, err
}

func (r *partnerRepository) Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&domain.Partner{}).Error
}
