package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/tax/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByOwner(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) (*domain.RateConfigRecord, error) {
	var record domain.RateConfigRecord
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, record *domain.RateConfigRecord) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"iss_rate", "pis_cofins_rate", "irpj_rate", "csll_rate", "updated_at",
			}),
		}).
		Create(record).Error
}
