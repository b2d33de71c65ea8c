package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAccount = errors.New("invalid_account")
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidShare   = errors.New("invalid_share_percentage")
	ErrNotFound       = errors.New("not_found")
)

// Partner is a company partner (sócio) in the account's registry.
type Partner struct {
	ID              snowflake.ID    `gorm:"primaryKey" json:"id"`
	OwnerID         snowflake.ID    `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Name            string          `gorm:"type:text;not null" json:"name"`
	TaxID           string          `gorm:"column:tax_id;type:text" json:"tax_id"`
	Email           string          `gorm:"type:text" json:"email"`
	Role            string          `gorm:"type:text" json:"role"`
	SharePercentage decimal.Decimal `gorm:"column:share_percentage;type:numeric(5,2);not null" json:"share_percentage"`
	CreatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Partner) TableName() string { return "partners" }

type UpsertRequest struct {
	ID              string          `json:"id,omitempty"`
	Name            string          `json:"name"`
	TaxID           string          `json:"tax_id"`
	Email           string          `json:"email"`
	Role            string          `json:"role"`
	SharePercentage decimal.Decimal `json:"share_percentage"`
}

type Service interface {
	Upsert(ctx context.Context, req UpsertRequest) (*Partner, error)
	List(ctx context.Context) ([]Partner, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, partner *Partner) error
	Save(ctx context.Context, db *gorm.DB, partner *Partner) error
	FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*Partner, error)
	List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]*Partner, error)
	Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) error
}
