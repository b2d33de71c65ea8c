package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var (
	ErrInvalidAccount = errors.New("invalid_account")
	ErrInvalidTier    = errors.New("invalid_tier")
)

type Tier string

const (
	TierBasico   Tier = "basico"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
	TierDiamante Tier = "diamante"
)

// DefaultTier applies to accounts that never picked a plan.
const DefaultTier = TierBasico

func (t Tier) Valid() bool {
	switch t {
	case TierBasico, TierStandard, TierPremium, TierDiamante:
		return true
	}
	return false
}

// tierOrder backs upgrade/downgrade comparisons in ascending price order.
var tierOrder = map[Tier]int{
	TierBasico:   0,
	TierStandard: 1,
	TierPremium:  2,
	TierDiamante: 3,
}

// MonthlyPriceCents is the catalog price per tier.
var MonthlyPriceCents = map[Tier]int64{
	TierBasico:   9900,
	TierStandard: 19900,
	TierPremium:  34900,
	TierDiamante: 59900,
}

func (t Tier) IsUpgradeFrom(other Tier) bool {
	return tierOrder[t] > tierOrder[other]
}

// Subscription tracks the account's current plan tier.
type Subscription struct {
	OwnerID   snowflake.ID `gorm:"column:owner_id;primaryKey" json:"owner_id"`
	Tier      Tier         `gorm:"type:text;not null" json:"tier"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Subscription) TableName() string { return "plan_subscriptions" }

type PlanInfo struct {
	Tier              Tier  `json:"tier"`
	MonthlyPriceCents int64 `json:"monthly_price_cents"`
}

type Service interface {
	// Current returns the account's subscription, defaulting to basico
	// when nothing was ever persisted.
	Current(ctx context.Context) (*PlanInfo, error)
	Change(ctx context.Context, tier Tier) (*PlanInfo, error)
	Catalog() []PlanInfo
}

type Repository interface {
	FindByOwner(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) (*Subscription, error)
	Upsert(ctx context.Context, db *gorm.DB, sub *Subscription) error
}
