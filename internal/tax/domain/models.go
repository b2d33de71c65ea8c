package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// RateConfigRecord is the persisted per-account Presumido rate configuration.
type RateConfigRecord struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	OwnerID       snowflake.ID    `gorm:"column:owner_id;not null;uniqueIndex" json:"owner_id"`
	ISSRate       decimal.Decimal `gorm:"column:iss_rate;type:numeric(6,2);not null" json:"iss_rate"`
	PISCofinsRate decimal.Decimal `gorm:"column:pis_cofins_rate;type:numeric(6,2);not null" json:"pis_cofins_rate"`
	IRPJRate      decimal.Decimal `gorm:"column:irpj_rate;type:numeric(6,2);not null" json:"irpj_rate"`
	CSLLRate      decimal.Decimal `gorm:"column:csll_rate;type:numeric(6,2);not null" json:"csll_rate"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (RateConfigRecord) TableName() string { return "tax_rate_configs" }

// Rates converts the record into engine input.
func (r *RateConfigRecord) Rates() RateConfig {
	return RateConfig{
		ISS:       r.ISSRate,
		PISCofins: r.PISCofinsRate,
		IRPJ:      r.IRPJRate,
		CSLL:      r.CSLLRate,
	}
}
