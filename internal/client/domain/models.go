package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Client is a billing counterparty in the account's registry.
type Client struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID   snowflake.ID `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	TaxID     string       `gorm:"column:tax_id;type:text;not null" json:"tax_id"`
	Email     string       `gorm:"type:text" json:"email"`
	Phone     string       `gorm:"type:text" json:"phone,omitempty"`
	Street    string       `gorm:"type:text" json:"street"`
	Number    string       `gorm:"type:text" json:"number"`
	City      string       `gorm:"type:text" json:"city"`
	State     string       `gorm:"type:text" json:"state"`
	Zip       string       `gorm:"type:text" json:"zip"`
	Notes     string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }
