// Package domain contains persistence models for invoicing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusIssued    InvoiceStatus = "ISSUED"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// CountsAsRevenue reports whether invoices in this status enter the
// taxable monthly revenue base.
func (s InvoiceStatus) CountsAsRevenue() bool {
	return s == InvoiceStatusIssued || s == InvoiceStatusPaid
}

// Party is an issuer or recipient snapshot frozen onto the invoice.
type Party struct {
	Name   string `gorm:"type:text" json:"name"`
	TaxID  string `gorm:"type:text" json:"tax_id"`
	Email  string `gorm:"type:text" json:"email"`
	Street string `gorm:"type:text" json:"street"`
	Number string `gorm:"type:text" json:"number"`
	City   string `gorm:"type:text" json:"city"`
	State  string `gorm:"type:text" json:"state"`
	Zip    string `gorm:"type:text" json:"zip"`
}

// Invoice represents a service invoice (nota fiscal).
type Invoice struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	OwnerID   snowflake.ID      `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Number    string            `gorm:"type:text;not null" json:"number"`
	Status    InvoiceStatus     `gorm:"type:text;not null;default:'DRAFT'" json:"status"`
	IssueDate time.Time         `gorm:"column:issue_date;not null;index" json:"issue_date"`
	DueDate   *time.Time        `gorm:"column:due_date" json:"due_date,omitempty"`
	TaxRate   decimal.Decimal   `gorm:"column:tax_rate;type:numeric(5,2);not null" json:"tax_rate"`
	Issuer    Party             `gorm:"embedded;embeddedPrefix:issuer_" json:"issuer"`
	Client    Party             `gorm:"embedded;embeddedPrefix:client_" json:"client"`
	Notes     string            `gorm:"type:text" json:"notes,omitempty"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	Items     []InvoiceItem     `gorm:"foreignKey:InvoiceID" json:"items"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }

// TotalCents is the invoice total: the sum of its line amounts.
// An invoice with no items totals zero.
func (i *Invoice) TotalCents() int64 {
	var total int64
	for _, item := range i.Items {
		total += item.AmountCents
	}
	return total
}

// InvoiceItem is one line on an invoice.
type InvoiceItem struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	OwnerID        snowflake.ID    `gorm:"column:owner_id;not null;index" json:"owner_id"`
	InvoiceID      snowflake.ID    `gorm:"column:invoice_id;not null;index" json:"invoice_id"`
	Description    string          `gorm:"type:text;not null" json:"description"`
	Quantity       decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"quantity"`
	UnitPriceCents int64           `gorm:"column:unit_price_cents;not null" json:"unit_price_cents"`
	AmountCents    int64           `gorm:"column:amount_cents;not null" json:"amount_cents"`
	CreatedAt      time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }

// LineAmountCents computes quantity x unit price, rounded to whole cents.
func LineAmountCents(quantity decimal.Decimal, unitPriceCents int64) int64 {
	return quantity.Mul(decimal.NewFromInt(unitPriceCents)).Round(0).IntPart()
}
