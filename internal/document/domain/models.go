// Package domain contains persistence models for the document center.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// DocumentType classifies accounting documents.
type DocumentType string

const (
	DocumentTypeTax      DocumentType = "tax"      // payment guide (DAS/DARF)
	DocumentTypeReport   DocumentType = "report"   // accountant deliverable
	DocumentTypeContract DocumentType = "contract"
	DocumentTypeUpload   DocumentType = "upload" // sent by the client
)

// DocumentStatus represents document lifecycle states.
type DocumentStatus string

const (
	DocumentStatusPending   DocumentStatus = "pending"
	DocumentStatusPaid      DocumentStatus = "paid"
	DocumentStatusReceived  DocumentStatus = "received"
	DocumentStatusProcessed DocumentStatus = "processed"
)

// Document is one entry in the account's document center. Tax documents
// carry a competence month, a regime tag, a due date and an amount.
type Document struct {
	ID          snowflake.ID      `gorm:"primaryKey" json:"id"`
	OwnerID     snowflake.ID      `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Title       string            `gorm:"type:text;not null" json:"title"`
	Type        DocumentType      `gorm:"type:text;not null" json:"type"`
	Status      DocumentStatus    `gorm:"type:text;not null;default:'pending'" json:"status"`
	Competence  string            `gorm:"type:text;index" json:"competence,omitempty"`
	Regime      string            `gorm:"type:text" json:"regime,omitempty"`
	DueDate     *time.Time        `gorm:"column:due_date" json:"due_date,omitempty"`
	AmountCents *int64            `gorm:"column:amount_cents" json:"amount_cents,omitempty"`
	DownloadURL string            `gorm:"column:download_url;type:text" json:"download_url,omitempty"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Document) TableName() string { return "documents" }
