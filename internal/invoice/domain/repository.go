package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListInvoiceFilter struct {
	Status    InvoiceStatus
	PageToken string
	PageSize  int
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Save(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, filter ListInvoiceFilter) ([]*Invoice, error)
	Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) error
	CountForYear(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, year int) (int64, error)
	ReplaceItems(ctx context.Context, db *gorm.DB, invoice *Invoice, items []InvoiceItem) error

	// SumRevenueCents aggregates item amounts of Issued|Paid invoices with
	// issue_date in [from, to).
	SumRevenueCents(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, from, to time.Time) (int64, error)

	// ListForRange returns invoices (items preloaded) with issue_date in
	// [from, to), ordered by issue date.
	ListForRange(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, from, to time.Time) ([]*Invoice, error)
}
