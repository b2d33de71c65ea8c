package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/invoice/domain"
	"github.com/contafacil/portal/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Omit("Items").Save(invoice).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, filter domain.ListInvoiceFilter) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	stmt := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Preload("Items").
		Where("owner_id = ?", ownerID)
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = pagination.Apply(stmt, pagination.Pagination{
		PageToken: filter.PageToken,
		PageSize:  filter.PageSize,
	})
	err := stmt.
		Order("created_at desc, id desc").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ? AND invoice_id = ?", ownerID, id).
			Delete(&domain.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Where("owner_id = ? AND id = ?", ownerID, id).
			Delete(&domain.Invoice{}).Error
	})
}

func (r *repo) CountForYear(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, year int) (int64, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("owner_id = ? AND issue_date >= ? AND issue_date < ?", ownerID, from, to).
		Count(&count).Error
	return count, err
}

func (r *repo) ReplaceItems(ctx context.Context, db *gorm.DB, invoice *domain.Invoice, items []domain.InvoiceItem) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoice.ID).
			Delete(&domain.InvoiceItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *repo) ListForRange(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, from, to time.Time) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	err := db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ? AND issue_date >= ? AND issue_date < ?", ownerID, from, to).
		Order("issue_date asc, id asc").
		Find(&invoices).Error
	return invoices, err
}

func (r *repo) SumRevenueCents(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, from, to time.Time) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(ii.amount_cents), 0)
		 FROM invoice_items ii
		 JOIN invoices i ON i.id = ii.invoice_id
		 WHERE i.owner_id = ?
		   AND i.status IN (?, ?)
		   AND i.issue_date >= ?
		   AND i.issue_date < ?`,
		ownerID,
		domain.InvoiceStatusIssued,
		domain.InvoiceStatusPaid,
		from,
		to,
	).Scan(&total).Error
	return total, err
}
