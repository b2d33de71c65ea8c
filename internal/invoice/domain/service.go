package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAccount    = errors.New("invalid_account")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("not_found")
	ErrInvalidItems      = errors.New("invalid_items")
	ErrInvalidIssueDate  = errors.New("invalid_issue_date")
	ErrInvalidTransition = errors.New("invalid_status_transition")
	ErrNotDraft          = errors.New("invoice_not_draft")
)

type ItemInput struct {
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPriceCents int64           `json:"unit_price_cents"`
}

type CreateInvoiceRequest struct {
	IssueDate time.Time       `json:"issue_date"`
	DueDate   *time.Time      `json:"due_date,omitempty"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Issuer    Party           `json:"issuer"`
	Client    Party           `json:"client"`
	Notes     string          `json:"notes,omitempty"`
	Items     []ItemInput     `json:"items"`
}

type UpdateInvoiceRequest struct {
	ID        string           `json:"id"`
	IssueDate *time.Time       `json:"issue_date,omitempty"`
	DueDate   *time.Time       `json:"due_date,omitempty"`
	TaxRate   *decimal.Decimal `json:"tax_rate,omitempty"`
	Client    *Party           `json:"client,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
	Items     []ItemInput      `json:"items,omitempty"`
}

type ListInvoiceRequest struct {
	Status    InvoiceStatus `form:"status"`
	PageToken string        `form:"page_token"`
	PageSize  int           `form:"page_size"`
}

type ListInvoiceResponse struct {
	Invoices      []Invoice `json:"invoices"`
	NextPageToken string    `json:"next_page_token,omitempty"`
	HasMore       bool      `json:"has_more"`
}

type Service interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error)
	Update(ctx context.Context, req UpdateInvoiceRequest) (*Invoice, error)
	List(ctx context.Context, req ListInvoiceRequest) (*ListInvoiceResponse, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
	Delete(ctx context.Context, id string) error

	// Lifecycle transitions. Draft -> Issued -> Paid; Draft/Issued -> Cancelled.
	Issue(ctx context.Context, id string) (*Invoice, error)
	MarkPaid(ctx context.Context, id string) (*Invoice, error)
	Cancel(ctx context.Context, id string) (*Invoice, error)

	// RevenueCentsForMonth sums line totals of Issued and Paid invoices whose
	// issue date falls in the given calendar month. An empty month yields 0.
	RevenueCentsForMonth(ctx context.Context, year int, month time.Month) (int64, error)

	// ListForMonth returns all invoices issued in the given calendar month,
	// regardless of status, ordered by issue date.
	ListForMonth(ctx context.Context, year int, month time.Month) ([]Invoice, error)
}
