package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidAccount = errors.New("invalid_account")
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidTitle   = errors.New("invalid_title")
	ErrInvalidType    = errors.New("invalid_type")
	ErrInvalidStatus  = errors.New("invalid_status")
	ErrNotFound       = errors.New("not_found")
)

type AppendRequest struct {
	Title       string       `json:"title"`
	Type        DocumentType `json:"type"`
	Competence  string       `json:"competence,omitempty"`
	Regime      string       `json:"regime,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	AmountCents *int64       `json:"amount_cents,omitempty"`
	DownloadURL string       `json:"download_url,omitempty"`
}

type ListRequest struct {
	Type   DocumentType   `form:"type"`
	Status DocumentStatus `form:"status"`
}

type Service interface {
	Append(ctx context.Context, req AppendRequest) (*Document, error)
	List(ctx context.Context, req ListRequest) ([]Document, error)
	UpdateStatus(ctx context.Context, id string, status DocumentStatus) (*Document, error)

	// FindPendingGuide returns the pending tax guide for a competence month
	// and regime, or nil when none exists.
	FindPendingGuide(ctx context.Context, competence, regime string) (*Document, error)
}
