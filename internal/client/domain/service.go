package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidAccount = errors.New("invalid_account")
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidTaxID   = errors.New("invalid_tax_id")
	ErrNotFound       = errors.New("not_found")
)

type UpsertRequest struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	TaxID  string `json:"tax_id"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Street string `json:"street"`
	Number string `json:"number"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Notes  string `json:"notes,omitempty"`
}

type Service interface {
	Upsert(ctx context.Context, req UpsertRequest) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id string) (*Client, error)
	Delete(ctx context.Context, id string) error
}
