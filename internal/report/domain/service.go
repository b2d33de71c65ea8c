package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidAccount    = errors.New("invalid_account")
	ErrInvalidCompetence = errors.New("invalid_competence")
)

// MonthlySummary is the dashboard report for one competence month.
// Monetary strings are formatted in BRL for direct display.
type MonthlySummary struct {
	Competence      string `json:"competence"`
	RevenueCents    int64  `json:"revenue_cents"`
	Revenue         string `json:"revenue"`
	InvoiceCount    int    `json:"invoice_count"`
	IssuedCount     int    `json:"issued_count"`
	PaidCount       int    `json:"paid_count"`
	SimplesTaxCents int64  `json:"simples_tax_cents"`
	SimplesTax      string `json:"simples_tax"`
	PresumidoCents  int64  `json:"presumido_tax_cents"`
	PresumidoTax    string `json:"presumido_tax"`
	CheaperRegime   string `json:"cheaper_regime"`
	SavingsCents    int64  `json:"savings_cents"`
	Savings         string `json:"savings"`
}

type Service interface {
	Monthly(ctx context.Context, competence string) (*MonthlySummary, error)

	// MonthlyXLSX renders the competence month's invoices and totals as a
	// spreadsheet, returning the file bytes and a suggested filename.
	MonthlyXLSX(ctx context.Context, competence string) ([]byte, string, error)
}
