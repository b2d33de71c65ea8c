package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/clock"
	documentdomain "github.com/contafacil/portal/internal/document/domain"
	documentrepository "github.com/contafacil/portal/internal/document/repository"
	documentservice "github.com/contafacil/portal/internal/document/service"
	invoicedomain "github.com/contafacil/portal/internal/invoice/domain"
	invoicerepository "github.com/contafacil/portal/internal/invoice/repository"
	invoiceservice "github.com/contafacil/portal/internal/invoice/service"
	"github.com/contafacil/portal/internal/report/domain"
	taxdomain "github.com/contafacil/portal/internal/tax/domain"
	taxrepository "github.com/contafacil/portal/internal/tax/repository"
	taxservice "github.com/contafacil/portal/internal/tax/service"
	"github.com/contafacil/portal/internal/usercontext"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, invoicedomain.Service, context.Context) {
	t.Helper()

	dbConn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(
		&taxdomain.RateConfigRecord{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
		&documentdomain.Document{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	log := zap.NewNop()
	clk := clock.NewFakeClock(time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC))

	invoiceSvc := invoiceservice.New(invoiceservice.Params{
		DB: dbConn, Log: log, GenID: node,
		Repo:  invoicerepository.Provide(),
		Clock: clk,
	})
	docSvc := documentservice.New(documentservice.Params{
		DB: dbConn, Log: log, GenID: node,
		Repo:  documentrepository.Provide(),
		Clock: clk,
	})
	taxSvc := taxservice.New(taxservice.Params{
		DB: dbConn, Log: log, GenID: node,
		Repo:       taxrepository.Provide(),
		InvoiceSvc: invoiceSvc,
		DocSvc:     docSvc,
		Clock:      clk,
	})
	svc := NewService(Params{Log: log, TaxSvc: taxSvc, InvoiceSvc: invoiceSvc})

	ctx := usercontext.WithUserID(context.Background(), node.Generate())
	return svc, invoiceSvc, ctx
}

func seedMonth(t *testing.T, invoiceSvc invoicedomain.Service, ctx context.Context) {
	t.Helper()
	march := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	issued, err := invoiceSvc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		IssueDate: march,
		Items:     []invoicedomain.ItemInput{{Description: "Consultoria", Quantity: decimal.NewFromInt(1), UnitPriceCents: 1000000}},
	})
	require.NoError(t, err)
	_, err = invoiceSvc.Issue(ctx, issued.ID.String())
	require.NoError(t, err)

	paid, err := invoiceSvc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		IssueDate: march.AddDate(0, 0, 2),
		Items:     []invoicedomain.ItemInput{{Description: "Treinamento", Quantity: decimal.NewFromInt(1), UnitPriceCents: 500000}},
	})
	require.NoError(t, err)
	_, err = invoiceSvc.Issue(ctx, paid.ID.String())
	require.NoError(t, err)
	_, err = invoiceSvc.MarkPaid(ctx, paid.ID.String())
	require.NoError(t, err)
}

func TestMonthly(t *testing.T) {
	svc, invoiceSvc, ctx := newTestService(t)
	seedMonth(t, invoiceSvc, ctx)

	summary, err := svc.Monthly(ctx, "2024-03")
	require.NoError(t, err)

	assert.Equal(t, int64(1500000), summary.RevenueCents)
	assert.Equal(t, 2, summary.InvoiceCount)
	assert.Equal(t, 1, summary.IssuedCount)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, int64(90000), summary.SimplesTaxCents)
	assert.Equal(t, "simples", summary.CheaperRegime)
	assert.NotEmpty(t, summary.Revenue)
}

func TestMonthly_InvalidCompetence(t *testing.T) {
	svc, _, ctx := newTestService(t)

	_, err := svc.Monthly(ctx, "março/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidCompetence)
}

func TestMonthlyXLSX(t *testing.T) {
	svc, invoiceSvc, ctx := newTestService(t)
	seedMonth(t, invoiceSvc, ctx)

	data, filename, err := svc.MonthlyXLSX(ctx, "2024-03")
	require.NoError(t, err)

	assert.Equal(t, "relatorio-2024-03.xlsx", filename)
	// XLSX files are zip archives.
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "expected zip magic, got %q", data[:2])
}
