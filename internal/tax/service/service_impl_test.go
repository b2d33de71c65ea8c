package service

import (
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
	"github.com/contafacil/portal/internal/tax/domain"
	"github.com/contafacil/portal/internal/tax/repository"
	"github.com/contafacil/portal/internal/usercontext"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type taxTestEnv struct {
	svc        domain.Service
	invoiceSvc invoicedomain.Service
	ctx        context.Context
	clk        *clock.FakeClock
}

func newTaxTestEnv(t *testing.T) *taxTestEnv {
	t.Helper()

	dbConn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(
		&domain.RateConfigRecord{},
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
	svc := New(Params{
		DB: dbConn, Log: log, GenID: node,
		Repo:       repository.Provide(),
		InvoiceSvc: invoiceSvc,
		DocSvc:     docSvc,
		Clock:      clk,
	})

	ctx := usercontext.WithUserID(context.Background(), node.Generate())
	return &taxTestEnv{svc: svc, invoiceSvc: invoiceSvc, ctx: ctx, clk: clk}
}

func (e *taxTestEnv) issueInvoice(t *testing.T, issueDate time.Time, amountCents int64) {
	t.Helper()
	inv, err := e.invoiceSvc.Create(e.ctx, invoicedomain.CreateInvoiceRequest{
		IssueDate: issueDate,
		Issuer:    invoicedomain.Party{Name: "Silva Consultoria ME", TaxID: "12.345.678/0001-90"},
		Client:    invoicedomain.Party{Name: "Padaria Estrela Ltda", TaxID: "98.765.432/0001-10"},
		Items: []invoicedomain.ItemInput{
			{Description: "Consultoria", Quantity: decimal.NewFromInt(1), UnitPriceCents: amountCents},
		},
	})
	require.NoError(t, err)
	_, err = e.invoiceSvc.Issue(e.ctx, inv.ID.String())
	require.NoError(t, err)
}

func TestAssess_RevenueFromIssuedInvoices(t *testing.T) {
	env := newTaxTestEnv(t)
	march := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	// Two issued invoices in March plus one draft that must not count.
	env.issueInvoice(t, march, 1000000)
	env.issueInvoice(t, march.AddDate(0, 0, 3), 500000)
	draft, err := env.invoiceSvc.Create(env.ctx, invoicedomain.CreateInvoiceRequest{
		IssueDate: march,
		Items:     []invoicedomain.ItemInput{{Description: "Rascunho", Quantity: decimal.NewFromInt(1), UnitPriceCents: 999999}},
	})
	require.NoError(t, err)
	require.Equal(t, invoicedomain.InvoiceStatusDraft, draft.Status)

	res, err := env.svc.Assess(env.ctx, "2024-03")
	require.NoError(t, err)

	assert.True(t, res.MonthlyRevenue.Equal(decimal.NewFromInt(15000)), "revenue %s", res.MonthlyRevenue)
	assert.True(t, res.Simples.TaxDue.Equal(decimal.NewFromInt(900)), "simples %s", res.Simples.TaxDue)
	assert.Equal(t, domain.RegimeSimples, res.Comparison.CheaperRegime)
}

func TestAssess_EmptyMonth(t *testing.T) {
	env := newTaxTestEnv(t)

	res, err := env.svc.Assess(env.ctx, "2024-07")
	require.NoError(t, err)

	assert.True(t, res.MonthlyRevenue.IsZero())
	assert.Equal(t, domain.NoRevenueLabel, res.Simples.TierLabel)
}

func TestAssess_InvalidCompetence(t *testing.T) {
	env := newTaxTestEnv(t)

	_, err := env.svc.Assess(env.ctx, "03/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidCompetence)
}

func TestAssess_RequiresAccount(t *testing.T) {
	env := newTaxTestEnv(t)

	_, err := env.svc.Assess(context.Background(), "2024-03")
	assert.ErrorIs(t, err, domain.ErrInvalidAccount)
}

func TestUpdateRates_Defaults(t *testing.T) {
	env := newTaxTestEnv(t)

	rates, err := env.svc.GetRates(env.ctx)
	require.NoError(t, err)
	assert.True(t, rates.ISS.Equal(decimal.NewFromInt(5)))
	assert.False(t, rates.ISSAboveCeiling)
}

func TestUpdateRates_Persisted(t *testing.T) {
	env := newTaxTestEnv(t)

	iss := decimal.RequireFromString("4.5")
	updated, err := env.svc.UpdateRates(env.ctx, domain.UpdateRatesRequest{ISSRate: &iss})
	require.NoError(t, err)
	assert.True(t, updated.ISS.Equal(iss))

	// Re-read from storage.
	again, err := env.svc.GetRates(env.ctx)
	require.NoError(t, err)
	assert.True(t, again.ISS.Equal(iss))
}

func TestUpdateRates_NegativeRejected(t *testing.T) {
	env := newTaxTestEnv(t)

	bad := decimal.NewFromInt(-1)
	_, err := env.svc.UpdateRates(env.ctx, domain.UpdateRatesRequest{IRPJRate: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestUpdateRates_CityOverride(t *testing.T) {
	env := newTaxTestEnv(t)

	updated, err := env.svc.UpdateRates(env.ctx, domain.UpdateRatesRequest{CityID: "sp"})
	require.NoError(t, err)
	assert.True(t, updated.ISS.Equal(decimal.RequireFromString("2.9")), "iss %s", updated.ISS)

	_, err = env.svc.UpdateRates(env.ctx, domain.UpdateRatesRequest{CityID: "atl"})
	assert.ErrorIs(t, err, domain.ErrUnknownCity)
}

func TestUpdateRates_CustomCityKeepsRate(t *testing.T) {
	env := newTaxTestEnv(t)

	iss := decimal.RequireFromString("3.2")
	_, err := env.svc.UpdateRates(env.ctx, domain.UpdateRatesRequest{ISSRate: &iss})
	require.NoError(t, err)

	// "custom" carries no override; the stored rate survives.
	updated, err := env.svc.UpdateRates(env.ctx, domain.UpdateRatesRequest{CityID: "custom"})
	require.NoError(t, err)
	assert.True(t, updated.ISS.Equal(iss), "iss %s", updated.ISS)
}

func TestUpdateRates_AboveCeilingFlag(t *testing.T) {
	env := newTaxTestEnv(t)

	iss := decimal.RequireFromString("6.5")
	updated, err := env.svc.UpdateRates(env.ctx, domain.UpdateRatesRequest{ISSRate: &iss})
	require.NoError(t, err)
	assert.True(t, updated.ISSAboveCeiling)
}

func TestGenerateGuide_Simples(t *testing.T) {
	env := newTaxTestEnv(t)
	env.issueInvoice(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), 1500000)

	guide, err := env.svc.GenerateGuide(env.ctx, domain.GenerateGuideRequest{
		Competence: "2024-03",
		Regime:     domain.RegimeSimples,
	})
	require.NoError(t, err)

	assert.Equal(t, "DAS - Simples Nacional - 03/2024", guide.Title)
	assert.True(t, guide.Amount.Equal(decimal.NewFromInt(900)), "amount %s", guide.Amount)
	assert.Equal(t, "2024-04-20", guide.DueDate.Format("2006-01-02"))
	assert.False(t, guide.AlreadyPending)
}

func TestGenerateGuide_Idempotent(t *testing.T) {
	env := newTaxTestEnv(t)
	env.issueInvoice(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), 1500000)

	first, err := env.svc.GenerateGuide(env.ctx, domain.GenerateGuideRequest{
		Competence: "2024-03",
		Regime:     domain.RegimeSimples,
	})
	require.NoError(t, err)

	second, err := env.svc.GenerateGuide(env.ctx, domain.GenerateGuideRequest{
		Competence: "2024-03",
		Regime:     domain.RegimeSimples,
	})
	require.NoError(t, err)

	assert.True(t, second.AlreadyPending)
	assert.Equal(t, first.DocumentID, second.DocumentID)

	// A different regime for the same month is a distinct obligation.
	darf, err := env.svc.GenerateGuide(env.ctx, domain.GenerateGuideRequest{
		Competence: "2024-03",
		Regime:     domain.RegimePresumido,
	})
	require.NoError(t, err)
	assert.False(t, darf.AlreadyPending)
	assert.Equal(t, "DARF - Impostos Federais (Presumido) - 03/2024", darf.Title)
}

func TestGenerateGuide_InvalidRegime(t *testing.T) {
	env := newTaxTestEnv(t)

	_, err := env.svc.GenerateGuide(env.ctx, domain.GenerateGuideRequest{
		Competence: "2024-03",
		Regime:     domain.RegimeReal,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRegime)
}
