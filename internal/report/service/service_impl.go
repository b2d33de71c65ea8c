package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	invoicedomain "github.com/contafacil/portal/internal/invoice/domain"
	"github.com/contafacil/portal/internal/report/domain"
	taxdomain "github.com/contafacil/portal/internal/tax/domain"
	"github.com/contafacil/portal/internal/usercontext"
)

type Params struct {
	fx.In

	Log        *zap.Logger
	TaxSvc     taxdomain.Service
	InvoiceSvc invoicedomain.Service
}

type reportService struct {
	log        *zap.Logger
	taxSvc     taxdomain.Service
	invoiceSvc invoicedomain.Service
}

func NewService(p Params) domain.Service {
	return &reportService{
		log:        p.Log.Named("report.service"),
		taxSvc:     p.TaxSvc,
		invoiceSvc: p.InvoiceSvc,
	}
}

func (s *reportService) Monthly(ctx context.Context, competence string) (*domain.MonthlySummary, error) {
	if _, ok := usercontext.UserIDFromContext(ctx); !ok {
		return nil, domain.ErrInvalidAccount
	}
	comp, err := taxdomain.ParseCompetence(competence)
	if err != nil {
		return nil, domain.ErrInvalidCompetence
	}

	assessment, err := s.taxSvc.Assess(ctx, competence)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceSvc.ListForMonth(ctx, comp.Year, comp.Month)
	if err != nil {
		return nil, err
	}

	summary := &domain.MonthlySummary{
		Competence:      competence,
		RevenueCents:    toCents(assessment.MonthlyRevenue),
		InvoiceCount:    len(invoices),
		SimplesTaxCents: toCents(assessment.Simples.TaxDue),
		PresumidoCents:  toCents(assessment.Presumido.TaxDue),
		CheaperRegime:   string(assessment.Comparison.CheaperRegime),
		SavingsCents:    toCents(assessment.Comparison.SavingsIfSwitched),
	}
	for _, inv := range invoices {
		switch inv.Status {
		case invoicedomain.InvoiceStatusIssued:
			summary.IssuedCount++
		case invoicedomain.InvoiceStatusPaid:
			summary.PaidCount++
		}
	}
	summary.Revenue = brl(summary.RevenueCents)
	summary.SimplesTax = brl(summary.SimplesTaxCents)
	summary.PresumidoTax = brl(summary.PresumidoCents)
	summary.Savings = brl(summary.SavingsCents)
	return summary, nil
}

func (s *reportService) MonthlyXLSX(ctx context.Context, competence string) ([]byte, string, error) {
	summary, err := s.Monthly(ctx, competence)
	if err != nil {
		return nil, "", err
	}
	comp, err := taxdomain.ParseCompetence(competence)
	if err != nil {
		return nil, "", domain.ErrInvalidCompetence
	}
	invoices, err := s.invoiceSvc.ListForMonth(ctx, comp.Year, comp.Month)
	if err != nil {
		return nil, "", err
	}

	const sheet = "Notas Fiscais"
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Número", "Data", "Cliente", "Status", "Total (R$)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), inv.Number)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), inv.IssueDate.Format("02/01/2006"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), inv.Client.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(inv.Status))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), brl(inv.TotalCents()))
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Receita do mês")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), summary.Revenue)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Simples Nacional")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), summary.SimplesTax)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Lucro Presumido")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), summary.PresumidoTax)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("relatorio-%04d-%02d.xlsx", comp.Year, int(comp.Month))
	s.log.Info("monthly report exported",
		zap.String("competence", competence),
		zap.Int("invoices", len(invoices)),
	)
	return buf.Bytes(), filename, nil
}

func toCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func brl(cents int64) string {
	return money.New(cents, money.BRL).Display()
}
