package pdf

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	invoicedomain "github.com/contafacil/portal/internal/invoice/domain"
)

type marotoProvider struct{}

func New() Provider {
	return &marotoProvider{}
}

func (p *marotoProvider) GenerateInvoice(ctx context.Context, invoice *invoicedomain.Invoice) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, "Nota Fiscal de Serviço", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	meta := []string{
		"Número: " + invoice.Number,
		"Emissão: " + invoice.IssueDate.Format("02/01/2006"),
		"Status: " + string(invoice.Status),
	}
	if invoice.DueDate != nil {
		meta = append(meta, "Vencimento: "+invoice.DueDate.Format("02/01/2006"))
	}
	m.AddRow(20,
		col.New(6).Add(metaLines(meta)...),
		col.New(6),
	)

	m.AddRow(40,
		col.New(6).Add(
			text.New("Prestador", props.Text{Style: fontstyle.Bold}),
			text.New(invoice.Issuer.Name, props.Text{Top: 5}),
			text.New(partyAddress(invoice.Issuer), props.Text{Top: 9}),
			text.New(invoice.Issuer.TaxID, props.Text{Top: 13}),
		),
		col.New(6).Add(
			text.New("Tomador", props.Text{Style: fontstyle.Bold}),
			text.New(invoice.Client.Name, props.Text{Top: 5}),
			text.New(partyAddress(invoice.Client), props.Text{Top: 9}),
			text.New(invoice.Client.TaxID, props.Text{Top: 13}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Descrição", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qtd", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Valor unitário", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range invoice.Items {
		m.AddRow(12,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, item.Quantity.String(), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, brl(item.UnitPriceCents), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, brl(item.AmountCents), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(12,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, brl(invoice.TotalCents()), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	if invoice.Notes != "" {
		m.AddRow(20,
			text.NewCol(12, invoice.Notes, props.Text{Size: 8, Top: 4}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

func metaLines(lines []string) []core.Component {
	out := make([]core.Component, 0, len(lines))
	for i, line := range lines {
		out = append(out, text.New(line, props.Text{Top: float64(i * 4)}))
	}
	return out
}

func partyAddress(p invoicedomain.Party) string {
	parts := []string{}
	if p.Street != "" {
		street := p.Street
		if p.Number != "" {
			street += ", " + p.Number
		}
		parts = append(parts, street)
	}
	if p.City != "" {
		city := p.City
		if p.State != "" {
			city += " - " + p.State
		}
		parts = append(parts, city)
	}
	if p.Zip != "" {
		parts = append(parts, p.Zip)
	}
	return strings.Join(parts, ", ")
}

func brl(cents int64) string {
	return money.New(cents, money.BRL).Display()
}
