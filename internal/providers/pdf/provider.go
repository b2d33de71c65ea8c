package pdf

import (
	"context"
	"io"

	invoicedomain "github.com/contafacil/portal/internal/invoice/domain"
)

// Provider renders portal documents as PDF.
type Provider interface {
	GenerateInvoice(ctx context.Context, invoice *invoicedomain.Invoice) (io.Reader, error)
}
