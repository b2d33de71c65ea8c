package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/clock"
	"github.com/contafacil/portal/internal/invoice/domain"
	"github.com/contafacil/portal/internal/invoice/format"
	"github.com/contafacil/portal/internal/usercontext"
	"github.com/contafacil/portal/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	clock clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
		repo:  p.Repo,
		clock: p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (*domain.Invoice, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = s.clock.Now()
	}

	if len(req.Items) == 0 {
		return nil, domain.ErrInvalidItems
	}
	items, err := s.buildItems(ownerID, req.Items)
	if err != nil {
		return nil, err
	}

	seq, err := s.repo.CountForYear(ctx, s.db, ownerID, issueDate.Year())
	if err != nil {
		return nil, err
	}
	number, err := format.Number(format.DefaultNumberTemplate, issueDate, seq+1)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	invoice := &domain.Invoice{
		ID:        s.genID.Generate(),
		OwnerID:   ownerID,
		Number:    number,
		Status:    domain.InvoiceStatusDraft,
		IssueDate: issueDate.UTC(),
		DueDate:   req.DueDate,
		TaxRate:   req.TaxRate,
		Issuer:    req.Issuer,
		Client:    req.Client,
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range items {
		items[i].InvoiceID = invoice.ID
	}
	invoice.Items = items

	if err := s.repo.Insert(ctx, s.db, invoice); err != nil {
		return nil, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("number", invoice.Number),
		zap.Int("items", len(invoice.Items)),
	)
	return invoice, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateInvoiceRequest) (*domain.Invoice, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	invoice, err := s.find(ctx, ownerID, req.ID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceStatusDraft {
		return nil, domain.ErrNotDraft
	}

	if req.IssueDate != nil {
		invoice.IssueDate = req.IssueDate.UTC()
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	if req.TaxRate != nil {
		invoice.TaxRate = *req.TaxRate
	}
	if req.Client != nil {
		invoice.Client = *req.Client
	}
	if req.Notes != nil {
		invoice.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.Items != nil {
		items, err := s.buildItems(ownerID, req.Items)
		if err != nil {
			return nil, err
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		if err := s.repo.ReplaceItems(ctx, s.db, invoice, items); err != nil {
			return nil, err
		}
		invoice.Items = items
	}
	invoice.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, s.db, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *Service) List(ctx context.Context, req domain.ListInvoiceRequest) (*domain.ListInvoiceResponse, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	size := req.PageSize
	if size <= 0 {
		size = 50
	}
	items, err := s.repo.List(ctx, s.db, ownerID, domain.ListInvoiceFilter{
		Status:    req.Status,
		PageToken: req.PageToken,
		PageSize:  size,
	})
	if err != nil {
		return nil, err
	}

	info := pagination.BuildCursorPageInfo(items, size, func(inv *domain.Invoice) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        inv.ID.String(),
			CreatedAt: inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if info.HasMore {
		items = items[:size]
	}

	invoices := make([]domain.Invoice, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		invoices = append(invoices, *item)
	}
	resp := &domain.ListInvoiceResponse{Invoices: invoices, HasMore: info.HasMore}
	if info.HasMore {
		resp.NextPageToken = info.NextPageToken
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}
	return s.find(ctx, ownerID, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.ErrInvalidAccount
	}

	invoice, err := s.find(ctx, ownerID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, ownerID, invoice.ID)
}

func (s *Service) Issue(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.transition(ctx, id, domain.InvoiceStatusIssued, domain.InvoiceStatusDraft)
}

func (s *Service) MarkPaid(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.transition(ctx, id, domain.InvoiceStatusPaid, domain.InvoiceStatusIssued)
}

func (s *Service) Cancel(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.transition(ctx, id, domain.InvoiceStatusCancelled, domain.InvoiceStatusDraft, domain.InvoiceStatusIssued)
}

func (s *Service) RevenueCentsForMonth(ctx context.Context, year int, month time.Month) (int64, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return 0, domain.ErrInvalidAccount
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return s.repo.SumRevenueCents(ctx, s.db, ownerID, from, to)
}

func (s *Service) ListForMonth(ctx context.Context, year int, month time.Month) ([]domain.Invoice, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	rows, err := s.repo.ListForRange(ctx, s.db, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, *row)
	}
	return invoices, nil
}

func (s *Service) transition(ctx context.Context, id string, next domain.InvoiceStatus, allowed ...domain.InvoiceStatus) (*domain.Invoice, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	invoice, err := s.find(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	permitted := false
	for _, status := range allowed {
		if invoice.Status == status {
			permitted = true
			break
		}
	}
	if !permitted {
		return nil, domain.ErrInvalidTransition
	}

	invoice.Status = next
	invoice.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, s.db, invoice); err != nil {
		return nil, err
	}

	s.log.Info("invoice status changed",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("status", string(next)),
	)
	return invoice, nil
}

func (s *Service) find(ctx context.Context, ownerID snowflake.ID, id string) (*domain.Invoice, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	invoice, err := s.repo.FindByID(ctx, s.db, ownerID, parsed)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

func (s *Service) buildItems(ownerID snowflake.ID, inputs []domain.ItemInput) ([]domain.InvoiceItem, error) {
	items := make([]domain.InvoiceItem, 0, len(inputs))
	for _, input := range inputs {
		description := strings.TrimSpace(input.Description)
		if description == "" || !input.Quantity.IsPositive() || input.UnitPriceCents < 0 {
			return nil, domain.ErrInvalidItems
		}
		items = append(items, domain.InvoiceItem{
			ID:             s.genID.Generate(),
			OwnerID:        ownerID,
			Description:    description,
			Quantity:       input.Quantity,
			UnitPriceCents: input.UnitPriceCents,
			AmountCents:    domain.LineAmountCents(input.Quantity, input.UnitPriceCents),
			CreatedAt:      s.clock.Now(),
		})
	}
	return items, nil
}
