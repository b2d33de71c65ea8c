package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/clock"
	"github.com/contafacil/portal/internal/document/domain"
	"github.com/contafacil/portal/internal/usercontext"
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
		log:   p.Log.Named("document.service"),
		genID: p.GenID,
		repo:  p.Repo,
		clock: p.Clock,
	}
}

func (s *Service) Append(ctx context.Context, req domain.AppendRequest) (*domain.Document, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrInvalidTitle
	}
	if !validType(req.Type) {
		return nil, domain.ErrInvalidType
	}

	now := s.clock.Now()
	doc := &domain.Document{
		ID:          s.genID.Generate(),
		OwnerID:     ownerID,
		Title:       title,
		Type:        req.Type,
		Status:      domain.DocumentStatusPending,
		Competence:  strings.TrimSpace(req.Competence),
		Regime:      strings.TrimSpace(req.Regime),
		DueDate:     req.DueDate,
		AmountCents: req.AmountCents,
		DownloadURL: strings.TrimSpace(req.DownloadURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, doc); err != nil {
		return nil, err
	}

	s.log.Info("document appended",
		zap.String("document_id", doc.ID.String()),
		zap.String("type", string(doc.Type)),
	)
	return doc, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Document, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	items, err := s.repo.List(ctx, s.db, ownerID, domain.ListFilter{
		Type:   req.Type,
		Status: req.Status,
	})
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		docs = append(docs, *item)
	}
	return docs, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus) (*domain.Document, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}
	if !validStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	doc, err := s.repo.FindByID(ctx, s.db, ownerID, parsed)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}

	doc.Status = status
	doc.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, s.db, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Service) FindPendingGuide(ctx context.Context, competence, regime string) (*domain.Document, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}
	return s.repo.FindPendingGuide(ctx, s.db, ownerID, competence, regime)
}

func validType(t domain.DocumentType) bool {
	switch t {
	case domain.DocumentTypeTax, domain.DocumentTypeReport, domain.DocumentTypeContract, domain.DocumentTypeUpload:
		return true
	default:
		return false
	}
}

func validStatus(s domain.DocumentStatus) bool {
	switch s {
	case domain.DocumentStatusPending, domain.DocumentStatusPaid, domain.DocumentStatusReceived, domain.DocumentStatusProcessed:
		return true
	default:
		return false
	}
}
