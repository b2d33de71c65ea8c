package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/client/domain"
	"github.com/contafacil/portal/internal/clock"
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
		log:   p.Log.Named("client.service"),
		genID: p.GenID,
		repo:  p.Repo,
		clock: p.Clock,
	}
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertRequest) (*domain.Client, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	taxID := strings.TrimSpace(req.TaxID)
	if taxID == "" {
		return nil, domain.ErrInvalidTaxID
	}

	now := s.clock.Now()

	if id := strings.TrimSpace(req.ID); id != "" {
		parsed, err := snowflake.ParseString(id)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		client, err := s.repo.FindByID(ctx, s.db, ownerID, parsed)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}

		applyFields(client, req, name, taxID)
		client.UpdatedAt = now
		if err := s.repo.Save(ctx, s.db, client); err != nil {
			return nil, err
		}
		return client, nil
	}

	client := &domain.Client{
		ID:        s.genID.Generate(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyFields(client, req, name, taxID)

	if err := s.repo.Insert(ctx, s.db, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	items, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}

	clients := make([]domain.Client, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		clients = append(clients, *item)
	}
	return clients, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	client, err := s.repo.FindByID(ctx, s.db, ownerID, parsed)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.ErrInvalidAccount
	}

	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, s.db, ownerID, parsed)
}

func applyFields(client *domain.Client, req domain.UpsertRequest, name, taxID string) {
	client.Name = name
	client.TaxID = taxID
	client.Email = strings.TrimSpace(req.Email)
	client.Phone = strings.TrimSpace(req.Phone)
	client.Street = strings.TrimSpace(req.Street)
	client.Number = strings.TrimSpace(req.Number)
	client.City = strings.TrimSpace(req.City)
	client.State = strings.TrimSpace(req.State)
	client.Zip = strings.TrimSpace(req.Zip)
	client.Notes = strings.TrimSpace(req.Notes)
}
