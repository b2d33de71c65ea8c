package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/contafacil/portal/internal/partner/domain"
	"github.com/contafacil/portal/internal/usercontext"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type partnerService struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func NewService(p Params) domain.Service {
	return &partnerService{
		db:    p.DB,
		log:   p.Log.Named("partner.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

var hundred = decimal.NewFromInt(100)

func (s *partnerService) Upsert(ctx context.Context, req domain.UpsertRequest) (*domain.Partner, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.SharePercentage.IsNegative() || req.SharePercentage.GreaterThan(hundred) {
		return nil, domain.ErrInvalidShare
	}

	if req.ID != "" {
		id, err := snowflake.ParseString(req.ID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		partner, err := s.repo.FindByID(ctx, s.db, ownerID, id)
		if err != nil {
			return nil, err
		}
		applyFields(partner, req)
		if err := s.repo.Save(ctx, s.db, partner); err != nil {
			return nil, err
		}
		return partner, nil
	}

	partner := &domain.Partner{
		ID:      s.genID.Generate(),
		OwnerID: ownerID,
	}
	applyFields(partner, req)
	if err := s.repo.Insert(ctx, s.db, partner); err != nil {
		return nil, err
	}
	s.log.Info("partner created",
		zap.String("partner_id", partner.ID.String()),
		zap.String("share", partner.SharePercentage.String()),
	)
	return partner, nil
}

func (s *partnerService) List(ctx context.Context) ([]domain.Partner, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	rows, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	partners := make([]domain.Partner, 0, len(rows))
	for _, row := range rows {
		partners = append(partners, *row)
	}
	return partners, nil
}

func (s *partnerService) Delete(ctx context.Context, rawID string) error {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return domain.ErrInvalidAccount
	}
	id, err := snowflake.ParseString(rawID)
	if err != nil {
		return domain.ErrInvalidID
	}
	if _, err := s.repo.FindByID(ctx, s.db, ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, ownerID, id)
}

func applyFields(partner *domain.Partner, req domain.UpsertRequest) {
	partner.Name = req.Name
	partner.TaxID = strings.TrimSpace(req.TaxID)
	partner.Email = strings.TrimSpace(req.Email)
	partner.Role = strings.TrimSpace(req.Role)
	partner.SharePercentage = req.SharePercentage
}
