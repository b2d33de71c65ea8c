package service

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/contafacil/portal/internal/plan/domain"
	"github.com/contafacil/portal/internal/usercontext"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type planService struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func NewService(p Params) domain.Service {
	return &planService{
		db:   p.DB,
		log:  p.Log.Named("plan.service"),
		repo: p.Repo,
	}
}

func (s *planService) Current(ctx context.Context) (*domain.PlanInfo, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	sub, err := s.repo.FindByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	tier := domain.DefaultTier
	if sub != nil {
		tier = sub.Tier
	}
	return planInfo(tier), nil
}

func (s *planService) Change(ctx context.Context, tier domain.Tier) (*domain.PlanInfo, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	if !tier.Valid() {
		return nil, domain.ErrInvalidTier
	}
	sub := &domain.Subscription{OwnerID: ownerID, Tier: tier}
	if err := s.repo.Upsert(ctx, s.db, sub); err != nil {
		return nil, err
	}
	s.log.Info("plan changed", zap.String("tier", string(tier)))
	return planInfo(tier), nil
}

func (s *planService) Catalog() []domain.PlanInfo {
	tiers := []domain.Tier{
		domain.TierBasico,
		domain.TierStandard,
		domain.TierPremium,
		domain.TierDiamante,
	}
	catalog := make([]domain.PlanInfo, 0, len(tiers))
	for _, tier := range tiers {
		catalog = append(catalog, *planInfo(tier))
	}
	return catalog
}

func planInfo(tier domain.Tier) *domain.PlanInfo {
	return &domain.PlanInfo{
		Tier:              tier,
		MonthlyPriceCents: domain.MonthlyPriceCents[tier],
	}
}
