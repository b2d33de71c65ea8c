package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/clock"
	documentdomain "github.com/contafacil/portal/internal/document/domain"
	invoicedomain "github.com/contafacil/portal/internal/invoice/domain"
	"github.com/contafacil/portal/internal/tax/domain"
	"github.com/contafacil/portal/internal/usercontext"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	InvoiceSvc invoicedomain.Service
	DocSvc     documentdomain.Service
	Clock      clock.Clock
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       domain.Repository
	invoiceSvc invoicedomain.Service
	docSvc     documentdomain.Service
	clock      clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("tax.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		invoiceSvc: p.InvoiceSvc,
		docSvc:     p.DocSvc,
		clock:      p.Clock,
	}
}

func (s *Service) Assess(ctx context.Context, competence string) (*domain.Assessment, error) {
	comp, err := domain.ParseCompetence(strings.TrimSpace(competence))
	if err != nil {
		return nil, domain.ErrInvalidCompetence
	}

	revenue, err := s.monthlyRevenue(ctx, comp)
	if err != nil {
		return nil, err
	}

	rates, err := s.ratesForOwner(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Assessment{
		Competence:     comp.String(),
		MonthlyRevenue: revenue,
		Simples:        domain.SimplesDetails(revenue),
		Presumido:      domain.PresumidoTax(revenue, rates),
		Comparison:     domain.CompareRegimes(revenue, rates),
	}, nil
}

func (s *Service) GetRates(ctx context.Context) (*domain.RatesResponse, error) {
	rates, err := s.ratesForOwner(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.RatesResponse{
		RateConfig:      rates,
		ISSAboveCeiling: rates.ISSAboveCeiling(),
	}, nil
}

func (s *Service) UpdateRates(ctx context.Context, req domain.UpdateRatesRequest) (*domain.RatesResponse, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrInvalidAccount
	}

	rates, err := s.ratesForOwner(ctx)
	if err != nil {
		return nil, err
	}

	if err := applyRateUpdate(&rates, req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	record := &domain.RateConfigRecord{
		ID:            s.genID.Generate(),
		OwnerID:       ownerID,
		ISSRate:       rates.ISS,
		PISCofinsRate: rates.PISCofins,
		IRPJRate:      rates.IRPJ,
		CSLLRate:      rates.CSLL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Upsert(ctx, s.db, record); err != nil {
		return nil, err
	}

	if rates.ISSAboveCeiling() {
		s.log.Warn("iss rate above conventional 5% ceiling",
			zap.String("owner_id", ownerID.String()),
			zap.String("iss_rate", rates.ISS.String()),
		)
	}

	return &domain.RatesResponse{
		RateConfig:      rates,
		ISSAboveCeiling: rates.ISSAboveCeiling(),
	}, nil
}

func (s *Service) GenerateGuide(ctx context.Context, req domain.GenerateGuideRequest) (*domain.GuideResult, error) {
	comp, err := domain.ParseCompetence(strings.TrimSpace(req.Competence))
	if err != nil {
		return nil, domain.ErrInvalidCompetence
	}
	if req.Regime != domain.RegimeSimples && req.Regime != domain.RegimePresumido {
		return nil, domain.ErrInvalidRegime
	}

	// One pending obligation per competence and regime; a repeat request
	// returns the existing guide instead of appending a duplicate.
	existing, err := s.docSvc.FindPendingGuide(ctx, comp.String(), string(req.Regime))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return guideResult(existing, req.Regime, true), nil
	}

	revenue, err := s.monthlyRevenue(ctx, comp)
	if err != nil {
		return nil, err
	}
	rates, err := s.ratesForOwner(ctx)
	if err != nil {
		return nil, err
	}

	taxDue := domain.TaxForRegime(req.Regime, revenue, rates)
	amountCents := taxDue.Shift(2).Round(0).IntPart()
	dueDate := comp.GuideDueDate()

	doc, err := s.docSvc.Append(ctx, documentdomain.AppendRequest{
		Title:       guideTitle(req.Regime, comp),
		Type:        documentdomain.DocumentTypeTax,
		Competence:  comp.String(),
		Regime:      string(req.Regime),
		DueDate:     &dueDate,
		AmountCents: &amountCents,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("tax guide generated",
		zap.String("document_id", doc.ID.String()),
		zap.String("competence", comp.String()),
		zap.String("regime", string(req.Regime)),
		zap.Int64("amount_cents", amountCents),
	)
	return guideResult(doc, req.Regime, false), nil
}

func (s *Service) monthlyRevenue(ctx context.Context, comp domain.Competence) (decimal.Decimal, error) {
	cents, err := s.invoiceSvc.RevenueCentsForMonth(ctx, comp.Year, comp.Month)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.New(cents, -2), nil
}

func (s *Service) ratesForOwner(ctx context.Context) (domain.RateConfig, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return domain.RateConfig{}, domain.ErrInvalidAccount
	}

	record, err := s.repo.FindByOwner(ctx, s.db, ownerID)
	if err != nil {
		return domain.RateConfig{}, err
	}
	if record == nil {
		return domain.DefaultRateConfig(), nil
	}
	return record.Rates(), nil
}

func applyRateUpdate(rates *domain.RateConfig, req domain.UpdateRatesRequest) error {
	// City selection overrides the ISS rate unless "custom" was picked.
	if cityID := strings.TrimSpace(req.CityID); cityID != "" {
		rate, override, ok := domain.CityISSRateByID(cityID)
		if !ok {
			return domain.ErrUnknownCity
		}
		if override {
			rates.ISS = rate
		}
	}

	for _, pair := range []struct {
		src *decimal.Decimal
		dst *decimal.Decimal
	}{
		{req.ISSRate, &rates.ISS},
		{req.PISCofinsRate, &rates.PISCofins},
		{req.IRPJRate, &rates.IRPJ},
		{req.CSLLRate, &rates.CSLL},
	} {
		if pair.src == nil {
			continue
		}
		if pair.src.IsNegative() {
			return domain.ErrInvalidRate
		}
		*pair.dst = *pair.src
	}
	return nil
}

func guideTitle(regime domain.Regime, comp domain.Competence) string {
	if regime == domain.RegimeSimples {
		return fmt.Sprintf("DAS - Simples Nacional - %s", comp.DisplayMonthYear())
	}
	return fmt.Sprintf("DARF - Impostos Federais (Presumido) - %s", comp.DisplayMonthYear())
}

func guideResult(doc *documentdomain.Document, regime domain.Regime, alreadyPending bool) *domain.GuideResult {
	result := &domain.GuideResult{
		DocumentID:     doc.ID.String(),
		Title:          doc.Title,
		Competence:     doc.Competence,
		Regime:         regime,
		AlreadyPending: alreadyPending,
	}
	if doc.AmountCents != nil {
		result.Amount = decimal.New(*doc.AmountCents, -2)
	}
	if doc.DueDate != nil {
		result.DueDate = *doc.DueDate
	}
	return result
}
