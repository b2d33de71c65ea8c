package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAccount    = errors.New("invalid_account")
	ErrInvalidCompetence = errors.New("invalid_competence")
	ErrInvalidRegime     = errors.New("invalid_regime")
	ErrInvalidRate       = errors.New("invalid_rate")
	ErrUnknownCity       = errors.New("unknown_city")
)

// Assessment is the full tax picture for one competence month.
type Assessment struct {
	Competence     string          `json:"competence"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	Simples        SimplesResult   `json:"simples"`
	Presumido      PresumidoResult `json:"presumido"`
	Comparison     Comparison      `json:"comparison"`
}

// GuideResult describes the generated (or already pending) payment guide.
type GuideResult struct {
	DocumentID     string          `json:"document_id"`
	Title          string          `json:"title"`
	Competence     string          `json:"competence"`
	Regime         Regime          `json:"regime"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"due_date"`
	AlreadyPending bool            `json:"already_pending"`
}

type UpdateRatesRequest struct {
	ISSRate       *decimal.Decimal `json:"iss_rate,omitempty"`
	PISCofinsRate *decimal.Decimal `json:"pis_cofins_rate,omitempty"`
	IRPJRate      *decimal.Decimal `json:"irpj_rate,omitempty"`
	CSLLRate      *decimal.Decimal `json:"csll_rate,omitempty"`
	CityID        string           `json:"city_id,omitempty"`
}

type RatesResponse struct {
	RateConfig
	ISSAboveCeiling bool `json:"iss_above_ceiling"`
}

type GenerateGuideRequest struct {
	Competence string `json:"competence"`
	Regime     Regime `json:"regime"`
}

type Service interface {
	// Assess computes revenue and both regime simulations for a competence month.
	Assess(ctx context.Context, competence string) (*Assessment, error)

	GetRates(ctx context.Context) (*RatesResponse, error)
	UpdateRates(ctx context.Context, req UpdateRatesRequest) (*RatesResponse, error)

	// GenerateGuide creates the pending DAS/DARF document for the month.
	// At most one pending guide exists per account, competence and regime;
	// a repeat call returns the existing document.
	GenerateGuide(ctx context.Context, req GenerateGuideRequest) (*GuideResult, error)
}
