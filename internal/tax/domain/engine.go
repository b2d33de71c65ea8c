package domain

import "github.com/shopspring/decimal"

// Regime identifies a tax regime the portal can simulate.
type Regime string

const (
	RegimeSimples   Regime = "simples"
	RegimePresumido Regime = "presumido"
	RegimeReal      Regime = "real"
)

// NoRevenueLabel is the sentinel tier label returned for a month with no
// taxable revenue. Zero revenue is a defined state, not an error.
const NoRevenueLabel = "Sem Faturamento"

var (
	twelve       = decimal.NewFromInt(12)
	hundred      = decimal.NewFromInt(100)
	issCeiling   = decimal.NewFromInt(5)
	realFlatRate = decimal.RequireFromString("0.20")
)

// SimplesResult is the full breakdown of a Simples Nacional assessment,
// including everything the breakdown view displays.
type SimplesResult struct {
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	NominalRate   decimal.Decimal `json:"nominal_rate"`
	Deduction     decimal.Decimal `json:"deduction"`
	Tier          int             `json:"tier"`
	TierLabel     string          `json:"tier_label"`
	Range         string          `json:"range"`
	Annualized    decimal.Decimal `json:"annualized_revenue"`
	TaxDue        decimal.Decimal `json:"tax_due"`
}

// SimplesDetails assesses a competence month under Simples Nacional Anexo III.
//
// Annualized revenue is projected as monthly revenue * 12. This is a
// deliberate proxy for the legally correct trailing-12-month figure (RBT12);
// replacing it with a rolling window would change observable tax amounts.
func SimplesDetails(monthlyRevenue decimal.Decimal) SimplesResult {
	if monthlyRevenue.IsZero() {
		return SimplesResult{
			EffectiveRate: decimal.Zero,
			NominalRate:   decimal.Zero,
			Deduction:     decimal.Zero,
			TierLabel:     NoRevenueLabel,
			Range:         "-",
			Annualized:    decimal.Zero,
			TaxDue:        decimal.Zero,
		}
	}

	annualized := monthlyRevenue.Mul(twelve)
	bracket := SelectBracket(annualized)

	// ((RBT12 * nominal) - deduction) / RBT12, floored at zero.
	// A negative result is only reachable with inconsistent bracket data.
	effectiveRate := annualized.Mul(bracket.NominalRate).Sub(bracket.Deduction).Div(annualized)
	if effectiveRate.IsNegative() {
		effectiveRate = decimal.Zero
	}

	return SimplesResult{
		EffectiveRate: effectiveRate,
		NominalRate:   bracket.NominalRate,
		Deduction:     bracket.Deduction,
		Tier:          bracket.Tier,
		TierLabel:     bracket.Label + " (Anexo III)",
		Range:         bracket.Range,
		Annualized:    annualized,
		TaxDue:        monthlyRevenue.Mul(effectiveRate),
	}
}

// RateConfig holds the four Lucro Presumido component rates as percentages.
type RateConfig struct {
	ISS       decimal.Decimal `json:"iss_rate"`
	PISCofins decimal.Decimal `json:"pis_cofins_rate"`
	IRPJ      decimal.Decimal `json:"irpj_rate"`
	CSLL      decimal.Decimal `json:"csll_rate"`
}

// DefaultRateConfig returns the service-industry defaults: ISS at the legal
// ceiling, PIS/COFINS cumulative, IRPJ and CSLL on the 32% presumed base.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		ISS:       decimal.NewFromInt(5),
		PISCofins: decimal.RequireFromString("3.65"),
		IRPJ:      decimal.RequireFromString("4.80"),
		CSLL:      decimal.RequireFromString("2.88"),
	}
}

// AggregateRate is the flat combined rate as a fraction.
func (c RateConfig) AggregateRate() decimal.Decimal {
	return c.ISS.Add(c.PISCofins).Add(c.IRPJ).Add(c.CSLL).Div(hundred)
}

// ISSAboveCeiling reports whether the configured ISS rate exceeds the
// conventional 5% municipal ceiling. Advisory only; the engine never clamps.
func (c RateConfig) ISSAboveCeiling() bool {
	return c.ISS.GreaterThan(issCeiling)
}

// PresumidoResult is a Lucro Presumido assessment.
type PresumidoResult struct {
	AggregateRate   decimal.Decimal `json:"aggregate_rate"`
	TaxDue          decimal.Decimal `json:"tax_due"`
	ISSAboveCeiling bool            `json:"iss_above_ceiling"`
}

// PresumidoTax assesses a competence month under Lucro Presumido.
// The aggregate rate applies directly; there is no bracket logic.
func PresumidoTax(monthlyRevenue decimal.Decimal, cfg RateConfig) PresumidoResult {
	rate := cfg.AggregateRate()
	return PresumidoResult{
		AggregateRate:   rate,
		TaxDue:          monthlyRevenue.Mul(rate),
		ISSAboveCeiling: cfg.ISSAboveCeiling(),
	}
}

// Comparison holds both regimes' assessments for the same revenue.
type Comparison struct {
	SimplesTax        decimal.Decimal `json:"simples_tax"`
	PresumidoTax      decimal.Decimal `json:"presumido_tax"`
	CheaperRegime     Regime          `json:"cheaper_regime"`
	SavingsIfSwitched decimal.Decimal `json:"savings_if_switched"`
}

// CompareRegimes computes both regimes independently and reports which is
// cheaper. The comparison never special-cases the user's selected regime.
func CompareRegimes(monthlyRevenue decimal.Decimal, cfg RateConfig) Comparison {
	simples := SimplesDetails(monthlyRevenue).TaxDue
	presumido := PresumidoTax(monthlyRevenue, cfg).TaxDue

	cheaper := RegimeSimples
	if presumido.LessThan(simples) {
		cheaper = RegimePresumido
	}

	return Comparison{
		SimplesTax:        simples,
		PresumidoTax:      presumido,
		CheaperRegime:     cheaper,
		SavingsIfSwitched: simples.Sub(presumido).Abs(),
	}
}

// TaxForRegime computes the tax due for a single regime. Lucro Real is a
// flat 20% placeholder, matching the simulator's original behavior.
func TaxForRegime(regime Regime, monthlyRevenue decimal.Decimal, cfg RateConfig) decimal.Decimal {
	switch regime {
	case RegimeSimples:
		return SimplesDetails(monthlyRevenue).TaxDue
	case RegimePresumido:
		return PresumidoTax(monthlyRevenue, cfg).TaxDue
	default:
		return monthlyRevenue.Mul(realFlatRate)
	}
}
