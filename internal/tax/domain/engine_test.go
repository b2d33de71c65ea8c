package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSimplesDetails_FirstBracket(t *testing.T) {
	// R$ 15.000/month annualizes to R$ 180.000, exactly the first ceiling.
	res := SimplesDetails(d("15000"))

	assert.Equal(t, 1, res.Tier)
	assert.Equal(t, "1ª Faixa (Anexo III)", res.TierLabel)
	assert.True(t, res.EffectiveRate.Equal(d("0.06")), "effective rate %s", res.EffectiveRate)
	assert.True(t, res.TaxDue.Equal(d("900")), "tax due %s", res.TaxDue)
	assert.True(t, res.Annualized.Equal(d("180000")))
}

func TestSimplesDetails_SecondBracketDeduction(t *testing.T) {
	// R$ 30.000/month -> RBT12 360.000, second bracket.
	// ((360000 * 0.112) - 9360) / 360000 = 0.086
	res := SimplesDetails(d("30000"))

	assert.Equal(t, 2, res.Tier)
	assert.True(t, res.NominalRate.Equal(d("0.112")))
	assert.True(t, res.Deduction.Equal(d("9360")))
	assert.True(t, res.EffectiveRate.Equal(d("0.086")), "effective rate %s", res.EffectiveRate)
	assert.True(t, res.TaxDue.Equal(d("2580")), "tax due %s", res.TaxDue)
}

func TestSimplesDetails_ZeroRevenue(t *testing.T) {
	res := SimplesDetails(decimal.Zero)

	assert.Equal(t, NoRevenueLabel, res.TierLabel)
	assert.Equal(t, "-", res.Range)
	assert.True(t, res.TaxDue.IsZero())
	assert.True(t, res.EffectiveRate.IsZero())
}

func TestSimplesDetails_TopBracketCatchAll(t *testing.T) {
	// Beyond every ceiling the last row still applies.
	res := SimplesDetails(d("1000000"))

	assert.Equal(t, 6, res.Tier)
	assert.True(t, res.NominalRate.Equal(d("0.33")))
}

func TestSelectBracket_InclusiveCeiling(t *testing.T) {
	cases := []struct {
		annualized string
		tier       int
	}{
		{"180000", 1},
		{"180000.01", 2},
		{"360000", 2},
		{"360000.01", 3},
		{"720000", 3},
		{"1800000", 4},
		{"3600000", 5},
		{"4800000", 6},
		{"9999999", 6},
	}
	for _, tc := range cases {
		got := SelectBracket(d(tc.annualized))
		assert.Equal(t, tc.tier, got.Tier, "annualized %s", tc.annualized)
	}
}

// Effective rate never exceeds the nominal rate and never goes negative,
// for any revenue across every bracket.
func TestSimplesDetails_EffectiveRateBounds(t *testing.T) {
	revenues := []string{"0.01", "100", "14999", "15000.01", "29999", "55000", "149999", "200000", "399999", "500000"}
	for _, r := range revenues {
		res := SimplesDetails(d(r))
		assert.False(t, res.EffectiveRate.IsNegative(), "revenue %s", r)
		assert.True(t, res.EffectiveRate.LessThanOrEqual(res.NominalRate), "revenue %s: effective %s nominal %s", r, res.EffectiveRate, res.NominalRate)
	}
}

// Tax due grows with revenue across the first five bracket transitions; the
// deduction terms keep the curve continuous there. The sixth bracket is the
// table's own discontinuity and is asserted separately.
func TestSimplesDetails_MonotonicTaxDue(t *testing.T) {
	prev := decimal.Zero
	step := d("740.25")
	revenue := step
	for i := 0; i < 400; i++ { // tops out below the 6ª Faixa boundary
		res := SimplesDetails(revenue)
		require.True(t, res.TaxDue.GreaterThanOrEqual(prev), "revenue %s: tax %s dropped below %s", revenue, res.TaxDue, prev)
		prev = res.TaxDue
		revenue = revenue.Add(step)
	}
}

// Crossing into the 6ª Faixa lowers the effective rate (17.51% -> 15%);
// that step down is in the published table, not a computation error.
func TestSimplesDetails_SixthBracketStepDown(t *testing.T) {
	// RBT12 = 3.600.000 sits in the 5ª Faixa; one cent more tips into the 6ª.
	atBoundary := SimplesDetails(d("300000"))
	pastBoundary := SimplesDetails(d("300000.01"))

	assert.Equal(t, 5, atBoundary.Tier)
	assert.Equal(t, 6, pastBoundary.Tier)
	assert.True(t, pastBoundary.EffectiveRate.LessThan(atBoundary.EffectiveRate))
	assert.True(t, pastBoundary.EffectiveRate.Sub(d("0.15")).Abs().LessThan(d("0.0001")), "effective %s", pastBoundary.EffectiveRate)
}

func TestPresumidoTax_DefaultRates(t *testing.T) {
	// 5 + 3.65 + 4.80 + 2.88 = 16.33% of R$ 10.000 = R$ 1.633
	res := PresumidoTax(d("10000"), DefaultRateConfig())

	assert.True(t, res.AggregateRate.Equal(d("0.1633")), "aggregate %s", res.AggregateRate)
	assert.True(t, res.TaxDue.Equal(d("1633")), "tax due %s", res.TaxDue)
	assert.False(t, res.ISSAboveCeiling)
}

func TestPresumidoTax_Linearity(t *testing.T) {
	cfg := DefaultRateConfig()
	one := PresumidoTax(d("10000"), cfg).TaxDue
	three := PresumidoTax(d("30000"), cfg).TaxDue
	assert.True(t, three.Equal(one.Mul(decimal.NewFromInt(3))))
}

func TestRateConfig_ISSAboveCeiling(t *testing.T) {
	cfg := DefaultRateConfig()
	cfg.ISS = d("6.5")
	res := PresumidoTax(d("10000"), cfg)

	// Advisory flag only; the configured rate still applies unclamped.
	assert.True(t, res.ISSAboveCeiling)
	assert.True(t, res.AggregateRate.Equal(d("0.1783")), "aggregate %s", res.AggregateRate)
}

func TestCompareRegimes(t *testing.T) {
	// R$ 15.000: Simples 900 vs Presumido 2449.50.
	cmp := CompareRegimes(d("15000"), DefaultRateConfig())

	assert.Equal(t, RegimeSimples, cmp.CheaperRegime)
	assert.True(t, cmp.SimplesTax.Equal(d("900")))
	assert.True(t, cmp.PresumidoTax.Equal(d("2449.5")), "presumido %s", cmp.PresumidoTax)
	assert.True(t, cmp.SavingsIfSwitched.Equal(d("1549.5")), "savings %s", cmp.SavingsIfSwitched)
}

func TestCompareRegimes_SavingsSymmetry(t *testing.T) {
	// Savings is always the absolute gap regardless of which regime wins.
	for _, r := range []string{"5000", "30000", "150000", "400000"} {
		cmp := CompareRegimes(d(r), DefaultRateConfig())
		want := cmp.SimplesTax.Sub(cmp.PresumidoTax).Abs()
		assert.True(t, cmp.SavingsIfSwitched.Equal(want), "revenue %s", r)
		assert.False(t, cmp.SavingsIfSwitched.IsNegative())
	}
}

func TestTaxForRegime_RealFlatRate(t *testing.T) {
	got := TaxForRegime(RegimeReal, d("10000"), DefaultRateConfig())
	assert.True(t, got.Equal(d("2000")))
}

func TestParseCompetence(t *testing.T) {
	c, err := ParseCompetence("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, c.Year)
	assert.Equal(t, "2024-03", c.String())

	_, err = ParseCompetence("03/2024")
	assert.Error(t, err)
}

func TestCompetence_GuideDueDate(t *testing.T) {
	c, err := ParseCompetence("2024-03")
	require.NoError(t, err)

	due := c.GuideDueDate()
	assert.Equal(t, 2024, due.Year())
	assert.Equal(t, "2024-04-20", due.Format("2006-01-02"))

	// December rolls into January of the next year.
	dec, _ := ParseCompetence("2024-12")
	assert.Equal(t, "2025-01-20", dec.GuideDueDate().Format("2006-01-02"))
}
