package domain

import "github.com/shopspring/decimal"

// Bracket is one row of the Simples Nacional progressive table.
// Ceilings are annualized gross revenue (RBT12); the deduction term
// turns the nominal rate into the lower effective rate.
type Bracket struct {
	Tier          int
	Label         string
	Range         string
	AnnualCeiling decimal.Decimal
	NominalRate   decimal.Decimal
	Deduction     decimal.Decimal
}

// anexoIII is the Anexo III (services) table, 2024 values.
// The table is engine input data, not user-editable.
var anexoIII = []Bracket{
	{Tier: 1, Label: "1ª Faixa", Range: "Até R$ 180.000,00", AnnualCeiling: decimal.NewFromInt(180000), NominalRate: decimal.RequireFromString("0.06"), Deduction: decimal.Zero},
	{Tier: 2, Label: "2ª Faixa", Range: "De R$ 180.000,01 a R$ 360.000,00", AnnualCeiling: decimal.NewFromInt(360000), NominalRate: decimal.RequireFromString("0.112"), Deduction: decimal.NewFromInt(9360)},
	{Tier: 3, Label: "3ª Faixa", Range: "De R$ 360.000,01 a R$ 720.000,00", AnnualCeiling: decimal.NewFromInt(720000), NominalRate: decimal.RequireFromString("0.135"), Deduction: decimal.NewFromInt(17640)},
	{Tier: 4, Label: "4ª Faixa", Range: "De R$ 720.000,01 a R$ 1.800.000,00", AnnualCeiling: decimal.NewFromInt(1800000), NominalRate: decimal.RequireFromString("0.16"), Deduction: decimal.NewFromInt(35640)},
	{Tier: 5, Label: "5ª Faixa", Range: "De R$ 1.800.000,01 a R$ 3.600.000,00", AnnualCeiling: decimal.NewFromInt(3600000), NominalRate: decimal.RequireFromString("0.21"), Deduction: decimal.NewFromInt(125640)},
	{Tier: 6, Label: "6ª Faixa", Range: "De R$ 3.600.000,01 a R$ 4.800.000,00", AnnualCeiling: decimal.NewFromInt(4800000), NominalRate: decimal.RequireFromString("0.33"), Deduction: decimal.NewFromInt(648000)},
}

// AnexoIIIBrackets returns a copy of the bracket table in ascending ceiling order.
func AnexoIIIBrackets() []Bracket {
	out := make([]Bracket, len(anexoIII))
	copy(out, anexoIII)
	return out
}

// SelectBracket returns the first bracket whose ceiling is >= annualized
// revenue. The ceiling comparison is inclusive: revenue exactly at a ceiling
// stays in that bracket. Revenue beyond every ceiling falls into the last
// (catch-all) row.
func SelectBracket(annualized decimal.Decimal) Bracket {
	for _, b := range anexoIII {
		if annualized.LessThanOrEqual(b.AnnualCeiling) {
			return b
		}
	}
	return anexoIII[len(anexoIII)-1]
}
