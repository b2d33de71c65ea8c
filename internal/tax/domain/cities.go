package domain

import "github.com/shopspring/decimal"

// CityISSRate is a convenience lookup row for municipal ISS rates.
type CityISSRate struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

// CityIDCustom selects manual rate entry; it never overrides the configured rate.
const CityIDCustom = "custom"

var cityISSRates = []CityISSRate{
	{ID: "sp", Name: "São Paulo - SP", Rate: decimal.RequireFromString("2.9")},
	{ID: "rj", Name: "Rio de Janeiro - RJ", Rate: decimal.RequireFromString("5.0")},
	{ID: "bh", Name: "Belo Horizonte - MG", Rate: decimal.RequireFromString("3.0")},
	{ID: "df", Name: "Brasília - DF", Rate: decimal.RequireFromString("5.0")},
	{ID: "cur", Name: "Curitiba - PR", Rate: decimal.RequireFromString("5.0")},
	{ID: "sal", Name: "Salvador - BA", Rate: decimal.RequireFromString("3.0")},
	{ID: "poa", Name: "Porto Alegre - RS", Rate: decimal.RequireFromString("5.0")},
	{ID: "man", Name: "Manaus - AM", Rate: decimal.RequireFromString("5.0")},
	{ID: "rec", Name: "Recife - PE", Rate: decimal.RequireFromString("5.0")},
	{ID: "for", Name: "Fortaleza - CE", Rate: decimal.RequireFromString("5.0")},
	{ID: "goi", Name: "Goiânia - GO", Rate: decimal.RequireFromString("5.0")},
	{ID: CityIDCustom, Name: "Outra Cidade / Personalizado", Rate: decimal.RequireFromString("5.0")},
}

// CityISSRates returns the full city lookup table.
func CityISSRates() []CityISSRate {
	out := make([]CityISSRate, len(cityISSRates))
	copy(out, cityISSRates)
	return out
}

// CityISSRateByID looks up a city's ISS rate. The custom entry reports
// override=false: selecting it keeps the manually entered rate.
func CityISSRateByID(id string) (rate decimal.Decimal, override bool, ok bool) {
	for _, c := range cityISSRates {
		if c.ID == id {
			return c.Rate, c.ID != CityIDCustom, true
		}
	}
	return decimal.Zero, false, false
}
