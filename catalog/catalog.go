// Package catalog holds the per-market configuration for the wellness
// assessment: price tables, product availability, currency presentation and
// the per-country display-name and surcharge rules. Profiles are defined at
// process start and never mutated, so they can be shared freely.
package catalog

// Product is a stable product identifier. Display names may vary by market
// (see Profile.DisplayName), the identifier and its price never do.
type Product string

// Product identifiers shared by every market.
const (
	Batido          Product = "Batido"
	TeDeHierbas     Product = "Té de Hierbas"
	AloeConcentrado Product = "Aloe Concentrado"
	BeverageMix     Product = "Beverage Mix"
	BetaHeart       Product = "Beta Heart"
	FibraActiva     Product = "Fibra Activa"
	GoldenBeverage  Product = "Golden Beverage"
	NRG             Product = "NRG"
	Herbalifeline   Product = "Herbalifeline"
	PDM             Product = "PDM"
)

// NameOverride substitutes the rendered label of a product in one market.
// When OnJointPain is set the substitution only applies while the client has
// reported joint pain.
type NameOverride struct {
	Product     Product
	Name        string
	OnJointPain bool
}

// Profile describes one market: currency presentation, the price table, the
// set of sellable products and the market-specific pricing quirks.
type Profile struct {
	Code           string
	Name           string
	CurrencySymbol string
	ThousandsSep   string
	Prices         map[Product]float64
	Available      map[Product]bool
	Overrides      []NameOverride

	// SurchargeAmount is added to every offer total before the discount
	// presentation math, except for the offer titled SurchargeExempt.
	SurchargeAmount float64
	SurchargeExempt string

	// DailyDivisor amortizes the shake offer into a per-day cost caption.
	DailyDivisor float64
}

// DisplayName returns the label to render for a product in this market.
// Pricing always keys on the Product identifier, never on the label.
func (p Profile) DisplayName(product Product, jointPain bool) string {
	for _, o := range p.Overrides {
		if o.Product != product {
			continue
		}
		if o.OnJointPain && !jointPain {
			continue
		}
		return o.Name
	}
	return string(product)
}

// IsAvailable reports whether a product can be offered in this market.
func (p Profile) IsAvailable(product Product) bool {
	return p.Available[product]
}

// DefaultCountry is used whenever the requested country is unknown or empty.
const DefaultCountry = "Perú"

var countryOrder = []string{
	"Perú",
	"Chile",
	"Colombia",
	"España (Península)",
	"España (Canarias)",
}

var countries = map[string]Profile{
	"Perú": {
		Code:           "PE",
		Name:           "Perú",
		CurrencySymbol: "S/",
		ThousandsSep:   ".",
		Prices: map[Product]float64{
			Batido:          184,
			TeDeHierbas:     145,
			AloeConcentrado: 180,
			BeverageMix:     159,
			BetaHeart:       231,
			FibraActiva:     168,
			GoldenBeverage:  154,
			NRG:             112,
			Herbalifeline:   180,
			PDM:             234,
		},
		Available:    allProducts(),
		DailyDivisor: 22,
	},
	"Chile": {
		Code:           "CL",
		Name:           "Chile",
		CurrencySymbol: "$",
		ThousandsSep:   ".",
		Prices: map[Product]float64{
			Batido:          40377,
			BetaHeart:       48452,
			PDM:             51678,
			BeverageMix:     34943,
			TeDeHierbas:     32300,
			AloeConcentrado: 42858,
			FibraActiva:     39503,
			Herbalifeline:   44964,
			NRG:             25655,
			GoldenBeverage:  44423,
		},
		Available: allProducts(),
		Overrides: []NameOverride{
			{Product: GoldenBeverage, Name: "Collagen Drink", OnJointPain: true},
		},
		SurchargeAmount: 15,
		SurchargeExempt: "Batido + PDM",
		DailyDivisor:    22,
	},
	"Colombia": {
		Code:           "CO",
		Name:           "Colombia",
		CurrencySymbol: "$",
		ThousandsSep:   ".",
		Prices: map[Product]float64{
			Batido:          155000,
			TeDeHierbas:     119000,
			AloeConcentrado: 157000,
			BeverageMix:     132000,
			BetaHeart:       176000,
			FibraActiva:     128000,
			GoldenBeverage:  137000,
			NRG:             92000,
			Herbalifeline:   162000,
			PDM:             194000,
		},
		Available:    allProducts(),
		DailyDivisor: 30,
	},
	"España (Península)": {
		Code:           "ES-PEN",
		Name:           "España (Península)",
		CurrencySymbol: "€",
		ThousandsSep:   ".",
		Prices: map[Product]float64{
			Batido:          62.59,
			TeDeHierbas:     40.71,
			AloeConcentrado: 54.92,
			BeverageMix:     51.72,
			BetaHeart:       56.83,
			FibraActiva:     39.98,
			GoldenBeverage:  82.77,
			NRG:             71.91,
			Herbalifeline:   43.48,
			PDM:             72.14,
		},
		Available:    allProducts(),
		Overrides:    spainOverrides(),
		DailyDivisor: 22,
	},
	"España (Canarias)": {
		Code:           "ES-CAN",
		Name:           "España (Canarias)",
		CurrencySymbol: "€",
		ThousandsSep:   ".",
		Prices: map[Product]float64{
			Batido:          64.75,
			TeDeHierbas:     46.38,
			AloeConcentrado: 57.28,
			BeverageMix:     55.17,
			BetaHeart:       60.15,
			FibraActiva:     42.75,
			GoldenBeverage:  84.38,
			NRG:             73.82,
			Herbalifeline:   46.16,
			PDM:             72.14,
		},
		Available:    allProducts(),
		Overrides:    spainOverrides(),
		DailyDivisor: 22,
	},
}

func allProducts() map[Product]bool {
	return map[Product]bool{
		Batido: true, TeDeHierbas: true, AloeConcentrado: true,
		BeverageMix: true, BetaHeart: true, FibraActiva: true,
		GoldenBeverage: true, NRG: true, Herbalifeline: true, PDM: true,
	}
}

func spainOverrides() []NameOverride {
	return []NameOverride{
		{Product: NRG, Name: "High Protein Iced Coffee"},
		{Product: BeverageMix, Name: "PPP"},
		{Product: GoldenBeverage, Name: "Collagen Booster"},
	}
}

// Lookup returns the profile for a country name. Unknown or empty names fall
// back to the default country, so callers never have to handle an error.
func Lookup(name string) Profile {
	if p, ok := countries[name]; ok {
		return p
	}
	return countries[DefaultCountry]
}

// Names returns the supported country names in their fixed display order.
func Names() []string {
	out := make([]string, len(countryOrder))
	copy(out, countryOrder)
	return out
}
