// Package pricing turns titled sets of line items into displayable price
// breakdowns under a market profile: partial totals with missing-price
// diagnostics, the regular/final discount presentation, the per-market flat
// surcharge and the per-day cost caption for the shake offer.
package pricing

import (
	"errors"
	"math"

	"github.com/fitclub/wellness-api/catalog"
)

// ErrNotAvailable is returned when an offer contains a product that is not
// sellable in the active market. The offer must be suppressed entirely, it is
// not an error to surface to the client.
var ErrNotAvailable = errors.New("pricing: product not available in this market")

// ErrInvalidDiscount is returned for discount percents outside [0, 100).
// A 100% discount would divide by zero in the regular-price back-computation
// and no call site produces one.
var ErrInvalidDiscount = errors.New("pricing: discount percent out of range")

// ShakeOfferTitle is the single-product shake offer. It is the only offer
// that carries the per-day cost caption, and only at its 5% discount.
const ShakeOfferTitle = "Batido Nutricional"

// ShakeDiscountPercent is the discount the shake offer is always quoted at.
const ShakeDiscountPercent = 5

// ComboDiscountPercent is the discount every symptom combo is quoted at.
const ComboDiscountPercent = 10

// Offer is a fully priced, displayable offer. RegularPrice and FinalPrice are
// whole currency units; when a discount applies the final price is the true
// amount payable and the regular price is back-computed for display.
type Offer struct {
	Title           string            `json:"title"`
	Items           []catalog.Product `json:"items"`
	DisplayItems    []string          `json:"display_items"`
	RegularPrice    int               `json:"regular_price"`
	DiscountPercent int               `json:"discount_percent"`
	FinalPrice      int               `json:"final_price"`
	MissingPrices   []catalog.Product `json:"missing_prices,omitempty"`
	DailyPrice      float64           `json:"daily_price,omitempty"`
	Surcharged      bool              `json:"surcharged,omitempty"`
}

// Quote prices a titled offer under a market profile.
//
// Every item must be available in the market or the whole offer is suppressed
// with ErrNotAvailable. Items with no configured price are excluded from the
// total and reported in MissingPrices; they never silently contribute zero.
// The summed total is the final price the client pays; with a discount the
// struck-through regular price is derived as final/(1-d/100).
func Quote(p catalog.Profile, title string, items []catalog.Product, discountPct int, jointPain bool) (Offer, error) {
	if discountPct < 0 || discountPct >= 100 {
		return Offer{}, ErrInvalidDiscount
	}
	for _, it := range items {
		if !p.IsAvailable(it) {
			return Offer{}, ErrNotAvailable
		}
	}

	var sum float64
	var missing []catalog.Product
	for _, it := range items {
		price, ok := p.Prices[it]
		if !ok {
			missing = append(missing, it)
			continue
		}
		sum += price
	}

	surcharged := false
	if p.SurchargeAmount > 0 && len(items) > 0 && title != p.SurchargeExempt {
		sum += p.SurchargeAmount
		surcharged = true
	}

	final := int(math.Round(sum))
	regular := final
	if discountPct > 0 {
		regular = int(math.Round(float64(final) / (1 - float64(discountPct)/100)))
	}

	offer := Offer{
		Title:           title,
		Items:           items,
		DisplayItems:    displayItems(p, items, jointPain),
		RegularPrice:    regular,
		DiscountPercent: discountPct,
		FinalPrice:      final,
		MissingPrices:   missing,
		Surcharged:      surcharged,
	}

	if title == ShakeOfferTitle && discountPct == ShakeDiscountPercent && p.DailyDivisor > 0 {
		offer.DailyPrice = math.Round(float64(final)/p.DailyDivisor*100) / 100
	}

	return offer, nil
}

func displayItems(p catalog.Profile, items []catalog.Product, jointPain bool) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = p.DisplayName(it, jointPain)
	}
	return out
}
