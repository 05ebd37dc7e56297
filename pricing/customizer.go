package pricing

import (
	"sort"

	"github.com/fitclub/wellness-api/catalog"
)

// CustomOfferTitle names the quantity-based bundle built on the customizer
// screen.
const CustomOfferTitle = "Selección personalizada"

// Selection maps products to the quantity the client picked. Zero quantities
// are ignored.
type Selection map[catalog.Product]int

// TotalItems sums all quantities in the selection.
func (s Selection) TotalItems() int {
	total := 0
	for _, q := range s {
		if q > 0 {
			total += q
		}
	}
	return total
}

// Clone returns an independent copy of the selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for p, q := range s {
		out[p] = q
	}
	return out
}

// TierForCount maps a total item count to a discount percent. A strict step
// function: never proportional, never above 10.
func TierForCount(totalItems int) int {
	switch {
	case totalItems <= 0:
		return 0
	case totalItems == 1:
		return 5
	default:
		return 10
	}
}

// QuoteSelection prices the customizer bundle: the discount tier is derived
// from the total item count, then the expanded line items run through the
// same pricing math as every other offer, missing-price reporting and
// market surcharge included.
func QuoteSelection(p catalog.Profile, sel Selection, jointPain bool) (Offer, error) {
	products := make([]catalog.Product, 0, len(sel))
	for prod, q := range sel {
		if q > 0 {
			products = append(products, prod)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i] < products[j] })

	items := make([]catalog.Product, 0, sel.TotalItems())
	for _, prod := range products {
		for i := 0; i < sel[prod]; i++ {
			items = append(items, prod)
		}
	}

	return Quote(p, CustomOfferTitle, items, TierForCount(len(items)), jointPain)
}
