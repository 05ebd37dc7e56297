package pricing

import (
	"testing"

	"github.com/fitclub/wellness-api/catalog"
)

func TestTierForCount(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{1, 5},
		{2, 10},
		{3, 10},
		{50, 10},
	}

	for _, tt := range tests {
		if got := TierForCount(tt.count); got != tt.want {
			t.Errorf("TierForCount(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestSelectionTotalItems(t *testing.T) {
	sel := Selection{
		catalog.Batido: 2,
		catalog.NRG:    1,
		catalog.PDM:    0,
	}
	if got := sel.TotalItems(); got != 3 {
		t.Errorf("TotalItems = %d, want 3", got)
	}
}

func TestSelectionClone(t *testing.T) {
	orig := Selection{catalog.Batido: 1}
	clone := orig.Clone()
	clone[catalog.Batido] = 9
	if orig[catalog.Batido] != 1 {
		t.Error("Clone must not share storage with the original")
	}
}

func TestQuoteSelectionSingleItem(t *testing.T) {
	p := catalog.Lookup("Perú")

	offer, err := QuoteSelection(p, Selection{catalog.Batido: 1}, false)
	if err != nil {
		t.Fatalf("QuoteSelection returned error: %v", err)
	}

	if offer.Title != CustomOfferTitle {
		t.Errorf("Title = %q, want %q", offer.Title, CustomOfferTitle)
	}
	if offer.DiscountPercent != 5 {
		t.Errorf("DiscountPercent = %d, want 5 for a single item", offer.DiscountPercent)
	}
	if offer.FinalPrice != 184 {
		t.Errorf("FinalPrice = %d, want 184", offer.FinalPrice)
	}
}

func TestQuoteSelectionTwoProducts(t *testing.T) {
	p := catalog.Lookup("Perú")

	offer, err := QuoteSelection(p, Selection{catalog.Batido: 1, catalog.NRG: 1}, false)
	if err != nil {
		t.Fatalf("QuoteSelection returned error: %v", err)
	}

	if offer.DiscountPercent != 10 {
		t.Errorf("DiscountPercent = %d, want 10", offer.DiscountPercent)
	}
	// 184 + 112 = 296
	if offer.FinalPrice != 296 {
		t.Errorf("FinalPrice = %d, want 296", offer.FinalPrice)
	}
	if offer.RegularPrice != 329 {
		t.Errorf("RegularPrice = %d, want 329", offer.RegularPrice)
	}
}

func TestQuoteSelectionQuantitiesExpand(t *testing.T) {
	p := catalog.Lookup("Perú")

	offer, err := QuoteSelection(p, Selection{catalog.Batido: 2, catalog.NRG: 1}, false)
	if err != nil {
		t.Fatalf("QuoteSelection returned error: %v", err)
	}

	if len(offer.Items) != 3 {
		t.Fatalf("expected 3 expanded line items, got %d", len(offer.Items))
	}
	if offer.DiscountPercent != 10 {
		t.Errorf("DiscountPercent = %d, want 10", offer.DiscountPercent)
	}
	// 184*2 + 112 = 480
	if offer.FinalPrice != 480 {
		t.Errorf("FinalPrice = %d, want 480", offer.FinalPrice)
	}
	if offer.RegularPrice != 533 {
		t.Errorf("RegularPrice = %d, want 533", offer.RegularPrice)
	}
}

func TestQuoteSelectionEmpty(t *testing.T) {
	p := catalog.Lookup("Perú")

	offer, err := QuoteSelection(p, Selection{}, false)
	if err != nil {
		t.Fatalf("QuoteSelection returned error: %v", err)
	}
	if offer.FinalPrice != 0 || offer.DiscountPercent != 0 {
		t.Errorf("empty selection should price to zero at tier 0, got final=%d pct=%d",
			offer.FinalPrice, offer.DiscountPercent)
	}
}

func TestQuoteSelectionZeroQuantitiesIgnored(t *testing.T) {
	p := catalog.Lookup("Perú")

	offer, err := QuoteSelection(p, Selection{catalog.Batido: 1, catalog.NRG: 0}, false)
	if err != nil {
		t.Fatalf("QuoteSelection returned error: %v", err)
	}
	if len(offer.Items) != 1 {
		t.Errorf("zero-quantity products should not expand, got %d items", len(offer.Items))
	}
	if offer.DiscountPercent != 5 {
		t.Errorf("DiscountPercent = %d, want 5", offer.DiscountPercent)
	}
}

func TestQuoteSelectionDeterministicOrder(t *testing.T) {
	p := catalog.Lookup("Perú")
	sel := Selection{catalog.PDM: 1, catalog.Batido: 1, catalog.NRG: 1}

	first, err := QuoteSelection(p, sel, false)
	if err != nil {
		t.Fatalf("QuoteSelection returned error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := QuoteSelection(p, sel, false)
		if err != nil {
			t.Fatalf("QuoteSelection returned error: %v", err)
		}
		for j := range first.Items {
			if first.Items[j] != again.Items[j] {
				t.Fatalf("item order changed between runs: %v vs %v", first.Items, again.Items)
			}
		}
	}
}

func TestQuoteSelectionChileSurcharge(t *testing.T) {
	p := catalog.Lookup("Chile")

	offer, err := QuoteSelection(p, Selection{catalog.Batido: 1}, false)
	if err != nil {
		t.Fatalf("QuoteSelection returned error: %v", err)
	}
	if !offer.Surcharged {
		t.Error("customizer bundles take the market surcharge like any other offer")
	}
	if offer.FinalPrice != 40392 {
		t.Errorf("FinalPrice = %d, want 40392", offer.FinalPrice)
	}
}
