package recommend

import (
	"strings"
	"testing"

	"github.com/fitclub/wellness-api/catalog"
)

func TestCombosEmptyFlags(t *testing.T) {
	p := catalog.Lookup("Perú")
	if combos := Combos(Flags{}, p); len(combos) != 0 {
		t.Errorf("no flags should produce no combos, got %d", len(combos))
	}
	if (Flags{}).Any() {
		t.Error("Any() should be false for the zero value")
	}
}

func TestCombosFixedOrder(t *testing.T) {
	p := catalog.Lookup("Perú")
	flags := Flags{
		Migraines:    true,
		Constipation: true,
		JointPain:    true,
	}

	combos := Combos(flags, p)
	want := []string{
		"Batido + Fibra Activa",
		"Batido + Golden Beverage",
		"Batido + NRG",
	}

	if len(combos) != len(want) {
		t.Fatalf("got %d combos, want %d", len(combos), len(want))
	}
	for i, title := range want {
		if combos[i].Title != title {
			t.Errorf("combo[%d].Title = %q, want %q (order must follow the rule table)",
				i, combos[i].Title, title)
		}
	}
}

func TestCombosAlwaysIncludeShakeBase(t *testing.T) {
	p := catalog.Lookup("Perú")
	flags := Flags{
		Constipation: true, HighCholesterol: true, LowEnergy: true,
		MusclePain: true, Gastritis: true, Hemorrhoids: true,
		Hypertension: true, JointPain: true, AnxietyEating: true,
		Migraines: true, DiabetesFamilyHistory: true,
	}

	combos := Combos(flags, p)
	if len(combos) != 11 {
		t.Fatalf("all flags set should produce 11 combos, got %d", len(combos))
	}
	for _, c := range combos {
		if len(c.Items) != 2 {
			t.Errorf("%s: combos pair the shake with one companion, got %d items", c.Title, len(c.Items))
		}
		if c.Items[0] != catalog.Batido {
			t.Errorf("%s: first item = %q, want Batido", c.Title, c.Items[0])
		}
	}
}

func TestCombosHypertensionOnly(t *testing.T) {
	p := catalog.Lookup("Perú")
	combos := Combos(Flags{Hypertension: true}, p)
	if len(combos) != 1 {
		t.Fatalf("got %d combos, want exactly 1", len(combos))
	}
	if combos[0].Title != "Batido + Beta Heart" {
		t.Errorf("Title = %q, want \"Batido + Beta Heart\"", combos[0].Title)
	}
	want := []catalog.Product{catalog.Batido, catalog.BetaHeart}
	for i, item := range want {
		if combos[0].Items[i] != item {
			t.Errorf("Items[%d] = %q, want %q", i, combos[0].Items[i], item)
		}
	}
}

func TestCombosHemorrhoidsTitle(t *testing.T) {
	p := catalog.Lookup("Perú")
	combos := Combos(Flags{Hemorrhoids: true}, p)
	if len(combos) != 1 {
		t.Fatalf("got %d combos, want 1", len(combos))
	}
	if combos[0].Title != "Batido + Aloe" {
		t.Errorf("Title = %q, want \"Batido + Aloe\"", combos[0].Title)
	}
	if combos[0].Items[1] != catalog.AloeConcentrado {
		t.Errorf("companion = %q, want AloeConcentrado", combos[0].Items[1])
	}
}

func TestCombosDuplicateBetaHeart(t *testing.T) {
	p := catalog.Lookup("Perú")
	combos := Combos(Flags{Hypertension: true, DiabetesFamilyHistory: true}, p)
	if len(combos) != 2 {
		t.Fatalf("hypertension and diabetes each get their own combo, got %d", len(combos))
	}
	for _, c := range combos {
		if c.Items[1] != catalog.BetaHeart {
			t.Errorf("%s: companion = %q, want BetaHeart", c.Title, c.Items[1])
		}
	}
}

func TestCombosUseMarketDisplayNames(t *testing.T) {
	tests := []struct {
		name    string
		country string
		flags   Flags
		want    string
	}{
		{"chile renames golden on joint pain", "Chile", Flags{JointPain: true}, "Batido + Collagen Drink"},
		{"spain renames golden always", "España (Península)", Flags{JointPain: true}, "Batido + Collagen Booster"},
		{"default market keeps name", "Perú", Flags{JointPain: true}, "Batido + Golden Beverage"},
		{"spain renames nrg", "España (Canarias)", Flags{Migraines: true}, "Batido + High Protein Iced Coffee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := catalog.Lookup(tt.country)
			combos := Combos(tt.flags, p)
			if len(combos) != 1 {
				t.Fatalf("got %d combos, want 1", len(combos))
			}
			if combos[0].Title != tt.want {
				t.Errorf("Title = %q, want %q", combos[0].Title, tt.want)
			}
		})
	}
}

func TestAdviceMatchesFlags(t *testing.T) {
	p := catalog.Lookup("Perú")

	if lines := Advice(Flags{}, p); len(lines) != 0 {
		t.Errorf("no flags should produce no advice, got %d lines", len(lines))
	}

	lines := Advice(Flags{Gastritis: true, Migraines: true}, p)
	if len(lines) != 2 {
		t.Fatalf("got %d advice lines, want 2", len(lines))
	}
}

func TestAdviceUsesMarketDisplayNames(t *testing.T) {
	p := catalog.Lookup("España (Península)")
	lines := Advice(Flags{Migraines: true}, p)
	if len(lines) != 1 {
		t.Fatalf("got %d advice lines, want 1", len(lines))
	}
	if want := "High Protein Iced Coffee"; !strings.Contains(lines[0], want) {
		t.Errorf("advice should use the market label %q: %q", want, lines[0])
	}
}
