package export

import (
	"testing"

	"github.com/fitclub/wellness-api/catalog"
	"github.com/fitclub/wellness-api/pricing"
	"github.com/fitclub/wellness-api/session"
)

func sampleSession() *session.Session {
	s := &session.Session{
		ID: "test-session",
		Profile: session.Profile{
			Name:      "Ana Torres",
			Email:     "ana@example.com",
			Birthdate: "1995-03-10",
			Gender:    "MUJER",
		},
		Body: session.Body{HeightCm: 165, WeightKg: 60, FatPercent: 24},
	}
	s.ApplyCountry("Perú")
	return s
}

func TestWorkbookSheets(t *testing.T) {
	s := sampleSession()
	f, err := Workbook(s, session.Assessment{BMI: 22.0})
	if err != nil {
		t.Fatalf("Workbook returned error: %v", err)
	}
	defer f.Close()

	want := []string{"Perfil", "Estilo de Vida", "Metas", "Composición", "Condiciones"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheet list = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sheet[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWorkbookProfileCells(t *testing.T) {
	s := sampleSession()
	f, err := Workbook(s, session.Assessment{})
	if err != nil {
		t.Fatalf("Workbook returned error: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Perfil", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if header != "Pregunta" {
		t.Errorf("A1 = %q, want Pregunta", header)
	}

	name, err := f.GetCellValue("Perfil", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if name != "Ana Torres" {
		t.Errorf("B2 = %q, want the client name", name)
	}
}

func TestWorkbookOptionalSheets(t *testing.T) {
	s := sampleSession()
	s.Referrals = []session.Referral{{Name: "Luis", Phone: "999"}}
	s.Selected = &pricing.Offer{
		Title:           "Batido Nutricional",
		DisplayItems:    []string{"Batido"},
		RegularPrice:    194,
		DiscountPercent: 5,
		FinalPrice:      184,
	}

	f, err := Workbook(s, session.Assessment{})
	if err != nil {
		t.Fatalf("Workbook returned error: %v", err)
	}
	defer f.Close()

	for _, name := range []string{"Referidos", "Selección"} {
		if idx, _ := f.GetSheetIndex(name); idx < 0 {
			t.Errorf("sheet %q missing", name)
		}
	}

	title, err := f.GetCellValue("Selección", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if title != "Batido Nutricional" {
		t.Errorf("selected offer title = %q", title)
	}
}

func TestWorkbookSkipsEmptyOptionalSheets(t *testing.T) {
	f, err := Workbook(sampleSession(), session.Assessment{})
	if err != nil {
		t.Fatalf("Workbook returned error: %v", err)
	}
	defer f.Close()

	for _, name := range []string{"Referidos", "Selección"} {
		if idx, _ := f.GetSheetIndex(name); idx >= 0 {
			t.Errorf("sheet %q should not exist without data", name)
		}
	}
}

func TestFilename(t *testing.T) {
	s := sampleSession()
	if got := Filename(s); got != "Evaluacion_PE_Ana Torres.xlsx" {
		t.Errorf("Filename = %q", got)
	}

	s.Profile.Name = "  "
	if got := Filename(s); got != "Evaluacion_PE_usuario.xlsx" {
		t.Errorf("Filename fallback = %q", got)
	}

	s.ApplyCountry("Chile")
	s.Profile.Name = "Luis"
	if got := Filename(s); got != "Evaluacion_CL_Luis.xlsx" {
		t.Errorf("Filename = %q", got)
	}
}

func TestWorkbookUsesMarketCurrency(t *testing.T) {
	s := sampleSession()
	s.ApplyCountry("Chile")
	s.Budget = session.Budget{FoodDaily: 5000}

	f, err := Workbook(s, session.Assessment{})
	if err != nil {
		t.Fatalf("Workbook returned error: %v", err)
	}
	defer f.Close()

	label, err := f.GetCellValue("Metas", "A15")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	cur := catalog.Lookup("Chile").CurrencySymbol
	if want := "Gasto diario en comida (" + cur + ")"; label != want {
		t.Errorf("budget label = %q, want %q", label, want)
	}
}
