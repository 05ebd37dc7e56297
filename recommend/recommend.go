// Package recommend maps the lifestyle-screen symptom flags to the product
// combos offered on the plan screen, plus the per-symptom advice copy that
// accompanies them.
package recommend

import (
	"fmt"

	"github.com/fitclub/wellness-api/catalog"
)

// Flags is the fixed set of symptom and condition answers collected on the
// lifestyle screen. The selector only reads them.
type Flags struct {
	Constipation          bool `json:"constipation"`
	HighCholesterol       bool `json:"high_cholesterol"`
	LowEnergy             bool `json:"low_energy"`
	MusclePain            bool `json:"muscle_pain"`
	Gastritis             bool `json:"gastritis"`
	Hemorrhoids           bool `json:"hemorrhoids"`
	Hypertension          bool `json:"hypertension"`
	JointPain             bool `json:"joint_pain"`
	AnxietyEating         bool `json:"anxiety_eating"`
	Migraines             bool `json:"migraines"`
	DiabetesFamilyHistory bool `json:"diabetes_family_history"`
}

// Any reports whether at least one flag is set.
func (f Flags) Any() bool {
	return f.Constipation || f.HighCholesterol || f.LowEnergy || f.MusclePain ||
		f.Gastritis || f.Hemorrhoids || f.Hypertension || f.JointPain ||
		f.AnxietyEating || f.Migraines || f.DiabetesFamilyHistory
}

// Combo is a derived offer: the shake plus one companion product.
type Combo struct {
	Title string
	Items []catalog.Product
}

// comboRule pairs one flag with its companion product. An empty title means
// "Batido + <display name of companion>".
type comboRule struct {
	set       func(Flags) bool
	companion catalog.Product
	title     string
}

// Rules are checked in this fixed order; output order follows it, not the
// order the client answered in. Hypertension and diabetes family history both
// map to Beta Heart on purpose and each produces its own combo.
var comboRules = []comboRule{
	{set: func(f Flags) bool { return f.Constipation }, companion: catalog.FibraActiva},
	{set: func(f Flags) bool { return f.HighCholesterol }, companion: catalog.Herbalifeline},
	{set: func(f Flags) bool { return f.LowEnergy }, companion: catalog.TeDeHierbas},
	{set: func(f Flags) bool { return f.MusclePain }, companion: catalog.BeverageMix},
	{set: func(f Flags) bool { return f.Gastritis }, companion: catalog.AloeConcentrado},
	{set: func(f Flags) bool { return f.Hemorrhoids }, companion: catalog.AloeConcentrado, title: "Batido + Aloe"},
	{set: func(f Flags) bool { return f.Hypertension }, companion: catalog.BetaHeart},
	{set: func(f Flags) bool { return f.JointPain }, companion: catalog.GoldenBeverage},
	{set: func(f Flags) bool { return f.AnxietyEating }, companion: catalog.PDM},
	{set: func(f Flags) bool { return f.Migraines }, companion: catalog.NRG},
	{set: func(f Flags) bool { return f.DiabetesFamilyHistory }, companion: catalog.BetaHeart},
}

// Combos returns one combo per set flag, in the fixed rule order. An empty
// result means the caller should show the fallback prompt instead of an empty
// area.
func Combos(flags Flags, p catalog.Profile) []Combo {
	var out []Combo
	for _, rule := range comboRules {
		if !rule.set(flags) {
			continue
		}
		title := rule.title
		if title == "" {
			title = "Batido + " + p.DisplayName(rule.companion, flags.JointPain)
		}
		out = append(out, Combo{
			Title: title,
			Items: []catalog.Product{catalog.Batido, rule.companion},
		})
	}
	return out
}

// Advice returns the per-symptom recommendation lines shown on the plan
// screen, localized with the market's display names.
func Advice(flags Flags, p catalog.Profile) []string {
	var out []string
	nrg := p.DisplayName(catalog.NRG, flags.JointPain)
	bev := p.DisplayName(catalog.BeverageMix, flags.JointPain)

	if flags.Constipation {
		out = append(out, "Para ayudarte con el estreñimiento y tengas una salud digestiva adecuada está la fibra con sabor a manzana para que todo te salga bien.")
	}
	if flags.HighCholesterol {
		out = append(out, "Para mejorar tus niveles de colesterol nos apoyamos del Herbalifeline, unas cápsulas de concentrado de omega 3 con sabor a menta y tomillo.")
	}
	if flags.LowEnergy {
		out = append(out, fmt.Sprintf("Con el té concentrado de hierbas y su efecto termogénico puedes disparar tus niveles de energía. Si lo combinas con el %s vas a estar totalmente lúcida y enérgica en cuerpo y mente.", nrg))
	}
	if flags.MusclePain {
		out = append(out, "Para el dolor muscular se recomienda una buena ingesta de proteína, por lo cual el PDM resulta ideal al sumar de 9 a 18 g adicionales según tus requerimientos.")
	}
	if flags.Gastritis {
		out = append(out, "Para la gastritis, el reflujo y similares, el aloe es el indicado. Desinflama, cicatriza y alivia todo el tracto digestivo y mejora la absorción de nutrientes.")
	}
	if flags.Hemorrhoids {
		out = append(out, "Para la gastritis, el reflujo, hemorroides y similares, el aloe es el indicado. Desinflama, cicatriza y alivia todo el tracto digestivo.")
	}
	if flags.Hypertension {
		out = append(out, "Para ayudarte con la hipertensión te recomiendo el Beta Heart que contiene betaglucanos de avena que ayudan a reducir el colesterol malo.")
	}
	if flags.JointPain {
		golden := p.DisplayName(catalog.GoldenBeverage, true)
		out = append(out, fmt.Sprintf("Para el dolor articular está el %s, ideal para mantener el cartílago sano.", golden))
	}
	if flags.AnxietyEating {
		out = append(out, fmt.Sprintf("La ansiedad por comer es síntoma de un déficit en la ingesta de proteína diaria. El PDM y el %s son ideales para aportar de 15 a 18 g adicionales al día y generar sensación de saciedad.", bev))
	}
	if flags.Migraines {
		out = append(out, fmt.Sprintf("Para ayudarte a aliviar las jaquecas/migrañas, el %s contiene la dosis ideal de cafeína natural, además de brindarte lucidez mental.", nrg))
	}
	if flags.DiabetesFamilyHistory {
		out = append(out, "Para ayudar con la diabetes recomendamos el Beta Heart, bebida alta en fibra que permite reducir el índice glucémico de nuestra alimentación.")
	}
	return out
}
