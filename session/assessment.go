package session

import (
	"time"

	"github.com/fitclub/wellness-api/vitals"
)

// Assessment is the plain key-value view of the computed metrics, consumed by
// the results screen and the report exporter alike.
type Assessment struct {
	Age           int     `json:"age"`
	BMI           float64 `json:"bmi"`
	BMICategory   string  `json:"bmi_category"`
	BMISymptoms   string  `json:"bmi_symptoms"`
	FatPercent    int     `json:"fat_percent"`
	FatRangeMin   float64 `json:"fat_range_min"`
	FatRangeMax   float64 `json:"fat_range_max"`
	HydrationMl   int     `json:"hydration_ml"`
	ProteinG      int     `json:"protein_g"`
	ChickenG      int     `json:"chicken_equivalent_g"`
	Eggs          int     `json:"egg_equivalent"`
	BMR           int     `json:"bmr"`
	CaloricTarget int     `json:"caloric_target"`
}

// fallbackAge stands in for an unparseable birthdate; BMR additionally clamps
// to the range the reference tables cover.
const fallbackAge = 30

func clampAge(age, lo, hi int) int {
	if age < lo {
		return lo
	}
	if age > hi {
		return hi
	}
	return age
}

// Assess computes every derived metric from the current session state.
// Missing inputs degrade to the calculators' sentinels; they are never
// reported as errors.
func (s *Session) Assess(now time.Time) Assessment {
	gender := vitals.Gender(s.Profile.Gender)
	if gender == "" {
		gender = vitals.Male
	}

	age := fallbackAge
	if a := vitals.AgeAt(s.Profile.Birthdate, now); a != nil {
		age = *a
	}

	bmi := vitals.BMI(s.Body.WeightKg, s.Body.HeightCm)
	category, symptoms := vitals.BMICategory(bmi)
	fatMin, fatMax := vitals.FatPercentRange(gender, age)
	protein := vitals.ProteinRequirementG(gender, s.Goals, s.Body.WeightKg)
	chicken, eggs := vitals.ProteinEquivalents(protein)
	bmr := vitals.RestingMetabolicRate(gender, s.Body.WeightKg, s.Body.HeightCm, clampAge(age, 16, 79))

	return Assessment{
		Age:           age,
		BMI:           bmi,
		BMICategory:   category,
		BMISymptoms:   symptoms,
		FatPercent:    s.Body.FatPercent,
		FatRangeMin:   fatMin,
		FatRangeMax:   fatMax,
		HydrationMl:   vitals.HydrationRequirementMl(s.Body.WeightKg),
		ProteinG:      protein,
		ChickenG:      chicken,
		Eggs:          eggs,
		BMR:           bmr,
		CaloricTarget: vitals.CaloricTarget(bmr, s.Goals.MuscleGain),
	}
}
