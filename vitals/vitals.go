// Package vitals contains the pure body-composition calculators used by the
// assessment: BMI, hydration and protein requirements, resting metabolic rate
// and the reference tables that accompany them. All functions are stateless
// and degrade to safe sentinel values on missing input instead of failing.
package vitals

import (
	"math"
	"time"
)

// Gender values match the answers collected by the form layer.
type Gender string

const (
	Male   Gender = "HOMBRE"
	Female Gender = "MUJER"
)

// Goals are the wellness goals a client can select. More than one may be set.
type Goals struct {
	LoseWeight  bool   `json:"lose_weight"`
	Tone        bool   `json:"tone"`
	MuscleGain  bool   `json:"muscle_gain"`
	Energy      bool   `json:"energy"`
	Performance bool   `json:"performance"`
	Health      bool   `json:"health"`
	Other       string `json:"other"`
}

// BMI computes the body mass index from weight in kg and height in cm,
// rounded to one decimal. Returns 0.0 when either input is missing; callers
// must treat that as "unknown", not as a real measurement.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0.0
	}
	h := heightCm / 100.0
	return math.Round(weightKg/(h*h)*10) / 10
}

// BMICategory bands a BMI value into the category label and the symptoms
// narrative shown on the results screen.
func BMICategory(bmi float64) (category, symptoms string) {
	switch {
	case bmi < 18.5:
		return "BAJO PESO", "Fatiga, fragilidad, baja masa muscular"
	case bmi < 25:
		return "PESO NORMAL", ""
	case bmi < 30:
		return "SOBREPESO", "Enfermedades digestivas, problemas de circulación en piernas, varices"
	case bmi < 35:
		return "OBESIDAD I", "Apnea del sueño, hipertensión, resistencia a la insulina"
	case bmi < 40:
		return "OBESIDAD II", "Dolor articular, hígado graso, riesgo cardiovascular"
	default:
		return "OBESIDAD III", "Riesgo cardiovascular elevado, diabetes tipo 2, problemas respiratorios"
	}
}

// AgeAt returns the full calendar years elapsed between an ISO birthdate
// (2006-01-02) and the reference date, or nil when the input is missing or
// unparseable.
func AgeAt(birthdate string, at time.Time) *int {
	if birthdate == "" {
		return nil
	}
	born, err := time.Parse("2006-01-02", birthdate)
	if err != nil {
		return nil
	}
	years := at.Year() - born.Year()
	// Decrement if the birthday has not yet occurred this year.
	if at.Month() < born.Month() || (at.Month() == born.Month() && at.Day() < born.Day()) {
		years--
	}
	return &years
}

// AgeFromBirthdate is AgeAt evaluated against the current date.
func AgeFromBirthdate(birthdate string) *int {
	return AgeAt(birthdate, time.Now())
}

// fatBand is one row of the body-fat reference table.
type fatBand struct {
	loAge, hiAge int
	min, max     float64
}

var (
	fatBandsFemale = []fatBand{
		{20, 39, 21.0, 32.9},
		{40, 59, 23.0, 33.9},
		{60, 79, 24.0, 35.9},
	}
	fatBandsMale = []fatBand{
		{20, 39, 8.0, 19.9},
		{40, 59, 11.0, 21.9},
		{60, 79, 13.0, 24.9},
	}
)

// FatPercentRange returns the reference body-fat range for a gender and age.
// Ages outside the banded table fall back to the first band: a closest
// available reference, not a validation error.
func FatPercentRange(gender Gender, age int) (min, max float64) {
	bands := fatBandsMale
	if gender == Female {
		bands = fatBandsFemale
	}
	for _, b := range bands {
		if age >= b.loAge && age <= b.hiAge {
			return b.min, b.max
		}
	}
	return bands[0].min, bands[0].max
}

// HydrationRequirementMl returns the daily hydration requirement in ml:
// a 250ml glass per 7kg of body weight. Returns 0 when weight is missing.
func HydrationRequirementMl(weightKg float64) int {
	if weightKg <= 0 {
		return 0
	}
	return int(math.Round(weightKg / 7.0 * 250))
}

// ProteinRequirementG returns the daily protein requirement in grams. The
// multiplier steps up for muscle-gain and performance goals; every other goal
// shares the gender baseline. Returns 0 when weight is missing.
func ProteinRequirementG(gender Gender, goals Goals, weightKg float64) int {
	if weightKg <= 0 {
		return 0
	}
	mult := 1.4
	if gender == Male {
		mult = 1.6
	}
	if goals.MuscleGain || goals.Performance {
		if gender == Male {
			mult = 2.0
		} else {
			mult = 1.8
		}
	}
	return int(math.Round(weightKg * mult))
}

// RestingMetabolicRate computes the Mifflin-St Jeor basal metabolic rate in
// kcal/day, rounded to the nearest integer.
func RestingMetabolicRate(gender Gender, weightKg, heightCm float64, age int) int {
	v := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == Male {
		v += 5
	} else {
		v -= 161
	}
	return int(math.Round(v))
}

// CaloricTarget derives the daily caloric intake target from the resting
// metabolic rate: a 250 kcal surplus when gaining muscle, deficit otherwise.
func CaloricTarget(bmr int, wantsMuscleGain bool) int {
	if wantsMuscleGain {
		return bmr + 250
	}
	return bmr - 250
}

// ProteinEquivalents translates a protein requirement into the food
// comparisons used on the results screen: grams of chicken breast (22.5g of
// protein per 100g) and whole eggs (5.5g each).
func ProteinEquivalents(grams int) (chickenG, eggs int) {
	chickenG = int(math.Round(float64(grams) / 22.5 * 100))
	eggs = int(math.Round(float64(grams) / 5.5))
	return chickenG, eggs
}
