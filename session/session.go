// Package session holds the per-client assessment record and its in-memory
// store. A session is exclusively owned by one client: it is created at the
// start of the evaluation, mutated screen by screen and discarded when its
// TTL expires. Nothing is persisted beyond the process.
package session

import (
	"time"

	"github.com/fitclub/wellness-api/catalog"
	"github.com/fitclub/wellness-api/pricing"
	"github.com/fitclub/wellness-api/recommend"
	"github.com/fitclub/wellness-api/vitals"
)

// Profile is the personal information collected on the first screen.
type Profile struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Birthdate string `json:"birthdate"` // ISO 2006-01-02
	Gender    string `json:"gender"`
}

// Body is the body-composition screen input.
type Body struct {
	HeightCm   float64 `json:"height_cm"`
	WeightKg   float64 `json:"weight_kg"`
	FatPercent int     `json:"fat_percent"`
}

// Lifestyle collects the free-text nutrition and habit answers from the
// first and third screens.
type Lifestyle struct {
	Schedule         string `json:"schedule"`
	BreakfastTime    string `json:"breakfast_time"`
	BreakfastFood    string `json:"breakfast_food"`
	Snacking         string `json:"snacking"`
	FruitPortions    string `json:"fruit_portions"`
	NightEating      string `json:"night_eating"`
	FoodChallenge    string `json:"food_challenge"`
	WaterGlasses     string `json:"water_glasses"`
	AlcoholMonthly   string `json:"alcohol_monthly"`
	LowEnergyTime    string `json:"low_energy_time"`
	Activity         string `json:"activity"`
	PastAttempts     string `json:"past_attempts"`
	Struggles        string `json:"struggles"`
	SelfPriority     string `json:"self_priority"`
	ValuesOptimizing string `json:"values_optimizing"`
}

// Objectives are the goal-setting answers from the third screen.
type Objectives struct {
	TargetSize   string `json:"target_size"`
	BodyParts    string `json:"body_parts"`
	WardrobeGoal string `json:"wardrobe_goal"`
	Benefit      string `json:"benefit"`
	Events       string `json:"events"`
	Commitment   string `json:"commitment"`
}

// Budget is the daily/weekly spending analysis input.
type Budget struct {
	FoodDaily        float64 `json:"food_daily"`
	SnacksDaily      float64 `json:"snacks_daily"`
	DrinksWeekly     float64 `json:"drinks_weekly"`
	DeliveriesWeekly float64 `json:"deliveries_weekly"`
}

// DailyAverage is the blended daily spend shown alongside the budget answers.
func (b Budget) DailyAverage() float64 {
	return b.FoodDaily + b.SnacksDaily + b.DrinksWeekly/7 + b.DeliveriesWeekly/7
}

// Referral is one contact added on the service-rating screen.
type Referral struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	District string `json:"district"`
	Relation string `json:"relation"`
}

// Session is the full per-client assessment record.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Profile    Profile         `json:"profile"`
	Country    string          `json:"country"`
	Body       Body            `json:"body"`
	Lifestyle  Lifestyle       `json:"lifestyle"`
	Objectives Objectives      `json:"objectives"`
	Budget     Budget          `json:"budget"`
	Goals      vitals.Goals    `json:"goals"`
	Flags      recommend.Flags `json:"flags"`
	Referrals  []Referral      `json:"referrals"`

	// Selected is the offer the client chose; it survives until overwritten
	// or the session expires.
	Selected *pricing.Offer `json:"selected,omitempty"`

	// Selection holds the customizer quantities. SelectionDefaults is the
	// immutable seed computed from the last selected offer; quantity
	// controls re-read it instead of relying on an invalidation counter.
	Selection         pricing.Selection `json:"selection"`
	SelectionDefaults pricing.Selection `json:"selection_defaults"`

	// PromoDeadline drives the cosmetic countdown only; it never affects
	// pricing.
	PromoDeadline time.Time `json:"promo_deadline,omitzero"`
}

// ApplyCountry switches the active market. Unknown names fall back to the
// default country; applying the same country twice is a no-op.
func (s *Session) ApplyCountry(name string) {
	s.Country = catalog.Lookup(name).Name
}

// Market returns the active market profile for this session.
func (s *Session) Market() catalog.Profile {
	return catalog.Lookup(s.Country)
}

// SeedSelection resets the customizer to quantity 1 for each item of the
// chosen offer. Duplicated items accumulate.
func (s *Session) SeedSelection(offer pricing.Offer) {
	defaults := make(pricing.Selection, len(offer.Items))
	for _, it := range offer.Items {
		defaults[it]++
	}
	s.SelectionDefaults = defaults
	s.Selection = defaults.Clone()
}

// EnsurePromoDeadline sets the 48h promotion deadline on first use.
func (s *Session) EnsurePromoDeadline(now time.Time) {
	if s.PromoDeadline.IsZero() {
		s.PromoDeadline = now.Add(48 * time.Hour)
	}
}

// PromoRemaining returns the countdown left on the promotion, floored at 0.
func (s *Session) PromoRemaining(now time.Time) time.Duration {
	if s.PromoDeadline.IsZero() {
		return 0
	}
	if rest := s.PromoDeadline.Sub(now); rest > 0 {
		return rest
	}
	return 0
}

// Rating derives the service rating from how many referrals the client added,
// capped at five.
func (s *Session) Rating() (emoji, label string) {
	n := len(s.Referrals)
	if n > 5 {
		n = 5
	}
	switch n {
	case 0:
		return "😡", "PÉSIMO"
	case 1:
		return "😠", "NO ME GUSTÓ"
	case 2:
		return "😐", "ME GUSTÓ POCO"
	case 3:
		return "🙂", "ME GUSTÓ"
	case 4:
		return "😁", "ME GUSTÓ MUCHO"
	default:
		return "🤩", "ME ENCANTÓ"
	}
}
