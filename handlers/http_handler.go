package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/fitclub/wellness-api/catalog"
	"github.com/fitclub/wellness-api/metrics"
	"github.com/fitclub/wellness-api/recommend"
	"github.com/fitclub/wellness-api/session"
	"github.com/fitclub/wellness-api/vitals"
)

// CreateSession starts a new assessment session.
func (h *HTTPHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.store.Create()
	metrics.SessionsCreatedTotal.Inc()
	RespondWithJSON(w, http.StatusCreated, s)
}

// GetSession returns the full session record.
func (h *HTTPHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	emoji, label := s.Rating()
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"session":      s,
		"rating":       map[string]string{"emoji": emoji, "label": label},
		"daily_budget": s.Budget.DailyAverage(),
	})
}

// profileRequest is the first-screen payload.
type profileRequest struct {
	session.Profile
	Country string `json:"country"`
}

// UpdateProfile stores the personal information and switches the active
// market. Unknown countries fall back to the default market without error.
func (h *HTTPHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, text := range []string{req.Name, req.Email, req.Phone, req.City} {
		if err := h.validator.ValidateText(text); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if err := h.validator.ValidateCountry(req.Country); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.Profile = req.Profile
	s.ApplyCountry(req.Country)
	h.store.Put(s)

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"profile": s.Profile,
		"country": s.Country,
	})
}

// UpdateBody stores the body-composition inputs.
func (h *HTTPHandler) UpdateBody(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	var req session.Body
	if err := decodeJSON(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.HeightCm < 0 || req.HeightCm > 250 || req.WeightKg < 0 || req.WeightKg > 400 {
		RespondWithError(w, http.StatusBadRequest, "height or weight out of range")
		return
	}

	s.Body = req
	h.store.Put(s)
	RespondWithJSON(w, http.StatusOK, s.Body)
}

// lifestyleRequest is the third-screen payload.
type lifestyleRequest struct {
	Lifestyle  session.Lifestyle  `json:"lifestyle"`
	Objectives session.Objectives `json:"objectives"`
	Budget     session.Budget     `json:"budget"`
}

// UpdateLifestyle stores the lifestyle answers, objectives and budget.
func (h *HTTPHandler) UpdateLifestyle(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	var req lifestyleRequest
	if err := decodeJSON(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, text := range []string{
		req.Lifestyle.Schedule, req.Lifestyle.BreakfastTime, req.Lifestyle.BreakfastFood,
		req.Lifestyle.Snacking, req.Lifestyle.FruitPortions, req.Lifestyle.NightEating,
		req.Lifestyle.FoodChallenge, req.Lifestyle.WaterGlasses, req.Lifestyle.AlcoholMonthly,
		req.Lifestyle.LowEnergyTime, req.Lifestyle.Activity, req.Lifestyle.PastAttempts,
		req.Lifestyle.Struggles, req.Lifestyle.SelfPriority, req.Lifestyle.ValuesOptimizing,
		req.Objectives.TargetSize, req.Objectives.BodyParts, req.Objectives.WardrobeGoal,
		req.Objectives.Benefit, req.Objectives.Events, req.Objectives.Commitment,
	} {
		if err := h.validator.ValidateText(text); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	s.Lifestyle = req.Lifestyle
	s.Objectives = req.Objectives
	s.Budget = req.Budget
	h.store.Put(s)

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"lifestyle":    s.Lifestyle,
		"objectives":   s.Objectives,
		"budget":       s.Budget,
		"daily_budget": s.Budget.DailyAverage(),
	})
}

// UpdateGoals stores the wellness goals.
func (h *HTTPHandler) UpdateGoals(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	var req vitals.Goals
	if err := decodeJSON(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.ValidateText(req.Other); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.Goals = req
	h.store.Put(s)
	RespondWithJSON(w, http.StatusOK, s.Goals)
}

// UpdateFlags stores the symptom flags.
func (h *HTTPHandler) UpdateFlags(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	var req recommend.Flags
	if err := decodeJSON(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.Flags = req
	h.store.Put(s)
	RespondWithJSON(w, http.StatusOK, s.Flags)
}

// AddReferral adds a service-rating referral contact.
func (h *HTTPHandler) AddReferral(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	var req session.Referral
	if err := decodeJSON(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		RespondWithError(w, http.StatusBadRequest, "referral name is required")
		return
	}
	for _, text := range []string{req.Name, req.Phone, req.District, req.Relation} {
		if err := h.validator.ValidateText(text); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	s.Referrals = append(s.Referrals, req)
	h.store.Put(s)

	emoji, label := s.Rating()
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"referrals": s.Referrals,
		"rating":    map[string]string{"emoji": emoji, "label": label},
	})
}

// GetAssessment returns the computed metrics for the results screen.
func (h *HTTPHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, s.Assess(h.now()))
}

// ListCountries returns the supported markets.
func (h *HTTPHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	type country struct {
		Name           string `json:"name"`
		Code           string `json:"code"`
		CurrencySymbol string `json:"currency_symbol"`
	}

	out := make([]country, 0, len(catalog.Names()))
	for _, name := range catalog.Names() {
		p := catalog.Lookup(name)
		out = append(out, country{Name: p.Name, Code: p.Code, CurrencySymbol: p.CurrencySymbol})
	}
	RespondWithJSON(w, http.StatusOK, out)
}

// HealthCheck reports service health.
func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"uptime_seconds": time.Since(h.startTime).Seconds(),
		"live_sessions":  h.store.Count(),
		"markets":        len(catalog.Names()),
		"system": map[string]any{
			"goroutines": runtime.NumGoroutine(),
			"alloc_mb":   int(m.Alloc / 1024 / 1024),
		},
	})
}
