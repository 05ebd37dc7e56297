package handlers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/fitclub/wellness-api/catalog"
	"github.com/fitclub/wellness-api/export"
	"github.com/fitclub/wellness-api/logging"
	"github.com/fitclub/wellness-api/metrics"
	"github.com/fitclub/wellness-api/pricing"
	"github.com/fitclub/wellness-api/recommend"
	"github.com/fitclub/wellness-api/session"
)

// pricedOffer decorates a pricing.Offer with the formatted money strings the
// client renders verbatim.
type pricedOffer struct {
	pricing.Offer
	RegularDisplay string `json:"regular_display"`
	FinalDisplay   string `json:"final_display"`
	DailyDisplay   string `json:"daily_display,omitempty"`
}

func decorate(p catalog.Profile, o pricing.Offer) pricedOffer {
	out := pricedOffer{
		Offer:          o,
		RegularDisplay: p.FormatMoney(float64(o.RegularPrice)),
		FinalDisplay:   p.FormatMoney(float64(o.FinalPrice)),
	}
	if o.DailyPrice > 0 {
		out.DailyDisplay = p.FormatMoney(o.DailyPrice)
	}
	return out
}

// planResponse is the full plan-screen payload.
type planResponse struct {
	Shake          *pricedOffer  `json:"shake,omitempty"`
	Combos         []pricedOffer `json:"combos"`
	Advice         []string      `json:"advice"`
	FallbackPrompt string        `json:"fallback_prompt,omitempty"`
	PromoSeconds   int           `json:"promo_seconds"`
}

// GetPlan builds the plan screen: the base shake offer, one combo per symptom
// flag and the advice copy, all priced under the session's market. Offers with
// an unavailable product are dropped silently; the whole screen never fails
// because one market lacks one product.
func (h *HTTPHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	now := h.now()
	s.EnsurePromoDeadline(now)

	market := s.Market()
	jointPain := s.Flags.JointPain

	resp := planResponse{
		Combos:       []pricedOffer{},
		Advice:       recommend.Advice(s.Flags, market),
		PromoSeconds: int(s.PromoRemaining(now).Seconds()),
	}

	shake, err := pricing.Quote(market, pricing.ShakeOfferTitle,
		[]catalog.Product{catalog.Batido}, pricing.ShakeDiscountPercent, jointPain)
	switch {
	case err == nil:
		po := decorate(market, shake)
		resp.Shake = &po
		metrics.OffersPricedTotal.WithLabelValues("shake").Inc()
	case errors.Is(err, pricing.ErrNotAvailable):
		logging.Warn("Shake offer not available in market", "country", s.Country)
	default:
		RespondWithError(w, http.StatusInternalServerError, "failed to price plan")
		return
	}

	for _, combo := range recommend.Combos(s.Flags, market) {
		offer, err := pricing.Quote(market, combo.Title, combo.Items, pricing.ComboDiscountPercent, jointPain)
		if errors.Is(err, pricing.ErrNotAvailable) {
			logging.Warn("Combo not available in market", "combo", combo.Title, "country", s.Country)
			continue
		}
		if err != nil {
			RespondWithError(w, http.StatusInternalServerError, "failed to price plan")
			return
		}
		resp.Combos = append(resp.Combos, decorate(market, offer))
		metrics.OffersPricedTotal.WithLabelValues("combo").Inc()
	}

	if len(resp.Combos) == 0 {
		resp.FallbackPrompt = "Cuéntame, ¿qué aspecto de tu salud te gustaría mejorar?"
	}

	h.store.Put(s)
	RespondWithJSON(w, http.StatusOK, resp)
}

// selectRequest names the offer chosen on the plan screen.
type selectRequest struct {
	Title string `json:"title"`
}

// SelectOffer records the chosen offer and seeds the customizer defaults from
// its items. The title must match an offer the plan screen can produce.
func (h *HTTPHandler) SelectOffer(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	var req selectRequest
	if err := decodeJSON(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	offer, ok := h.priceByTitle(s, req.Title)
	if !ok {
		RespondWithError(w, http.StatusBadRequest, "unknown offer title")
		return
	}

	s.Selected = &offer
	s.SeedSelection(offer)
	h.store.Put(s)
	metrics.OffersSelectedTotal.Inc()

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"selected":  decorate(s.Market(), offer),
		"selection": s.Selection,
	})
}

// priceByTitle re-prices the offer matching a plan-screen title.
func (h *HTTPHandler) priceByTitle(s *session.Session, title string) (pricing.Offer, bool) {
	market := s.Market()
	jointPain := s.Flags.JointPain

	if title == pricing.ShakeOfferTitle {
		offer, err := pricing.Quote(market, title,
			[]catalog.Product{catalog.Batido}, pricing.ShakeDiscountPercent, jointPain)
		if err != nil {
			return pricing.Offer{}, false
		}
		return offer, true
	}

	for _, combo := range recommend.Combos(s.Flags, market) {
		if combo.Title != title {
			continue
		}
		offer, err := pricing.Quote(market, combo.Title, combo.Items, pricing.ComboDiscountPercent, jointPain)
		if err != nil {
			return pricing.Offer{}, false
		}
		return offer, true
	}
	return pricing.Offer{}, false
}

// selectionResponse is the customizer-screen payload.
type selectionResponse struct {
	Selection pricing.Selection `json:"selection"`
	Defaults  pricing.Selection `json:"defaults"`
	Offer     *pricedOffer      `json:"offer,omitempty"`
	Products  []string          `json:"products"`
}

// GetSelection returns the current customizer state with its priced bundle.
func (h *HTTPHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, h.selectionPayload(s))
}

// UpdateSelection replaces the customizer quantities and re-prices the bundle.
func (h *HTTPHandler) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	var req pricing.Selection
	if err := decodeJSON(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	for p, q := range req {
		if err := h.validator.ValidateProduct(p); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := h.validator.ValidateQuantity(q); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	s.Selection = req.Clone()
	h.store.Put(s)
	metrics.OffersPricedTotal.WithLabelValues("custom").Inc()

	RespondWithJSON(w, http.StatusOK, h.selectionPayload(s))
}

func (h *HTTPHandler) selectionPayload(s *session.Session) selectionResponse {
	market := s.Market()

	resp := selectionResponse{
		Selection: s.Selection,
		Defaults:  s.SelectionDefaults,
	}

	products := make([]string, 0, len(market.Prices))
	for p := range market.Prices {
		products = append(products, string(p))
	}
	sort.Strings(products)
	resp.Products = products

	if s.Selection.TotalItems() > 0 {
		offer, err := pricing.QuoteSelection(market, s.Selection, s.Flags.JointPain)
		if err != nil {
			logging.Warn("Customizer selection could not be priced", "session_id", s.ID, "error", err)
		} else {
			po := decorate(market, offer)
			resp.Offer = &po
		}
	}
	return resp
}

// ExportReport streams the evaluation spreadsheet for download.
func (h *HTTPHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "session not found")
		return
	}

	f, err := export.Workbook(s, s.Assess(h.now()))
	if err != nil {
		logging.Error("Failed to build evaluation workbook", "session_id", s.ID, "error", err)
		RespondWithError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(s)+`"`)
	if _, err := f.WriteTo(w); err != nil {
		logging.Error("Failed to stream evaluation workbook", "session_id", s.ID, "error", err)
		return
	}
	metrics.ReportsExportedTotal.Inc()
}
