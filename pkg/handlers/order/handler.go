package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/de-tools/order-calc/pkg/adapters"
	"github.com/de-tools/order-calc/pkg/models/api"
	"github.com/de-tools/order-calc/pkg/services/config"
	"github.com/de-tools/order-calc/pkg/services/pricing"
	"github.com/rs/zerolog"
)

var errNotFinite = errors.New("order amounts are not finite numbers")

type Handler struct {
	profiles config.ProfileRegistry
}

func NewHandler(profiles config.ProfileRegistry) *Handler {
	return &Handler{profiles: profiles}
}

// Calculate prices the JSON order line in the request body.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req api.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	h.price(w, r, optional(req.Quantity), optional(req.UnitPrice), optional(req.TaxPercentage), req.Profile)
}

// CalculateQuery prices the order line given as query parameters.
func (h *Handler) CalculateQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var quantity, unitPrice, taxPercentage any
	if v := query.Get(pricing.FieldQuantity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid %s %q", pricing.FieldQuantity, v))
			return
		}
		quantity = n
	}
	for _, p := range []struct {
		field string
		dst   *any
	}{
		{pricing.FieldUnitPrice, &unitPrice},
		{pricing.FieldTaxPercentage, &taxPercentage},
	} {
		v := query.Get(p.field)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid %s %q", p.field, v))
			return
		}
		*p.dst = f
	}

	h.price(w, r, quantity, unitPrice, taxPercentage, query.Get("profile"))
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.GetProfiles(r.Context())
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapDomainProfilesToApiProfiles(profiles))
}

func (h *Handler) price(w http.ResponseWriter, r *http.Request, quantity, unitPrice, taxPercentage any, profile string) {
	ctx := r.Context()

	if profile != "" {
		if taxPercentage != nil {
			h.writeError(w, r, http.StatusBadRequest, errors.New("tax_percentage and profile are mutually exclusive"))
			return
		}
		p, err := h.profiles.GetProfile(ctx, profile)
		if errors.Is(err, config.ErrProfileNotFound) {
			h.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			h.writeError(w, r, http.StatusInternalServerError, err)
			return
		}
		taxPercentage = p.TaxPercentage
	}

	summary, err := pricing.CalculateFinalPrice(quantity, unitPrice, taxPercentage)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if !summary.Finite() {
		h.writeError(w, r, http.StatusBadRequest, errNotFinite)
		return
	}

	zerolog.Ctx(ctx).Debug().
		Float64("final_price", summary.FinalPrice).
		Str("profile", profile).
		Msg("order priced")

	h.writeJSON(w, r, http.StatusOK, adapters.MapDomainSummaryToApiSummary(summary))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("request failed")
	} else {
		logger.Debug().Err(err).Msg("request rejected")
	}
	h.writeJSON(w, r, status, api.Error{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
