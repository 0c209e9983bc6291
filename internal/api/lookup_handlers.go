package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/theopenlane/iocscope/internal/ioc"
	"github.com/theopenlane/iocscope/internal/lookup"
	"github.com/theopenlane/iocscope/internal/metrics"
)

// LookupRequest is the body of a lookup call
type LookupRequest struct {
	Input      string   `json:"input" validate:"required"`
	Categories []string `json:"categories,omitempty" validate:"omitempty,max=32,dive,required,max=64"`
}

// handleLookup classifies the input and resolves its lookup links
func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var req LookupRequest
	if err := decodeJSONBody(r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid lookup request body")
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())

		return
	}

	req.Input = ioc.Trim(req.Input)

	if err := h.validate.Struct(req); err != nil {
		msg := ErrInputRequired.Error()
		if req.Input != "" {
			msg = ErrInvalidCategories.Error()
		}

		respondError(w, http.StatusBadRequest, errCodeValidation, msg)

		return
	}

	planner := h.planner
	if len(req.Categories) > 0 {
		planner = planner.With(lookup.WithCategories(req.Categories...))
	}

	report := planner.Plan(req.Input)

	metrics.Classifications.WithLabelValues(string(report.Indicator.Type)).Inc()
	metrics.LinksBuilt.WithLabelValues(string(report.Indicator.Type)).Add(float64(len(report.Links)))

	respondOK(w, report)
}
