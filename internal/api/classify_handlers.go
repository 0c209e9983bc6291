package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/theopenlane/iocscope/internal/ioc"
	"github.com/theopenlane/iocscope/internal/metrics"
	"github.com/theopenlane/iocscope/internal/sources"
)

// ClassifyRequest is the body of a classify call
type ClassifyRequest struct {
	Input string `json:"input" validate:"required"`
}

// TypeSummary describes one indicator type and the size of its source table
type TypeSummary struct {
	Type    ioc.Type `json:"type"`
	Sources int      `json:"sources"`
}

// SourceSummary describes one lookup source without resolving it
type SourceSummary struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Static   bool   `json:"static"`
}

// SourcesResponse lists the sources for one type
type SourcesResponse struct {
	Type    ioc.Type        `json:"type"`
	Sources []SourceSummary `json:"sources"`
}

// handleTypes lists every indicator type with its source count
func (h *Handler) handleTypes(w http.ResponseWriter, _ *http.Request) {
	summaries := lo.Map(ioc.Types(), func(t ioc.Type, _ int) TypeSummary {
		return TypeSummary{Type: t, Sources: len(sources.For(t))}
	})

	respondOK(w, summaries)
}

// handleClassify detects the type of the submitted input
func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var req ClassifyRequest
	if err := decodeJSONBody(r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid classify request body")
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())

		return
	}

	req.Input = ioc.Trim(req.Input)

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrInputRequired.Error())
		return
	}

	result := ioc.Classify(req.Input)
	metrics.Classifications.WithLabelValues(string(result.Type)).Inc()

	respondOK(w, result)
}

// handleSources lists the lookup sources registered for a type
func (h *Handler) handleSources(w http.ResponseWriter, r *http.Request) {
	t, err := ioc.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		msg := ErrUnsupportedType.Error()
		if errors.Is(err, ioc.ErrEmptyType) {
			msg = ioc.ErrEmptyType.Error()
		}

		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, msg)

		return
	}

	summaries := lo.Map(sources.For(t), func(d sources.Descriptor, i int) SourceSummary {
		return SourceSummary{
			Index:    i,
			Name:     d.Name,
			Category: d.Category,
			Static:   d.Static(),
		}
	})

	respondOK(w, SourcesResponse{Type: t, Sources: summaries})
}
