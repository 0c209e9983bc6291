package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/theopenlane/iocscope/internal/ioc"
	"github.com/theopenlane/iocscope/internal/metrics"
	"github.com/theopenlane/iocscope/internal/slack"
)

// ShareRequest is the body of a share call
type ShareRequest struct {
	Input string `json:"input" validate:"required"`
	Note  string `json:"note,omitempty" validate:"max=2000"`
}

// ShareResponse confirms a shared indicator
type ShareResponse struct {
	Shared    bool       `json:"shared"`
	Indicator ioc.Result `json:"indicator"`
}

// handleShare posts the defanged indicator and its top lookup links to Slack
func (h *Handler) handleShare(w http.ResponseWriter, r *http.Request) {
	if h.notifier == nil {
		metrics.Shares.WithLabelValues("disabled").Inc()
		respondError(w, http.StatusServiceUnavailable, errCodeUnavailable, ErrNotifierNotConfigured.Error())

		return
	}

	h.limitBody(w, r)

	var req ShareRequest
	if err := decodeJSONBody(r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid share request body")
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())

		return
	}

	req.Input = ioc.Trim(req.Input)
	req.Note = ioc.Trim(req.Note)

	if err := h.validate.Struct(req); err != nil {
		msg := ErrInputRequired.Error()
		if req.Input != "" {
			msg = ErrNoteTooLong.Error()
		}

		respondError(w, http.StatusBadRequest, errCodeValidation, msg)

		return
	}

	report := h.planner.Plan(req.Input)
	msg := slack.BuildIndicatorMessage(report, req.Note, h.maxShareLinks)

	if err := h.notifier.Send(r.Context(), msg); err != nil {
		log.Error().Err(err).Str("type", string(report.Indicator.Type)).Msg("failed to share indicator")
		metrics.Shares.WithLabelValues("failed").Inc()
		respondError(w, http.StatusBadGateway, errCodeUpstream, ErrShareFailed.Error())

		return
	}

	log.Info().Str("type", string(report.Indicator.Type)).Str("indicator", report.Indicator.Defanged).Msg("indicator shared")
	metrics.Shares.WithLabelValues("sent").Inc()

	respondOK(w, ShareResponse{Shared: true, Indicator: report.Indicator})
}
