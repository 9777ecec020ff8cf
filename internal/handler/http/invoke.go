package http

import (
	"context"
	"net/http"

	"github.com/ToddHoff/lambda-api/internal/logger"
	"github.com/ToddHoff/lambda-api/internal/utils"
)

// invoke converts the request to an event, runs it and writes the envelope.
func (h *Handler) invoke() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		event, err := h.eventFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("error converting request to event")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		ctx := r.Context()
		if h.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.timeout)
			defer cancel()
		}

		env, err := h.invoker.Run(ctx, event)
		if err != nil {
			log.Error().Err(err).Msg("error running event")
			http.Error(w, messageFromError(err), statusFromError(err))
			return
		}

		if _, err = utils.WriteEnvelope(w, env); err != nil {
			log.Error().Err(err).Msg("error writing envelope")
		}
	}
}
