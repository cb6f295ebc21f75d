package public

import (
	"context"
	"net/http"

	"github.com/sngm3741/property-match-services/api/internal/interfaces/http/common"
)

func (h *Handler) propertyListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		properties, err := h.properties.List(ctx)
		if err != nil {
			h.writeSearchError(w, err)
			return
		}
		common.WriteSuccess(h.logger, w, "Fetch all properties data", toPropertyResponses(properties))
	}
}

func (h *Handler) mostSearchedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		properties, err := h.properties.MostSearched(ctx)
		if err != nil {
			h.writeSearchError(w, err)
			return
		}
		common.WriteSuccess(h.logger, w, "Most searched properties", toPropertyResponses(properties))
	}
}
