package public

import (
	"context"
	"net/http"

	"github.com/sngm3741/property-match-services/api/internal/interfaces/http/common"
)

func (h *Handler) preferenceGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := common.UserIDFromContext(r.Context())
		if !ok {
			common.WriteFailure(h.logger, w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		pref, err := h.preferences.Get(ctx, userID)
		if err != nil {
			h.writeSearchError(w, err)
			return
		}
		common.WriteSuccess(h.logger, w, "Fetch search preferences", toPreferenceResponse(pref))
	}
}

// preferenceReplaceHandler は 4 項目すべてを要求する全置換。部分更新は /search/me で行う。
func (h *Handler) preferenceReplaceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := common.UserIDFromContext(r.Context())
		if !ok {
			common.WriteFailure(h.logger, w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		req, err := decodePreferenceRequest(w, r)
		if err != nil {
			common.WriteFailure(h.logger, w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		pref, err := h.preferences.Replace(ctx, userID, req.raw())
		if err != nil {
			h.writeSearchError(w, err)
			return
		}
		common.WriteSuccess(h.logger, w, "Search preferences updated", toPreferenceResponse(pref))
	}
}
