package public

import (
	"net/http"

	"github.com/sngm3741/property-match-services/api/internal/interfaces/http/common"
)

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteFailure(h.logger, w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		common.WriteSuccess(h.logger, w, "Authenticated", user)
	}
}
