package admin

import (
	"context"
	"net/http"
	"time"

	adminapp "github.com/sngm3741/property-match-services/api/internal/admin/application"
	"github.com/sngm3741/property-match-services/api/internal/interfaces/http/common"
)

func (h *Handler) searchEventListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		queryValues := r.URL.Query()
		limit, _ := common.ParsePositiveInt(queryValues.Get("limit"), 20)
		filter := adminapp.SearchEventFilter{
			UserID:        queryValues.Get("userId"),
			AnonymousOnly: common.ParseBool(queryValues.Get("anonymous"), false),
			Limit:         limit,
		}

		events, err := h.searchEventService.List(ctx, filter)
		if err != nil {
			h.logger.Printf("admin search event list failed: %v", err)
			common.WriteFailure(h.logger, w, http.StatusInternalServerError, common.MsgInternalError)
			return
		}

		items := make([]adminSearchEventResponse, 0, len(events))
		for _, event := range events {
			items = append(items, toAdminSearchEventResponse(event))
		}
		common.WriteSuccess(h.logger, w, "Fetch search events", items)
	}
}
