package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/sngm3741/property-match-services/api/internal/admin/application"
	"github.com/sngm3741/property-match-services/api/internal/interfaces/http/common"
)

func (h *Handler) propertySearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		queryValues := r.URL.Query()
		limit, _ := common.ParsePositiveInt(queryValues.Get("limit"), 20)
		filter := adminapp.PropertyFilter{
			Keyword:         strings.TrimSpace(queryValues.Get("keyword")),
			IncludeInactive: common.ParseBool(queryValues.Get("includeInactive"), true),
			Limit:           limit,
		}

		properties, err := h.propertyService.List(ctx, filter)
		if err != nil {
			h.logger.Printf("admin property search failed: %v", err)
			common.WriteFailure(h.logger, w, http.StatusInternalServerError, common.MsgInternalError)
			return
		}

		items := make([]adminPropertyResponse, 0, len(properties))
		for _, p := range properties {
			items = append(items, toAdminPropertyResponse(p))
		}
		common.WriteSuccess(h.logger, w, "Fetch properties", items)
	}
}

func (h *Handler) propertyDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.propertyIDParam(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		property, err := h.propertyService.Detail(ctx, id)
		if err != nil {
			h.writePropertyError(w, id, err)
			return
		}
		common.WriteSuccess(h.logger, w, "Fetch property", toAdminPropertyResponse(*property))
	}
}

// propertyUpdateHandler は isActive のみ更新を受け付ける。
func (h *Handler) propertyUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.propertyIDParam(w, r)
		if !ok {
			return
		}

		var req adminPropertyUpdateRequest
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteFailure(h.logger, w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		if req.IsActive == nil {
			common.WriteFailure(h.logger, w, http.StatusBadRequest, "isActive is required.")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		property, err := h.propertyService.SetActive(ctx, id, *req.IsActive)
		if err != nil {
			h.writePropertyError(w, id, err)
			return
		}
		common.WriteSuccess(h.logger, w, "Property updated", toAdminPropertyResponse(*property))
	}
}

func (h *Handler) propertyIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	idParam := strings.TrimSpace(chi.URLParam(r, "id"))
	objectID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		common.WriteFailure(h.logger, w, http.StatusBadRequest, "Invalid property id.")
		return "", false
	}
	return objectID.Hex(), true
}

func (h *Handler) writePropertyError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		common.WriteFailure(h.logger, w, http.StatusNotFound, "Property not found.")
		return
	}
	h.logger.Printf("admin property request failed id=%s err=%v", id, err)
	common.WriteFailure(h.logger, w, http.StatusInternalServerError, common.MsgInternalError)
}
