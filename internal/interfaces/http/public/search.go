package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sngm3741/property-match-services/api/internal/interfaces/http/common"
	searchapp "github.com/sngm3741/property-match-services/api/internal/search/application"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

const msgInvalidBody = "Invalid request body."

// searchHandler は匿名の検索。リクエストの 4 項目はすべて必須。
func (h *Handler) searchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.runSearch(w, r, nil)
	}
}

// searchMeHandler は保存済みプロファイルとリクエストをマージして検索する。
func (h *Handler) searchMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := common.UserIDFromContext(r.Context())
		if !ok {
			common.WriteFailure(h.logger, w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		h.runSearch(w, r, &searchapp.Caller{UserID: userID})
	}
}

func (h *Handler) runSearch(w http.ResponseWriter, r *http.Request, caller *searchapp.Caller) {
	req, err := decodePreferenceRequest(w, r)
	if err != nil {
		common.WriteFailure(h.logger, w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	outcome, err := h.search.FindMatches(ctx, req.raw(), caller)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	result := outcome.Result
	h.logf("search completed searchId=%s tier=%s matches=%d", outcome.SearchID, result.Tier, len(result.Properties))

	status := http.StatusOK
	if !result.Found() {
		status = http.StatusNotFound
	}
	common.WriteJSON(h.logger, w, status, common.Envelope{
		Success:  result.Found(),
		Message:  result.Message(),
		Tier:     result.Tier.String(),
		SearchID: outcome.SearchID,
		Data:     toPropertyResponses(result.Properties),
	})
}

// writeSearchError maps domain errors onto status codes. Store failures never leak their cause.
func (h *Handler) writeSearchError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		common.WriteFailure(h.logger, w, http.StatusBadRequest, validationErr.Message)
		return
	}
	h.logf("request failed: %v", err)
	common.WriteFailure(h.logger, w, http.StatusInternalServerError, common.MsgInternalError)
}

// decodePreferenceRequest は空ボディを全項目未指定として扱う。数値は json.Number のまま渡す。
func decodePreferenceRequest(w http.ResponseWriter, r *http.Request) (preferenceRequest, error) {
	var req preferenceRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody))
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return preferenceRequest{}, nil
		}
		return preferenceRequest{}, err
	}
	return req, nil
}
