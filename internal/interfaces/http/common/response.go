package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the response body shape shared by every API endpoint.
type Envelope struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Tier     string `json:"tier,omitempty"`
	SearchID string `json:"searchId,omitempty"`
	Data     any    `json:"data"`
}

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *log.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// WriteSuccess writes a 200 envelope carrying data.
func WriteSuccess(logger *log.Logger, w http.ResponseWriter, message string, data any) {
	WriteJSON(logger, w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// WriteFailure は success=false のエンベロープを返す。data は常に空配列。
func WriteFailure(logger *log.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, Envelope{Success: false, Message: message, Data: []any{}})
}
