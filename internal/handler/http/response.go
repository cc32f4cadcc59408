package http

import (
	"BetGuide-Backend/internal/repository"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, ErrorResponse{Error: message}, statusCode)
}

// writeStoreError переводит ошибку хранилища в HTTP статус.
// Детали неизвестных ошибок в ответ не попадают, только в лог.
func writeStoreError(w http.ResponseWriter, log *zap.Logger, err error, notFound string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, notFound, http.StatusNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		writeError(w, "Slug already exists", http.StatusConflict)
	default:
		log.Error("storage operation failed", zap.Error(err))
		writeError(w, "Internal server error", http.StatusInternalServerError)
	}
}
