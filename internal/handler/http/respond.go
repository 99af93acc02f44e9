package http

import (
	"Backtrack-Backend/internal/repository"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// response — единый конверт ответа API.
// Списочные endpoint-ы дополнительно несут блок pagination.
type response struct {
	Data       interface{}            `json:"data,omitempty"`
	Pagination *repository.Pagination `json:"pagination,omitempty"`
	Success    bool                   `json:"success"`
	Message    string                 `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, response{Success: false, Message: message})
}

// pathSegments разбивает URL path на непустые сегменты.
func pathSegments(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

// parseID извлекает числовой идентификатор из сегмента пути.
func parseID(segment string) (int64, bool) {
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseFloat разбирает дробный query-параметр.
func parseFloat(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseIntOrDefault приводит строковый query-параметр к числу.
// Отсутствующие и нечисловые значения дают значение по умолчанию.
func parseIntOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
