package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

type successResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int64      `json:"count,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteJSONError writes the error envelope {"success": false, "error": message}
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, errorResponse{Success: false, Error: message})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, successResponse{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: message})
}

// writeCount reports the number of rows a bulk operation changed
func writeCount(w http.ResponseWriter, message string, count int64) {
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: message, Count: &count})
}

// writeList writes rows with their count; a nil slice is sent as []
func writeList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	count := int64(len(items))
	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: items, Count: &count})
}

// statusFor maps a service error to its HTTP status
func statusFor(err error) int {
	var validationErr domain.ValidationError
	var notFound *domain.ErrNotFound
	var unauthorized *domain.ErrUnauthorized
	var conflict *domain.ErrConflict
	var notConfigured *domain.ErrNotConfigured
	var rateLimited *domain.ErrRateLimited

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &rateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &notConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError converts err into the error envelope. Unexpected failures are logged
// and their message is returned as is.
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error, action string) {
	status := statusFor(err)

	var rateLimited *domain.ErrRateLimited
	if errors.As(err, &rateLimited) {
		seconds := int(rateLimited.RetryAfter.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	if status == http.StatusInternalServerError {
		log.WithField("error", err.Error()).Error(fmt.Sprintf("Failed to %s", action))
	}
	WriteJSONError(w, err.Error(), status)
}

// allowMethod writes 405 unless r uses method
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// decodeJSON reads a bounded JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	return nil
}

// queryID reads the numeric id query parameter
func queryID(r *http.Request) (int64, error) {
	return domain.ParseID(r.URL.Query().Get("id"), "id")
}
