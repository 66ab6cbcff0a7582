package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/commforge/community_backend/pkg/errors"
	"github.com/commforge/community_backend/pkg/logger"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps an AppError code onto an HTTP status and a stable
// machine-readable body. Internal failures are logged but never leak
// their details to the caller.
func writeError(w http.ResponseWriter, err error) {
	code := errors.Code(err)

	var status int
	switch code {
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnauthorized:
		status = http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		status = http.StatusForbidden
	case errors.ErrCodeRateLimit:
		status = http.StatusTooManyRequests
	case errors.ErrCodeDuplicateCompletion, errors.ErrCodeAlreadyExists:
		status = http.StatusConflict
	case errors.ErrCodeValidation, errors.ErrCodeValidationFailed,
		errors.ErrCodeInvalidLevelName, errors.ErrCodeInvalidThreshold,
		errors.ErrCodeInvalidLevel, errors.ErrCodeUnknownPointSource:
		status = http.StatusBadRequest
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errors.ErrCodeInternalError})
		return
	}

	message := ""
	if appErr, ok := err.(*errors.AppError); ok {
		message = appErr.Message
	}
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func writeValidationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   errors.ErrCodeValidation,
		Message: err.Error(),
	})
}
