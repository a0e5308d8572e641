package handler

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/jergadic/jergadic/internal/database/types"
	restTypes "github.com/jergadic/jergadic/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// respondError maps service errors to HTTP status codes and writes the
// uniform error body. Unrecognized errors are logged and reported as 500.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, types.ErrUnauthenticated):
		status = http.StatusUnauthorized

	case errors.Is(err, types.ErrTermNotFound),
		errors.Is(err, types.ErrDefinitionNotFound),
		errors.Is(err, types.ErrDichoNotFound),
		errors.Is(err, types.ErrCommentNotFound),
		errors.Is(err, types.ErrTargetNotFound),
		errors.Is(err, types.ErrUserNotFound),
		errors.Is(err, types.ErrFlagNotFound),
		errors.Is(err, types.ErrNoEligibleTerms):
		status = http.StatusNotFound

	case errors.Is(err, types.ErrDuplicateTerm),
		errors.Is(err, types.ErrDuplicateFlag):
		status = http.StatusConflict

	case errors.Is(err, types.ErrInvalidPolarity),
		errors.Is(err, types.ErrInvalidTargetType),
		errors.Is(err, types.ErrInvalidRegion),
		errors.Is(err, types.ErrInvalidFlagStatus),
		errors.Is(err, types.ErrEmptyContent):
		status = http.StatusBadRequest

	case errors.Is(err, types.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", zap.Error(err))

		w.WriteHeader(status)

		return sonic.ConfigDefault.NewEncoder(w).Encode(restTypes.ErrorResponse{
			Error: "internal server error",
		})
	}

	w.WriteHeader(status)

	return sonic.ConfigDefault.NewEncoder(w).Encode(restTypes.ErrorResponse{Error: err.Error()})
}

// decodeBody parses a JSON request body into dest.
func decodeBody(req bunrouter.Request, dest any) error {
	return sonic.ConfigDefault.NewDecoder(req.Body).Decode(dest)
}

// badRequest writes a 400 with the given message.
func badRequest(w http.ResponseWriter, message string) error {
	w.WriteHeader(http.StatusBadRequest)

	return sonic.ConfigDefault.NewEncoder(w).Encode(restTypes.ErrorResponse{Error: message})
}
