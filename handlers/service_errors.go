package handlers

import (
	"net/http"
	"sort"

	"github.com/upb/customer-service/middleware"
	"github.com/upb/customer-service/services"
	"github.com/upb/customer-service/utils"
	"go.uber.org/zap"
)

// HandleServiceError maps domain errors to RFC 7807 problem responses
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	if err == nil {
		return
	}
	logger = middleware.LoggerFromContext(r.Context(), logger)

	logger.Debug("request headers", zap.Strings("headers", headerNames(r.Header)))

	var problem utils.ProblemDetail
	switch {
	case services.IsValidationError(err):
		problem = utils.NewProblem(http.StatusBadRequest, services.GetErrorMessage(err), r.URL.Path)

	default:
		// Internal and unknown errors never leak their cause
		logger.Error("unhandled service error",
			zap.Error(err),
			zap.String("error_type", string(services.GetErrorType(err))),
			zap.String("path", r.URL.Path))
		problem = utils.NewProblem(http.StatusInternalServerError, "An unexpected error occurred", r.URL.Path)
	}

	if err := utils.WriteProblem(w, problem); err != nil {
		logger.Error("failed to write problem response", zap.Error(err))
	}

	logger.Debug("handled service error",
		zap.Int("status", problem.Status),
		zap.String("type", string(services.GetErrorType(err))),
		zap.Any("details", services.GetErrorDetails(err)))
}

// HandleNotFound writes a 404 problem for unmatched routes
func HandleNotFound(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		problem := utils.NewProblem(http.StatusNotFound, "No handler found for "+r.Method+" "+r.URL.Path, r.URL.Path)
		if err := utils.WriteProblem(w, problem); err != nil {
			logger.Error("failed to write not found response", zap.Error(err))
		}
	}
}

// HandleMethodNotAllowed writes a 405 problem
func HandleMethodNotAllowed(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		problem := utils.NewProblem(http.StatusMethodNotAllowed, "Request method '"+r.Method+"' is not supported", r.URL.Path)
		if err := utils.WriteProblem(w, problem); err != nil {
			logger.Error("failed to write method not allowed response", zap.Error(err))
		}
	}
}

func headerNames(h http.Header) []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
