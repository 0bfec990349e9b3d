package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/upb/customer-service/models"
	"github.com/upb/customer-service/services"
	"github.com/upb/customer-service/utils"
	"go.uber.org/zap"
)

// CustomerService is the read API the customer endpoints depend on
type CustomerService interface {
	All(ctx context.Context) ([]*models.Customer, error)
	ByName(ctx context.Context, name string) ([]*models.Customer, error)
}

// CustomerHandler serves the /customer endpoints
type CustomerHandler struct {
	service CustomerService
	logger  *zap.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger,
	}
}

// HandleList handles GET /customer
func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.All(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	if err := utils.WriteJSON(w, http.StatusOK, customers); err != nil {
		h.logger.Error("failed to write customers response", zap.Error(err))
	}
}

// HandleByName handles GET /customer/{name}
func (h *CustomerHandler) HandleByName(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r)
	if err != nil {
		HandleServiceError(w, r, services.ErrInvalidName.WithDetail("cause", err.Error()), h.logger)
		return
	}

	customers, err := h.service.ByName(r.Context(), name)
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	if err := utils.WriteJSON(w, http.StatusOK, customers); err != nil {
		h.logger.Error("failed to write customers response", zap.Error(err))
	}
}

// pathName returns the decoded {name} segment. chi matches on RawPath when
// the request carried escapes that Path cannot round-trip.
func pathName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}
