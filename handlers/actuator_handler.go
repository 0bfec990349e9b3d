package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/upb/customer-service/internal/observability"
	"github.com/upb/customer-service/utils"
	"go.uber.org/zap"
)

// MetricSource exposes recorded observations
type MetricSource interface {
	Names() []string
	Snapshot(name string) (observability.MetricSnapshot, bool)
}

// MetricNamesResponse lists the available metric names
type MetricNamesResponse struct {
	Names []string `json:"names"`
}

// ActuatorHandler serves the /actuator/metrics endpoints
type ActuatorHandler struct {
	metrics MetricSource
	logger  *zap.Logger
}

// NewActuatorHandler creates a new ActuatorHandler
func NewActuatorHandler(metrics MetricSource, logger *zap.Logger) *ActuatorHandler {
	return &ActuatorHandler{
		metrics: metrics,
		logger:  logger,
	}
}

// HandleMetricNames handles GET /actuator/metrics
func (h *ActuatorHandler) HandleMetricNames(w http.ResponseWriter, r *http.Request) {
	if err := utils.WriteJSON(w, http.StatusOK, MetricNamesResponse{Names: h.metrics.Names()}); err != nil {
		h.logger.Error("failed to write metric names", zap.Error(err))
	}
}

// HandleMetric handles GET /actuator/metrics/{name}
func (h *ActuatorHandler) HandleMetric(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	snapshot, ok := h.metrics.Snapshot(name)
	if !ok {
		if err := utils.WriteProblem(w, utils.NewProblem(http.StatusNotFound, "metric "+name+" not found", r.URL.Path)); err != nil {
			h.logger.Error("failed to write metric not found", zap.Error(err))
		}
		return
	}

	if err := utils.WriteJSON(w, http.StatusOK, snapshot); err != nil {
		h.logger.Error("failed to write metric", zap.Error(err))
	}
}
