package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"robotaxi-economics/domain"
	"robotaxi-economics/service"
)

type SensitivityHandler struct {
	sensitivity *service.SensitivityService
	cache       *responseCache
	log         *logrus.Logger
}

func NewSensitivityHandler(
	sensitivity *service.SensitivityService,
	cache *responseCache,
	log *logrus.Logger,
) *SensitivityHandler {
	return &SensitivityHandler{sensitivity: sensitivity, cache: cache, log: log}
}

// applyDefaultAxes fills in the heatmap axes when the request leaves a
// field unset. A field given without values is left for the sweep to reject.
func applyDefaultAxes(req *domain.SweepRequest) {
	x, y := service.DefaultAxes()
	if req.XField == "" && len(req.XValues) == 0 {
		req.XField, req.XValues = x.Field, x.Values
	}
	if req.YField == "" && len(req.YValues) == 0 {
		req.YField, req.YValues = y.Field, y.Values
	}
}

func (h *SensitivityHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.log, http.MethodPost) {
		return
	}

	var req domain.SweepRequest
	if status, err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, status, err.Error())
		return
	}
	applyDefaultAxes(&req)

	body, hit, err := h.cache.fetch(r.Context(), "sweep", req, func() (any, error) {
		return h.sensitivity.Sweep2D(req.Assumptions, req.XValues, req.YValues, req.XField, req.YField)
	})
	if err != nil {
		h.log.WithError(err).Debug("sweep failed")
		writeError(w, h.log, statusFor(err), err.Error())
		return
	}

	if hit {
		w.Header().Set(cacheHeader, "HIT")
	} else {
		w.Header().Set(cacheHeader, "MISS")
	}
	writeBody(w, h.log, http.StatusOK, body)
}

func (h *SensitivityHandler) Sweep1D(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.log, http.MethodPost) {
		return
	}

	var req domain.Sweep1DRequest
	if status, err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, status, err.Error())
		return
	}

	result, err := h.sensitivity.Analyze(req)
	if err != nil {
		h.log.WithError(err).Debug("sweep1d failed")
		writeError(w, h.log, statusFor(err), err.Error())
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}
