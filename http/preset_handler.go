package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"robotaxi-economics/domain"
	"robotaxi-economics/service"
)

type PresetListResponse struct {
	Presets []string `json:"presets"`
}

type PresetResponse struct {
	Name        string               `json:"name"`
	Assumptions domain.AssumptionSet `json:"assumptions"`
}

type PresetHandler struct {
	presets *service.PresetService
	log     *logrus.Logger
}

func NewPresetHandler(presets *service.PresetService, log *logrus.Logger) *PresetHandler {
	return &PresetHandler{presets: presets, log: log}
}

func (h *PresetHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.log, http.MethodGet) {
		return
	}
	writeJSON(w, h.log, http.StatusOK, PresetListResponse{Presets: h.presets.Names()})
}

func (h *PresetHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.log, http.MethodGet) {
		return
	}
	name := mux.Vars(r)["name"]

	a, err := h.presets.Get(name)
	if err != nil {
		writeError(w, h.log, statusFor(err), err.Error())
		return
	}

	writeJSON(w, h.log, http.StatusOK, PresetResponse{Name: name, Assumptions: a})
}
