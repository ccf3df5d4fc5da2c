package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"robotaxi-economics/repository"
	"robotaxi-economics/service"
)

// Services bundles what the router needs to serve requests.
type Services struct {
	Economics   *service.EconomicsService
	Loans       *service.LoanService
	Sensitivity *service.SensitivityService
	Investment  *service.InvestmentService
	Insight     *service.InsightService
	Presets     *service.PresetService
	Cache       repository.CacheRepository
	CacheTTL    time.Duration
	Limiter     *RateLimiter
}

func NewRouter(svc Services, log *logrus.Logger) *mux.Router {
	cache := newResponseCache(svc.Cache, svc.CacheTTL, log)

	economicsHandler := NewEconomicsHandler(svc.Economics, svc.Loans, svc.Insight, cache, log)
	sensitivityHandler := NewSensitivityHandler(svc.Sensitivity, cache, log)
	investmentHandler := NewInvestmentHandler(svc.Investment, log)
	presetHandler := NewPresetHandler(svc.Presets, log)

	r := mux.NewRouter()
	r.Use(RequestLogMiddleware(log))
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, log, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, log, http.StatusNotFound, "not found")
	})

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Handlers check their own method: mux answers a method mismatch on a
	// subrouter with 404.
	api := r.PathPrefix("/economics").Subrouter()
	if svc.Limiter != nil {
		api.Use(RateLimitMiddleware(svc.Limiter, log))
	}
	api.HandleFunc("/evaluate", economicsHandler.Evaluate)
	api.HandleFunc("/sweep", sensitivityHandler.Sweep)
	api.HandleFunc("/sweep1d", sensitivityHandler.Sweep1D)
	api.HandleFunc("/investment", investmentHandler.Evaluate)
	api.HandleFunc("/presets", presetHandler.List)
	api.HandleFunc("/presets/{name}", presetHandler.Get)

	return r
}
