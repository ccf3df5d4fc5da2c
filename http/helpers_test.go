package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"robotaxi-economics/repository"
	"robotaxi-economics/service"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testServices(t *testing.T, limiter *RateLimiter) Services {
	t.Helper()

	loans := service.NewLoanService()
	economics := service.NewEconomicsService(loans)
	presets, err := service.NewPresetService(economics, service.DefaultPresets())
	require.NoError(t, err)

	return Services{
		Economics:   economics,
		Loans:       loans,
		Sensitivity: service.NewSensitivityService(economics),
		Investment:  service.NewInvestmentService(economics),
		Insight:     service.NewInsightService("", quietLogger()),
		Presets:     presets,
		Cache:       repository.NewMemoryCache(),
		CacheTTL:    time.Minute,
		Limiter:     limiter,
	}
}

func testRouter(t *testing.T) *mux.Router {
	t.Helper()
	return NewRouter(testServices(t, nil), quietLogger())
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var raw []byte
	switch v := body.(type) {
	case nil:
	case string:
		raw = []byte(v)
	default:
		var err error
		raw, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
