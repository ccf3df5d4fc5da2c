package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robotaxi-economics/service"
)

func newTestEconomicsHandler(t *testing.T) *EconomicsHandler {
	svc := testServices(t, nil)
	cache := newResponseCache(svc.Cache, svc.CacheTTL, quietLogger())
	return NewEconomicsHandler(svc.Economics, svc.Loans, svc.Insight, cache, quietLogger())
}

func TestEvaluateHandler_OK(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	req := jsonRequest(t, http.MethodPost, "/economics/evaluate", service.BaselinePreset())
	w := httptest.NewRecorder()

	handler.Evaluate(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body EvaluateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.InDelta(t, 8784.0, body.Result.TotalMilesPerMonth, 1e-9)
	assert.Len(t, body.Waterfall, 6)
	assert.Equal(t, 480.91, body.Loan.MonthlyPayment)
	assert.Greater(t, body.FirstYearInterest, 0.0)
	assert.NotEmpty(t, body.Explanation)
	assert.Equal(t, "MISS", resp.Header.Get(cacheHeader))
}

func TestEvaluateHandler_CachesResponse(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	first := httptest.NewRecorder()
	handler.Evaluate(first, jsonRequest(t, http.MethodPost, "/economics/evaluate", service.BaselinePreset()))
	second := httptest.NewRecorder()
	handler.Evaluate(second, jsonRequest(t, http.MethodPost, "/economics/evaluate", service.BaselinePreset()))

	assert.Equal(t, "MISS", first.Header().Get(cacheHeader))
	assert.Equal(t, "HIT", second.Header().Get(cacheHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestEvaluateHandler_MethodNotAllowed(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/economics/evaluate", nil)
	w := httptest.NewRecorder()

	handler.Evaluate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestEvaluateHandler_BadRequest(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	cases := map[string]string{
		"invalid json":  `{invalid-json}`,
		"unknown field": `{"price_per_mile": 1.6, "wheel_count": 4}`,
		"trailing data": `{"price_per_mile": 1.6} {}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Evaluate(w, jsonRequest(t, http.MethodPost, "/economics/evaluate", body))

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestEvaluateHandler_UnsupportedMediaType(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	req := jsonRequest(t, http.MethodPost, "/economics/evaluate", service.BaselinePreset())
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.Evaluate(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestEvaluateHandler_ZeroUtilization(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	a := service.BaselinePreset()
	a.PaidUtilizationPct = 0
	w := httptest.NewRecorder()
	handler.Evaluate(w, jsonRequest(t, http.MethodPost, "/economics/evaluate", a))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body.Error, "domain error")
}

func TestEvaluateHandler_InvalidAssumption(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	a := service.BaselinePreset()
	a.LoanTermMonths = -1
	w := httptest.NewRecorder()
	handler.Evaluate(w, jsonRequest(t, http.MethodPost, "/economics/evaluate", a))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get(cacheHeader))
}

func TestEvaluateHandler_TinyRate(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	a := service.BaselinePreset()
	a.LoanAnnualRatePct = 1e-15
	w := httptest.NewRecorder()
	handler.Evaluate(w, jsonRequest(t, http.MethodPost, "/economics/evaluate", a))

	require.Equal(t, http.StatusOK, w.Code)

	var body EvaluateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 400.0, body.Loan.MonthlyPayment)
}

func TestEvaluateHandler_OverflowIsUnprocessable(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	a := service.BaselinePreset()
	a.HoursActivePerDay = 1e307
	w := httptest.NewRecorder()
	handler.Evaluate(w, jsonRequest(t, http.MethodPost, "/economics/evaluate", a))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestEvaluateHandler_BodyTooLarge(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	body := `{"price_per_mile": 1.6, "padding": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	w := httptest.NewRecorder()
	handler.Evaluate(w, jsonRequest(t, http.MethodPost, "/economics/evaluate", body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestEvaluateHandler_OversizedTrailingData(t *testing.T) {

	handler := newTestEconomicsHandler(t)

	body := `{"price_per_mile": 1.6} ` + strings.Repeat(" ", maxBodyBytes)
	w := httptest.NewRecorder()
	handler.Evaluate(w, jsonRequest(t, http.MethodPost, "/economics/evaluate", body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
