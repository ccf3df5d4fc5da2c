package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestExplain_FallbackWithoutKey(t *testing.T) {
	a := BaselinePreset()
	r, err := newEconomics().Evaluate(a)
	require.NoError(t, err)

	text := NewInsightService("", quietLogger()).Explain(context.Background(), a, r)
	assert.Equal(t, FallbackExplanation(a, r), text)
	assert.Contains(t, text, "is profitable")
	assert.Contains(t, text, "45.0% of them deadhead")
}

func TestExplain_UsesModelResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Looks healthy."}}]}`))
	}))
	defer srv.Close()

	a := BaselinePreset()
	r, err := newEconomics().Evaluate(a)
	require.NoError(t, err)

	svc := NewInsightService("test-key", quietLogger()).WithEndpoint(srv.URL)
	assert.Equal(t, "Looks healthy.", svc.Explain(context.Background(), a, r))
}

func TestExplain_FallsBackOnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := BaselinePreset()
	a.NumVehicles = 3
	r, err := newEconomics().Evaluate(a)
	require.NoError(t, err)

	text := NewInsightService("test-key", quietLogger()).WithEndpoint(srv.URL).Explain(context.Background(), a, r)
	assert.Equal(t, FallbackExplanation(a, r), text)
	assert.Contains(t, text, "Across 3 vehicles")
}

func TestFallbackExplanation_Loss(t *testing.T) {
	a := BaselinePreset()
	a.PricePerMile = 0.5
	r, err := newEconomics().Evaluate(a)
	require.NoError(t, err)

	assert.Contains(t, FallbackExplanation(a, r), "loses money")
}
