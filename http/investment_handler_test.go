package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robotaxi-economics/domain"
	"robotaxi-economics/service"
)

func TestInvestmentHandler_OK(t *testing.T) {
	router := testRouter(t)

	input := domain.InvestmentInput{
		Assumptions:          service.DefaultPresets()["cash"],
		OperationalLifeYears: 5,
		DiscountRatePct:      8,
	}
	w := serve(router, jsonRequest(t, http.MethodPost, "/economics/investment", input))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res domain.InvestmentResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))

	assert.Len(t, res.CashFlows, 6)
	assert.Equal(t, -29000.0, res.CashFlows[0])
	assert.Greater(t, res.NPV, 0.0)
	assert.NotNil(t, res.IRR)
	assert.NotNil(t, res.PaybackYears)
}

func TestInvestmentHandler_InvalidLife(t *testing.T) {
	router := testRouter(t)

	input := domain.InvestmentInput{
		Assumptions:          service.BaselinePreset(),
		OperationalLifeYears: 99,
	}
	w := serve(router, jsonRequest(t, http.MethodPost, "/economics/investment", input))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
