package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"robotaxi-economics/domain"
	"robotaxi-economics/service"
)

type EvaluateResponse struct {
	Result            domain.CashFlowResult  `json:"result"`
	Waterfall         []domain.WaterfallStep `json:"waterfall"`
	Loan              domain.LoanResult      `json:"loan"`
	FirstYearInterest float64                `json:"first_year_interest"`
	Explanation       string                 `json:"explanation"`
}

type EconomicsHandler struct {
	economics *service.EconomicsService
	loans     *service.LoanService
	insight   *service.InsightService
	cache     *responseCache
	log       *logrus.Logger
}

func NewEconomicsHandler(
	economics *service.EconomicsService,
	loans *service.LoanService,
	insight *service.InsightService,
	cache *responseCache,
	log *logrus.Logger,
) *EconomicsHandler {
	return &EconomicsHandler{
		economics: economics,
		loans:     loans,
		insight:   insight,
		cache:     cache,
		log:       log,
	}
}

func (h *EconomicsHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.log, http.MethodPost) {
		return
	}

	var input domain.AssumptionSet
	if status, err := decodeJSON(w, r, &input); err != nil {
		h.log.WithError(err).Debug("rejected evaluate request")
		writeError(w, h.log, status, err.Error())
		return
	}

	body, hit, err := h.cache.fetch(r.Context(), "evaluate", input, func() (any, error) {
		return h.evaluate(r, input)
	})
	if err != nil {
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

func (h *EconomicsHandler) evaluate(r *http.Request, input domain.AssumptionSet) (EvaluateResponse, error) {
	result, err := h.economics.Evaluate(input)
	if err != nil {
		return EvaluateResponse{}, err
	}

	loanInput := h.economics.LoanInput(input)
	loan, err := h.loans.CalculateLoan(loanInput)
	if err != nil {
		return EvaluateResponse{}, err
	}
	firstYear, err := h.loans.FirstYearInterest(loanInput)
	if err != nil {
		return EvaluateResponse{}, err
	}

	return EvaluateResponse{
		Result:            result,
		Waterfall:         service.Waterfall(result),
		Loan:              loan,
		FirstYearInterest: firstYear,
		Explanation:       h.insight.Explain(r.Context(), input, result),
	}, nil
}
