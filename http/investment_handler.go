package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"robotaxi-economics/domain"
	"robotaxi-economics/service"
)

type InvestmentHandler struct {
	investment *service.InvestmentService
	log        *logrus.Logger
}

func NewInvestmentHandler(investment *service.InvestmentService, log *logrus.Logger) *InvestmentHandler {
	return &InvestmentHandler{investment: investment, log: log}
}

func (h *InvestmentHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.log, http.MethodPost) {
		return
	}

	var input domain.InvestmentInput
	if status, err := decodeJSON(w, r, &input); err != nil {
		writeError(w, h.log, status, err.Error())
		return
	}

	result, err := h.investment.Evaluate(input)
	if err != nil {
		writeError(w, h.log, statusFor(err), err.Error())
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}
