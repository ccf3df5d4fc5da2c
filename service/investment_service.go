package service

import (
	"fmt"
	"math"

	"robotaxi-economics/domain"
)

// InvestmentService values a vehicle bought outright: the purchase price is
// paid up front and the unlevered operating cash flow arrives once a year.
type InvestmentService struct {
	economics *EconomicsService
}

func NewInvestmentService(economics *EconomicsService) *InvestmentService {
	return &InvestmentService{economics: economics}
}

// Evaluate computes NPV, IRR and simple payback for the investment.
// A missing IRR is not an error; the result simply omits it.
func (s *InvestmentService) Evaluate(
	input domain.InvestmentInput,
) (domain.InvestmentResult, error) {

	if input.OperationalLifeYears < MinOperationalLifeYears || input.OperationalLifeYears > MaxOperationalLifeYears {
		return domain.InvestmentResult{}, fmt.Errorf("%w: vida operativa debe estar entre %d y %d años",
			ErrInvalidAssumption, MinOperationalLifeYears, MaxOperationalLifeYears)
	}
	if input.DiscountRatePct <= -100 || math.IsNaN(input.DiscountRatePct) || math.IsInf(input.DiscountRatePct, 0) {
		return domain.InvestmentResult{}, fmt.Errorf("%w: tasa de descuento inválida", ErrInvalidAssumption)
	}

	r, err := s.economics.Evaluate(input.Assumptions)
	if err != nil {
		return domain.InvestmentResult{}, err
	}

	// Sin deuda: la compra es al contado
	annual := (r.NetRevenue - r.VariableOpex - r.FixedOpex) * MonthsPerYear

	flows := make([]float64, input.OperationalLifeYears+1)
	flows[0] = -input.Assumptions.VehiclePrice
	for i := 1; i < len(flows); i++ {
		flows[i] = annual
	}

	result := domain.InvestmentResult{
		AnnualCashFlow: annual,
		CashFlows:      flows,
		NPV:            NPV(input.DiscountRatePct/100, flows),
	}

	if irr, err := IRR(flows); err == nil {
		result.IRR = &irr
	}
	if annual > 0 {
		payback := input.Assumptions.VehiclePrice / annual
		result.PaybackYears = &payback
	}

	return result, nil
}

// NPV discounts flows at rate, the first flow at t=0.
func NPV(rate float64, flows []float64) float64 {
	total := 0.0
	for t, cf := range flows {
		total += cf / math.Pow(1+rate, float64(t))
	}
	return total
}

// IRR finds the rate where NPV is zero by bisection over a fixed bracket.
func IRR(flows []float64) (float64, error) {
	lo, hi := irrLowerBound, irrUpperBound
	fLo := NPV(lo, flows)
	fHi := NPV(hi, flows)

	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if sign(fLo) == sign(fHi) {
		return 0, ErrNoIRR
	}

	mid := lo
	for i := 0; i < irrMaxIter; i++ {
		mid = (lo + hi) / 2
		fMid := NPV(mid, flows)
		if fMid == 0 || (hi-lo)/2 < irrTolerance {
			return mid, nil
		}
		if sign(fMid) == sign(fLo) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return mid, nil
}
