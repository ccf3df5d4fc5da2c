package service

import (
	"fmt"
	"math"

	"robotaxi-economics/domain"
)

// EconomicsService turns an AssumptionSet into monthly cash flow. It holds
// no state between calls.
type EconomicsService struct {
	loans *LoanService
}

func NewEconomicsService(loans *LoanService) *EconomicsService {
	return &EconomicsService{loans: loans}
}

// Validate enforces the hard invariants of an AssumptionSet. Range limits
// such as slider bounds belong to the caller; nothing is clamped here.
// Zero utilization passes validation and is reported by Evaluate as a
// domain error.
func (s *EconomicsService) Validate(a domain.AssumptionSet) error {
	for _, f := range domain.Fields {
		v, err := a.Get(f)
		if err != nil {
			return err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(f, "valor no finito")
		}
	}

	if a.PaidUtilizationPct < 0 || a.PaidUtilizationPct > MaxPercent {
		return invalid(domain.FieldPaidUtilizationPct, "debe estar en [0, 100], recibido %v", a.PaidUtilizationPct)
	}
	if a.LoanTermMonths < MinTermMonths {
		return invalid(domain.FieldLoanTermMonths, "plazo inválido: %d", a.LoanTermMonths)
	}
	if a.LoanTermMonths > MaxTermMonths {
		return invalid(domain.FieldLoanTermMonths, "plazo excede el máximo permitido de %d meses", MaxTermMonths)
	}
	if a.DownPayment < 0 {
		return invalid(domain.FieldDownPayment, "pago inicial negativo: %v", a.DownPayment)
	}
	if a.VehiclePrice < a.DownPayment {
		return invalid(domain.FieldVehiclePrice, "precio %v menor que el pago inicial %v", a.VehiclePrice, a.DownPayment)
	}
	if a.LoanAnnualRatePct < 0 {
		return invalid(domain.FieldLoanAnnualRatePct, "tasa inválida: %v", a.LoanAnnualRatePct)
	}
	if a.NumVehicles < 1 {
		return invalid(domain.FieldNumVehicles, "se requiere al menos un vehículo")
	}
	if a.NumVehicles > MaxNumVehicles {
		return invalid(domain.FieldNumVehicles, "flota excede el máximo de %d vehículos", MaxNumVehicles)
	}
	return nil
}

// Evaluate validates a and runs the cash-flow formula chain.
func (s *EconomicsService) Evaluate(a domain.AssumptionSet) (domain.CashFlowResult, error) {
	if err := s.Validate(a); err != nil {
		return domain.CashFlowResult{}, err
	}

	var r domain.CashFlowResult

	// Millaje
	utilization := a.PaidUtilizationPct / 100
	r.HoursPerMonth = a.HoursActivePerDay * DaysPerMonth
	r.PaidHoursPerMonth = r.HoursPerMonth * utilization
	r.PaidMilesPerMonth = r.PaidHoursPerMonth * a.AvgSpeedMph
	if utilization == 0 {
		return domain.CashFlowResult{}, fmt.Errorf("%w: total miles undefined at zero paid utilization", ErrDomain)
	}
	r.TotalMilesPerMonth = r.PaidMilesPerMonth / utilization
	r.DeadheadMilesPerMonth = r.TotalMilesPerMonth - r.PaidMilesPerMonth

	// Ingresos
	r.GrossRevenue = r.PaidMilesPerMonth * a.PricePerMile
	r.PlatformCut = r.GrossRevenue * (a.PlatformFeePct / 100)
	r.NetRevenue = r.GrossRevenue - r.PlatformCut

	// Costos: llantas y energía se consumen también en millas sin pasajero
	r.VariableOpex = r.TotalMilesPerMonth * (a.TireCostPerMile + a.EnergyCostPerMile)
	r.FixedOpex = a.CleaningPerMonth + a.InsurancePerMonth + a.RemoteRescuePerMonth
	r.MonthlyDebt = s.loans.MonthlyPayment(a.VehiclePrice-a.DownPayment, a.LoanAnnualRatePct, a.LoanTermMonths)
	r.TotalCosts = r.VariableOpex + r.FixedOpex + r.MonthlyDebt

	r.CashFlowPerCar = r.NetRevenue - r.TotalCosts
	r.AnnualCashFlowPerCar = r.CashFlowPerCar * MonthsPerYear

	fleet := float64(a.NumVehicles)
	r.Fleet = domain.FleetResult{
		NetRevenue:     r.NetRevenue * fleet,
		TotalCosts:     r.TotalCosts * fleet,
		CashFlow:       r.CashFlowPerCar * fleet,
		AnnualCashFlow: r.CashFlowPerCar * fleet * MonthsPerYear,
		TotalMiles:     r.TotalMilesPerMonth * fleet,
		DeadheadMiles:  r.DeadheadMilesPerMonth * fleet,
	}

	if !isFinite(r) {
		return domain.CashFlowResult{}, fmt.Errorf("%w: result overflows float64", ErrDomain)
	}
	return r, nil
}

func isFinite(r domain.CashFlowResult) bool {
	values := []float64{
		r.HoursPerMonth, r.PaidHoursPerMonth, r.PaidMilesPerMonth,
		r.TotalMilesPerMonth, r.DeadheadMilesPerMonth,
		r.GrossRevenue, r.PlatformCut, r.NetRevenue,
		r.VariableOpex, r.FixedOpex, r.MonthlyDebt, r.TotalCosts,
		r.CashFlowPerCar, r.AnnualCashFlowPerCar,
		r.Fleet.NetRevenue, r.Fleet.TotalCosts, r.Fleet.CashFlow,
		r.Fleet.AnnualCashFlow, r.Fleet.TotalMiles, r.Fleet.DeadheadMiles,
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// LoanInput extracts the vehicle loan from an AssumptionSet.
func (s *EconomicsService) LoanInput(a domain.AssumptionSet) domain.LoanInput {
	return domain.LoanInput{
		Amount:       a.VehiclePrice - a.DownPayment,
		InterestRate: a.LoanAnnualRatePct,
		TermMonths:   a.LoanTermMonths,
	}
}

// Waterfall lays out the monthly result as chart categories, costs negative.
func Waterfall(r domain.CashFlowResult) []domain.WaterfallStep {
	return []domain.WaterfallStep{
		{Category: domain.WaterfallGrossFares, Value: r.GrossRevenue},
		{Category: domain.WaterfallPlatformFee, Value: -r.PlatformCut},
		{Category: domain.WaterfallVariableOpex, Value: -r.VariableOpex},
		{Category: domain.WaterfallFixedOpex, Value: -r.FixedOpex},
		{Category: domain.WaterfallLoanPayment, Value: -r.MonthlyDebt},
		{Category: domain.WaterfallNetProfit, Value: r.CashFlowPerCar},
	}
}
