package domain

import (
	"fmt"
	"math"
)

// AssumptionSet holds the operating and financial assumptions for a single
// vehicle. It is built fresh for every evaluation and never mutated by the
// calculator.
type AssumptionSet struct {
	// Revenue
	PricePerMile       float64 `json:"price_per_mile" yaml:"price_per_mile"`
	PaidUtilizationPct float64 `json:"paid_utilization_pct" yaml:"paid_utilization_pct"`
	HoursActivePerDay  float64 `json:"hours_active_per_day" yaml:"hours_active_per_day"`
	AvgSpeedMph        float64 `json:"avg_speed_mph" yaml:"avg_speed_mph"`
	PlatformFeePct     float64 `json:"platform_fee_pct" yaml:"platform_fee_pct"`

	// Operating cost
	CleaningPerMonth     float64 `json:"cleaning_per_month" yaml:"cleaning_per_month"`
	InsurancePerMonth    float64 `json:"insurance_per_month" yaml:"insurance_per_month"`
	RemoteRescuePerMonth float64 `json:"remote_rescue_per_month" yaml:"remote_rescue_per_month"`
	TireCostPerMile      float64 `json:"tire_cost_per_mile" yaml:"tire_cost_per_mile"`
	EnergyCostPerMile    float64 `json:"energy_cost_per_mile" yaml:"energy_cost_per_mile"`

	// Capital
	VehiclePrice      float64 `json:"vehicle_price" yaml:"vehicle_price"`
	DownPayment       float64 `json:"down_payment" yaml:"down_payment"`
	LoanAnnualRatePct float64 `json:"loan_annual_rate_pct" yaml:"loan_annual_rate_pct"`
	LoanTermMonths    int     `json:"loan_term_months" yaml:"loan_term_months"`

	// Fleet
	NumVehicles int `json:"num_vehicles" yaml:"num_vehicles"`
}

// Field names a numeric field of AssumptionSet by its JSON name.
type Field string

const (
	FieldPricePerMile         Field = "price_per_mile"
	FieldPaidUtilizationPct   Field = "paid_utilization_pct"
	FieldHoursActivePerDay    Field = "hours_active_per_day"
	FieldAvgSpeedMph          Field = "avg_speed_mph"
	FieldPlatformFeePct       Field = "platform_fee_pct"
	FieldCleaningPerMonth     Field = "cleaning_per_month"
	FieldInsurancePerMonth    Field = "insurance_per_month"
	FieldRemoteRescuePerMonth Field = "remote_rescue_per_month"
	FieldTireCostPerMile      Field = "tire_cost_per_mile"
	FieldEnergyCostPerMile    Field = "energy_cost_per_mile"
	FieldVehiclePrice         Field = "vehicle_price"
	FieldDownPayment          Field = "down_payment"
	FieldLoanAnnualRatePct    Field = "loan_annual_rate_pct"
	FieldLoanTermMonths       Field = "loan_term_months"
	FieldNumVehicles          Field = "num_vehicles"
)

// Fields lists every field in declaration order.
var Fields = []Field{
	FieldPricePerMile,
	FieldPaidUtilizationPct,
	FieldHoursActivePerDay,
	FieldAvgSpeedMph,
	FieldPlatformFeePct,
	FieldCleaningPerMonth,
	FieldInsurancePerMonth,
	FieldRemoteRescuePerMonth,
	FieldTireCostPerMile,
	FieldEnergyCostPerMile,
	FieldVehiclePrice,
	FieldDownPayment,
	FieldLoanAnnualRatePct,
	FieldLoanTermMonths,
	FieldNumVehicles,
}

// ParseField resolves a field name, rejecting anything that is not a field
// of AssumptionSet.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown assumption field %q", name)
}

// IsIntegral reports whether the field only accepts whole numbers.
func (f Field) IsIntegral() bool {
	return f == FieldLoanTermMonths || f == FieldNumVehicles
}

// Get returns the value of field f.
func (a AssumptionSet) Get(f Field) (float64, error) {
	switch f {
	case FieldPricePerMile:
		return a.PricePerMile, nil
	case FieldPaidUtilizationPct:
		return a.PaidUtilizationPct, nil
	case FieldHoursActivePerDay:
		return a.HoursActivePerDay, nil
	case FieldAvgSpeedMph:
		return a.AvgSpeedMph, nil
	case FieldPlatformFeePct:
		return a.PlatformFeePct, nil
	case FieldCleaningPerMonth:
		return a.CleaningPerMonth, nil
	case FieldInsurancePerMonth:
		return a.InsurancePerMonth, nil
	case FieldRemoteRescuePerMonth:
		return a.RemoteRescuePerMonth, nil
	case FieldTireCostPerMile:
		return a.TireCostPerMile, nil
	case FieldEnergyCostPerMile:
		return a.EnergyCostPerMile, nil
	case FieldVehiclePrice:
		return a.VehiclePrice, nil
	case FieldDownPayment:
		return a.DownPayment, nil
	case FieldLoanAnnualRatePct:
		return a.LoanAnnualRatePct, nil
	case FieldLoanTermMonths:
		return float64(a.LoanTermMonths), nil
	case FieldNumVehicles:
		return float64(a.NumVehicles), nil
	}
	return 0, fmt.Errorf("unknown assumption field %q", f)
}

// With returns a copy of a with field f set to v. The receiver is left
// untouched. Integral fields reject fractional values.
func (a AssumptionSet) With(f Field, v float64) (AssumptionSet, error) {
	if f.IsIntegral() && (v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32) {
		return a, fmt.Errorf("field %q requires a whole number, got %v", f, v)
	}

	switch f {
	case FieldPricePerMile:
		a.PricePerMile = v
	case FieldPaidUtilizationPct:
		a.PaidUtilizationPct = v
	case FieldHoursActivePerDay:
		a.HoursActivePerDay = v
	case FieldAvgSpeedMph:
		a.AvgSpeedMph = v
	case FieldPlatformFeePct:
		a.PlatformFeePct = v
	case FieldCleaningPerMonth:
		a.CleaningPerMonth = v
	case FieldInsurancePerMonth:
		a.InsurancePerMonth = v
	case FieldRemoteRescuePerMonth:
		a.RemoteRescuePerMonth = v
	case FieldTireCostPerMile:
		a.TireCostPerMile = v
	case FieldEnergyCostPerMile:
		a.EnergyCostPerMile = v
	case FieldVehiclePrice:
		a.VehiclePrice = v
	case FieldDownPayment:
		a.DownPayment = v
	case FieldLoanAnnualRatePct:
		a.LoanAnnualRatePct = v
	case FieldLoanTermMonths:
		a.LoanTermMonths = int(v)
	case FieldNumVehicles:
		a.NumVehicles = int(v)
	default:
		return a, fmt.Errorf("unknown assumption field %q", f)
	}
	return a, nil
}
