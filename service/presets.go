package service

import (
	"fmt"
	"sort"

	"robotaxi-economics/domain"
)

// BaselinePreset is the single-vehicle financed scenario the dashboards open with.
func BaselinePreset() domain.AssumptionSet {
	return domain.AssumptionSet{
		PricePerMile:         1.60,
		PaidUtilizationPct:   55,
		HoursActivePerDay:    16,
		AvgSpeedMph:          18,
		PlatformFeePct:       30,
		CleaningPerMonth:     400,
		InsurancePerMonth:    250,
		RemoteRescuePerMonth: 50,
		TireCostPerMile:      0.06,
		EnergyCostPerMile:    0.08,
		VehiclePrice:         29000,
		DownPayment:          5000,
		LoanAnnualRatePct:    7.5,
		LoanTermMonths:       60,
		NumVehicles:          1,
	}
}

// DefaultPresets returns the built-in scenarios keyed by name.
func DefaultPresets() map[string]domain.AssumptionSet {
	baseline := BaselinePreset()

	fleet := baseline
	fleet.NumVehicles = 10
	fleet.InsurancePerMonth = 220
	fleet.RemoteRescuePerMonth = 35

	premium := baseline
	premium.PricePerMile = 2.10
	premium.PaidUtilizationPct = 45
	premium.VehiclePrice = 42000
	premium.DownPayment = 8000
	premium.CleaningPerMonth = 550

	budget := baseline
	budget.PricePerMile = 1.25
	budget.PaidUtilizationPct = 62
	budget.HoursActivePerDay = 18
	budget.VehiclePrice = 24000
	budget.DownPayment = 3000
	budget.LoanTermMonths = 72

	cash := baseline
	cash.DownPayment = cash.VehiclePrice
	cash.LoanAnnualRatePct = 0

	return map[string]domain.AssumptionSet{
		"baseline": baseline,
		"fleet":    fleet,
		"premium":  premium,
		"budget":   budget,
		"cash":     cash,
	}
}

// PresetService serves named scenarios.
type PresetService struct {
	presets map[string]domain.AssumptionSet
}

// NewPresetService validates every preset up front so a bad file fails at
// startup instead of on first request.
func NewPresetService(
	economics *EconomicsService,
	presets map[string]domain.AssumptionSet,
) (*PresetService, error) {
	for name, a := range presets {
		if err := economics.Validate(a); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return &PresetService{presets: presets}, nil
}

func (s *PresetService) Get(name string) (domain.AssumptionSet, error) {
	a, ok := s.presets[name]
	if !ok {
		return domain.AssumptionSet{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return a, nil
}

// Names returns the preset names sorted alphabetically.
func (s *PresetService) Names() []string {
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
