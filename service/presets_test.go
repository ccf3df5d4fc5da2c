package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robotaxi-economics/domain"
)

func TestDefaultPresets_AllValid(t *testing.T) {
	svc, err := NewPresetService(newEconomics(), DefaultPresets())
	require.NoError(t, err)

	assert.Equal(t, []string{"baseline", "budget", "cash", "fleet", "premium"}, svc.Names())

	for _, name := range svc.Names() {
		a, err := svc.Get(name)
		require.NoError(t, err)
		_, err = newEconomics().Evaluate(a)
		assert.NoError(t, err, name)
	}
}

func TestPresetService_Unknown(t *testing.T) {
	svc, err := NewPresetService(newEconomics(), DefaultPresets())
	require.NoError(t, err)

	_, err = svc.Get("limousine")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestPresetService_RejectsInvalidPreset(t *testing.T) {
	bad := BaselinePreset()
	bad.NumVehicles = 0

	_, err := NewPresetService(newEconomics(), map[string]domain.AssumptionSet{"bad": bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAssumption)
	assert.Contains(t, err.Error(), `preset "bad"`)
}

func TestCashPreset_HasNoDebt(t *testing.T) {
	r, err := newEconomics().Evaluate(DefaultPresets()["cash"])
	require.NoError(t, err)
	assert.Zero(t, r.MonthlyDebt)
}
