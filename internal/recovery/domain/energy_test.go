package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnergy_Formula(t *testing.T) {
	cases := []struct {
		diff, flow float64
	}{
		{40, 0.5},
		{25, 0.5},
		{1, 1},
		{12.5, 3.2},
		{-15, 0.8},
	}
	for _, tc := range cases {
		want := tc.diff * tc.flow * 1000 * 4.186
		assert.InDelta(t, want, Energy(tc.diff, tc.flow), 1e-9, "diff=%v flow=%v", tc.diff, tc.flow)
	}
}

func TestEnergy_ZeroInputs(t *testing.T) {
	assert.Equal(t, 0.0, Energy(0, 4.2))
	assert.Equal(t, 0.0, Energy(35, 0))
}

func TestEnergy_NegativeDifferentialKeepsSign(t *testing.T) {
	assert.Less(t, Energy(-10, 0.5), 0.0)
	assert.InDelta(t, -Energy(10, 0.5), Energy(-10, 0.5), 1e-9)
}

func TestKWh(t *testing.T) {
	assert.InDelta(t, 1.0, KWh(3600), 1e-12)
	assert.InDelta(t, 23.2555555, KWh(83720), 1e-6)
}
