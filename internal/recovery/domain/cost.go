package recovery

import (
	"math"

	"github.com/shopspring/decimal"
)

const costPlaces = 2

// Cost converts energy in kJ to money under the given cost type.
// Unrecognized types return zero and ErrUnknownCostType.
func Cost(energyKJ float64, costType string, unitPrice float64) (decimal.Decimal, error) {
	ct, ok := ParseCostType(costType)
	if !ok {
		return decimal.Zero, ErrUnknownCostType
	}

	var cost float64
	if ct == CostTypeElectricity {
		cost = KWh(energyKJ) * unitPrice
	} else {
		density, _ := ct.EnergyDensity()
		consumption := energyKJ / (density * 1000)
		cost = consumption * unitPrice
	}
	if !finite(cost) {
		return decimal.Zero, ErrNonFiniteResult
	}
	return decimal.NewFromFloat(cost).Round(costPlaces), nil
}

// Annualize scales a rounded per-basis cost by operating hours and days.
// hours and days must be finite.
func Annualize(cost decimal.Decimal, hours, days float64) decimal.Decimal {
	return cost.Mul(decimal.NewFromFloat(hours)).Mul(decimal.NewFromFloat(days)).Round(costPlaces)
}

// FormatCost renders a cost with two decimals.
func FormatCost(cost decimal.Decimal) string {
	return cost.StringFixed(costPlaces)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
