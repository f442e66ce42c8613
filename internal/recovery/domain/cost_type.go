package recovery

import "strings"

// CostType identifies how energy is priced.
type CostType string

const (
	CostTypeElectricity  CostType = "electricity"
	CostTypePropane      CostType = "propane"
	CostTypeKerosene     CostType = "kerosene"
	CostTypeHeavyFuelOil CostType = "heavy_fuel_oil"
	CostTypeCityGas13A   CostType = "city_gas_13a"
)

// fuelEnergyDensity maps fuels to MJ per native unit.
var fuelEnergyDensity = map[CostType]float64{
	CostTypePropane:      50.3,
	CostTypeKerosene:     36.4,
	CostTypeHeavyFuelOil: 39.6,
	CostTypeCityGas13A:   45.8,
}

// Labels posted by the existing front-end.
var costTypeAliases = map[string]CostType{
	"電気":      CostTypeElectricity,
	"プロパンガス":  CostTypePropane,
	"灯油":      CostTypeKerosene,
	"重油":      CostTypeHeavyFuelOil,
	"ガス(13A)": CostTypeCityGas13A,
}

// ParseCostType resolves a canonical key or alias label.
func ParseCostType(value string) (CostType, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	if ct, ok := costTypeAliases[value]; ok {
		return ct, true
	}
	ct := CostType(value)
	if ct == CostTypeElectricity {
		return ct, true
	}
	if _, ok := fuelEnergyDensity[ct]; ok {
		return ct, true
	}
	return "", false
}

// EnergyDensity returns the fuel energy density in MJ per unit.
func (c CostType) EnergyDensity() (float64, bool) {
	d, ok := fuelEnergyDensity[c]
	return d, ok
}

// IsFuel reports whether the cost type is priced per fuel unit.
func (c CostType) IsFuel() bool {
	_, ok := fuelEnergyDensity[c]
	return ok
}
