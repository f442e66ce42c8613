package recovery

const (
	// WaterSpecificHeat is the specific heat of water in kJ/(kg·°C).
	WaterSpecificHeat = 4.186
	// WaterDensity is the density of water in kg/m³.
	WaterDensity = 1000.0

	kJPerKWh = 3600.0
)

// Energy returns the thermal energy in kJ carried by flowRate at tempDiff.
// A negative differential yields negative energy.
func Energy(tempDiff, flowRate float64) float64 {
	return tempDiff * flowRate * WaterDensity * WaterSpecificHeat
}

// KWh converts kJ to kWh.
func KWh(energyKJ float64) float64 {
	return energyKJ / kJPerKWh
}
