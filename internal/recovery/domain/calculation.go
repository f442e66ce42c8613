package recovery

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Temperatures are the four sensor temperatures of a reading in °C.
// TempC1 is the inlet; TempC2 the recovered outlet; TempC4 the current outlet.
type Temperatures struct {
	TempC1 float64 `json:"tempC1"`
	TempC2 float64 `json:"tempC2"`
	TempC3 float64 `json:"tempC3"`
	TempC4 float64 `json:"tempC4"`
}

// CalculationInput holds validated calculation parameters.
type CalculationInput struct {
	Flow           float64
	CostType       string
	CostUnit       float64
	OperatingHours float64
	OperatingDays  float64
}

// CalculationResult holds derived costs rounded to two decimals.
type CalculationResult struct {
	CurrentCost           decimal.Decimal
	YearlyCost            decimal.Decimal
	RecoveryBenefit       decimal.Decimal
	YearlyRecoveryBenefit decimal.Decimal
	// CostTypeRecognized is false when the cost type fell back to zero.
	CostTypeRecognized bool
}

// Estimate derives current and recovered costs from temperatures.
// An unrecognized cost type yields a zero result, not an error.
func Estimate(temps Temperatures, in CalculationInput) (CalculationResult, error) {
	if !finite(in.OperatingHours) || !finite(in.OperatingDays) {
		return CalculationResult{}, ErrNonFiniteResult
	}
	currentKJ := Energy(temps.TempC4-temps.TempC1, in.Flow)
	recoveryKJ := Energy(temps.TempC2-temps.TempC1, in.Flow)

	current, err := Cost(currentKJ, in.CostType, in.CostUnit)
	if errors.Is(err, ErrUnknownCostType) {
		return CalculationResult{
			CurrentCost:           decimal.Zero,
			YearlyCost:            decimal.Zero,
			RecoveryBenefit:       decimal.Zero,
			YearlyRecoveryBenefit: decimal.Zero,
		}, nil
	}
	if err != nil {
		return CalculationResult{}, err
	}
	recovery, err := Cost(recoveryKJ, in.CostType, in.CostUnit)
	if err != nil {
		return CalculationResult{}, err
	}

	return CalculationResult{
		CurrentCost:           current,
		YearlyCost:            Annualize(current, in.OperatingHours, in.OperatingDays),
		RecoveryBenefit:       recovery,
		YearlyRecoveryBenefit: Annualize(recovery, in.OperatingHours, in.OperatingDays),
		CostTypeRecognized:    true,
	}, nil
}
