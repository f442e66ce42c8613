package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"heatrecovery-cloud/internal/observability/metrics"
	recovery "heatrecovery-cloud/internal/recovery/domain"
	telemetry "heatrecovery-cloud/internal/telemetry/domain"
)

// Service serves realtime and cost calculation use cases for one device.
type Service struct {
	fetcher  telemetry.LatestReadingFetcher
	deviceID string
	logger   *logrus.Logger
}

// NewService constructs the service.
func NewService(fetcher telemetry.LatestReadingFetcher, deviceID string, logger *logrus.Logger) (*Service, error) {
	if fetcher == nil {
		return nil, errors.New("recovery service: nil fetcher")
	}
	if deviceID == "" {
		return nil, errors.New("recovery service: empty device id")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{fetcher: fetcher, deviceID: deviceID, logger: logger}, nil
}

// DeviceID returns the device the service reads from.
func (s *Service) DeviceID() string {
	return s.deviceID
}

// Realtime returns the temperatures of the latest reading.
func (s *Service) Realtime(ctx context.Context) (recovery.Temperatures, error) {
	reading, err := s.fetcher.LatestReading(ctx, s.deviceID)
	if err != nil {
		return recovery.Temperatures{}, err
	}
	return temperaturesOf(reading), nil
}

// Calculate estimates current cost and recovery benefit from the latest reading.
func (s *Service) Calculate(ctx context.Context, in recovery.CalculationInput) (recovery.CalculationResult, error) {
	reading, err := s.fetcher.LatestReading(ctx, s.deviceID)
	if err != nil {
		return recovery.CalculationResult{}, err
	}

	result, err := recovery.Estimate(temperaturesOf(reading), in)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"device":    s.deviceID,
			"cost_type": in.CostType,
		}).WithError(err).Warn("calculation rejected")
		metrics.IncCalculation("unknown", metrics.ResultOutOfRange)
		return recovery.CalculationResult{}, err
	}
	if !result.CostTypeRecognized {
		s.logger.WithFields(logrus.Fields{
			"device":    s.deviceID,
			"cost_type": in.CostType,
		}).Warn("invalid cost type, falling back to zero cost")
		metrics.IncCalculation("unknown", metrics.ResultInvalidCostType)
		return result, nil
	}

	costType, _ := recovery.ParseCostType(in.CostType)
	metrics.IncCalculation(string(costType), metrics.ResultSuccess)
	return result, nil
}

func temperaturesOf(reading telemetry.Reading) recovery.Temperatures {
	return recovery.Temperatures{
		TempC1: reading.TempC1,
		TempC2: reading.TempC2,
		TempC3: reading.TempC3,
		TempC4: reading.TempC4,
	}
}
