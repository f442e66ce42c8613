package telemetry

import (
	"context"
	"errors"
	"time"
)

// ErrNoData is returned when the store holds no reading for a device.
var ErrNoData = errors.New("telemetry: no data")

// Reading is a stored sensor record. Readings are produced by an external
// ingestion process and are read-only here.
type Reading struct {
	DeviceID string
	Time     time.Time
	TempC1   float64
	TempC2   float64
	TempC3   float64
	TempC4   float64
}

// LatestReadingFetcher loads the most recent reading for a device.
type LatestReadingFetcher interface {
	LatestReading(ctx context.Context, deviceID string) (Reading, error)
}
