package instrumented

import (
	"context"
	"errors"
	"time"

	"heatrecovery-cloud/internal/observability/metrics"
	telemetry "heatrecovery-cloud/internal/telemetry/domain"
)

// Fetcher records fetch metrics around another fetcher.
type Fetcher struct {
	next  telemetry.LatestReadingFetcher
	store string
}

// NewFetcher wraps next, labelling metrics with store.
func NewFetcher(next telemetry.LatestReadingFetcher, store string) (*Fetcher, error) {
	if next == nil {
		return nil, errors.New("instrumented fetcher: nil fetcher")
	}
	return &Fetcher{next: next, store: store}, nil
}

// LatestReading delegates to the wrapped fetcher.
func (f *Fetcher) LatestReading(ctx context.Context, deviceID string) (telemetry.Reading, error) {
	start := time.Now()
	reading, err := f.next.LatestReading(ctx, deviceID)

	result := metrics.ResultSuccess
	switch {
	case errors.Is(err, telemetry.ErrNoData):
		result = metrics.ResultNoData
	case err != nil:
		result = metrics.ResultError
	}
	metrics.ObserveFetch(f.store, result, time.Since(start))
	return reading, err
}
