package memory

import (
	"context"
	"sync"

	telemetry "heatrecovery-cloud/internal/telemetry/domain"
)

// ReadingStore is an in-memory reading store.
type ReadingStore struct {
	mu       sync.RWMutex
	readings []telemetry.Reading
	err      error
}

// NewReadingStore constructs a store seeded with readings.
func NewReadingStore(readings ...telemetry.Reading) *ReadingStore {
	s := &ReadingStore{}
	s.Add(readings...)
	return s
}

// Add appends readings.
func (s *ReadingStore) Add(readings ...telemetry.Reading) {
	s.mu.Lock()
	s.readings = append(s.readings, readings...)
	s.mu.Unlock()
}

// FailWith makes subsequent fetches return err. A nil err clears it.
func (s *ReadingStore) FailWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// LatestReading returns the reading with the latest time for the device.
func (s *ReadingStore) LatestReading(ctx context.Context, deviceID string) (telemetry.Reading, error) {
	if err := ctx.Err(); err != nil {
		return telemetry.Reading{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return telemetry.Reading{}, s.err
	}

	var (
		latest telemetry.Reading
		found  bool
	)
	for _, reading := range s.readings {
		if reading.DeviceID != deviceID {
			continue
		}
		if !found || reading.Time.After(latest.Time) {
			latest = reading
			found = true
		}
	}
	if !found {
		return telemetry.Reading{}, telemetry.ErrNoData
	}
	return latest, nil
}
