package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	telemetry "heatrecovery-cloud/internal/telemetry/domain"
)

func TestReadingStore_ReturnsLatestForDevice(t *testing.T) {
	base := time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)
	store := NewReadingStore(
		telemetry.Reading{DeviceID: "dev-a", Time: base, TempC1: 1},
		telemetry.Reading{DeviceID: "dev-a", Time: base.Add(2 * time.Minute), TempC1: 3},
		telemetry.Reading{DeviceID: "dev-a", Time: base.Add(time.Minute), TempC1: 2},
		telemetry.Reading{DeviceID: "dev-b", Time: base.Add(time.Hour), TempC1: 9},
	)

	reading, err := store.LatestReading(context.Background(), "dev-a")
	require.NoError(t, err)
	assert.Equal(t, 3.0, reading.TempC1)
}

func TestReadingStore_NoData(t *testing.T) {
	store := NewReadingStore()
	_, err := store.LatestReading(context.Background(), "dev-a")
	assert.ErrorIs(t, err, telemetry.ErrNoData)
}

func TestReadingStore_FailWith(t *testing.T) {
	boom := errors.New("boom")
	store := NewReadingStore(telemetry.Reading{DeviceID: "dev-a"})
	store.FailWith(boom)

	_, err := store.LatestReading(context.Background(), "dev-a")
	assert.ErrorIs(t, err, boom)

	store.FailWith(nil)
	_, err = store.LatestReading(context.Background(), "dev-a")
	assert.NoError(t, err)
}

func TestReadingStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewReadingStore().LatestReading(ctx, "dev-a")
	assert.ErrorIs(t, err, context.Canceled)
}
