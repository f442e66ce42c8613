package instrumented

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	telemetry "heatrecovery-cloud/internal/telemetry/domain"
	"heatrecovery-cloud/internal/telemetry/infrastructure/memory"
)

func TestFetcher_Delegates(t *testing.T) {
	store := memory.NewReadingStore(telemetry.Reading{DeviceID: "d", TempC4: 61})
	f, err := NewFetcher(store, "memory")
	require.NoError(t, err)

	reading, err := f.LatestReading(context.Background(), "d")
	require.NoError(t, err)
	assert.Equal(t, 61.0, reading.TempC4)

	_, err = f.LatestReading(context.Background(), "missing")
	assert.ErrorIs(t, err, telemetry.ErrNoData)

	boom := errors.New("boom")
	store.FailWith(boom)
	_, err = f.LatestReading(context.Background(), "d")
	assert.ErrorIs(t, err, boom)
}

func TestNewFetcher_NilFetcher(t *testing.T) {
	_, err := NewFetcher(nil, "memory")
	assert.Error(t, err)
}
