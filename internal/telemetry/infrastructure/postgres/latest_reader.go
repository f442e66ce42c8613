package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	telemetry "heatrecovery-cloud/internal/telemetry/domain"
)

const defaultReadingsTable = "telemetry_readings"

// LatestReader is a Postgres implementation of telemetry.LatestReadingFetcher.
type LatestReader struct {
	db    *sql.DB
	table string
}

// ReaderOption configures the reader.
type ReaderOption func(*LatestReader)

// WithTable overrides the default table name.
func WithTable(table string) ReaderOption {
	return func(r *LatestReader) {
		if table != "" {
			r.table = table
		}
	}
}

// NewLatestReader constructs a reader with default table name.
func NewLatestReader(db *sql.DB, opts ...ReaderOption) *LatestReader {
	r := &LatestReader{db: db, table: defaultReadingsTable}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LatestReading returns the most recent reading for a device.
func (r *LatestReader) LatestReading(ctx context.Context, deviceID string) (telemetry.Reading, error) {
	if r == nil || r.db == nil {
		return telemetry.Reading{}, errors.New("postgres latest reading: nil db")
	}
	if deviceID == "" {
		return telemetry.Reading{}, errors.New("postgres latest reading: empty device id")
	}

	query := fmt.Sprintf(`
SELECT device_id, ts, temp_c1, temp_c2, temp_c3, temp_c4
FROM %s
WHERE device_id = $1
ORDER BY ts DESC
LIMIT 1`, r.table)

	var (
		reading                        telemetry.Reading
		tempC1, tempC2, tempC3, tempC4 sql.NullFloat64
	)
	row := r.db.QueryRowContext(ctx, query, deviceID)
	if err := row.Scan(&reading.DeviceID, &reading.Time, &tempC1, &tempC2, &tempC3, &tempC4); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return telemetry.Reading{}, telemetry.ErrNoData
		}
		return telemetry.Reading{}, fmt.Errorf("postgres latest reading: %w", err)
	}
	reading.Time = reading.Time.UTC()
	reading.TempC1 = tempC1.Float64
	reading.TempC2 = tempC2.Float64
	reading.TempC3 = tempC3.Float64
	reading.TempC4 = tempC4.Float64
	return reading, nil
}
