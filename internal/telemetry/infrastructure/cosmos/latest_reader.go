package cosmos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	telemetry "heatrecovery-cloud/internal/telemetry/domain"
)

const latestByDeviceQuery = `SELECT TOP 1 * FROM c WHERE c.device = @deviceId ORDER BY c.time DESC`

// ItemQuerier runs a parameterized query in one partition and returns the
// raw documents of the first page.
type ItemQuerier interface {
	QueryItems(ctx context.Context, query string, partitionKey string, params []azcosmos.QueryParameter) ([][]byte, error)
}

// Options configure the Cosmos connection.
type Options struct {
	Endpoint    string
	Key         string
	DatabaseID  string
	ContainerID string
}

// ContainerQuerier queries a Cosmos container.
type ContainerQuerier struct {
	container *azcosmos.ContainerClient
}

// NewContainerQuerier connects to the configured container with a key credential.
func NewContainerQuerier(opts Options) (*ContainerQuerier, error) {
	if opts.Endpoint == "" || opts.Key == "" {
		return nil, errors.New("cosmos: endpoint and key are required")
	}
	if opts.DatabaseID == "" || opts.ContainerID == "" {
		return nil, errors.New("cosmos: database and container ids are required")
	}
	cred, err := azcosmos.NewKeyCredential(opts.Key)
	if err != nil {
		return nil, fmt.Errorf("cosmos: key credential: %w", err)
	}
	client, err := azcosmos.NewClientWithKey(opts.Endpoint, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("cosmos: client: %w", err)
	}
	container, err := client.NewContainer(opts.DatabaseID, opts.ContainerID)
	if err != nil {
		return nil, fmt.Errorf("cosmos: container: %w", err)
	}
	return &ContainerQuerier{container: container}, nil
}

// QueryItems returns the documents of the first non-empty page.
func (q *ContainerQuerier) QueryItems(ctx context.Context, query string, partitionKey string, params []azcosmos.QueryParameter) ([][]byte, error) {
	if q == nil || q.container == nil {
		return nil, errors.New("cosmos: nil container")
	}
	pager := q.container.NewQueryItemsPager(query, azcosmos.NewPartitionKeyString(partitionKey), &azcosmos.QueryOptions{
		QueryParameters: params,
		PageSizeHint:    1,
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, describe(err)
		}
		if len(page.Items) > 0 {
			return page.Items, nil
		}
	}
	return nil, nil
}

func describe(err error) error {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return fmt.Errorf("cosmos: query failed with status %d (%s): %w", respErr.StatusCode, respErr.ErrorCode, err)
	}
	return fmt.Errorf("cosmos: query failed: %w", err)
}

// LatestReader is a Cosmos implementation of telemetry.LatestReadingFetcher.
type LatestReader struct {
	querier      ItemQuerier
	partitionKey string
}

// ReaderOption configures the reader.
type ReaderOption func(*LatestReader)

// WithPartitionKey scopes queries to a fixed partition key value. By default
// the device id is used, matching containers partitioned on /device.
func WithPartitionKey(value string) ReaderOption {
	return func(r *LatestReader) {
		if value != "" {
			r.partitionKey = value
		}
	}
}

// NewLatestReader constructs a reader over querier.
func NewLatestReader(querier ItemQuerier, opts ...ReaderOption) (*LatestReader, error) {
	if querier == nil {
		return nil, errors.New("cosmos latest reading: nil querier")
	}
	r := &LatestReader{querier: querier}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// LatestReading returns the most recent reading for a device.
func (r *LatestReader) LatestReading(ctx context.Context, deviceID string) (telemetry.Reading, error) {
	if r == nil || r.querier == nil {
		return telemetry.Reading{}, errors.New("cosmos latest reading: nil reader")
	}
	if deviceID == "" {
		return telemetry.Reading{}, errors.New("cosmos latest reading: empty device id")
	}

	partitionKey := r.partitionKey
	if partitionKey == "" {
		partitionKey = deviceID
	}
	params := []azcosmos.QueryParameter{{Name: "@deviceId", Value: deviceID}}
	items, err := r.querier.QueryItems(ctx, latestByDeviceQuery, partitionKey, params)
	if err != nil {
		return telemetry.Reading{}, fmt.Errorf("cosmos latest reading: %w", err)
	}
	if len(items) == 0 {
		return telemetry.Reading{}, telemetry.ErrNoData
	}
	return decodeReading(items[0])
}

type readingDocument struct {
	Device string          `json:"device"`
	Time   json.RawMessage `json:"time"`
	TempC1 float64         `json:"tempC1"`
	TempC2 float64         `json:"tempC2"`
	TempC3 float64         `json:"tempC3"`
	TempC4 float64         `json:"tempC4"`
}

func decodeReading(raw []byte) (telemetry.Reading, error) {
	var doc readingDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return telemetry.Reading{}, fmt.Errorf("cosmos latest reading: decode: %w", err)
	}
	ts, _ := telemetry.ParseTimestamp(doc.Time)
	return telemetry.Reading{
		DeviceID: doc.Device,
		Time:     ts,
		TempC1:   doc.TempC1,
		TempC2:   doc.TempC2,
		TempC3:   doc.TempC3,
		TempC4:   doc.TempC4,
	}, nil
}
