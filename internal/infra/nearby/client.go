// Package nearby fetches the stores around a coordinate from the store directory API.
package nearby

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"engage/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	nearbyPath      = "/stores/nearby"
	apiKeyHeader    = "X-API-Key"
	maxResponseSize = 5 * 1024 * 1024
)

// HTTPDoer is the interface for performing HTTP requests
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls GET {baseURL}/stores/nearby and decodes the unified API response
type Client struct {
	doer     HTTPDoer
	baseURL  string
	apiKey   string
	limit    int
	validate *validator.Validate
	logger   *slog.Logger
}

// NewClient creates a nearby store client; limit <= 0 disables truncation
func NewClient(doer HTTPDoer, baseURL, apiKey string, limit int, logger *slog.Logger) *Client {
	return &Client{
		doer:     doer,
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		limit:    limit,
		validate: validator.New(),
		logger:   logger,
	}
}

// envelope mirrors the {success, code, message, data} response body
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []json.RawMessage `json:"data"`
}

// storeRecord is the wire form of a store; coordinates may arrive as numbers or numeric strings
type storeRecord struct {
	ID               string    `json:"id"`
	MerchantID       string    `json:"merchantId"`
	Name             string    `json:"name"`
	Latitude         flexFloat `json:"latitude"`
	Longitude        flexFloat `json:"longitude"`
	OfferTitle       string    `json:"offerTitle"`
	OfferDescription string    `json:"offerDescription"`
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		data = []byte(strings.TrimSpace(s))
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errors.Wrapf(err, "invalid coordinate %s", data)
	}
	*f = flexFloat(v)

	return nil
}

// FetchNearby returns the valid stores around coordinate, nearest first
func (c *Client) FetchNearby(ctx context.Context, coordinate entity.Coordinate) ([]*entity.Store, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(coordinate), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http get")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	stores := make([]*entity.Store, 0, len(env.Data))
	for i, raw := range env.Data {
		store, err := c.decodeStore(raw)
		if err != nil {
			c.logger.Warn("Skipping invalid store record", slog.Int("index", i), slog.Any("error", err))

			continue
		}
		stores = append(stores, store)
	}

	SortByDistance(coordinate, stores)
	if c.limit > 0 && len(stores) > c.limit {
		stores = stores[:c.limit]
	}

	return stores, nil
}

func (c *Client) requestURL(coordinate entity.Coordinate) string {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coordinate.Latitude, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(coordinate.Longitude, 'f', -1, 64))
	if c.limit > 0 {
		query.Set("limit", strconv.Itoa(c.limit))
	}

	return c.baseURL + nearbyPath + "?" + query.Encode()
}

func (c *Client) decodeStore(raw json.RawMessage) (*entity.Store, error) {
	var record storeRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, errors.Wrap(err, "decode store")
	}

	store := &entity.Store{
		ID:               record.ID,
		MerchantID:       record.MerchantID,
		Name:             record.Name,
		Latitude:         float64(record.Latitude),
		Longitude:        float64(record.Longitude),
		OfferTitle:       record.OfferTitle,
		OfferDescription: record.OfferDescription,
	}
	if err := c.validate.Struct(store); err != nil {
		return nil, errors.Wrapf(err, "validate store %q", record.ID)
	}

	return store, nil
}

// SortByDistance orders stores by great-circle distance from origin, keeping ties in input order
func SortByDistance(origin entity.Coordinate, stores []*entity.Store) {
	from := origin.Point()
	slices.SortStableFunc(stores, func(a, b *entity.Store) int {
		return cmp.Compare(
			geo.Distance(from, a.Coordinate().Point()),
			geo.Distance(from, b.Coordinate().Point()),
		)
	})
}
