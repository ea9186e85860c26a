package nearby

import (
	"log/slog"
	"net/http"

	"engage/config"
	"engage/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FetcherParams holds dependencies for the nearby store fetcher, injected by Fx
type FetcherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewStoreFetcher builds the HTTP client and adds the cell cache when nearby.cacheTtl is set
func NewStoreFetcher(params FetcherParams) (service.NearbyStoreFetcher, error) {
	cfg := params.Config.Nearby
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("nearby base URL is required")
	}

	client := NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.BaseURL, cfg.APIKey, cfg.Limit, params.Logger)
	if cfg.CacheTTL <= 0 {
		return client, nil
	}

	params.Logger.Info("Nearby store cache enabled", slog.Duration("ttl", cfg.CacheTTL))

	return NewCachedFetcher(client, cfg.CacheTTL), nil
}

// Module provides the nearby store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStoreFetcher),
)
