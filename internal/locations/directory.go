package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DefaultIBGEBaseURL is the public IBGE localidades service
const DefaultIBGEBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

// DirectoryConfig configures city lookups
type DirectoryConfig struct {
	RemoteEnabled bool
	BaseURL       string
	Timeout       time.Duration
}

// Directory looks cities up in the IBGE directory when enabled and falls
// back to the bundled table otherwise. Lookups never fail: an empty slice
// stands for "nothing found". There is no retry.
type Directory struct {
	config   DirectoryConfig
	client   *http.Client
	inFlight atomic.Int32
	logger   *zap.Logger
}

// NewDirectory creates a Directory
func NewDirectory(cfg DirectoryConfig, logger *zap.Logger) *Directory {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultIBGEBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Directory{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// States returns the federative units sorted by name
func (d *Directory) States() []State {
	return States()
}

// Loading reports whether a remote lookup is in flight
func (d *Directory) Loading() bool {
	return d.inFlight.Load() > 0
}

// Cities returns the city names of a unit. An empty or unknown code yields
// an empty slice without touching the network.
func (d *Directory) Cities(ctx context.Context, stateCode string) []string {
	code := normalizeCode(stateCode)
	if !IsState(code) {
		return []string{}
	}

	if !d.config.RemoteEnabled {
		return Cities(code)
	}

	cities, err := d.fetchCities(ctx, code)
	if err != nil {
		d.logger.Warn("City lookup failed",
			zap.String("state", code),
			zap.Error(err))
		return []string{}
	}

	return cities
}

type ibgeCity struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

func (d *Directory) fetchCities(ctx context.Context, code string) ([]string, error) {
	d.inFlight.Add(1)
	defer d.inFlight.Add(-1)

	url := fmt.Sprintf("%s/estados/%s/municipios?orderBy=nome", strings.TrimRight(d.config.BaseURL, "/"), code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query city directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("city directory returned status %d", resp.StatusCode)
	}

	var payload []ibgeCity
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode city directory response: %w", err)
	}

	cities := make([]string, 0, len(payload))
	for _, c := range payload {
		cities = append(cities, c.Nome)
	}

	d.logger.Debug("Fetched cities from directory",
		zap.String("state", code),
		zap.Int("count", len(cities)))

	return cities, nil
}
