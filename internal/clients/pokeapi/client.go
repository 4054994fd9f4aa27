// Package pokeapi is the data provider adapter for the public PokeAPI v2
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/gym-battle/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
	"github.com/KirkDiggler/gym-battle/internal/metrics"
)

// Record kinds, also used as cache and metric labels
const (
	KindSpecies = "species"
	KindMove    = "move"
	KindType    = "type"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	defaultHTTPTimeout    = 10 * time.Second
	defaultMaxRetries     = 3
	defaultInitialBackoff = 200 * time.Millisecond
	defaultMaxBackoff     = 2 * time.Second
	maxResponseBytes      = 8 << 20
)

// Client fetches and normalizes provider records. Every method memoizes by
// identifier. A missing record is reported as NotFound; network and shape
// failures as DataUnavailable.
type Client interface {
	GetSpecies(ctx context.Context, id string) (*entities.Species, error)
	GetMove(ctx context.Context, id string) (*entities.Move, error)
	GetTypeEffectiveness(ctx context.Context, typeName string) (*entities.TypeEffectiveness, error)
	// ListSpeciesByType lists every species carrying the type, in provider order
	ListSpeciesByType(ctx context.Context, typeName string) ([]entities.SpeciesRef, error)
}

// Config holds the configuration for the PokeAPI client
type Config struct {
	BaseURL        string
	HTTPTimeout    time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// HTTPClient overrides the default client built from HTTPTimeout
	HTTPClient *http.Client
	// RecordCache is an optional second cache layer behind memory
	RecordCache RecordCache
	Metrics     *metrics.ProviderMetrics
	Logger      *slog.Logger
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.BaseURL != "" {
		if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			vb.Field("base_url", "must be an absolute URL")
		}
	}
	if c.HTTPTimeout < 0 {
		vb.Field("http_timeout", "must not be negative")
	}
	if c.MaxRetries < 0 {
		vb.Field("max_retries", "must not be negative")
	}
	if c.InitialBackoff < 0 {
		vb.Field("initial_backoff", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL        string
	httpClient     *http.Client
	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	recordCache    RecordCache
	metrics        *metrics.ProviderMetrics
	logger         *slog.Logger

	mu      sync.RWMutex
	species map[string]*entities.Species
	moves   map[string]*entities.Move
	types   map[string]*typeRecord
}

// New creates a PokeAPI client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &client{
		baseURL:        cfg.BaseURL,
		httpClient:     cfg.HTTPClient,
		maxRetries:     cfg.MaxRetries,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		recordCache:    cfg.RecordCache,
		metrics:        cfg.Metrics,
		logger:         cfg.Logger,
		species:        make(map[string]*entities.Species),
		moves:          make(map[string]*entities.Move),
		types:          make(map[string]*typeRecord),
	}

	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	if c.httpClient == nil {
		timeout := cfg.HTTPTimeout
		if timeout == 0 {
			timeout = defaultHTTPTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	if c.maxRetries == 0 {
		c.maxRetries = defaultMaxRetries
	}
	if c.initialBackoff == 0 {
		c.initialBackoff = defaultInitialBackoff
	}
	if c.maxBackoff == 0 {
		c.maxBackoff = defaultMaxBackoff
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("component", "pokeapi")

	return c, nil
}

func (c *client) GetSpecies(ctx context.Context, id string) (*entities.Species, error) {
	key, err := normalizeKey(id)
	if err != nil {
		return nil, err
	}

	if species, ok := lookup(c, c.species, KindSpecies, key); ok {
		return species, nil
	}

	var species entities.Species
	if c.fromRecordCache(ctx, KindSpecies, key, &species) {
		c.storeSpecies(key, &species)
		return &species, nil
	}

	var resp pokemonResponse
	if err := c.fetch(ctx, KindSpecies, "pokemon/"+key, &resp); err != nil {
		return nil, err
	}
	if err := resp.validate(); err != nil {
		return nil, errors.DataUnavailable(KindSpecies, key, err)
	}

	record := resp.toEntity()
	c.storeSpecies(key, record)
	c.toRecordCache(ctx, KindSpecies, key, record)
	return record, nil
}

func (c *client) GetMove(ctx context.Context, id string) (*entities.Move, error) {
	key, err := normalizeKey(id)
	if err != nil {
		return nil, err
	}

	if move, ok := lookup(c, c.moves, KindMove, key); ok {
		return move, nil
	}

	var move entities.Move
	if c.fromRecordCache(ctx, KindMove, key, &move) {
		c.store(func() { c.moves[key] = &move })
		return &move, nil
	}

	var resp moveResponse
	if err := c.fetch(ctx, KindMove, "move/"+key, &resp); err != nil {
		return nil, err
	}
	if err := resp.validate(); err != nil {
		return nil, errors.DataUnavailable(KindMove, key, err)
	}

	record := resp.toEntity()
	c.store(func() { c.moves[key] = record })
	c.toRecordCache(ctx, KindMove, key, record)
	return record, nil
}

func (c *client) GetTypeEffectiveness(ctx context.Context, typeName string) (*entities.TypeEffectiveness, error) {
	record, err := c.getType(ctx, typeName)
	if err != nil {
		return nil, err
	}
	return record.Effectiveness, nil
}

func (c *client) ListSpeciesByType(ctx context.Context, typeName string) ([]entities.SpeciesRef, error) {
	record, err := c.getType(ctx, typeName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.SpeciesRef, len(record.Species))
	copy(out, record.Species)
	return out, nil
}

func (c *client) getType(ctx context.Context, typeName string) (*typeRecord, error) {
	key, err := normalizeKey(typeName)
	if err != nil {
		return nil, err
	}

	if record, ok := lookup(c, c.types, KindType, key); ok {
		return record, nil
	}

	var cached typeRecord
	if c.fromRecordCache(ctx, KindType, key, &cached) && cached.Effectiveness != nil {
		c.store(func() { c.types[key] = &cached })
		return &cached, nil
	}

	var resp typeResponse
	if err := c.fetch(ctx, KindType, "type/"+key, &resp); err != nil {
		return nil, err
	}
	if err := resp.validate(); err != nil {
		return nil, errors.DataUnavailable(KindType, key, err)
	}

	record := resp.toRecord()
	c.store(func() { c.types[key] = record })
	c.toRecordCache(ctx, KindType, key, record)
	return record, nil
}

// lookup reads the memory cache and records the hit or miss
func lookup[T any](c *client, cache map[string]T, kind, key string) (T, bool) {
	c.mu.RLock()
	value, ok := cache[key]
	c.mu.RUnlock()

	if ok {
		c.metrics.CacheHit(kind, metrics.LayerMemory)
	} else {
		c.metrics.CacheMiss(kind, metrics.LayerMemory)
	}
	return value, ok
}

func (c *client) store(write func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	write()
}

// storeSpecies caches under the requested key plus the canonical name and ID
func (c *client) storeSpecies(key string, species *entities.Species) {
	c.store(func() {
		c.species[key] = species
		c.species[species.Name] = species
		if species.ID > 0 {
			c.species[strconv.Itoa(species.ID)] = species
		}
	})
}

func (c *client) fromRecordCache(ctx context.Context, kind, key string, dest any) bool {
	if c.recordCache == nil {
		return false
	}

	found, err := c.recordCache.Get(ctx, kind, key, dest)
	if err != nil {
		c.logger.WarnContext(ctx, "record cache read failed",
			"kind", kind,
			"key", key,
			"error", err)
		return false
	}

	if found {
		c.metrics.CacheHit(kind, metrics.LayerRedis)
	} else {
		c.metrics.CacheMiss(kind, metrics.LayerRedis)
	}
	return found
}

func (c *client) toRecordCache(ctx context.Context, kind, key string, value any) {
	if c.recordCache == nil {
		return
	}
	if err := c.recordCache.Set(ctx, kind, key, value); err != nil {
		c.logger.WarnContext(ctx, "record cache write failed",
			"kind", kind,
			"key", key,
			"error", err)
	}
}

// fetch GETs path and decodes the JSON body into dest. Transport errors, 429
// and 5xx responses are retried with exponential backoff; 404 is permanent.
func (c *client) fetch(ctx context.Context, kind, path string, dest any) error {
	endpoint := c.baseURL + path
	key := path[strings.LastIndex(path, "/")+1:]
	start := time.Now()
	status := "error"
	defer func() {
		c.metrics.RequestCompleted(kind, status, time.Since(start))
	}()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialBackoff
	b.MaxInterval = c.maxBackoff

	attempt := 0
	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.DebugContext(ctx, "provider request failed",
				"url", endpoint,
				"attempt", attempt,
				"error", err)
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		status = strconv.Itoa(resp.StatusCode)
		switch {
		case resp.StatusCode == http.StatusOK:
			return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		case resp.StatusCode == http.StatusNotFound:
			return nil, backoff.Permanent(errors.NotFoundf("%s %s not found", kind, key))
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
			c.logger.DebugContext(ctx, "provider returned retryable status",
				"url", endpoint,
				"attempt", attempt,
				"status", resp.StatusCode)
			return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
		default:
			return nil, backoff.Permanent(fmt.Errorf("provider returned status %d", resp.StatusCode))
		}
	}, backoff.WithBackOff(b), backoff.WithMaxTries(uint(c.maxRetries+1)))
	if err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		c.logger.WarnContext(ctx, "provider fetch failed",
			"url", endpoint,
			"attempts", attempt,
			"error", err)
		return errors.DataUnavailable(kind, key, err)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return errors.DataUnavailable(kind, key, errMalformed(err.Error()))
	}
	return nil
}

func normalizeKey(id string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if key == "" {
		return "", errors.InvalidArgument("identifier is required")
	}
	return url.PathEscape(key), nil
}

func errMalformed(reason string) error {
	return fmt.Errorf("malformed response: %s", reason)
}
