package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultPriceTableURL is the canonical remote price table covering the
// known universe of hosted models.
const DefaultPriceTableURL = "https://raw.githubusercontent.com/BerriAI/litellm/main/model_prices_and_context_window.json"

// bundledSnapshot is a vendored copy of the price table used as the last
// resort when both the network and the local snapshot are unavailable.
//
//go:embed snapshot.json
var bundledSnapshot []byte

// ErrCatalogUnavailable indicates that every catalog source failed.
// This is the only fatal error in the loading path: downstream fallback
// resolution cannot operate on an empty universe, so it must surface.
var ErrCatalogUnavailable = errors.New("model catalog unavailable")

// Loader loads and caches the model catalog. Construct one with NewLoader
// and share it; the catalog is loaded once per process and reused until
// Refresh is called explicitly.
type Loader struct {
	url          string
	snapshotPath string
	manifestPath string
	client       *retryablehttp.Client
	logger       *slog.Logger
	getenv       func(string) string

	mu     sync.Mutex
	cached Catalog
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPriceTableURL overrides the remote price table URL.
// An empty URL disables the remote source entirely.
func WithPriceTableURL(url string) LoaderOption {
	return func(l *Loader) { l.url = url }
}

// WithSnapshotPath sets a local price-table snapshot consulted when the
// remote source fails.
func WithSnapshotPath(path string) LoaderOption {
	return func(l *Loader) { l.snapshotPath = path }
}

// WithManifestPath sets the YAML manifest declaring custom providers
// whose models are discovered live at load time.
func WithManifestPath(path string) LoaderOption {
	return func(l *Loader) { l.manifestPath = path }
}

// WithHTTPClient overrides the retrying HTTP client used for the remote
// price table and provider discovery.
func WithHTTPClient(client *retryablehttp.Client) LoaderOption {
	return func(l *Loader) { l.client = client }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// WithEnviron overrides environment lookup. This is primarily useful
// for testing API-key gating without mutating the process environment.
func WithEnviron(getenv func(string) string) LoaderOption {
	return func(l *Loader) { l.getenv = getenv }
}

// NewLoader creates a catalog loader with the given options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		url:    DefaultPriceTableURL,
		logger: slog.Default(),
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.client == nil {
		client := retryablehttp.NewClient()
		client.RetryMax = 2
		client.Logger = nil
		client.HTTPClient.Timeout = 15 * time.Second
		l.client = client
	}
	return l
}

// Load returns the cached catalog, loading it on first use.
func (l *Loader) Load(ctx context.Context) (Catalog, error) {
	l.mu.Lock()
	cached := l.cached
	l.mu.Unlock()
	if cached != nil {
		return cached, nil
	}
	return l.Refresh(ctx)
}

// Refresh reloads the catalog from its sources, replacing the cache.
// Source order: remote price table, local snapshot, bundled snapshot.
// Only total failure of all three returns an error; custom-provider
// discovery failures degrade to zero models from that provider.
func (l *Loader) Refresh(ctx context.Context) (Catalog, error) {
	table, err := l.loadPriceTable(ctx)
	if err != nil {
		return nil, err
	}

	cat := make(Catalog, len(table))
	for id, spec := range table {
		spec.Provider = NormalizeProvider(spec.Provider)
		cat[id] = spec
	}

	l.mergeDiscovered(ctx, cat)

	l.mu.Lock()
	l.cached = cat
	l.mu.Unlock()
	return cat, nil
}

// loadPriceTable walks the source cascade until one parses.
func (l *Loader) loadPriceTable(ctx context.Context) (Catalog, error) {
	if l.url != "" {
		table, err := l.fetchPriceTable(ctx)
		if err == nil {
			return table, nil
		}
		l.logger.Warn("remote price table unavailable, falling back",
			slog.String("url", l.url),
			slog.Any("error", err))
	}

	if l.snapshotPath != "" {
		data, err := os.ReadFile(l.snapshotPath)
		if err == nil {
			table, perr := parsePriceTable(data)
			if perr == nil {
				return table, nil
			}
			err = perr
		}
		l.logger.Warn("local price snapshot unavailable, falling back",
			slog.String("path", l.snapshotPath),
			slog.Any("error", err))
	}

	table, err := parsePriceTable(bundledSnapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return table, nil
}

func (l *Loader) fetchPriceTable(ctx context.Context) (Catalog, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price table fetch: HTTP %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return parsePriceTable(data)
}

// parsePriceTable decodes the price table JSON. The table carries a
// template entry under "sample_spec" which is documentation, not a model.
func parsePriceTable(data []byte) (Catalog, error) {
	var table Catalog
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	delete(table, "sample_spec")
	if len(table) == 0 {
		return nil, errors.New("price table is empty")
	}
	return table, nil
}

// defaultLoader backs Default. Kept behind an accessor so callers that
// want isolation construct their own Loader and thread it through.
var (
	defaultOnce   sync.Once
	defaultLoader *Loader
)

// Default returns the shared process-wide loader.
func Default() *Loader {
	defaultOnce.Do(func() {
		defaultLoader = NewLoader()
	})
	return defaultLoader
}
