package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"gopkg.in/yaml.v3"
)

// CustomProvider declares one manually configured provider endpoint whose
// models are discovered live from its /models route.
type CustomProvider struct {
	// Name is the provider key. Discovered model identifiers are prefixed
	// "<name>/".
	Name string `yaml:"name"`

	// BaseURL is the endpoint root, e.g. "http://localhost:1234/v1".
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	// Defaults to <NAME>_API_KEY.
	APIKeyEnv string `yaml:"api_key_env"`

	// KeyRequired marks the provider unusable without its key; such
	// providers are skipped entirely when the variable is unset.
	KeyRequired bool `yaml:"key_required"`

	// Mode assigned to discovered models. Defaults to chat.
	Mode Mode `yaml:"mode"`
}

// KeyEnvName returns the environment variable holding this provider's
// API key, applying the <NAME>_API_KEY convention when unset.
func (p CustomProvider) KeyEnvName() string {
	if p.APIKeyEnv != "" {
		return p.APIKeyEnv
	}
	return strings.ToUpper(strings.ReplaceAll(p.Name, "-", "_")) + "_API_KEY"
}

// Manifest is the YAML document listing custom providers.
type Manifest struct {
	Providers []CustomProvider `yaml:"providers"`
}

// LoadManifest reads and parses a provider manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read provider manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse provider manifest: %w", err)
	}
	return m, nil
}

// mergeDiscovered folds models discovered from manifest providers into
// the catalog. A provider that fails discovery contributes zero models;
// it never fails the load.
func (l *Loader) mergeDiscovered(ctx context.Context, cat Catalog) {
	if l.manifestPath == "" {
		return
	}
	manifest, err := LoadManifest(l.manifestPath)
	if err != nil {
		l.logger.Warn("provider manifest unavailable, skipping discovery",
			slog.String("path", l.manifestPath),
			slog.Any("error", err))
		return
	}

	for _, p := range manifest.Providers {
		if p.KeyRequired && l.getenv(p.KeyEnvName()) == "" {
			l.logger.Warn("skipping custom provider: required API key unset",
				slog.String("provider", p.Name),
				slog.String("env", p.KeyEnvName()))
			continue
		}

		ids, err := l.discoverModels(ctx, p)
		if err != nil {
			l.logger.Warn("custom provider discovery failed",
				slog.String("provider", p.Name),
				slog.String("base_url", p.BaseURL),
				slog.Any("error", err))
			continue
		}

		mode := p.Mode
		if mode == "" {
			mode = ModeChat
		}
		for _, id := range ids {
			cat[p.Name+"/"+id] = ModelSpec{Provider: p.Name, Mode: mode}
		}
		l.logger.Debug("discovered custom provider models",
			slog.String("provider", p.Name),
			slog.Int("count", len(ids)))
	}
}

// modelsResponse covers the two /models payload shapes seen in the wild:
// the OpenAI-style {"data": [{"id": ...}]} envelope and a bare
// {"models": [...]} list of names or objects.
type modelsResponse struct {
	Data   []modelEntry      `json:"data"`
	Models []json.RawMessage `json:"models"`
}

type modelEntry struct {
	ID string `json:"id"`
}

// discoverModels fetches <base>/models and extracts model identifiers.
func (l *Loader) discoverModels(ctx context.Context, p CustomProvider) ([]string, error) {
	url := strings.TrimSuffix(p.BaseURL, "/") + "/models"
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if key := l.getenv(p.KeyEnvName()); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("models endpoint: HTTP %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed modelsResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("models endpoint: %w", err)
	}

	var ids []string
	for _, entry := range parsed.Data {
		if entry.ID != "" {
			ids = append(ids, entry.ID)
		}
	}
	for _, raw := range parsed.Models {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			ids = append(ids, name)
			continue
		}
		var entry modelEntry
		if err := json.Unmarshal(raw, &entry); err == nil && entry.ID != "" {
			ids = append(ids, entry.ID)
		}
	}
	return ids, nil
}
