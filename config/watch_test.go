package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scout.toml")
	require.NoError(t, os.WriteFile(path, []byte(`smart_llm = "a:one"`), 0o644))

	changes := make(chan Config, 4)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		Watch(ctx, path, discardLogger(), func(cfg Config) { changes <- cfg })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`smart_llm = "a:two"`), 0o644))

	select {
	case cfg := <-changes:
		assert.Equal(t, "a:two", cfg.SmartLLM)
	case <-ctx.Done():
		t.Fatal("no reload observed before timeout")
	}

	cancel()
	<-done
}

func TestWatchKeepsPreviousOnParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scout.toml")
	require.NoError(t, os.WriteFile(path, []byte(`smart_llm = "a:one"`), 0o644))

	changes := make(chan Config, 4)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		Watch(ctx, path, discardLogger(), func(cfg Config) { changes <- cfg })
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`smart_llm = `), 0o644))

	// The broken write must not reach the callback; a later valid write
	// must.
	time.Sleep(2 * debounceWindow)
	require.NoError(t, os.WriteFile(path, []byte(`smart_llm = "a:three"`), 0o644))

	for {
		select {
		case cfg := <-changes:
			if cfg.SmartLLM == "a:three" {
				cancel()
				<-done
				return
			}
			t.Fatalf("unexpected reload with %q", cfg.SmartLLM)
		case <-ctx.Done():
			t.Fatal("no reload observed before timeout")
		}
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scout.toml")
	require.NoError(t, os.WriteFile(path, []byte(`smart_llm = "a:one"`), 0o644))

	changes := make(chan Config, 4)
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		Watch(ctx, path, discardLogger(), func(cfg Config) { changes <- cfg })
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case cfg := <-changes:
		t.Fatalf("unexpected reload from unrelated file: %+v", cfg)
	case <-ctx.Done():
	}
	<-done
}
