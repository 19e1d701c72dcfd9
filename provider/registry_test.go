package provider

import (
	"context"
	"errors"
	"testing"
)

// mockClient implements Client for testing.
type mockClient struct {
	name string
}

func (m *mockClient) Complete(ctx context.Context, req Request) (*Response, error) {
	return &Response{Content: "mock response"}, nil
}

func (m *mockClient) Provider() string { return m.name }

func (m *mockClient) Close() error { return nil }

func TestRegister(t *testing.T) {
	// Clear registry for clean test
	ClearRegistry()
	defer ClearRegistry()

	Register("test", func(cfg Config) (Client, error) {
		return &mockClient{name: "test"}, nil
	})

	if !IsRegistered("test") {
		t.Error("expected 'test' to be registered")
	}
}

func TestRegister_Panic(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register("duplicate", func(cfg Config) (Client, error) {
		return &mockClient{name: "duplicate"}, nil
	})

	// Second registration should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("duplicate", func(cfg Config) (Client, error) {
		return &mockClient{name: "duplicate2"}, nil
	})
}

func TestNew(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register("test", func(cfg Config) (Client, error) {
		return &mockClient{name: "test"}, nil
	})

	client, err := New("test", Config{Provider: "test", Model: "m"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Provider() != "test" {
		t.Errorf("expected provider 'test', got %q", client.Provider())
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	_, err := New("unknown", Config{Provider: "unknown"})
	if !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestMustNew(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register("test", func(cfg Config) (Client, error) {
		return &mockClient{name: "test"}, nil
	})

	client := MustNew("test", Config{Provider: "test"})
	if client.Provider() != "test" {
		t.Errorf("expected provider 'test', got %q", client.Provider())
	}
}

func TestMustNew_Panics(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown provider")
		}
	}()
	MustNew("unknown", Config{Provider: "unknown"})
}

func TestAvailable(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register("beta", func(cfg Config) (Client, error) {
		return &mockClient{name: "beta"}, nil
	})
	Register("alpha", func(cfg Config) (Client, error) {
		return &mockClient{name: "alpha"}, nil
	})

	available := Available()
	if len(available) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(available))
	}
	// Should be sorted
	if available[0] != "alpha" || available[1] != "beta" {
		t.Errorf("expected [alpha, beta], got %v", available)
	}
}

func TestUnregister(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register("test", func(cfg Config) (Client, error) {
		return &mockClient{name: "test"}, nil
	})
	Unregister("test")

	if IsRegistered("test") {
		t.Error("expected 'test' to be unregistered")
	}
}
