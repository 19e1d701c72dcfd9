// Package provider defines the unified interface for LLM completion backends.
//
// The research engine and the fallback initializer never talk to a vendor
// SDK directly. They construct clients through the registry and speak the
// Request/Response types defined here, so a fallback chain can mix entries
// from different vendors behind one interface.
//
// # Usage
//
// Create a client using the registry:
//
//	client, err := provider.New("openrouter", provider.Config{
//	    Model:  "mistralai/mistral-7b-instruct:free",
//	    APIKey: os.Getenv("OPENROUTER_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.Complete(ctx, provider.Request{
//	    Messages: []provider.Message{provider.NewTextMessage(provider.RoleUser, "hello")},
//	})
package provider

import "context"

// Client is the unified interface for LLM completion backends.
// Implementations must be safe for concurrent use.
type Client interface {
	// Complete sends a request and returns the full response.
	// The context controls cancellation and timeouts.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Provider returns the provider name (e.g., "openai", "openrouter").
	Provider() string

	// Close releases any resources held by the client.
	Close() error
}
