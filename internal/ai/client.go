// Package ai wraps the Gemini API: model detection with ordered fallback,
// a process-wide cache of the detected model name, and classification of
// upstream failures into the error taxonomy the handlers map to HTTP.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/genai"
)

// DefaultModels is the ordered candidate list for the availability probe.
// The first model that answers is used until the cache entry goes stale.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-2.0-flash",
}

// modelCacheTTL bounds how long a detected model name is trusted before
// re-probing. Staleness only costs a redundant probe, never correctness.
const modelCacheTTL = 10 * time.Minute

// Message is one turn of conversation context.
type Message struct {
	Role    string
	Content string
}

// Client calls the Gemini API with a cached, probed model name.
type Client struct {
	candidates []string
	cache      modelCache

	// Indirection over the genai client so tests can exercise the probe
	// and fallback logic without network access.
	probe    func(ctx context.Context, model string) error
	generate func(ctx context.Context, model, system string, history []Message) (string, error)
}

// New creates a Client backed by the Gemini API.
func New(ctx context.Context, apiKey string) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	c := &Client{candidates: DefaultModels}
	c.cache.ttl = modelCacheTTL
	c.probe = func(ctx context.Context, model string) error {
		_, err := gc.Models.GenerateContent(ctx, model, genai.Text("ping"), nil)
		return err
	}
	c.generate = func(ctx context.Context, model, system string, history []Message) (string, error) {
		contents := make([]*genai.Content, 0, len(history))
		for _, m := range history {
			role := genai.RoleUser
			if m.Role == "assistant" {
				role = genai.RoleModel
			}
			contents = append(contents, &genai.Content{
				Role:  role,
				Parts: []*genai.Part{{Text: m.Content}},
			})
		}

		var cfg *genai.GenerateContentConfig
		if system != "" {
			cfg = &genai.GenerateContentConfig{
				SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
			}
		}

		resp, err := gc.Models.GenerateContent(ctx, model, contents, cfg)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}

	return c, nil
}

// Generate produces a reply for the given conversation and returns it with
// the model name that served it.
func (c *Client) Generate(ctx context.Context, system string, history []Message) (string, string, error) {
	model, err := c.resolveModel(ctx)
	if err != nil {
		return "", "", err
	}

	reply, err := c.generate(ctx, model, system, history)
	if err != nil {
		classified := classify(err, model)
		if errors.Is(classified, ErrModelNotFound) {
			// The cached model disappeared between probes; forget it so
			// the next request re-runs the fallback chain.
			c.cache.invalidate()
		}
		return "", model, classified
	}

	return reply, model, nil
}

// resolveModel returns the cached model name, probing the candidate list
// in order when the cache is empty or stale.
func (c *Client) resolveModel(ctx context.Context) (string, error) {
	if name, ok := c.cache.get(); ok {
		return name, nil
	}

	var lastErr error
	for _, candidate := range c.candidates {
		err := c.probe(ctx, candidate)
		if err == nil {
			c.cache.set(candidate)
			slog.Info("ai model detected", "model", candidate)
			return candidate, nil
		}

		classified := classify(err, candidate)
		if errors.Is(classified, ErrModelNotFound) {
			lastErr = classified
			continue
		}
		// Auth, quota and rate errors would hit every candidate the same
		// way; stop probing and surface them directly.
		return "", classified
	}

	if lastErr == nil {
		lastErr = ErrModelNotFound
	}
	return "", fmt.Errorf("no usable model in candidate list: %w", lastErr)
}

// modelCache is the process-wide, time-boxed cache of the detected model
// name. Races are benign (last writer wins); the mutex only keeps the
// name/timestamp pair coherent.
type modelCache struct {
	mu        sync.Mutex
	name      string
	checkedAt time.Time
	ttl       time.Duration
}

func (c *modelCache) get() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.name == "" || time.Since(c.checkedAt) > c.ttl {
		return "", false
	}
	return c.name, true
}

func (c *modelCache) set(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
	c.checkedAt = time.Now()
}

func (c *modelCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = ""
}
