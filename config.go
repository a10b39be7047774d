package relay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
)

type (
	// configFile is the top-level configuration structure.
	configFile struct {
		Pipelines map[string]PipelineConfig `json:"pipelines" toml:"pipelines"`
	}

	// PipelineConfig holds the declaration of a single named pipeline.
	// Export it to embed in your own app config structs for JSON or TOML
	// unmarshaling, then call [Config.Build] (or build a dispatcher by hand
	// with [ResolveKeys]) to obtain a runnable handler.
	PipelineConfig struct {
		// Middlewares lists registry keys in execution order: the first
		// key names the outermost middleware.
		Middlewares []string `json:"middlewares" toml:"middlewares"`
		// Fallback configures the terminal response returned when no
		// middleware responds. Optional; defaults to an empty 404.
		Fallback *FallbackConfig `json:"fallback,omitempty" toml:"fallback,omitempty"`
	}

	// FallbackConfig describes the fixed terminal response of a pipeline.
	FallbackConfig struct {
		// Headers are set verbatim on the fallback response. Optional.
		Headers map[string]string `json:"headers,omitempty" toml:"headers,omitempty"`
		// Body is the literal response body. Optional.
		Body string `json:"body,omitempty" toml:"body,omitempty"`
		// Status is the response status code. Required, 100-599.
		Status int `json:"status" toml:"status"`
	}
)

// Config holds named pipeline declarations loaded from a configuration
// file. Middleware keys are resolved lazily against a registry at build
// time, so a Config can be loaded before any middleware is registered.
type Config struct {
	pipelines map[string]PipelineConfig
}

// LoadConfig reads a configuration file and returns the declared pipelines.
// Files ending in ".toml" are parsed as TOML; everything else is parsed as
// JSON. Declarations are validated eagerly so malformed status codes surface
// at load time rather than on first build.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("relay: read config: %w", err)
	}

	var cfg configFile

	if filepath.Ext(path) == ".toml" {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}

	if err != nil {
		return nil, fmt.Errorf("relay: parse config: %w", err)
	}

	for name, pc := range cfg.Pipelines {
		if fb := pc.Fallback; fb != nil && (fb.Status < 100 || fb.Status > 599) {
			return nil, fmt.Errorf(
				"relay: pipeline %q: fallback status %d out of range",
				name, fb.Status,
			)
		}
	}

	return &Config{pipelines: cfg.Pipelines}, nil
}

// Pipelines returns the declared pipeline names in unspecified order.
func (c *Config) Pipelines() []string {
	names := make([]string, 0, len(c.pipelines))
	for name := range c.pipelines {
		names = append(names, name)
	}

	return names
}

// Build constructs the named pipeline, resolving its middleware keys
// against reg. The keys are looked up lazily at request time, so Build
// succeeds even for keys registered later (or never reached).
func (c *Config) Build(name string, reg *Registry) (*Dispatcher, error) {
	pc, ok := c.pipelines[name]
	if !ok {
		return nil, fmt.Errorf("relay: pipeline %q not declared", name)
	}

	resp := NewResponse(404)
	if fb := pc.Fallback; fb != nil {
		resp = NewResponse(fb.Status).WithText(fb.Body)
		for k, v := range fb.Headers {
			resp = resp.WithHeader(k, v)
		}
	}

	sources := make([]any, len(pc.Middlewares))
	for i, key := range pc.Middlewares {
		sources[i] = key
	}

	return ResolveKeys(reg, NewFactory())(Fallback(resp), sources...)
}
