// Package llm implements the LLM client abstraction: a closed set of
// variants (HttpCompletion, Fixture, DryRun) behind one fetch operation.
// The variant is selected once at construction by model identifier, so
// the rest of the driver never branches on it again.
package llm

import (
	"net/http"
	"os"
	"time"

	"github.com/dhamidi/ashe/config"
	"github.com/dhamidi/ashe/errs"
)

type variant int

const (
	variantHTTP variant = iota
	variantFixture
	variantDryRun
)

// ValidModels is the closed set of accepted model identifiers; the first
// entry is the default.
var ValidModels = []string{"gpt-4", "mock", "dryrun"}

// Client is the single concrete type behind the LLM abstraction. Which
// code path fetch takes is determined entirely by variant, set once at
// construction.
type Client struct {
	variant variant
	model   string

	endpoint string
	apiKey   string

	roleSystem     string
	roleUser       string
	systemMessage  string

	fixturePath string

	timeoutTotal time.Duration
	timeoutLog   time.Duration

	httpClient *http.Client
}

// New builds a Client for modelID, dispatching to the HttpCompletion,
// Fixture, or DryRun variant. Fails with InvalidModel if modelID is not
// in ValidModels.
func New(modelID string, cfg *config.Config) (*Client, error) {
	switch modelID {
	case "gpt-4", "":
		return newHTTPClient(cfg)
	case "mock":
		return newFixtureClient(cfg)
	case "dryrun":
		return &Client{variant: variantDryRun, model: modelID}, nil
	default:
		return nil, errs.Newf(errs.InvalidModel, "unknown model identifier %q", modelID)
	}
}

func newHTTPClient(cfg *config.Config) (*Client, error) {
	endpoint, err := cfg.RequireLlmEndpoint()
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	timeoutTotal := time.Duration(cfg.LlmTimeoutTotal) * time.Second
	timeoutLog := time.Duration(cfg.LlmTimeoutLog) * time.Second

	return &Client{
		variant:       variantHTTP,
		model:         "gpt-4",
		endpoint:      endpoint,
		apiKey:        cfg.LlmAPIKey,
		roleSystem:    defaultString(cfg.LlmRoleSystem, "system"),
		roleUser:      defaultString(cfg.LlmRoleUser, "user"),
		systemMessage: cfg.LlmSystemMessage,
		timeoutTotal:  timeoutTotal,
		timeoutLog:    timeoutLog,
		httpClient: &http.Client{
			Transport: transport,
			// No Timeout set here deliberately: fetch owns the deadline
			// itself, via context, so it can emit periodic progress
			// ticks before abandoning the call.
		},
	}, nil
}

func newFixtureClient(cfg *config.Config) (*Client, error) {
	path, err := cfg.RequireLlmFixturePath()
	if err != nil {
		return nil, err
	}
	return &Client{variant: variantFixture, model: "mock", fixturePath: path}, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Fetch requests a completion for prompt and returns the reply text. It
// may fail with LlmIoError, LlmTimeoutError, LlmInterrupted, or
// LlmExecutionError (HTTP failures surface as LlmHttpError).
func (c *Client) Fetch(prompt string) (string, error) {
	switch c.variant {
	case variantHTTP:
		return c.fetchHTTP(prompt)
	case variantFixture:
		return c.fetchFixture()
	case variantDryRun:
		return "", nil
	default:
		return "", errs.New(errs.LlmExecutionError, "llm client has no configured variant")
	}
}

// IsDryRun reports whether this client is the DryRun sentinel, used by
// the refinement driver to skip the LLM step entirely.
func (c *Client) IsDryRun() bool {
	return c.variant == variantDryRun
}

func (c *Client) fetchFixture() (string, error) {
	data, err := os.ReadFile(c.fixturePath)
	if err != nil {
		return "", errs.Wrap(errs.LlmIoError, err, "reading fixture response file "+c.fixturePath)
	}
	return string(data), nil
}
