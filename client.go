package bungie

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/destinykit/bungie-go/internal/api"
	"github.com/destinykit/bungie-go/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Client is a Bungie.net Platform API client. It is safe for
// concurrent use; all configuration is fixed at construction time.
type Client struct {
	api *api.Client
	cfg clientConfig
}

// New creates a Client with the given API key. The key is mandatory;
// every other aspect of the client is configured through options.
//
// New performs no network I/O.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := clientConfig{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.check(); err != nil {
		return nil, err
	}

	apiClient := api.New(api.Config{
		APIKey:           apiKey,
		BaseURL:          cfg.baseURL,
		UserAgent:        cfg.userAgent,
		AuthToken:        cfg.accessToken,
		Timeout:          cfg.timeout,
		HTTPClient:       cfg.httpClient,
		RetryCount:       cfg.retryCount,
		RetryWaitTime:    cfg.retryWaitTime,
		RetryMaxWaitTime: cfg.retryMaxWaitTime,
		RetryPolicy:      cfg.retryPolicy,
		Limiter:          cfg.limiter,
		Logger:           cfg.logger,
	})

	return &Client{api: apiClient, cfg: cfg}, nil
}

func (c clientConfig) check() error {
	if err := validate.Var(c.baseURL, "required,url"); err != nil {
		return &ConfigError{Message: fmt.Sprintf("base URL %q", c.baseURL), Err: err}
	}
	if c.timeout < 0 {
		return &ConfigError{Message: "timeout must not be negative"}
	}
	if c.retryCount < 0 {
		return &ConfigError{Message: "retry count must not be negative"}
	}
	return nil
}

// BaseURL returns the Platform base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.cfg.baseURL
}

func platformDo[T any](ctx context.Context, c *Client, method, operation, path string, query url.Values, body interface{}, opts []CallOption) (T, error) {
	var result T

	call := applyCallOptions(opts)
	raw, err := c.api.Platform(ctx, api.Request{
		Operation: operation,
		Method:    method,
		Path:      path,
		Query:     query,
		Body:      body,
		AuthToken: call.authToken,
	})
	if err != nil {
		return result, wrapError(err)
	}

	// A successful envelope may omit Response entirely (e.g. actions
	// that return nothing).
	if len(raw) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, &TransportError{URL: path, Err: fmt.Errorf("decode %s response: %w", operation, err)}
	}
	return result, nil
}

func platformGet[T any](ctx context.Context, c *Client, operation, path string, query url.Values, opts []CallOption) (T, error) {
	return platformDo[T](ctx, c, http.MethodGet, operation, path, query, nil, opts)
}

func platformPost[T any](ctx context.Context, c *Client, operation, path string, body interface{}, opts []CallOption) (T, error) {
	return platformDo[T](ctx, c, http.MethodPost, operation, path, nil, body, opts)
}

func i64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func i32[E ~int32](v E) string {
	return strconv.FormatInt(int64(v), 10)
}

func u32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

// componentsCSV renders component types as the comma-separated list
// the Platform expects in the components query parameter.
func componentsCSV(components []types.DestinyComponentType) string {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = i32(c)
	}
	return strings.Join(parts, ",")
}
