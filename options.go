package bungie

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/destinykit/bungie-go/internal/api"
)

const (
	defaultBaseURL = "https://www.bungie.net/Platform"
	defaultTimeout = 30 * time.Second

	libraryVersion   = "0.1.0"
	defaultUserAgent = "bungie-go/" + libraryVersion
)

// Logger is the interface used for client diagnostics. The default is
// a no-op logger; pass any implementation via WithLogger.
type Logger = api.Logger

// NoopLogger returns a Logger that discards everything.
func NoopLogger() Logger {
	return api.NoopLogger()
}

// RetryPolicy decides whether a failed attempt should be retried.
// Retries are disabled unless WithRetryCount is set.
type RetryPolicy = api.RetryPolicy

// DefaultRetryPolicy retries connection errors, 429 and 5xx responses,
// and never retries after context cancellation.
var DefaultRetryPolicy RetryPolicy = api.DefaultRetryPolicy

type clientConfig struct {
	baseURL           string
	userAgent         string
	accessToken       string
	timeout           time.Duration
	httpClient        *http.Client
	retryCount        int
	retryWaitTime     time.Duration
	retryMaxWaitTime  time.Duration
	retryPolicy       RetryPolicy
	limiter           *rate.Limiter
	logger            Logger
	oauthClientID     string
	oauthClientSecret string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL overrides the Platform base URL. Useful for testing
// against a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithUserAgent overrides the User-Agent header sent with every
// request.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithAccessToken sets an OAuth access token sent as the Bearer
// authorization on every request. A per-call WithRequestToken takes
// precedence.
func WithAccessToken(token string) Option {
	return func(c *clientConfig) {
		c.accessToken = token
	}
}

// WithTimeout sets the per-request timeout. The default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient supplies a custom *http.Client, e.g. one with a proxy
// or an instrumented transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithRetryCount enables automatic retries. The default is zero: each
// operation performs exactly one request.
func WithRetryCount(count int) Option {
	return func(c *clientConfig) {
		c.retryCount = count
	}
}

// WithRetryWaitTime sets the initial backoff between retries. Only
// effective together with WithRetryCount.
func WithRetryWaitTime(d time.Duration) Option {
	return func(c *clientConfig) {
		c.retryWaitTime = d
	}
}

// WithRetryMaxWaitTime caps the backoff between retries. Only
// effective together with WithRetryCount.
func WithRetryMaxWaitTime(d time.Duration) Option {
	return func(c *clientConfig) {
		c.retryMaxWaitTime = d
	}
}

// WithRetryPolicy replaces DefaultRetryPolicy. Only effective together
// with WithRetryCount.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *clientConfig) {
		c.retryPolicy = policy
	}
}

// WithRateLimit caps outgoing requests at rps requests per second with
// the given burst. Calls block until the limiter admits them.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *clientConfig) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithOAuthClientID sets the OAuth application client ID, required for
// AuthorizationURL and the token operations.
func WithOAuthClientID(clientID string) Option {
	return func(c *clientConfig) {
		c.oauthClientID = clientID
	}
}

// WithOAuthClientSecret sets the OAuth application client secret,
// required by confidential clients for token refresh.
func WithOAuthClientSecret(secret string) Option {
	return func(c *clientConfig) {
		c.oauthClientSecret = secret
	}
}

type callConfig struct {
	authToken string
}

// CallOption configures a single operation.
type CallOption func(*callConfig)

// WithRequestToken sends the given OAuth access token as the Bearer
// authorization for this call only, overriding WithAccessToken.
func WithRequestToken(token string) CallOption {
	return func(c *callConfig) {
		c.authToken = token
	}
}

func applyCallOptions(opts []CallOption) callConfig {
	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
