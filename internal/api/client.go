package api

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/destinykit/bungie-go/types"
)

const tracerName = "github.com/destinykit/bungie-go"

// Config assembles everything the transport needs. Validation happens
// in the public builder before a Config reaches New.
type Config struct {
	APIKey           string
	BaseURL          string
	UserAgent        string
	AuthToken        string
	Timeout          time.Duration
	HTTPClient       *http.Client
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	RetryPolicy      RetryPolicy
	Limiter          *rate.Limiter
	Logger           Logger
}

// Client is the HTTP transport under the public endpoint client. It is
// immutable after New and safe for concurrent use.
type Client struct {
	http      *resty.Client
	authToken string
	limiter   *rate.Limiter
	logger    Logger
	tracer    trace.Tracer
}

// New builds a transport from cfg.
func New(cfg Config) *Client {
	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}

	rc.SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/"))
	rc.SetHeader("X-API-Key", cfg.APIKey)
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	// Retries are opt-in; each call is a single request unless the
	// caller configured a retry count.
	if cfg.RetryCount > 0 {
		rc.SetRetryCount(cfg.RetryCount)
		if cfg.RetryWaitTime > 0 {
			rc.SetRetryWaitTime(cfg.RetryWaitTime)
		}
		if cfg.RetryMaxWaitTime > 0 {
			rc.SetRetryMaxWaitTime(cfg.RetryMaxWaitTime)
		}
		policy := cfg.RetryPolicy
		if policy == nil {
			policy = DefaultRetryPolicy
		}
		rc.AddRetryCondition(func(resp *resty.Response, err error) bool {
			return policy(resp, err)
		})
	}

	logger := cfg.Logger
	if logger == nil {
		logger = NoopLogger()
	}

	return &Client{
		http:      rc,
		authToken: cfg.AuthToken,
		limiter:   cfg.Limiter,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}
}

// Request describes one Platform call.
type Request struct {
	// Operation names the call for tracing and logging.
	Operation string
	Method    string
	// Path is relative to the base URL and already escaped.
	Path  string
	Query url.Values
	Body  interface{}
	// AuthToken overrides the client-wide bearer token for this call.
	AuthToken string
}

// envelope is the standard wrapper around every Platform response.
// Response stays raw so callers can decode it into their typed result.
type envelope struct {
	Response        json.RawMessage         `json:"Response"`
	ErrorCode       types.PlatformErrorCode `json:"ErrorCode"`
	ThrottleSeconds int32                   `json:"ThrottleSeconds"`
	ErrorStatus     string                  `json:"ErrorStatus"`
	Message         string                  `json:"Message"`
	MessageData     map[string]string       `json:"MessageData"`
}

// Platform performs one Platform call and returns the raw Response
// payload of a successful envelope.
func (c *Client) Platform(ctx context.Context, req Request) (json.RawMessage, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	ctx, span := c.startSpan(ctx, req)
	defer span.End()

	requestID := uuid.NewString()
	c.logger.Debugf("bungie: %s %s request_id=%s", req.Method, req.Path, requestID)

	r := c.http.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if token := c.bearer(req); token != "" {
		r.SetAuthToken(token)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, c.fail(span, req, &NetworkError{Err: err, URL: req.Path})
	}

	if err := checkContentType(resp); err != nil {
		return nil, c.fail(span, req, &NetworkError{Err: err, URL: req.Path})
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, c.fail(span, req, &NetworkError{
			Err: fmt.Errorf("decode envelope: %w", err),
			URL: req.Path,
		})
	}

	if env.ErrorCode != types.ErrorCodeSuccess {
		perr := &PlatformError{
			Code:            env.ErrorCode,
			Status:          env.ErrorStatus,
			Message:         env.Message,
			ThrottleSeconds: env.ThrottleSeconds,
			MessageData:     env.MessageData,
		}
		c.logger.Warnf("bungie: %s %s failed: %v", req.Method, req.Path, perr)
		span.SetStatus(codes.Error, perr.Error())
		return nil, perr
	}

	return env.Response, nil
}

// Token performs an OAuth token exchange. The token endpoint speaks
// plain OAuth JSON rather than the Platform envelope.
func (c *Client) Token(ctx context.Context, path string, form url.Values) (*types.BungieTokenResponse, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	ctx, span := c.startSpan(ctx, Request{Operation: "OAuth.Token", Method: http.MethodPost, Path: path})
	defer span.End()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormDataFromValues(form).
		Post(path)
	if err != nil {
		return nil, c.fail(span, Request{Path: path}, &NetworkError{Err: err, URL: path})
	}

	if resp.StatusCode() != http.StatusOK {
		var oauthErr struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		_ = json.Unmarshal(resp.Body(), &oauthErr)
		terr := &TokenError{
			StatusCode:  resp.StatusCode(),
			ErrorType:   oauthErr.Error,
			Description: oauthErr.Description,
		}
		c.logger.Warnf("bungie: token exchange failed: %v", terr)
		span.SetStatus(codes.Error, terr.Error())
		return nil, terr
	}

	var token types.BungieTokenResponse
	if err := json.Unmarshal(resp.Body(), &token); err != nil {
		return nil, c.fail(span, Request{Path: path}, &NetworkError{
			Err: fmt.Errorf("decode token response: %w", err),
			URL: path,
		})
	}

	return &token, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return &NetworkError{Err: err}
	}
	return nil
}

func (c *Client) bearer(req Request) string {
	if req.AuthToken != "" {
		return req.AuthToken
	}
	return c.authToken
}

func (c *Client) startSpan(ctx context.Context, req Request) (context.Context, trace.Span) {
	name := req.Operation
	if name == "" {
		name = req.Method + " " + req.Path
	}
	return c.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.Path),
		),
	)
}

func (c *Client) fail(span trace.Span, req Request, err error) error {
	c.logger.Errorf("bungie: %s %s: %v", req.Method, req.Path, err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// checkContentType rejects non-JSON bodies. The vendor serves HTML
// error pages during outages; decoding those as an envelope would
// produce misleading errors.
func checkContentType(resp *resty.Response) error {
	ct := resp.Header().Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || !strings.HasPrefix(mediaType, "application/json") {
		return fmt.Errorf("unexpected content type %q", ct)
	}
	return nil
}
