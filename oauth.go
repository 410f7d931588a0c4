package bungie

import (
	"context"
	"net/url"

	"github.com/destinykit/bungie-go/types"
)

const tokenPath = "/App/OAuth/Token/"

// AuthorizationURL builds the URL a user must visit to authorize the
// application. lang is a BCP 47 language tag such as "en"; state is an
// opaque value echoed back on the redirect to guard against CSRF.
//
// Requires WithOAuthClientID.
func (c *Client) AuthorizationURL(lang, state string) (string, error) {
	if c.cfg.oauthClientID == "" {
		return "", ErrMissingOAuthClientID
	}

	q := url.Values{}
	q.Set("client_id", c.cfg.oauthClientID)
	q.Set("response_type", "code")
	if state != "" {
		q.Set("state", state)
	}
	return authorizeURL(lang) + "?" + q.Encode(), nil
}

func authorizeURL(lang string) string {
	if lang == "" {
		lang = "en"
	}
	return "https://www.bungie.net/" + url.PathEscape(lang) + "/OAuth/Authorize/"
}

// RequestAccessToken exchanges an authorization code for an access
// token. The client secret is included when configured, as required
// for confidential OAuth applications.
//
// Requires WithOAuthClientID.
func (c *Client) RequestAccessToken(ctx context.Context, code string) (*types.BungieTokenResponse, error) {
	if c.cfg.oauthClientID == "" {
		return nil, ErrMissingOAuthClientID
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", c.cfg.oauthClientID)
	if c.cfg.oauthClientSecret != "" {
		form.Set("client_secret", c.cfg.oauthClientSecret)
	}

	token, err := c.api.Token(ctx, tokenPath, form)
	if err != nil {
		return nil, wrapError(err)
	}
	return token, nil
}

// RefreshAccessToken exchanges a refresh token for a new access token.
// Only confidential applications receive refresh tokens, so both the
// client ID and the client secret must be configured.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*types.BungieTokenResponse, error) {
	if c.cfg.oauthClientID == "" {
		return nil, ErrMissingOAuthClientID
	}
	if c.cfg.oauthClientSecret == "" {
		return nil, ErrMissingOAuthClientSecret
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", c.cfg.oauthClientID)
	form.Set("client_secret", c.cfg.oauthClientSecret)

	token, err := c.api.Token(ctx, tokenPath, form)
	if err != nil {
		return nil, wrapError(err)
	}
	return token, nil
}
