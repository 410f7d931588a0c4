// Package api implements the HTTP transport for the Bungie.net
// Platform API: request dispatch, the standard response envelope, and
// the internal error types the public package translates at its
// boundary.
package api
