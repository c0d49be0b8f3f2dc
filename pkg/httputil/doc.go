// Package httputil provides shared HTTP plumbing for service clients.
//
// It contains the retry helper used by every outbound client (metadata
// store, visualization service) and a thin JSON client that centralizes
// request construction, status handling, and observability hooks.
//
// # Retry Semantics
//
// Only errors wrapped with [RetryableError] trigger retries. Clients wrap
// transient failures (connection errors, 5xx responses) and leave
// permanent failures (4xx, decode errors) unwrapped so they surface
// immediately.
package httputil
