// Package api is the remote gateway for the GeneralStore client.
//
// # Overview
//
// The package provides:
//  1. A transport contract (the Client interface) covering authentication,
//     the camera catalog, offers and their decisions, the cart, media
//     upload, and currency rates.
//  2. A concrete HTTP implementation (HTTPClient) built around a single
//     request helper that attaches the session token header, serializes
//     JSON bodies, passes multipart payloads through untouched, and
//     normalizes error responses into one message string.
//
// # Error Handling
//
// Non-2xx responses become *APIError values. Two sentinel conditions are
// matchable with errors.Is: ErrUnavailable (the request never reached the
// server) and ErrUnauthorized (401/403). Everything else carries the
// backend's normalized detail message.
//
// The gateway never retries; callers decide whether an operation is worth
// repeating.
package api
