// Package common contains shared constants and sentinel errors used across
// GeneralStore client components.
package common

// SessionTokenHeader is the HTTP header that carries the opaque session
// token on authenticated requests. The backend expects it on every
// endpoint that requires a session.
const SessionTokenHeader = "X-Session-Token"

// SessionTokenKey is the fixed key under which the session credential is
// persisted in the local metadata store. There is at most one credential
// per client profile.
const SessionTokenKey = "session_token"

// LastEmailKey stores the email of the last successful login, used to
// prefill the login prompt. It survives logout.
const LastEmailKey = "last_email"

// UploadsPathPrefix marks media references stored by the backend's upload
// endpoint. Such references are resolved against the API base address.
const UploadsPathPrefix = "/uploads/"

// MinOfferImages is the minimum number of usable image references an offer
// submission must carry. Enforced client-side before the offer request and
// again by the server.
const MinOfferImages = 3
