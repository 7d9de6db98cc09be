package api

import (
	"net/http"

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer credential, or "" when there is
// none. *auth.Session satisfies it.
type TokenSource interface {
	Token() string
}

// bearerTransport injects the Authorization header and a per-request id
// into every outgoing call. The client-side counterpart of the server's
// JWT middleware.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone before mutating: RoundTrippers must not modify the original.
	out := req.Clone(req.Context())
	if token := t.tokens.Token(); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}
	out.Header.Set("X-Request-ID", uuid.NewString())

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(out)
}
