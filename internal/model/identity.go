package model

// Identity is the authenticated caller extracted from a bearer token.
// Routes do not require a token; when one is supplied and valid, the
// identity is attached to the request context.
type Identity struct {
	UserID string
	Email  string
}
