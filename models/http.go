package models

// CredentialsRequest carries the raw signup/login form fields. Both fields
// are untrusted input: the handle character class and the secret length are
// validated by the auth service before anything else happens, and the secret
// is discarded immediately after hashing or comparison.
type CredentialsRequest struct {
	// Handle is the public username. Required.
	Handle string `json:"handle"`

	// Secret is the plaintext password as typed by the user. Required.
	// Never logged, never stored.
	Secret string `json:"secret"`
}

// ArticleRequest carries the raw article form fields for publish and edit
// operations. The owner is never part of the request; it always comes from
// the authenticated session.
type ArticleRequest struct {
	// Title is the article headline. Required, non-empty.
	Title string `json:"title"`

	// Date is the publish date in YYYY-MM-DD form. Required.
	Date string `json:"date"`

	// Body is the article text. Required, non-empty.
	Body string `json:"body"`
}

// SessionResponse is returned by a successful login or signup. The token is
// additionally delivered as a cookie; the body copy exists for non-browser
// clients such as blogctl.
type SessionResponse struct {
	// Token is the signed session token.
	Token string `json:"token"`

	// Handle echoes the authenticated handle.
	Handle string `json:"handle"`
}

// ArticleIDResponse is returned by a successful publish.
type ArticleIDResponse struct {
	// ArticleID is the server-assigned identifier of the new article.
	ArticleID int64 `json:"id"`
}

// ErrorResponse is the uniform error payload. Message is always a
// user-facing string; internal diagnostic detail never appears here.
type ErrorResponse struct {
	Message string `json:"error"`
}
