package boardAuth

import "errors"

var (
	// ErrLoginRateLimited is returned while the client has exhausted its login
	// attempts for the current window.
	ErrLoginRateLimited = errors.New("login rate limited")
	// ErrPasswordRequired is returned when the password is missing, empty or
	// not a string.
	ErrPasswordRequired = errors.New("password required")
	// ErrInvalidPassword is returned when the password does not match the
	// configured hash, including when no hash is configured.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrInvalidRequest is returned for an unparseable login body.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized is returned by gated operations when neither credential
	// is accepted.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSessionCreationFailed is returned when a verified login could not be
	// issued a token.
	ErrSessionCreationFailed = errors.New("session creation failed")
	// ErrEngineNotReady is returned by methods called on a nil or closed Engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrRedisRequired is returned by Build when a Redis backend is configured
	// without a client.
	ErrRedisRequired = errors.New("redis client required for redis backend")
)
