// Package boardAuth is the write-gating authentication core of a single-tenant
// Kanban board: one shared password, one static API key, opaque session tokens,
// and a per-client login rate limiter.
//
// Engine methods are safe to call from multiple goroutines after initialization
// through [Builder.Build].
//
// # Credentials
//
// There is exactly one credential class. A caller is either authorized (holds
// the API key or a live session token) or not; nothing distinguishes one
// holder from another.
//
//   - Password: checked against the configured hash by [Engine.Login]. An
//     empty hash disables password login.
//   - API key: presented as "Authorization: Bearer <key>". An empty key
//     disables API-key access.
//   - Session token: minted by a successful login, presented as
//     "X-Session-Token: <token>", valid for 24 hours.
//
// # Architecture boundaries
//
// boardAuth is the public surface. It exposes [Engine], [Builder], [Config], and
// value types (LoginResult, MetricsSnapshot, AuditEvent). Rate limiting lives in
// internal/rate; sessions, password verification and API-key checks live in
// their own packages and never import this one.
//
// # What this package must NOT do
//
//   - Log or audit passwords, hashes, API keys or session tokens.
//   - Panic on malformed input. Every public operation returns a definite result.
//   - Count successful logins against the rate-limit budget.
package boardAuth
