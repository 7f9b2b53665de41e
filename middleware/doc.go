// Package middleware adapts boardAuth.Engine to net/http.
//
// # Handlers
//
//   - [Guard]: the write-route gate. Passes requests carrying a valid API key
//     or live session token and answers 401 otherwise.
//   - [RequestContext]: assigns a request id and records the client id in the
//     request context.
//
// # What this package must NOT do
//
//   - Compare credentials itself. All decisions come from Engine.Authorize.
//   - Touch the session or limiter stores.
package middleware
