// Package internal contains helper utilities that are intentionally private to
// boardAuth, chiefly secure random token generation.
//
// # Sub-packages
//
//   - rate: fixed-window login attempt budget (memory and Redis backends)
//
// # What this package must NOT do
//
//   - Export types that appear in the public boardAuth API.
//   - Be imported by any package outside the boardAuth module.
package internal
