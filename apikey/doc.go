// Package apikey checks presented keys against the single configured board API
// key used by automation clients.
//
// An unset key disables API-key access entirely. Comparison is constant time
// over equal-length inputs; a length mismatch is rejected before comparing, so
// only the key length can leak through timing.
package apikey
