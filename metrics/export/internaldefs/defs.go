package internaldefs

import (
	boardAuth "github.com/MrEthical07/boardAuth"
)

// CounterDef names one engine counter for export.
type CounterDef struct {
	ID   boardAuth.MetricID
	Name string
	Help string
}

// HistogramDef names one engine histogram for export.
type HistogramDef struct {
	ID   boardAuth.MetricID
	Name string
	Help string
}

// AuditDroppedName is the counter fed from Engine.AuditDropped.
const AuditDroppedName = "boardauth_audit_dropped_total"

// CounterDefs lists every exported counter in render order.
var CounterDefs = []CounterDef{
	{ID: boardAuth.MetricLoginSuccess, Name: "boardauth_login_success_total", Help: "Logins that issued a session token."},
	{ID: boardAuth.MetricLoginFailure, Name: "boardauth_login_failure_total", Help: "Logins rejected for a missing or wrong password."},
	{ID: boardAuth.MetricLoginRateLimited, Name: "boardauth_login_rate_limited_total", Help: "Logins rejected by the rate limiter."},
	{ID: boardAuth.MetricLoginMalformed, Name: "boardauth_login_malformed_total", Help: "Logins with an unparseable body."},
	{ID: boardAuth.MetricSessionCreated, Name: "boardauth_session_created_total", Help: "Session tokens minted."},
	{ID: boardAuth.MetricSessionExpired, Name: "boardauth_session_expired_total", Help: "Expired session tokens removed on use."},
	{ID: boardAuth.MetricSessionSwept, Name: "boardauth_session_swept_total", Help: "Expired session tokens removed by the sweeper."},
	{ID: boardAuth.MetricAuthorizeAPIKey, Name: "boardauth_authorize_api_key_total", Help: "Write requests authorized by API key."},
	{ID: boardAuth.MetricAuthorizeSession, Name: "boardauth_authorize_session_total", Help: "Write requests authorized by session token."},
	{ID: boardAuth.MetricAuthorizeDenied, Name: "boardauth_authorize_denied_total", Help: "Write requests denied by the gate."},
	{ID: boardAuth.MetricBackendError, Name: "boardauth_backend_error_total", Help: "Limiter or session backend failures."},
}

// HistogramDefs lists every exported histogram.
var HistogramDefs = []HistogramDef{
	{ID: boardAuth.MetricPasswordVerifyLatency, Name: "boardauth_password_verify_seconds", Help: "Password hash verification latency."},
}

// HistogramBounds are the Prometheus le labels, in seconds, matching the
// engine's eight buckets.
var HistogramBounds = []string{
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"1",
	"2.5",
	"+Inf",
}

// HistogramBoundSuffix is HistogramBounds made safe for instrument names.
var HistogramBoundSuffix = []string{
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"1",
	"2_5",
	"inf",
}

// NormalizeBuckets copies raw into a fixed array, zero-filling short input.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into running totals.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
