// Package prometheus renders boardAuth engine metrics in the Prometheus text
// exposition format.
//
// [Exporter.Handler] is mounted at GET /metrics by the board server. Counters
// are named boardauth_*_total; the single histogram is
// boardauth_password_verify_seconds.
//
// # What this package must NOT do
//
//   - Register with a global Prometheus registry. Callers mount the Handler.
//   - Mutate engine state.
package prometheus
