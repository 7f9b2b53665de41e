// Package otel publishes boardAuth engine metrics through an OpenTelemetry
// Meter.
//
// [NewExporter] registers an Int64ObservableCounter per engine counter and an
// Int64ObservableGauge per histogram bucket. One callback reads
// [boardAuth.Engine.MetricsSnapshot] on each collection cycle. Instrument
// names match the Prometheus exporter.
//
// # What this package must NOT do
//
//   - Own the MeterProvider. Callers supply the Meter.
//   - Mutate engine state.
package otel
