// Package observability provides structured logging and timed observations
// for the customer service.
//
// Observations wrap a unit of work with Observe and report its duration and
// outcome to a Recorder. Registry is the Prometheus-backed Recorder used by
// the server; it also answers the actuator-style metric queries.
package observability
