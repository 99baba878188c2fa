// Package observability provides clockwall's structured logger, Prometheus
// metrics and the optional HTTP endpoint that serves them.
//
// Logs go to a file because the terminal is owned by the TUI. Metrics are
// fed by subscribing to the store, the same way any other display consumer
// would; the endpoint is only started when metrics_addr is configured.
package observability
