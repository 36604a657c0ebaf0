/*
Package observability turns calculator lifecycle events into Prometheus metrics
and structured log lines.

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	calc := numeral.New(
		numeral.WithLifecycleHooks(metrics.Hooks()),
		numeral.WithLifecycleHooks(observability.LoggingHooks(logger)),
	)
*/
package observability
