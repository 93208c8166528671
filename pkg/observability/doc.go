/*
Package observability provides Prometheus instrumentation for conversions.

Metrics are fed from the converter's lifecycle hooks, so the pen state machine
itself stays free of any metrics dependency. They can be served over HTTP
(serve command) or written once to a node_exporter textfile (--metrics-file).
*/
package observability
