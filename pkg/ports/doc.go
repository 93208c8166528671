/*
Package ports defines the driven ports (interfaces) of the converter.

These interfaces decouple the pen state machine from concrete outputs and from
the infrastructure used by the server adapters.

# Key Interfaces

  - SegmentSink: receives line segments in arrival order (e.g. the DXF writer).
  - Cache: stores rendered documents keyed by input digest (memory or Redis).
  - Converter: the library facade consumed by the HTTP and MCP adapters.
*/
package ports
