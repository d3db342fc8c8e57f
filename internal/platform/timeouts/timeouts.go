// Package timeouts defines the timeout constants shared by the bridge.
package timeouts

import "time"

// GRPCDial caps the wait for the plugin server to report healthy.
const GRPCDial = 5 * time.Second

// Shutdown limits how long the plugin server waits for in-flight calls, and
// how long telemetry gets to flush, during graceful shutdown.
const Shutdown = 5 * time.Second
