// Package id generates request identifiers for plugin calls.
//
// Identifiers are random UUIDv4 bytes encoded as unpadded, lowercase base32
// (RFC 4648). They are 26 characters long and safe to echo in gRPC metadata
// and log lines.
package id
