// Package api contains the transport surface of the bridge.
//
// # gRPC
//
//   - grpc/plugin/: the plugin service the exploration engine calls. It
//     decodes requests, drives the dispatcher and the sequence engine, and
//     encodes results and statuses.
//   - grpc/metadata/: request id propagation through gRPC metadata.
//   - grpc/interceptors/: panic recovery and call logging.
//
// Model failures are reported in response status fields; only transport and
// decoding problems surface as gRPC errors.
package api
