// Package wire holds the FizzBeeMbtPluginService messages and gRPC bindings
// described by api/proto/fizzbee/mbt/v1/plugin.proto.
//
// The messages are plain structs encoded with protowire instead of protoc output,
// so the package builds without a protobuf toolchain. Field numbers must match the
// .proto file; keep both in sync when either changes.
package wire
