package wire

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// Codec is a gRPC codec for the messages in this package. Generated protobuf
// messages (the health service, for instance) fall through to proto.Marshal, so
// one server can host both.
type Codec struct{}

var _ encoding.Codec = Codec{}

// Marshal implements encoding.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return Marshal(m)
	case proto.Message:
		return proto.Marshal(m)
	}
	return nil, fmt.Errorf("wire codec: cannot marshal %T", v)
}

// Unmarshal implements encoding.Codec.
func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Message:
		return Unmarshal(data, m)
	case proto.Message:
		return proto.Unmarshal(data, m)
	}
	return fmt.Errorf("wire codec: cannot unmarshal into %T", v)
}

// Name implements encoding.Codec. The codec speaks the protobuf binary format,
// so it keeps the content subtype peers expect.
func (Codec) Name() string {
	return "proto"
}
