package wire

import (
	"errors"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every message in this package.
type Message interface {
	// AppendWire appends the protobuf binary encoding of the message to b.
	AppendWire(b []byte) []byte
	// UnmarshalWire replaces the message contents with the decoding of b.
	UnmarshalWire(b []byte) error
}

// Marshal returns the protobuf binary encoding of m.
func Marshal(m Message) ([]byte, error) {
	if m == nil {
		return nil, errors.New("wire: marshal nil message")
	}
	return m.AppendWire(nil), nil
}

// Unmarshal decodes b into m.
func Unmarshal(b []byte, m Message) error {
	if m == nil {
		return errors.New("wire: unmarshal into nil message")
	}
	return m.UnmarshalWire(b)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	return appendStringAlways(b, num, v)
}

func appendStringAlways(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	return appendVarintAlways(b, num, v)
}

func appendVarintAlways(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendMessage(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.AppendWire(nil))
}

// fieldFunc consumes the value of one field and returns the bytes used.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func consumeFields(b []byte, field fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := field(num, typ, b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// skipField consumes a field this package does not know, or one whose wire type
// does not match the schema.
func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

func consumeString(num protowire.Number, typ protowire.Type, b []byte, dst *string) (int, error) {
	if typ != protowire.BytesType {
		return skipField(num, typ, b)
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = v
	return n, nil
}

func consumeVarint(num protowire.Number, typ protowire.Type, b []byte, set func(uint64)) (int, error) {
	if typ != protowire.VarintType {
		return skipField(num, typ, b)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	set(v)
	return n, nil
}

func consumeMessage(num protowire.Number, typ protowire.Type, b []byte, m Message) (int, error) {
	if typ != protowire.BytesType {
		return skipField(num, typ, b)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := m.UnmarshalWire(v); err != nil {
		return 0, err
	}
	return n, nil
}

// consumeSingular decodes a singular message field. The destination is only
// replaced when the field is length-delimited, so a field with the wrong wire
// type is skipped and leaves it untouched.
func consumeSingular[T any, PT interface {
	*T
	Message
}](num protowire.Number, typ protowire.Type, b []byte, dst *PT) (int, error) {
	if typ != protowire.BytesType {
		return skipField(num, typ, b)
	}
	m := PT(new(T))
	n, err := consumeMessage(num, typ, b, m)
	if err != nil {
		return 0, err
	}
	*dst = m
	return n, nil
}

func (x *Status) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendVarint(b, 1, uint64(int64(x.Code)))
	return appendString(b, 2, x.Message)
}

func (x *Status) UnmarshalWire(b []byte) error {
	*x = Status{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeVarint(num, typ, b, func(v uint64) { x.Code = StatusCode(int32(v)) })
		case 2:
			return consumeString(num, typ, b, &x.Message)
		}
		return skipField(num, typ, b)
	})
}

func (x *Value) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	switch k := x.Kind.(type) {
	case *Value_StrValue:
		b = appendStringAlways(b, 1, k.StrValue)
	case *Value_IntValue:
		b = appendVarintAlways(b, 2, uint64(k.IntValue))
	case *Value_BoolValue:
		b = appendVarintAlways(b, 3, protowire.EncodeBool(k.BoolValue))
	case *Value_MapValue:
		b = appendMessage(b, 4, k.MapValue)
	case *Value_ListValue:
		b = appendMessage(b, 5, k.ListValue)
	case *Value_SetValue:
		b = appendMessage(b, 6, k.SetValue)
	case *Value_SentinelValue:
		b = appendVarintAlways(b, 7, uint64(int64(k.SentinelValue)))
	}
	return b
}

func (x *Value) UnmarshalWire(b []byte) error {
	*x = Value{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			var s string
			n, err := consumeString(num, typ, b, &s)
			if err == nil && typ == protowire.BytesType {
				x.Kind = &Value_StrValue{StrValue: s}
			}
			return n, err
		case 2:
			return consumeVarint(num, typ, b, func(v uint64) {
				x.Kind = &Value_IntValue{IntValue: int64(v)}
			})
		case 3:
			return consumeVarint(num, typ, b, func(v uint64) {
				x.Kind = &Value_BoolValue{BoolValue: protowire.DecodeBool(v)}
			})
		case 4:
			m := new(MapValue)
			n, err := consumeMessage(num, typ, b, m)
			if err == nil && typ == protowire.BytesType {
				x.Kind = &Value_MapValue{MapValue: m}
			}
			return n, err
		case 5:
			m := new(ListValue)
			n, err := consumeMessage(num, typ, b, m)
			if err == nil && typ == protowire.BytesType {
				x.Kind = &Value_ListValue{ListValue: m}
			}
			return n, err
		case 6:
			m := new(SetValue)
			n, err := consumeMessage(num, typ, b, m)
			if err == nil && typ == protowire.BytesType {
				x.Kind = &Value_SetValue{SetValue: m}
			}
			return n, err
		case 7:
			return consumeVarint(num, typ, b, func(v uint64) {
				x.Kind = &Value_SentinelValue{SentinelValue: Sentinel(int32(v))}
			})
		}
		return skipField(num, typ, b)
	})
}

func (x *MapEntry) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Key != nil {
		b = appendMessage(b, 1, x.Key)
	}
	if x.Value != nil {
		b = appendMessage(b, 2, x.Value)
	}
	return b
}

func (x *MapEntry) UnmarshalWire(b []byte) error {
	*x = MapEntry{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeSingular(num, typ, b, &x.Key)
		case 2:
			return consumeSingular(num, typ, b, &x.Value)
		}
		return skipField(num, typ, b)
	})
}

func (x *MapValue) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	for _, e := range x.Entries {
		b = appendMessage(b, 1, e)
	}
	return b
}

func (x *MapValue) UnmarshalWire(b []byte) error {
	*x = MapValue{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			e := new(MapEntry)
			n, err := consumeMessage(num, typ, b, e)
			if err == nil && typ == protowire.BytesType {
				x.Entries = append(x.Entries, e)
			}
			return n, err
		}
		return skipField(num, typ, b)
	})
}

func appendValues(b []byte, num protowire.Number, items []*Value) []byte {
	for _, item := range items {
		b = appendMessage(b, num, item)
	}
	return b
}

func consumeValueItem(num protowire.Number, typ protowire.Type, b []byte, dst *[]*Value) (int, error) {
	v := new(Value)
	n, err := consumeMessage(num, typ, b, v)
	if err == nil && typ == protowire.BytesType {
		*dst = append(*dst, v)
	}
	return n, err
}

func (x *ListValue) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	return appendValues(b, 1, x.Items)
}

func (x *ListValue) UnmarshalWire(b []byte) error {
	*x = ListValue{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeValueItem(num, typ, b, &x.Items)
		}
		return skipField(num, typ, b)
	})
}

func (x *SetValue) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	return appendValues(b, 1, x.Items)
}

func (x *SetValue) UnmarshalWire(b []byte) error {
	*x = SetValue{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeValueItem(num, typ, b, &x.Items)
		}
		return skipField(num, typ, b)
	})
}

func (x *RoleRef) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.RoleName)
	return appendVarint(b, 2, uint64(int64(x.RoleId)))
}

func (x *RoleRef) UnmarshalWire(b []byte) error {
	*x = RoleRef{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(num, typ, b, &x.RoleName)
		case 2:
			return consumeVarint(num, typ, b, func(v uint64) { x.RoleId = int32(v) })
		}
		return skipField(num, typ, b)
	})
}

func (x *Arg) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.Name)
	if x.Value != nil {
		b = appendMessage(b, 2, x.Value)
	}
	return b
}

func (x *Arg) UnmarshalWire(b []byte) error {
	*x = Arg{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(num, typ, b, &x.Name)
		case 2:
			return consumeSingular(num, typ, b, &x.Value)
		}
		return skipField(num, typ, b)
	})
}

func (x *Interval) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendVarint(b, 1, uint64(x.StartUnixNano))
	return appendVarint(b, 2, uint64(x.EndUnixNano))
}

func (x *Interval) UnmarshalWire(b []byte) error {
	*x = Interval{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeVarint(num, typ, b, func(v uint64) { x.StartUnixNano = int64(v) })
		case 2:
			return consumeVarint(num, typ, b, func(v uint64) { x.EndUnixNano = int64(v) })
		}
		return skipField(num, typ, b)
	})
}

func (x *ExecOptions) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	return appendVarint(b, 1, protowire.EncodeBool(x.CaptureState))
}

func (x *ExecOptions) UnmarshalWire(b []byte) error {
	*x = ExecOptions{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeVarint(num, typ, b, func(v uint64) { x.CaptureState = protowire.DecodeBool(v) })
		}
		return skipField(num, typ, b)
	})
}

// stateEntry is the synthetic entry message of the RoleState.state map field.
type stateEntry struct {
	key   string
	value *Value
}

func (e *stateEntry) AppendWire(b []byte) []byte {
	b = appendString(b, 1, e.key)
	if e.value != nil {
		b = appendMessage(b, 2, e.value)
	}
	return b
}

func (e *stateEntry) UnmarshalWire(b []byte) error {
	*e = stateEntry{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(num, typ, b, &e.key)
		case 2:
			return consumeSingular(num, typ, b, &e.value)
		}
		return skipField(num, typ, b)
	})
}

func (x *RoleState) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Role != nil {
		b = appendMessage(b, 1, x.Role)
	}
	keys := make([]string, 0, len(x.State))
	for k := range x.State {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		b = appendMessage(b, 2, &stateEntry{key: k, value: x.State[k]})
	}
	return b
}

func (x *RoleState) UnmarshalWire(b []byte) error {
	*x = RoleState{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeSingular(num, typ, b, &x.Role)
		case 2:
			var e stateEntry
			n, err := consumeMessage(num, typ, b, &e)
			if err == nil && typ == protowire.BytesType {
				if x.State == nil {
					x.State = make(map[string]*Value)
				}
				if e.value == nil {
					e.value = new(Value)
				}
				x.State[e.key] = e.value
			}
			return n, err
		}
		return skipField(num, typ, b)
	})
}

func (x *InitRequest) AppendWire(b []byte) []byte {
	if x == nil || x.Options == nil {
		return b
	}
	return appendMessage(b, 1, x.Options)
}

func (x *InitRequest) UnmarshalWire(b []byte) error {
	*x = InitRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeSingular(num, typ, b, &x.Options)
		}
		return skipField(num, typ, b)
	})
}

func appendRoleRefs(b []byte, num protowire.Number, refs []*RoleRef) []byte {
	for _, r := range refs {
		b = appendMessage(b, num, r)
	}
	return b
}

func appendRoleStates(b []byte, num protowire.Number, states []*RoleState) []byte {
	for _, s := range states {
		b = appendMessage(b, num, s)
	}
	return b
}

func consumeRoleRef(num protowire.Number, typ protowire.Type, b []byte, dst *[]*RoleRef) (int, error) {
	r := new(RoleRef)
	n, err := consumeMessage(num, typ, b, r)
	if err == nil && typ == protowire.BytesType {
		*dst = append(*dst, r)
	}
	return n, err
}

func consumeRoleState(num protowire.Number, typ protowire.Type, b []byte, dst *[]*RoleState) (int, error) {
	s := new(RoleState)
	n, err := consumeMessage(num, typ, b, s)
	if err == nil && typ == protowire.BytesType {
		*dst = append(*dst, s)
	}
	return n, err
}

func (x *InitResponse) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Status != nil {
		b = appendMessage(b, 1, x.Status)
	}
	b = appendRoleRefs(b, 2, x.Roles)
	return appendRoleStates(b, 3, x.RoleStates)
}

func (x *InitResponse) UnmarshalWire(b []byte) error {
	*x = InitResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeSingular(num, typ, b, &x.Status)
		case 2:
			return consumeRoleRef(num, typ, b, &x.Roles)
		case 3:
			return consumeRoleState(num, typ, b, &x.RoleStates)
		}
		return skipField(num, typ, b)
	})
}

func (x *CleanupRequest) AppendWire(b []byte) []byte {
	return b
}

func (x *CleanupRequest) UnmarshalWire(b []byte) error {
	return consumeFields(b, skipField)
}

func (x *CleanupResponse) AppendWire(b []byte) []byte {
	if x == nil || x.Status == nil {
		return b
	}
	return appendMessage(b, 1, x.Status)
}

func (x *CleanupResponse) UnmarshalWire(b []byte) error {
	*x = CleanupResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeSingular(num, typ, b, &x.Status)
		}
		return skipField(num, typ, b)
	})
}

func (x *ExecuteActionRequest) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Role != nil {
		b = appendMessage(b, 1, x.Role)
	}
	b = appendString(b, 2, x.ActionName)
	for _, a := range x.Args {
		b = appendMessage(b, 3, a)
	}
	if x.Options != nil {
		b = appendMessage(b, 4, x.Options)
	}
	return b
}

func (x *ExecuteActionRequest) UnmarshalWire(b []byte) error {
	*x = ExecuteActionRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeSingular(num, typ, b, &x.Role)
		case 2:
			return consumeString(num, typ, b, &x.ActionName)
		case 3:
			a := new(Arg)
			n, err := consumeMessage(num, typ, b, a)
			if err == nil && typ == protowire.BytesType {
				x.Args = append(x.Args, a)
			}
			return n, err
		case 4:
			return consumeSingular(num, typ, b, &x.Options)
		}
		return skipField(num, typ, b)
	})
}

func (x *ExecuteActionResponse) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendValues(b, 1, x.ReturnValues)
	if x.ExecTime != nil {
		b = appendMessage(b, 2, x.ExecTime)
	}
	if x.Status != nil {
		b = appendMessage(b, 3, x.Status)
	}
	b = appendRoleRefs(b, 4, x.Roles)
	return appendRoleStates(b, 5, x.RoleStates)
}

func (x *ExecuteActionResponse) UnmarshalWire(b []byte) error {
	*x = ExecuteActionResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeValueItem(num, typ, b, &x.ReturnValues)
		case 2:
			return consumeSingular(num, typ, b, &x.ExecTime)
		case 3:
			return consumeSingular(num, typ, b, &x.Status)
		case 4:
			return consumeRoleRef(num, typ, b, &x.Roles)
		case 5:
			return consumeRoleState(num, typ, b, &x.RoleStates)
		}
		return skipField(num, typ, b)
	})
}

func (x *ActionSequence) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	for _, r := range x.Requests {
		b = appendMessage(b, 1, r)
	}
	if x.Options != nil {
		b = appendMessage(b, 2, x.Options)
	}
	return b
}

func (x *ActionSequence) UnmarshalWire(b []byte) error {
	*x = ActionSequence{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			r := new(ExecuteActionRequest)
			n, err := consumeMessage(num, typ, b, r)
			if err == nil && typ == protowire.BytesType {
				x.Requests = append(x.Requests, r)
			}
			return n, err
		case 2:
			return consumeSingular(num, typ, b, &x.Options)
		}
		return skipField(num, typ, b)
	})
}

func (x *ExecuteActionSequencesRequest) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	for _, s := range x.ActionSequence {
		b = appendMessage(b, 1, s)
	}
	return b
}

func (x *ExecuteActionSequencesRequest) UnmarshalWire(b []byte) error {
	*x = ExecuteActionSequencesRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			s := new(ActionSequence)
			n, err := consumeMessage(num, typ, b, s)
			if err == nil && typ == protowire.BytesType {
				x.ActionSequence = append(x.ActionSequence, s)
			}
			return n, err
		}
		return skipField(num, typ, b)
	})
}

func (x *ActionSequenceResult) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	for _, r := range x.Responses {
		b = appendMessage(b, 1, r)
	}
	return b
}

func (x *ActionSequenceResult) UnmarshalWire(b []byte) error {
	*x = ActionSequenceResult{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			r := new(ExecuteActionResponse)
			n, err := consumeMessage(num, typ, b, r)
			if err == nil && typ == protowire.BytesType {
				x.Responses = append(x.Responses, r)
			}
			return n, err
		}
		return skipField(num, typ, b)
	})
}

func (x *ExecuteActionSequencesResponse) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	for _, r := range x.Results {
		b = appendMessage(b, 1, r)
	}
	return b
}

func (x *ExecuteActionSequencesResponse) UnmarshalWire(b []byte) error {
	*x = ExecuteActionSequencesResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			r := new(ActionSequenceResult)
			n, err := consumeMessage(num, typ, b, r)
			if err == nil && typ == protowire.BytesType {
				x.Results = append(x.Results, r)
			}
			return n, err
		}
		return skipField(num, typ, b)
	})
}
