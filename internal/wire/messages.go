package wire

import "strconv"

// StatusCode is the outcome code carried by Status.
type StatusCode int32

const (
	StatusCode_STATUS_UNSPECIFIED      StatusCode = 0
	StatusCode_STATUS_OK               StatusCode = 1
	StatusCode_STATUS_NOT_IMPLEMENTED  StatusCode = 2
	StatusCode_STATUS_EXECUTION_FAILED StatusCode = 3
)

var statusCodeNames = map[StatusCode]string{
	StatusCode_STATUS_UNSPECIFIED:      "STATUS_UNSPECIFIED",
	StatusCode_STATUS_OK:               "STATUS_OK",
	StatusCode_STATUS_NOT_IMPLEMENTED:  "STATUS_NOT_IMPLEMENTED",
	StatusCode_STATUS_EXECUTION_FAILED: "STATUS_EXECUTION_FAILED",
}

func (c StatusCode) String() string {
	if name, ok := statusCodeNames[c]; ok {
		return name
	}
	return "STATUS_CODE_" + strconv.Itoa(int(c))
}

// Sentinel is the wire form of a sentinel value.
type Sentinel int32

const (
	Sentinel_SENTINEL_IGNORE Sentinel = 0
)

type Status struct {
	Code    StatusCode
	Message string
}

func (x *Status) GetCode() StatusCode {
	if x != nil {
		return x.Code
	}
	return StatusCode_STATUS_UNSPECIFIED
}

func (x *Status) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

// Value is a tagged value. A Value with a nil Kind is None.
type Value struct {
	Kind isValue_Kind
}

type isValue_Kind interface {
	isValue_Kind()
}

type Value_StrValue struct{ StrValue string }
type Value_IntValue struct{ IntValue int64 }
type Value_BoolValue struct{ BoolValue bool }
type Value_MapValue struct{ MapValue *MapValue }
type Value_ListValue struct{ ListValue *ListValue }
type Value_SetValue struct{ SetValue *SetValue }
type Value_SentinelValue struct{ SentinelValue Sentinel }

func (*Value_StrValue) isValue_Kind()      {}
func (*Value_IntValue) isValue_Kind()      {}
func (*Value_BoolValue) isValue_Kind()     {}
func (*Value_MapValue) isValue_Kind()      {}
func (*Value_ListValue) isValue_Kind()     {}
func (*Value_SetValue) isValue_Kind()      {}
func (*Value_SentinelValue) isValue_Kind() {}

func (x *Value) GetKind() isValue_Kind {
	if x != nil {
		return x.Kind
	}
	return nil
}

func (x *Value) GetStrValue() string {
	if k, ok := x.GetKind().(*Value_StrValue); ok {
		return k.StrValue
	}
	return ""
}

func (x *Value) GetIntValue() int64 {
	if k, ok := x.GetKind().(*Value_IntValue); ok {
		return k.IntValue
	}
	return 0
}

func (x *Value) GetBoolValue() bool {
	if k, ok := x.GetKind().(*Value_BoolValue); ok {
		return k.BoolValue
	}
	return false
}

func (x *Value) GetMapValue() *MapValue {
	if k, ok := x.GetKind().(*Value_MapValue); ok {
		return k.MapValue
	}
	return nil
}

func (x *Value) GetListValue() *ListValue {
	if k, ok := x.GetKind().(*Value_ListValue); ok {
		return k.ListValue
	}
	return nil
}

func (x *Value) GetSetValue() *SetValue {
	if k, ok := x.GetKind().(*Value_SetValue); ok {
		return k.SetValue
	}
	return nil
}

func (x *Value) GetSentinelValue() Sentinel {
	if k, ok := x.GetKind().(*Value_SentinelValue); ok {
		return k.SentinelValue
	}
	return Sentinel_SENTINEL_IGNORE
}

type MapEntry struct {
	Key   *Value
	Value *Value
}

func (x *MapEntry) GetKey() *Value {
	if x != nil {
		return x.Key
	}
	return nil
}

func (x *MapEntry) GetValue() *Value {
	if x != nil {
		return x.Value
	}
	return nil
}

type MapValue struct {
	Entries []*MapEntry
}

func (x *MapValue) GetEntries() []*MapEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ListValue struct {
	Items []*Value
}

func (x *ListValue) GetItems() []*Value {
	if x != nil {
		return x.Items
	}
	return nil
}

type SetValue struct {
	Items []*Value
}

func (x *SetValue) GetItems() []*Value {
	if x != nil {
		return x.Items
	}
	return nil
}

type RoleRef struct {
	RoleName string
	RoleId   int32
}

func (x *RoleRef) GetRoleName() string {
	if x != nil {
		return x.RoleName
	}
	return ""
}

func (x *RoleRef) GetRoleId() int32 {
	if x != nil {
		return x.RoleId
	}
	return 0
}

type Arg struct {
	Name  string
	Value *Value
}

func (x *Arg) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Arg) GetValue() *Value {
	if x != nil {
		return x.Value
	}
	return nil
}

type Interval struct {
	StartUnixNano int64
	EndUnixNano   int64
}

func (x *Interval) GetStartUnixNano() int64 {
	if x != nil {
		return x.StartUnixNano
	}
	return 0
}

func (x *Interval) GetEndUnixNano() int64 {
	if x != nil {
		return x.EndUnixNano
	}
	return 0
}

type ExecOptions struct {
	CaptureState bool
}

func (x *ExecOptions) GetCaptureState() bool {
	if x != nil {
		return x.CaptureState
	}
	return false
}

type RoleState struct {
	Role  *RoleRef
	State map[string]*Value
}

func (x *RoleState) GetRole() *RoleRef {
	if x != nil {
		return x.Role
	}
	return nil
}

func (x *RoleState) GetState() map[string]*Value {
	if x != nil {
		return x.State
	}
	return nil
}

type InitRequest struct {
	Options *ExecOptions
}

func (x *InitRequest) GetOptions() *ExecOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

type InitResponse struct {
	Status     *Status
	Roles      []*RoleRef
	RoleStates []*RoleState
}

func (x *InitResponse) GetStatus() *Status {
	if x != nil {
		return x.Status
	}
	return nil
}

func (x *InitResponse) GetRoles() []*RoleRef {
	if x != nil {
		return x.Roles
	}
	return nil
}

func (x *InitResponse) GetRoleStates() []*RoleState {
	if x != nil {
		return x.RoleStates
	}
	return nil
}

type CleanupRequest struct{}

type CleanupResponse struct {
	Status *Status
}

func (x *CleanupResponse) GetStatus() *Status {
	if x != nil {
		return x.Status
	}
	return nil
}

type ExecuteActionRequest struct {
	Role       *RoleRef
	ActionName string
	Args       []*Arg
	Options    *ExecOptions
}

func (x *ExecuteActionRequest) GetRole() *RoleRef {
	if x != nil {
		return x.Role
	}
	return nil
}

func (x *ExecuteActionRequest) GetActionName() string {
	if x != nil {
		return x.ActionName
	}
	return ""
}

func (x *ExecuteActionRequest) GetArgs() []*Arg {
	if x != nil {
		return x.Args
	}
	return nil
}

func (x *ExecuteActionRequest) GetOptions() *ExecOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

type ExecuteActionResponse struct {
	ReturnValues []*Value
	ExecTime     *Interval
	Status       *Status
	Roles        []*RoleRef
	RoleStates   []*RoleState
}

func (x *ExecuteActionResponse) GetReturnValues() []*Value {
	if x != nil {
		return x.ReturnValues
	}
	return nil
}

func (x *ExecuteActionResponse) GetExecTime() *Interval {
	if x != nil {
		return x.ExecTime
	}
	return nil
}

func (x *ExecuteActionResponse) GetStatus() *Status {
	if x != nil {
		return x.Status
	}
	return nil
}

func (x *ExecuteActionResponse) GetRoles() []*RoleRef {
	if x != nil {
		return x.Roles
	}
	return nil
}

func (x *ExecuteActionResponse) GetRoleStates() []*RoleState {
	if x != nil {
		return x.RoleStates
	}
	return nil
}

type ActionSequence struct {
	Requests []*ExecuteActionRequest
	Options  *ExecOptions
}

func (x *ActionSequence) GetRequests() []*ExecuteActionRequest {
	if x != nil {
		return x.Requests
	}
	return nil
}

func (x *ActionSequence) GetOptions() *ExecOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

type ExecuteActionSequencesRequest struct {
	ActionSequence []*ActionSequence
}

func (x *ExecuteActionSequencesRequest) GetActionSequence() []*ActionSequence {
	if x != nil {
		return x.ActionSequence
	}
	return nil
}

type ActionSequenceResult struct {
	Responses []*ExecuteActionResponse
}

func (x *ActionSequenceResult) GetResponses() []*ExecuteActionResponse {
	if x != nil {
		return x.Responses
	}
	return nil
}

type ExecuteActionSequencesResponse struct {
	Results []*ActionSequenceResult
}

func (x *ExecuteActionSequencesResponse) GetResults() []*ActionSequenceResult {
	if x != nil {
		return x.Results
	}
	return nil
}
