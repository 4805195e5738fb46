package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // transcoding registration and lookup
	PhaseEncode   Phase = "encode"   // value to bytes
	PhaseDecode   Phase = "decode"   // bytes to value
)

// Kind categorizes the error
type Kind string

const (
	KindDuplicateType    Kind = "duplicate_type"
	KindDuplicateName    Kind = "duplicate_name"
	KindUnregisteredType Kind = "unregistered_type"
	KindUnregisteredName Kind = "unregistered_name"
	KindUnsupportedType  Kind = "unsupported_type"
	KindUnknownWireName  Kind = "unknown_wire_name"
	KindInvalidData      Kind = "invalid_data"
	KindOverflow         Kind = "overflow"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	WireName string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.WireName != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WireName != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wire name ")
			b.WriteString(fmt.Sprintf("%q", e.WireName))
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("wire name ")
			b.WriteString(fmt.Sprintf("%q", e.WireName))
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WireName != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WireName sets the wire name
func (b *Builder) WireName(n string) *Builder {
	b.err.WireName = n
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// DuplicateType reports a second registration for an already-registered type
func DuplicateType(goType, wireName string) *Error {
	return &Error{
		Phase:    PhaseRegister,
		Kind:     KindDuplicateType,
		GoType:   goType,
		WireName: wireName,
		Detail:   "a transcoding for this type is already registered",
	}
}

// DuplicateName reports a registration reusing an already-taken wire name
func DuplicateName(goType, wireName string) *Error {
	return &Error{
		Phase:    PhaseRegister,
		Kind:     KindDuplicateName,
		GoType:   goType,
		WireName: wireName,
		Detail:   "this wire name is already taken",
	}
}

// UnregisteredType reports a by-type lookup miss
func UnregisteredType(goType string) *Error {
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindUnregisteredType,
		GoType: goType,
		Detail: "no transcoding registered for this type",
	}
}

// UnregisteredName reports a by-name lookup miss
func UnregisteredName(wireName string) *Error {
	return &Error{
		Phase:    PhaseRegister,
		Kind:     KindUnregisteredName,
		WireName: wireName,
		Detail:   "no transcoding registered under this wire name",
	}
}

// UnsupportedType reports an encode-time value whose type is neither native
// nor covered by a registered transcoding
func UnsupportedType(path []string, goType string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnsupportedType,
		Path:   path,
		GoType: goType,
		Detail: "type is not serializable; define and register a transcoding for it",
	}
}

// UnknownWireName reports a decode-time envelope referencing a wire name
// absent from the registry
func UnknownWireName(path []string, wireName string) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindUnknownWireName,
		Path:     path,
		WireName: wireName,
		Detail:   "data is not deserializable; register a transcoding under this wire name",
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Overflow reports a value that cannot be represented in the target type
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		GoType: targetType,
		Detail: fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:  value,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
