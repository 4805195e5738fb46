package transcoder

import (
	"reflect"
)

// Transcoding is a named, typed conversion rule between one custom Go type
// and a native-representable value.
//
// Encode turns an instance of SourceType into a value the engine can reduce
// further: a native scalar, []any, map[string]any, or another value covered
// by a registered transcoding. Decode must exactly reverse Encode; the
// round-trip law Decode(Encode(x)) == x is what the engine's tests assert
// for every rule.
//
// WireName is persisted inside envelopes. It must stay stable across
// versions: renaming it breaks decoding of previously written bytes.
//
// Implementations must be stateless and safe for concurrent use.
type Transcoding interface {
	SourceType() reflect.Type
	WireName() string
	Encode(v any) (any, error)
	Decode(data any) (any, error)
}

type funcTranscoding struct {
	typ  reflect.Type
	name string
	enc  func(any) (any, error)
	dec  func(any) (any, error)
}

// NewFunc builds a Transcoding from a source type, a wire name, and a pair
// of conversion functions. Useful for one-off rules in tests and hosts that
// don't want a dedicated type per rule.
func NewFunc(t reflect.Type, name string, enc, dec func(any) (any, error)) Transcoding {
	return funcTranscoding{typ: t, name: name, enc: enc, dec: dec}
}

func (f funcTranscoding) SourceType() reflect.Type { return f.typ }

func (f funcTranscoding) WireName() string { return f.name }

func (f funcTranscoding) Encode(v any) (any, error) { return f.enc(v) }

func (f funcTranscoding) Decode(data any) (any, error) { return f.dec(data) }
