package transcodings

import (
	"fmt"
	"reflect"

	"github.com/wippyai/transcode/transcoder"
)

// Tuple is an ordered, fixed-by-convention grouping of values. It is a
// distinct type from []any, so the engine routes it through its transcoding
// instead of treating it as a native sequence, and round trips restore a
// Tuple rather than a plain slice.
type Tuple []any

type tupleAsList struct{}

// TupleAsList converts a Tuple to a native sequence and back.
// Wire name: "tuple_as_list".
func TupleAsList() transcoder.Transcoding { return tupleAsList{} }

func (tupleAsList) SourceType() reflect.Type { return reflect.TypeOf(Tuple(nil)) }

func (tupleAsList) WireName() string { return "tuple_as_list" }

func (tupleAsList) Encode(v any) (any, error) {
	t, ok := v.(Tuple)
	if !ok {
		return nil, fmt.Errorf("expected Tuple, got %T", v)
	}
	out := make([]any, len(t))
	copy(out, t)
	return out, nil
}

func (tupleAsList) Decode(data any) (any, error) {
	seq, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("expected sequence payload, got %T", data)
	}
	out := make(Tuple, len(seq))
	copy(out, seq)
	return out, nil
}
