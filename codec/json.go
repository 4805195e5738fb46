package codec

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"

	"github.com/wippyai/transcode/errors"
)

type jsonCodec struct{}

// JSON returns the default JSON codec.
//
// Numbers are decoded with UseNumber and split by lexical form: tokens
// without a fraction or exponent become int64, everything else float64.
// JSON cannot tell float64(3) from int64(3) on the wire; use CBOR or
// msgpack when that distinction matters.
func JSON() Codec { return jsonCodec{} }

func (jsonCodec) ContentType() string { return "application/json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.InvalidData(errors.PhaseDecode, nil, "trailing data after JSON value")
	}
	return splitNumbers(v)
}

// splitNumbers rewrites json.Number leaves into int64 or float64.
func splitNumbers(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		s := x.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := x.Int64(); err == nil {
				return i, nil
			}
		}
		f, err := x.Float64()
		if err != nil {
			return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "unrepresentable JSON number "+s)
		}
		return f, nil
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			n, err := splitNumbers(elem)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, elem := range x {
			n, err := splitNumbers(elem)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	default:
		return x, nil
	}
}
