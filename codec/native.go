package codec

import (
	"math"
	"reflect"

	"github.com/wippyai/transcode/errors"
)

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// normalize rewrites a freshly decoded tree into the canonical native model.
// Binary codecs hand back whatever width the wire used (uint64, float32,
// interface-keyed maps); callers of Unmarshal must never see those.
func normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, string, int64, float64:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, errors.Overflow(errors.PhaseDecode, nil, x, "int64")
		}
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, errors.Overflow(errors.PhaseDecode, nil, x, "int64")
		}
		return int64(x), nil
	case float32:
		return float64(x), nil
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			n, err := normalize(elem)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, elem := range x {
			n, err := normalize(elem)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, elem := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Value(k).
					Detail("map key is not a string").
					Build()
			}
			n, err := normalize(elem)
			if err != nil {
				return nil, err
			}
			out[ks] = n
		}
		return out, nil
	default:
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			GoType(typeName(v)).
			Detail("decoded value outside the native model").
			Build()
	}
}
