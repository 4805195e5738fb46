package transcoder

import (
	"math"
	"reflect"
	"strconv"

	"github.com/wippyai/transcode/codec"
	"github.com/wippyai/transcode/errors"
)

// Reserved envelope keys. A native map whose key set is exactly these two
// keys is always read back as an envelope, never as user data. Changing
// either key breaks decoding of previously persisted bytes.
const (
	TypeKey = "_type_"
	DataKey = "_data_"
)

// Transcoder converts arbitrary values to bytes and back. Values built from
// the native model pass straight through to the codec; everything else is
// substituted with a tagged envelope via a registered Transcoding.
//
// Encode and Decode are pure tree transformations with no shared mutable
// state between calls. A Transcoder is safe for concurrent use once its
// registry is fully populated.
type Transcoder struct {
	registry *Registry
	codec    codec.Codec
}

// New creates a Transcoder with an empty registry over the given codec.
func New(c codec.Codec) *Transcoder {
	return &Transcoder{registry: NewRegistry(), codec: c}
}

// NewWithRegistry creates a Transcoder sharing an already-populated
// registry, e.g. to serve the same schema over several wire formats.
func NewWithRegistry(c codec.Codec, reg *Registry) *Transcoder {
	return &Transcoder{registry: reg, codec: c}
}

// Register adds a transcoding. Must be called before the first
// Encode/Decode; registration is not safe against concurrent use.
func (t *Transcoder) Register(tc Transcoding) error {
	return t.registry.Register(tc)
}

// Registry exposes the transcoder's registry for lookups and sharing.
func (t *Transcoder) Registry() *Registry { return t.registry }

// Codec returns the native codec this transcoder serializes with.
func (t *Transcoder) Codec() codec.Codec { return t.codec }

// Encode reduces v to the native model, substituting every custom value
// with a tagged envelope, and serializes the result. It fails with
// unsupported_type if any reachable node's type is neither native nor
// covered by a registered transcoding; nothing partial is ever returned.
func (t *Transcoder) Encode(v any) ([]byte, error) {
	native, err := t.reduce(v, nil)
	if err != nil {
		return nil, err
	}
	return t.codec.Marshal(native)
}

// Decode deserializes data and resolves every tagged envelope back into its
// custom value. Codec parse errors propagate unchanged; an envelope whose
// tag is not registered fails with unknown_wire_name.
func (t *Transcoder) Decode(data []byte) (any, error) {
	native, err := t.codec.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return t.resolve(native, nil)
}

// reduce walks v depth-first, returning a tree in the canonical native
// model. Containers are rebuilt, never mutated in place.
func (t *Transcoder) reduce(v any, path []string) (any, error) {
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
			return nil, errors.Overflow(errors.PhaseEncode, path, x, "int64")
		}
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, errors.Overflow(errors.PhaseEncode, path, x, "int64")
		}
		return int64(x), nil
	case float32:
		return float64(x), nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, elem := range x {
			enc, err := t.reduce(elem, append(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = enc
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			enc, err := t.reduce(elem, append(path, "["+strconv.Itoa(i)+"]"))
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	default:
		tc, ok := t.registry.lookupType(reflect.TypeOf(v))
		if !ok {
			return nil, errors.UnsupportedType(path, reflect.TypeOf(v).String())
		}
		payload, err := tc.Encode(v)
		if err != nil {
			return nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
				Path(path...).
				WireName(tc.WireName()).
				Cause(err).
				Detail("transcoding encode failed").
				Build()
		}
		// Reduce the whole envelope, not just the payload: a rule's output
		// may itself contain values needing further transcoding.
		return t.reduce(map[string]any{
			TypeKey: tc.WireName(),
			DataKey: payload,
		}, path)
	}
}

// resolve walks a native tree, replacing every envelope with the value its
// transcoding decodes. Children resolve before the envelope check so nested
// envelopes inside payloads are already restored when the rule runs.
func (t *Transcoder) resolve(v any, path []string) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, elem := range x {
			dec, err := t.resolve(elem, append(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = dec
		}
		if len(out) != 2 {
			return out, nil
		}
		tag, hasTag := out[TypeKey]
		payload, hasData := out[DataKey]
		if !hasTag || !hasData {
			return out, nil
		}
		name, ok := tag.(string)
		if !ok {
			return nil, errors.InvalidData(errors.PhaseDecode, append(path, TypeKey), "envelope type tag is not a string")
		}
		tc, found := t.registry.lookupName(name)
		if !found {
			return nil, errors.UnknownWireName(path, name)
		}
		restored, err := tc.Decode(payload)
		if err != nil {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path(path...).
				WireName(name).
				Cause(err).
				Detail("transcoding decode failed").
				Build()
		}
		return restored, nil
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			dec, err := t.resolve(elem, append(path, "["+strconv.Itoa(i)+"]"))
			if err != nil {
				return nil, err
			}
			out[i] = dec
		}
		return out, nil
	default:
		return x, nil
	}
}
