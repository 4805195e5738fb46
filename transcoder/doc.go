// Package transcoder implements polymorphic, extensible object transcoding.
//
// The transcoder converts arbitrary in-memory values, including user-defined
// types unknown to a generic serializer, into bytes and back with perfect
// fidelity. Types the wire format cannot represent natively are handled by
// user-pluggable conversion rules.
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Go value ←→ [Transcoder + Registry] ←→ native tree ←→ bytes │
//	└──────────────────────────────────────────────────────────────┘
//
// # Native model
//
// Values built from the canonical native model pass straight through:
//
//	nil, bool, int64, float64, string, []any, map[string]any
//
// Wider scalar kinds are normalized on encode (int/int8..int32 → int64,
// uint kinds → int64 with overflow checking, float32 → float64). Typed
// slices and maps other than []any and map[string]any are not native; they
// need a registered Transcoding or encoding fails with unsupported_type.
//
// # Tagged envelopes
//
// Every custom value is substituted on the wire with a two-key map:
//
//	{"_type_": <wire name>, "_data_": <rule's encoded payload>}
//
// The engine reduces the envelope itself after substitution, so a rule's
// payload may contain further custom values to arbitrary depth. On decode,
// any map whose key set is exactly {"_type_", "_data_"} is read as an
// envelope. A user map that organically has exactly those two keys is
// therefore indistinguishable from an envelope; this ambiguity is accepted
// for wire compatibility and deliberately not guarded against. Hosts that
// cannot rule such maps out should nest their data one level deeper.
//
// # Usage
//
//	tr := transcoder.New(codec.JSON())
//	if err := tr.Register(transcodings.TupleAsList()); err != nil {
//		log.Fatal(err)
//	}
//
//	data, err := tr.Encode(map[string]any{"point": transcodings.Tuple{int64(1), int64(2)}})
//	...
//	value, err := tr.Decode(data)
//
// # Errors
//
// Failures abort the whole call; no partial results, no silent coercion.
// Encoding an uncovered type fails with unsupported_type, decoding an
// unknown tag with unknown_wire_name, duplicate registrations with
// duplicate_type/duplicate_name. Codec parse errors propagate unchanged.
// Engine errors carry the path to the offending node:
//
//	[encode] unsupported_type at event.payload.[3]: Go type mypkg.Money - ...
//
// # Thread safety
//
// Registration follows a single-writer-then-many-readers discipline:
// populate the registry before the first Encode/Decode, then the Transcoder
// is safe for concurrent use. Encode and Decode are pure, reentrant, and
// take no locks. Recursion depth is bounded only by the call stack;
// pathologically deep inputs are a caller responsibility.
package transcoder
