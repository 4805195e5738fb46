// Package codec provides the byte-serialization collaborators used by the
// transcoder engine.
//
// A Codec converts between byte buffers and the canonical native value tree:
//
//	nil, bool, int64, float64, string, []any, map[string]any
//
// The engine reduces arbitrary values to this model before Marshal and
// expects exactly this model back from Unmarshal; codecs normalize their
// wire format's own widths (uint64, float32, interface-keyed maps) at the
// boundary so the engine never sees them.
//
// # Built-in codecs
//
//	Codec      Content type            Notes
//	──────────────────────────────────────────────────────────────────
//	JSON()     application/json        human-readable; int64(3) and
//	                                   float64(3) collapse on the wire
//	CBOR()     application/cbor        deterministic RFC 8949 encoding
//	Msgpack()  application/msgpack     compact, pooled encoders
//
// # Registry
//
// Hosts that negotiate formats can index codecs by content type:
//
//	reg := codec.NewRegistry() // JSON preloaded
//	if c, err := codec.CBOR(); err == nil {
//		reg.Register(c)
//	}
//	reg.Register(codec.Msgpack())
//	c := reg.Get("application/cbor")
//
// All built-in codecs are stateless or internally pooled and safe for
// concurrent use.
package codec
