// Package transcode provides a polymorphic, extensible object transcoder:
// it converts arbitrary in-memory values, including user-defined types no
// generic serializer knows about, into bytes and back with perfect
// fidelity, using pluggable per-type conversion rules.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	transcode/           Root package: convenience constructors + re-exports
//	├── transcoder/      Core engine, rule registry, Transcoding interface
//	├── codec/           Byte serialization: JSON, CBOR, msgpack
//	├── transcodings/    Ready-made rules: tuple, time.Time, uuid.UUID
//	└── errors/          Structured error types
//
// # Quick Start
//
//	tr := transcode.New() // JSON-backed, tuple rule pre-registered
//	if err := tr.Register(transcodings.TimeAsISO()); err != nil {
//		log.Fatal(err)
//	}
//
//	data, err := tr.Encode(map[string]any{
//		"at":     time.Now(),
//		"point":  transcode.Tuple{int64(3), int64(4)},
//		"labels": []any{"a", "b"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	value, err := tr.Decode(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Custom types plug in by implementing transcoder.Transcoding; see that
// package for the envelope format, the native value model, and the
// concurrency discipline.
package transcode
