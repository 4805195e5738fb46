package transcoder_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wippyai/transcode/codec"
	"github.com/wippyai/transcode/transcoder"
	"github.com/wippyai/transcode/transcodings"
)

// benchDocument is a representative persistence record: identifiers,
// a timestamp, scalars, containers, and a nested value object.
func benchDocument() map[string]any {
	return map[string]any{
		"originator_id":      uuid.MustParse("b2723fe2-c01a-40d2-875e-a3aac6a09ff5"),
		"originator_version": int64(123),
		"timestamp":          time.Date(2026, 8, 26, 12, 0, 0, 123456789, time.UTC),
		"a_str":              "hello",
		"b_int":              int64(1234567),
		"c_tuple":            transcodings.Tuple{int64(1), int64(2), int64(3), int64(4), int64(5), int64(6), int64(7)},
		"d_list":             []any{int64(1), int64(2), int64(3), int64(4), int64(5), int64(6), int64(7)},
		"e_dict":             map[string]any{"a": int64(1), "b": int64(2), "c": int64(3)},
		"f_valueobj":         valueObject2{Inner: valueObject1{ID: uuid.MustParse("b2723fe2-c01a-40d2-875e-a3aac6a09ff5")}},
	}
}

func benchTranscoder(b *testing.B, c codec.Codec) *transcoder.Transcoder {
	b.Helper()
	tr := transcoder.New(c)
	for _, tc := range []transcoder.Transcoding{
		transcodings.TupleAsList(),
		transcodings.TimeAsISO(),
		transcodings.UUIDAsHex(),
		valueObject1AsMap(),
		valueObject2AsMap(),
	} {
		if err := tr.Register(tc); err != nil {
			b.Fatalf("Register failed: %v", err)
		}
	}
	return tr
}

func benchCodecs(b *testing.B) map[string]codec.Codec {
	b.Helper()
	cb, err := codec.CBOR()
	if err != nil {
		b.Fatalf("CBOR init failed: %v", err)
	}
	return map[string]codec.Codec{
		"json":    codec.JSON(),
		"cbor":    cb,
		"msgpack": codec.Msgpack(),
	}
}

func BenchmarkEncode(b *testing.B) {
	doc := benchDocument()
	for name, c := range benchCodecs(b) {
		b.Run(name, func(b *testing.B) {
			tr := benchTranscoder(b, c)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := tr.Encode(doc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	doc := benchDocument()
	for name, c := range benchCodecs(b) {
		b.Run(name, func(b *testing.B) {
			tr := benchTranscoder(b, c)
			data, err := tr.Encode(doc)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := tr.Decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
