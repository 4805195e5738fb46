package codec

import (
	"bytes"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Pooled encoders and decoders keep the hot path allocation-light; both are
// reset against a fresh buffer on every use.

type msgpackEncoderEntry struct {
	buf *bytes.Buffer
	enc *msgpack.Encoder
}

var msgpackEncoderPool = sync.Pool{
	New: func() any {
		buf := new(bytes.Buffer)
		return &msgpackEncoderEntry{buf: buf, enc: msgpack.NewEncoder(buf)}
	},
}

var msgpackDecoderPool = sync.Pool{
	New: func() any {
		dec := msgpack.NewDecoder(nil)
		// Loose interface decoding maps wire integers to int64/uint64 and
		// byte strings to Go strings instead of the narrowest fitting type.
		dec.UseLooseInterfaceDecoding(true)
		return dec
	},
}

type msgpackCodec struct{}

// Msgpack returns the MessagePack codec. Binary and compact, it preserves
// the int64/float64 distinction and is the fastest of the built-in codecs
// for large trees.
func Msgpack() Codec { return msgpackCodec{} }

func (msgpackCodec) ContentType() string { return "application/msgpack" }

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	e := msgpackEncoderPool.Get().(*msgpackEncoderEntry)
	defer msgpackEncoderPool.Put(e)

	e.buf.Reset()
	e.enc.Reset(e.buf)
	if err := e.enc.Encode(v); err != nil {
		return nil, err
	}

	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())
	return out, nil
}

func (msgpackCodec) Unmarshal(data []byte) (any, error) {
	dec := msgpackDecoderPool.Get().(*msgpack.Decoder)
	defer msgpackDecoderPool.Put(dec)

	dec.Reset(bytes.NewReader(data))
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalize(v)
}
