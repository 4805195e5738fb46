package transcode

import (
	"github.com/wippyai/transcode/codec"
	"github.com/wippyai/transcode/transcoder"
	"github.com/wippyai/transcode/transcodings"
)

// Re-exports of the main surface so simple hosts only import the root.
type (
	Transcoder  = transcoder.Transcoder
	Transcoding = transcoder.Transcoding
	Registry    = transcoder.Registry
	Codec       = codec.Codec
	Tuple       = transcodings.Tuple
)

// New returns a JSON-backed Transcoder with the tuple rule pre-registered.
// Register further transcodings before first use.
func New() *Transcoder {
	return NewWithCodec(codec.JSON())
}

// NewWithCodec returns a Transcoder over the given codec with the tuple
// rule pre-registered.
func NewWithCodec(c codec.Codec) *Transcoder {
	tr := transcoder.New(c)
	// Cannot collide on an empty registry.
	_ = tr.Register(transcodings.TupleAsList())
	return tr
}
