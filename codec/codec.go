package codec

// Codec converts between byte buffers and the canonical native value tree.
//
// Marshal accepts a tree built from the canonical native model (nil, bool,
// int64, float64, string, []any, map[string]any). Unmarshal must return a
// tree in exactly that model, whatever the wire format's own type system
// looks like; each implementation is responsible for its own normalization.
// Implementations should be deterministic and safe for concurrent use.
type Codec interface {
	ContentType() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte) (any, error)
}

// Registry maps content type aliases to codecs.
type Registry struct{ byType map[string]Codec }

// NewRegistry constructs a registry preloaded with the built-in codec that
// doesn't require initialization: JSON. CBOR can be added explicitly via
// Register after constructing it with CBOR(), msgpack via Register(Msgpack()).
func NewRegistry() *Registry {
	r := &Registry{byType: make(map[string]Codec)}
	r.Register(JSON())
	return r
}

// Register adds a codec.
func (r *Registry) Register(c Codec) { r.byType[c.ContentType()] = c }

// Get returns a codec by content type, or nil.
func (r *Registry) Get(contentType string) Codec { return r.byType[contentType] }
