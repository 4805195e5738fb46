package transcoder

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/transcode/errors"
)

// Registry owns the set of registered transcodings, indexed both by source
// type and by wire name. The two indexes always agree: Register inserts into
// both or into neither.
//
// Registries are append-only and follow a single-writer-then-many-readers
// discipline: populate before the first Encode/Decode, then treat as
// read-only. Lookups take no locks. There is no global registry; each
// Transcoder owns its own, so independently configured instances can
// coexist in one process.
type Registry struct {
	byType map[reflect.Type]Transcoding
	byName map[string]Transcoding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]Transcoding),
		byName: make(map[string]Transcoding),
	}
}

// Register adds a transcoding to both indexes. It rejects a rule whose
// source type already has a registration (duplicate_type) or whose wire
// name is already taken (duplicate_name), leaving the registry unchanged.
func (r *Registry) Register(tc Transcoding) error {
	t := tc.SourceType()
	name := tc.WireName()

	if t == nil {
		return errors.InvalidData(errors.PhaseRegister, nil, "transcoding has a nil source type")
	}
	if name == "" {
		return errors.InvalidData(errors.PhaseRegister, nil, "transcoding has an empty wire name")
	}

	if prev, ok := r.byType[t]; ok {
		return errors.DuplicateType(t.String(), prev.WireName())
	}
	if _, ok := r.byName[name]; ok {
		return errors.DuplicateName(t.String(), name)
	}

	r.byType[t] = tc
	r.byName[name] = tc

	Logger().Debug("registered transcoding",
		zap.String("go_type", t.String()),
		zap.String("wire_name", name))
	return nil
}

// LookupByType returns the transcoding for a source type.
func (r *Registry) LookupByType(t reflect.Type) (Transcoding, error) {
	tc, ok := r.byType[t]
	if !ok {
		name := "nil"
		if t != nil {
			name = t.String()
		}
		return nil, errors.UnregisteredType(name)
	}
	return tc, nil
}

// LookupByName returns the transcoding registered under a wire name.
func (r *Registry) LookupByName(name string) (Transcoding, error) {
	tc, ok := r.byName[name]
	if !ok {
		return nil, errors.UnregisteredName(name)
	}
	return tc, nil
}

// Len returns the number of registered transcodings.
func (r *Registry) Len() int { return len(r.byType) }

// lookup fast paths for the engine, no error construction on miss

func (r *Registry) lookupType(t reflect.Type) (Transcoding, bool) {
	tc, ok := r.byType[t]
	return tc, ok
}

func (r *Registry) lookupName(name string) (Transcoding, bool) {
	tc, ok := r.byName[name]
	return tc, ok
}
