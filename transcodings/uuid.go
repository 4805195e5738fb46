package transcodings

import (
	"encoding/hex"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/wippyai/transcode/transcoder"
)

type uuidAsHex struct{}

// UUIDAsHex converts a uuid.UUID to its 32-character lowercase hex form
// (no dashes) and back. Wire name: "uuid_hex".
func UUIDAsHex() transcoder.Transcoding { return uuidAsHex{} }

func (uuidAsHex) SourceType() reflect.Type { return reflect.TypeOf(uuid.UUID{}) }

func (uuidAsHex) WireName() string { return "uuid_hex" }

func (uuidAsHex) Encode(v any) (any, error) {
	u, ok := v.(uuid.UUID)
	if !ok {
		return nil, fmt.Errorf("expected uuid.UUID, got %T", v)
	}
	return hex.EncodeToString(u[:]), nil
}

func (uuidAsHex) Decode(data any) (any, error) {
	s, ok := data.(string)
	if !ok {
		return nil, fmt.Errorf("expected string payload, got %T", data)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return u, nil
}
