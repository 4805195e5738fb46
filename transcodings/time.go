package transcodings

import (
	"fmt"
	"reflect"
	"time"

	"github.com/wippyai/transcode/transcoder"
)

type timeAsISO struct{}

// TimeAsISO converts a time.Time to an RFC 3339 string with nanosecond
// precision and back. Wire name: "datetime_iso".
//
// The monotonic clock reading is dropped and the location collapses to its
// fixed offset, so compare round-tripped times with Equal rather than ==.
func TimeAsISO() transcoder.Transcoding { return timeAsISO{} }

func (timeAsISO) SourceType() reflect.Type { return reflect.TypeOf(time.Time{}) }

func (timeAsISO) WireName() string { return "datetime_iso" }

func (timeAsISO) Encode(v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("expected time.Time, got %T", v)
	}
	return t.Format(time.RFC3339Nano), nil
}

func (timeAsISO) Decode(data any) (any, error) {
	s, ok := data.(string)
	if !ok {
		return nil, fmt.Errorf("expected string payload, got %T", data)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, err
	}
	return t, nil
}
