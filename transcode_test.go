package transcode_test

import (
	"reflect"
	"testing"

	"github.com/wippyai/transcode"
	"github.com/wippyai/transcode/codec"
)

func TestNew_TuplesOutOfTheBox(t *testing.T) {
	tr := transcode.New()
	tup := transcode.Tuple{int64(1), int64(2), int64(3), int64(4), int64(5), int64(6), int64(7)}

	data, err := tr.Encode(tup)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := tr.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, ok := got.(transcode.Tuple); !ok {
		t.Fatalf("decoded as %T, want Tuple", got)
	}
	if !reflect.DeepEqual(got, tup) {
		t.Errorf("round trip gave %#v, want %#v", got, tup)
	}
}

func TestNewWithCodec(t *testing.T) {
	tr := transcode.NewWithCodec(codec.Msgpack())
	doc := map[string]any{
		"t":    transcode.Tuple{int64(1), "a"},
		"n":    int64(7),
		"list": []any{nil, true, 211.7},
	}

	data, err := tr.Encode(doc)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := tr.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip gave %#v, want %#v", got, doc)
	}
}
