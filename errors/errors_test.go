package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseEncode,
				Kind:     KindUnsupportedType,
				Path:     []string{"order", "total"},
				GoType:   "mypkg.Money",
				WireName: "money_v1",
				Detail:   "no transcoding registered",
			},
			contains: []string{"[encode]", "unsupported_type", "order.total", "mypkg.Money", "money_v1", "no transcoding registered"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindUnknownWireName,
			},
			contains: []string{"[decode]", "unknown_wire_name"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindInvalidData,
				Detail: "malformed envelope",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[decode]", "invalid_data", "malformed envelope", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindUnsupportedType,
		Path:  []string{"foo"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseEncode, Kind: KindUnsupportedType}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindUnsupportedType}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindOverflow}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseEncode, Kind: KindUnsupportedType}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEncode, KindUnsupportedType).
		Path("event", "payload").
		GoType("chan int").
		WireName("n/a").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "native value", "channel").
		Build()

	if err.Phase != PhaseEncode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseEncode)
	}
	if err.Kind != KindUnsupportedType {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedType)
	}
	if len(err.Path) != 2 || err.Path[0] != "event" || err.Path[1] != "payload" {
		t.Errorf("Path = %v, want [event payload]", err.Path)
	}
	if err.GoType != "chan int" {
		t.Errorf("GoType = %q, want %q", err.GoType, "chan int")
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Error("Cause not set")
	}
	if err.Detail != "expected native value, got channel" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"DuplicateType", DuplicateType("time.Time", "datetime_iso"), PhaseRegister, KindDuplicateType},
		{"DuplicateName", DuplicateName("mypkg.Stamp", "datetime_iso"), PhaseRegister, KindDuplicateName},
		{"UnregisteredType", UnregisteredType("time.Time"), PhaseRegister, KindUnregisteredType},
		{"UnregisteredName", UnregisteredName("datetime_iso"), PhaseRegister, KindUnregisteredName},
		{"UnsupportedType", UnsupportedType([]string{"a"}, "chan int"), PhaseEncode, KindUnsupportedType},
		{"UnknownWireName", UnknownWireName([]string{"a"}, "gone_v1"), PhaseDecode, KindUnknownWireName},
		{"InvalidData", InvalidData(PhaseDecode, nil, "bad envelope"), PhaseDecode, KindInvalidData},
		{"Overflow", Overflow(PhaseEncode, nil, uint64(1)<<63, "int64"), PhaseEncode, KindOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("syntax error at byte 12")
	err := Wrap(PhaseDecode, KindInvalidData, cause, "decode payload")

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("wrapped cause not reachable via Unwrap")
	}
	if !strings.Contains(err.Error(), "syntax error at byte 12") {
		t.Errorf("message %q does not include cause", err.Error())
	}
}
