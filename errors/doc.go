// Package errors provides structured error types for the transcode library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, Go type name,
// wire name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindUnsupportedType).
//		Path("order", "items[2]").
//		GoType("mypkg.Money").
//		Detail("no transcoding registered").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedType(path, "mypkg.Money")
//	err := errors.UnknownWireName(path, "money_v1")
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching via errors.Is compares Phase and Kind only, so callers can test
// for an error class without reconstructing its full context:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnknownWireName}) {
//		// writer used a schema this reader does not know
//	}
package errors
