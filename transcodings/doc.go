// Package transcodings ships ready-made rules for common types the native
// model cannot represent:
//
//	Rule           Source type    Wire name        Payload
//	─────────────────────────────────────────────────────────────
//	TupleAsList()  Tuple          tuple_as_list    []any
//	TimeAsISO()    time.Time      datetime_iso     RFC 3339 string
//	UUIDAsHex()    uuid.UUID      uuid_hex         32-char hex string
//
// Register the ones a host needs before first use:
//
//	tr := transcoder.New(codec.JSON())
//	for _, tc := range []transcoder.Transcoding{
//		transcodings.TupleAsList(),
//		transcodings.TimeAsISO(),
//		transcodings.UUIDAsHex(),
//	} {
//		if err := tr.Register(tc); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Wire names are part of the persisted format; they never change.
package transcodings
