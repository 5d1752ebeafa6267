// Package uniform is a compile-time check that a record declaration uses
// one uniform type across all of its fields. The intended use is records
// that are later reinterpreted as a slice of the field type, where mixed
// field types would make the reinterpretation unsound.
//
// The check is name-based: each field's type expression is re-rendered to
// its canonical textual form and compared to the first field's by string
// equality. Type aliases and other semantically equal spellings are
// reported as mismatches.
//
// A declaration like
//
//	struct Example<T> {
//		x: T,
//		not_offending: T,
//	}
//
// passes and is re-emitted unchanged, while
//
//	struct Example<T> {
//		x: T,
//		offending: u32,
//	}
//
// fails with
//
//	Struct Example has fields of different types. Expected uniform use of T, found u32 in field offending.
//
// Declarations with positional fields or with no fields at all are outside
// the contract and panic instead of producing a diagnostic.
package uniform
