// Package errors provides structured error types for the Sharemind
// Executable codec.
//
// Errors are categorized by Phase (serialize or deserialize) and Kind (error
// category). The Error type carries the location of the fault inside the
// executable: the header being read, the linking unit and section indices,
// the section kind and, for bindings, the offending name.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDeserialize, errors.KindDuplicateBinding).
//		Section("BIND").
//		Unit(0).
//		SectionIndex(4).
//		Binding("Process_logString").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.SectionTooBig("RODATA", unit, size)
//	err := errors.InvalidPadding(unit, section)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Kind, and additionally on Phase, Header and Section when the
// target sets them, so per-kind sentinels can be declared as plain *Error
// values.
package errors
