// Package header implements the fixed-size records of the Sharemind
// Executable format.
//
// Every record is a multiple of eight bytes long and little-endian:
//
//	CommonHeader      48 bytes  present in every file, selects the format version
//	Header0x0          8 bytes  number of linking units and the active unit
//	UnitHeader0x0     40 bytes  opens a linking unit, number of sections
//	SectionHeader0x0  40 bytes  opens a section, kind and length
//
// Each record has the same contract: Init fills a record for writing,
// Validate reports the first structural problem (IsValid is Validate() == nil),
// MarshalBinary and WriteTo emit the wire bytes, and UnmarshalBinary and
// ReadFrom parse and validate them. UnmarshalBinary leaves the receiver
// untouched when the bytes are invalid.
//
// Validation failures wrap one of ErrMagic, ErrByteOrder, ErrPadding or
// ErrInvalidField; use IsValidationError to tell them apart from I/O errors
// returned by ReadFrom.
package header
