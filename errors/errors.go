package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSerialize   Phase = "serialize"   // object model to bytes
	PhaseDeserialize Phase = "deserialize" // bytes to object model
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedVersion       Kind = "unsupported_version"
	KindNoLinkingUnits           Kind = "no_linking_units"
	KindTooManyLinkingUnits      Kind = "too_many_linking_units"
	KindInvalidActiveLinkingUnit Kind = "invalid_active_linking_unit"
	KindNoSections               Kind = "no_sections"
	KindTooManySections          Kind = "too_many_sections"
	KindSectionTooBig            Kind = "section_too_big"
	KindHeaderRead               Kind = "header_read"
	KindInvalidHeader            Kind = "invalid_header"
	KindMultipleSections         Kind = "multiple_sections"
	KindSectionRead              Kind = "section_read"
	KindPaddingRead              Kind = "padding_read"
	KindInvalidPadding           Kind = "invalid_padding"
	KindEmptyBinding             Kind = "empty_binding"
	KindDuplicateBinding         Kind = "duplicate_binding"
	KindUnterminatedBinding      Kind = "unterminated_binding"
	KindInvalidBinding           Kind = "invalid_binding"
	KindIO                       Kind = "io"
)

// Header names used in Error.Header.
const (
	HeaderFile    = "file"
	HeaderFormat0 = "format 0x0"
	HeaderUnit    = "linking unit"
	HeaderSection = "section"
)

// NoIndex marks Unit or SectionIndex as not applicable.
const NoIndex = -1

// Error is the structured error type used throughout the module
type Error struct {
	Value        any
	Cause        error
	Phase        Phase
	Kind         Kind
	Header       string // header being processed, one of the Header* names
	Section      string // section kind magic, e.g. "RODATA"
	Binding      string // offending binding name
	Detail       string
	Unit         int // linking unit index or NoIndex
	SectionIndex int // section index within the unit or NoIndex
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Header != "" {
		b.WriteString(" in ")
		b.WriteString(e.Header)
		b.WriteString(" header")
	}

	if e.Unit >= 0 {
		b.WriteString(" at unit ")
		b.WriteString(strconv.Itoa(e.Unit))
		if e.SectionIndex >= 0 {
			b.WriteString(", section ")
			b.WriteString(strconv.Itoa(e.SectionIndex))
		}
	}

	if e.Section != "" {
		b.WriteString(" (")
		b.WriteString(e.Section)
		b.WriteByte(')')
	}

	if e.Binding != "" {
		b.WriteString(": binding ")
		b.WriteString(strconv.Quote(e.Binding))
	}

	if e.Detail != "" {
		if e.Binding != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Kind must be equal; Phase,
// Header and Section are compared only when the target sets them.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	if t.Header != "" && t.Header != e.Header {
		return false
	}
	if t.Section != "" && t.Section != e.Section {
		return false
	}
	return true
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:        phase,
			Kind:         kind,
			Unit:         NoIndex,
			SectionIndex: NoIndex,
		},
	}
}

// Header sets the header name
func (b *Builder) Header(h string) *Builder {
	b.err.Header = h
	return b
}

// Section sets the section kind
func (b *Builder) Section(s string) *Builder {
	b.err.Section = s
	return b
}

// Unit sets the linking unit index
func (b *Builder) Unit(i int) *Builder {
	b.err.Unit = i
	return b
}

// SectionIndex sets the section index within the linking unit
func (b *Builder) SectionIndex(i int) *Builder {
	b.err.SectionIndex = i
	return b
}

// Binding sets the offending binding name
func (b *Builder) Binding(name string) *Builder {
	b.err.Binding = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedVersion creates a format version error
func UnsupportedVersion(phase Phase, version uint) *Error {
	return &Error{
		Phase:        phase,
		Kind:         KindUnsupportedVersion,
		Unit:         NoIndex,
		SectionIndex: NoIndex,
		Value:        version,
		Detail:       fmt.Sprintf("file format version %d not supported", version),
	}
}

// NotSerializable creates a pre-flight validation error
func NotSerializable(kind Kind, detail string) *Error {
	return &Error{
		Phase:        PhaseSerialize,
		Kind:         kind,
		Unit:         NoIndex,
		SectionIndex: NoIndex,
		Detail:       detail,
	}
}

// SectionTooBig creates a section size error
func SectionTooBig(section string, unit int, size uint64) *Error {
	return &Error{
		Phase:        PhaseSerialize,
		Kind:         KindSectionTooBig,
		Section:      section,
		Unit:         unit,
		SectionIndex: NoIndex,
		Value:        size,
		Detail:       fmt.Sprintf("section is too big to serialize (%d)", size),
	}
}

// HeaderRead creates an error for a header that could not be read
func HeaderRead(header string, unit, section int, cause error) *Error {
	return &Error{
		Phase:        PhaseDeserialize,
		Kind:         KindHeaderRead,
		Header:       header,
		Unit:         unit,
		SectionIndex: section,
		Cause:        cause,
	}
}

// InvalidHeader creates an error for a header that was read but is invalid
func InvalidHeader(header string, unit, section int, cause error) *Error {
	return &Error{
		Phase:        PhaseDeserialize,
		Kind:         KindInvalidHeader,
		Header:       header,
		Unit:         unit,
		SectionIndex: section,
		Cause:        cause,
	}
}

// MultipleSections creates a duplicate section error
func MultipleSections(section, description string, unit, index int) *Error {
	return &Error{
		Phase:        PhaseDeserialize,
		Kind:         KindMultipleSections,
		Section:      section,
		Unit:         unit,
		SectionIndex: index,
		Detail:       fmt.Sprintf("multiple %s sections defined in linking unit", description),
	}
}

// SectionRead creates an error for section contents that could not be read
func SectionRead(section, description string, unit, index int, cause error) *Error {
	return &Error{
		Phase:        PhaseDeserialize,
		Kind:         KindSectionRead,
		Section:      section,
		Unit:         unit,
		SectionIndex: index,
		Detail:       fmt.Sprintf("failed to read contents of %s section", description),
		Cause:        cause,
	}
}

// PaddingRead creates an error for zero padding that could not be read
func PaddingRead(unit, index int, cause error) *Error {
	return &Error{
		Phase:        PhaseDeserialize,
		Kind:         KindPaddingRead,
		Unit:         unit,
		SectionIndex: index,
		Cause:        cause,
	}
}

// InvalidPadding creates an error for non-zero padding bytes
func InvalidPadding(unit, index int) *Error {
	return &Error{
		Phase:        PhaseDeserialize,
		Kind:         KindInvalidPadding,
		Unit:         unit,
		SectionIndex: index,
		Detail:       "non-zero padding found",
	}
}

// EmptyBinding creates an error for an empty binding name
func EmptyBinding(section string, unit, index int) *Error {
	return &Error{
		Phase:        PhaseDeserialize,
		Kind:         KindEmptyBinding,
		Section:      section,
		Unit:         unit,
		SectionIndex: index,
		Detail:       "invalid empty binding",
	}
}

// DuplicateBinding creates an error for a repeated binding name
func DuplicateBinding(section string, unit, index int, name string) *Error {
	return &Error{
		Phase:        PhaseDeserialize,
		Kind:         KindDuplicateBinding,
		Section:      section,
		Unit:         unit,
		SectionIndex: index,
		Binding:      name,
		Detail:       "duplicate binding",
	}
}

// UnterminatedBinding creates an error for a binding name cut off by the
// end of its section
func UnterminatedBinding(section string, unit, index int, partial string) *Error {
	return &Error{
		Phase:        PhaseDeserialize,
		Kind:         KindUnterminatedBinding,
		Section:      section,
		Unit:         unit,
		SectionIndex: index,
		Binding:      partial,
		Detail:       "binding is not null-terminated",
	}
}

// Write creates an error for a failed write to the output
func Write(cause error) *Error {
	return &Error{
		Phase:        PhaseSerialize,
		Kind:         KindIO,
		Unit:         NoIndex,
		SectionIndex: NoIndex,
		Detail:       "write failed",
		Cause:        cause,
	}
}
