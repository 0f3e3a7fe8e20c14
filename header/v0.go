package header

import (
	"fmt"
	"io"
)

// Format 0x0 record sizes
const (
	Header0x0Size        = 1 + 1 + 6
	UnitHeader0x0Size    = MagicSize + 1 + 7
	SectionHeader0x0Size = MagicSize + 4 + 4

	header0x0PaddingSize = 6
	unitPaddingSize      = 7
	sectionPaddingSize   = 4
)

var unitMagic = magic("Linking Unit")

// Header0x0 follows the common header in format version 0.
type Header0x0 struct {
	NumberOfUnitsMinusOne uint8
	ActiveLinkingUnit     uint8
	ZeroPadding           []byte `struc:"[6]byte"`
}

var _ Header = (*Header0x0)(nil)

// Init populates the header and zeroes the padding.
func (h *Header0x0) Init(numberOfUnitsMinusOne, activeLinkingUnit uint8) {
	h.NumberOfUnitsMinusOne = numberOfUnitsMinusOne
	h.ActiveLinkingUnit = activeLinkingUnit
	h.ZeroPadding = make([]byte, header0x0PaddingSize)
}

// Size returns Header0x0Size.
func (h *Header0x0) Size() int { return Header0x0Size }

// NumberOfUnits returns the decoded number of linking units.
func (h *Header0x0) NumberOfUnits() int {
	return int(h.NumberOfUnitsMinusOne) + 1
}

// Validate checks that the active unit exists and the padding is zero.
func (h *Header0x0) Validate() error {
	if h.ActiveLinkingUnit > h.NumberOfUnitsMinusOne {
		return fmt.Errorf("%w: active linking unit %d, last linking unit %d",
			ErrInvalidField, h.ActiveLinkingUnit, h.NumberOfUnitsMinusOne)
	}
	return checkPadding(h.ZeroPadding, header0x0PaddingSize)
}

// IsValid reports whether Validate returns nil.
func (h *Header0x0) IsValid() bool { return h.Validate() == nil }

// MarshalBinary encodes the header.
func (h *Header0x0) MarshalBinary() ([]byte, error) {
	c := *h
	c.ZeroPadding = fit(c.ZeroPadding, header0x0PaddingSize)
	return pack(&c, Header0x0Size)
}

// UnmarshalBinary decodes and validates a header from data.
func (h *Header0x0) UnmarshalBinary(data []byte) error {
	var buf Header0x0
	if err := unpack(data, &buf, Header0x0Size); err != nil {
		return err
	}
	if err := buf.Validate(); err != nil {
		return err
	}
	*h = buf
	return nil
}

// WriteTo writes the encoded header to w.
func (h *Header0x0) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, h)
}

// ReadFrom reads exactly Header0x0Size bytes from r and decodes them.
func (h *Header0x0) ReadFrom(r io.Reader) (int64, error) {
	return readFrom(r, h, Header0x0Size)
}

// UnitHeader0x0 opens a linking unit.
type UnitHeader0x0 struct {
	Type             string `struc:"[32]byte"`
	SectionsMinusOne uint8
	ZeroPadding      []byte `struc:"[7]byte"`
}

var _ Header = (*UnitHeader0x0)(nil)

// Init populates the header and zeroes the padding.
func (h *UnitHeader0x0) Init(sectionsMinusOne uint8) {
	h.Type = unitMagic
	h.SectionsMinusOne = sectionsMinusOne
	h.ZeroPadding = make([]byte, unitPaddingSize)
}

// Size returns UnitHeader0x0Size.
func (h *UnitHeader0x0) Size() int { return UnitHeader0x0Size }

// NumberOfSections returns the decoded number of sections.
func (h *UnitHeader0x0) NumberOfSections() int {
	return int(h.SectionsMinusOne) + 1
}

// Validate checks the magic, the section count and the padding.
func (h *UnitHeader0x0) Validate() error {
	if h.Type != unitMagic {
		return fmt.Errorf("%w: %q", ErrMagic, h.Type)
	}
	if h.SectionsMinusOne > SectionCount {
		return fmt.Errorf("%w: %d sections", ErrInvalidField, int(h.SectionsMinusOne)+1)
	}
	return checkPadding(h.ZeroPadding, unitPaddingSize)
}

// IsValid reports whether Validate returns nil.
func (h *UnitHeader0x0) IsValid() bool { return h.Validate() == nil }

// MarshalBinary encodes the header.
func (h *UnitHeader0x0) MarshalBinary() ([]byte, error) {
	c := *h
	c.ZeroPadding = fit(c.ZeroPadding, unitPaddingSize)
	return pack(&c, UnitHeader0x0Size)
}

// UnmarshalBinary decodes and validates a header from data.
func (h *UnitHeader0x0) UnmarshalBinary(data []byte) error {
	var buf UnitHeader0x0
	if err := unpack(data, &buf, UnitHeader0x0Size); err != nil {
		return err
	}
	if err := buf.Validate(); err != nil {
		return err
	}
	*h = buf
	return nil
}

// WriteTo writes the encoded header to w.
func (h *UnitHeader0x0) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, h)
}

// ReadFrom reads exactly UnitHeader0x0Size bytes from r and decodes them.
func (h *UnitHeader0x0) ReadFrom(r io.Reader) (int64, error) {
	return readFrom(r, h, UnitHeader0x0Size)
}

// SectionHeader0x0 opens a section. The meaning of Length depends on the
// section type: the number of code blocks for TEXT, the number of bytes for
// every other type. A zero length denotes a present but empty section.
type SectionHeader0x0 struct {
	Type        string `struc:"[32]byte"`
	Length      uint32
	ZeroPadding []byte `struc:"[4]byte"`
}

var _ Header = (*SectionHeader0x0)(nil)

// Init populates the header and zeroes the padding.
func (h *SectionHeader0x0) Init(t SectionType, length uint32) {
	h.Type = t.Magic()
	h.Length = length
	h.ZeroPadding = make([]byte, sectionPaddingSize)
}

// Size returns SectionHeader0x0Size.
func (h *SectionHeader0x0) Size() int { return SectionHeader0x0Size }

// SectionType returns the type selected by the header's magic.
func (h *SectionHeader0x0) SectionType() SectionType {
	return SectionTypeFromMagic(h.Type)
}

// Validate checks that the section type is known and the padding is zero.
func (h *SectionHeader0x0) Validate() error {
	if h.SectionType() == SectionInvalid {
		return fmt.Errorf("%w: unknown section type %q", ErrMagic, h.Type)
	}
	return checkPadding(h.ZeroPadding, sectionPaddingSize)
}

// IsValid reports whether Validate returns nil.
func (h *SectionHeader0x0) IsValid() bool { return h.Validate() == nil }

// MarshalBinary encodes the header.
func (h *SectionHeader0x0) MarshalBinary() ([]byte, error) {
	c := *h
	c.ZeroPadding = fit(c.ZeroPadding, sectionPaddingSize)
	return pack(&c, SectionHeader0x0Size)
}

// UnmarshalBinary decodes and validates a header from data.
func (h *SectionHeader0x0) UnmarshalBinary(data []byte) error {
	var buf SectionHeader0x0
	if err := unpack(data, &buf, SectionHeader0x0Size); err != nil {
		return err
	}
	if err := buf.Validate(); err != nil {
		return err
	}
	*h = buf
	return nil
}

// WriteTo writes the encoded header to w.
func (h *SectionHeader0x0) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, h)
}

// ReadFrom reads exactly SectionHeader0x0Size bytes from r and decodes them.
func (h *SectionHeader0x0) ReadFrom(r io.Reader) (int64, error) {
	return readFrom(r, h, SectionHeader0x0Size)
}
