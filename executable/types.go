package executable

import (
	"bytes"
	"slices"

	"github.com/wippyai/sme"
)

// VersionUnset marks FormatVersion while a decode is in progress or after
// it failed before the file header was read.
const VersionUnset = ^uint(0)

// ActiveUnset marks ActiveLinkingUnit while a decode is in progress or
// after it failed.
const ActiveUnset = -1

// Executable is a compiled program: a list of linking units and the index
// of the unit holding the entry point.
type Executable struct {
	FormatVersion     uint
	LinkingUnits      []LinkingUnit
	ActiveLinkingUnit int
}

// New returns a version 0 executable with the given units and the first
// unit active.
func New(units ...LinkingUnit) *Executable {
	return &Executable{LinkingUnits: units}
}

func (e *Executable) reset() {
	e.FormatVersion = VersionUnset
	e.LinkingUnits = nil
	e.ActiveLinkingUnit = ActiveUnset
}

// Clone returns a deep copy of e.
func (e *Executable) Clone() *Executable {
	if e == nil {
		return nil
	}
	c := &Executable{
		FormatVersion:     e.FormatVersion,
		ActiveLinkingUnit: e.ActiveLinkingUnit,
	}
	if e.LinkingUnits != nil {
		c.LinkingUnits = make([]LinkingUnit, len(e.LinkingUnits))
		for i := range e.LinkingUnits {
			c.LinkingUnits[i] = e.LinkingUnits[i].Clone()
		}
	}
	return c
}

// Equal reports whether e and o hold the same version, active unit and
// linking units.
func (e *Executable) Equal(o *Executable) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.FormatVersion == o.FormatVersion &&
		e.ActiveLinkingUnit == o.ActiveLinkingUnit &&
		slices.EqualFunc(e.LinkingUnits, o.LinkingUnits, func(a, b LinkingUnit) bool {
			return a.Equal(&b)
		})
}

// LinkingUnit holds at most one section of each kind. A nil field means the
// section is absent; a non-nil empty section is present and is written
// with a zero length.
type LinkingUnit struct {
	Text   *TextSection
	RoData *DataSection
	RwData *DataSection
	Bss    *BssSection
	Bind   *BindingsSection
	PdBind *BindingsSection
	Debug  *DataSection
}

// NumSections returns the number of present sections.
func (u *LinkingUnit) NumSections() int {
	n := 0
	for t := range sectionCodecs {
		if sectionCodecs[t].present(u) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of u.
func (u *LinkingUnit) Clone() LinkingUnit {
	return LinkingUnit{
		Text:   u.Text.Clone(),
		RoData: u.RoData.Clone(),
		RwData: u.RwData.Clone(),
		Bss:    u.Bss.Clone(),
		Bind:   u.Bind.Clone(),
		PdBind: u.PdBind.Clone(),
		Debug:  u.Debug.Clone(),
	}
}

// Equal reports whether both units hold the same sections.
func (u *LinkingUnit) Equal(o *LinkingUnit) bool {
	return u.Text.Equal(o.Text) &&
		u.RoData.Equal(o.RoData) &&
		u.RwData.Equal(o.RwData) &&
		u.Bss.Equal(o.Bss) &&
		u.Bind.Equal(o.Bind) &&
		u.PdBind.Equal(o.PdBind) &&
		u.Debug.Equal(o.Debug)
}

// TextSection is the instruction stream of a linking unit.
type TextSection struct {
	Instructions []sme.CodeBlock
}

// Clone returns a deep copy of s.
func (s *TextSection) Clone() *TextSection {
	if s == nil {
		return nil
	}
	return &TextSection{Instructions: slices.Clone(s.Instructions)}
}

// Equal reports whether both sections are absent or hold the same blocks.
func (s *TextSection) Equal(o *TextSection) bool {
	if s == nil || o == nil {
		return s == o
	}
	return slices.Equal(s.Instructions, o.Instructions)
}

// DataSection holds raw bytes. It is used for read-only data, read-write
// data and debug information.
type DataSection struct {
	Data []byte
}

// Clone returns a deep copy of s.
func (s *DataSection) Clone() *DataSection {
	if s == nil {
		return nil
	}
	return &DataSection{Data: bytes.Clone(s.Data)}
}

// Equal reports whether both sections are absent or hold the same bytes.
func (s *DataSection) Equal(o *DataSection) bool {
	if s == nil || o == nil {
		return s == o
	}
	return bytes.Equal(s.Data, o.Data)
}

// BssSection declares zero-initialized memory. Only its size is stored.
type BssSection struct {
	Size uint64
}

// Clone returns a copy of s.
func (s *BssSection) Clone() *BssSection {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Equal reports whether both sections are absent or declare the same size.
func (s *BssSection) Equal(o *BssSection) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Size == o.Size
}

// BindingsSection lists the names of external facilities in ordinal order.
// Names must be non-empty and distinct.
type BindingsSection struct {
	Names []string
}

// Clone returns a deep copy of s.
func (s *BindingsSection) Clone() *BindingsSection {
	if s == nil {
		return nil
	}
	return &BindingsSection{Names: slices.Clone(s.Names)}
}

// Equal reports whether both sections are absent or list the same names in
// the same order.
func (s *BindingsSection) Equal(o *BindingsSection) bool {
	if s == nil || o == nil {
		return s == o
	}
	return slices.Equal(s.Names, o.Names)
}
