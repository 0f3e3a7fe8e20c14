package executable

import (
	stderrors "errors"
	"io"
	"math"
	"math/bits"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/sme"
	"github.com/wippyai/sme/errors"
	"github.com/wippyai/sme/executable/internal/binary"
	"github.com/wippyai/sme/header"
)

// location identifies a section inside the stream for diagnostics.
type location struct {
	unit  int
	index int
}

// sectionCodec describes how one section kind is stored in a LinkingUnit
// and on the wire.
type sectionCodec struct {
	// present reports whether the unit holds a section of this kind.
	present func(u *LinkingUnit) bool
	// length returns the section header's length field. ok is false when
	// the value cannot be computed without overflow.
	length func(u *LinkingUnit) (n uint64, ok bool)
	// check reports content problems that would make the section
	// unreadable. It may be nil.
	check func(u *LinkingUnit, at location) error
	// write emits the payload that follows a section header carrying
	// length.
	write func(w *binary.Writer, u *LinkingUnit, length uint64) error
	// read consumes the payload and stores the section in u.
	read func(d *Decoder, u *LinkingUnit, at location, length uint32) error
}

var sectionCodecs = [header.SectionCount]sectionCodec{
	header.SectionText:   textCodec(),
	header.SectionRoData: dataCodec(header.SectionRoData, func(u *LinkingUnit) **DataSection { return &u.RoData }),
	header.SectionData:   dataCodec(header.SectionData, func(u *LinkingUnit) **DataSection { return &u.RwData }),
	header.SectionBss:    bssCodec(),
	header.SectionBind:   bindingsCodec(header.SectionBind, func(u *LinkingUnit) **BindingsSection { return &u.Bind }),
	header.SectionPdBind: bindingsCodec(header.SectionPdBind, func(u *LinkingUnit) **BindingsSection { return &u.PdBind }),
	header.SectionDebug:  dataCodec(header.SectionDebug, func(u *LinkingUnit) **DataSection { return &u.Debug }),
}

func textCodec() sectionCodec {
	t := header.SectionText
	return sectionCodec{
		present: func(u *LinkingUnit) bool { return u.Text != nil },
		length: func(u *LinkingUnit) (uint64, bool) {
			return uint64(len(u.Text.Instructions)), true
		},
		write: func(w *binary.Writer, u *LinkingUnit, _ uint64) error {
			return w.WriteBytes(sme.CodeBlocksToBytes(u.Text.Instructions))
		},
		read: func(d *Decoder, u *LinkingUnit, at location, length uint32) error {
			data, err := d.r.ReadBytes(uint64(length) * sme.CodeBlockSize)
			if err != nil {
				return errors.SectionRead(t.String(), t.Description(), at.unit, at.index, err)
			}
			u.Text = &TextSection{Instructions: sme.CodeBlocksFromBytes(data)}
			return nil
		},
	}
}

func dataCodec(t header.SectionType, slot func(u *LinkingUnit) **DataSection) sectionCodec {
	return sectionCodec{
		present: func(u *LinkingUnit) bool { return *slot(u) != nil },
		length: func(u *LinkingUnit) (uint64, bool) {
			return uint64(len((*slot(u)).Data)), true
		},
		write: func(w *binary.Writer, u *LinkingUnit, length uint64) error {
			if err := w.WriteBytes((*slot(u)).Data); err != nil {
				return err
			}
			return w.WritePadding(length)
		},
		read: func(d *Decoder, u *LinkingUnit, at location, length uint32) error {
			data, err := d.r.ReadBytes(uint64(length))
			if err != nil {
				return errors.SectionRead(t.String(), t.Description(), at.unit, at.index, err)
			}
			if err := d.readPadding(at, uint64(length)); err != nil {
				return err
			}
			*slot(u) = &DataSection{Data: data}
			return nil
		},
	}
}

func bssCodec() sectionCodec {
	return sectionCodec{
		present: func(u *LinkingUnit) bool { return u.Bss != nil },
		length: func(u *LinkingUnit) (uint64, bool) {
			return u.Bss.Size, true
		},
		write: func(*binary.Writer, *LinkingUnit, uint64) error { return nil },
		read: func(_ *Decoder, u *LinkingUnit, _ location, length uint32) error {
			u.Bss = &BssSection{Size: uint64(length)}
			return nil
		},
	}
}

func bindingsCodec(t header.SectionType, slot func(u *LinkingUnit) **BindingsSection) sectionCodec {
	return sectionCodec{
		present: func(u *LinkingUnit) bool { return *slot(u) != nil },
		length: func(u *LinkingUnit) (uint64, bool) {
			return bindingsSize((*slot(u)).Names)
		},
		check: func(u *LinkingUnit, at location) error {
			return checkBindings(t, at, (*slot(u)).Names)
		},
		write: func(w *binary.Writer, u *LinkingUnit, length uint64) error {
			for _, name := range (*slot(u)).Names {
				if err := w.WriteCString(name); err != nil {
					return err
				}
			}
			return w.WritePadding(length)
		},
		read: func(d *Decoder, u *LinkingUnit, at location, length uint32) error {
			names, err := d.readBindings(t, at, length)
			if err != nil {
				return err
			}
			if err := d.readPadding(at, uint64(length)); err != nil {
				return err
			}
			*slot(u) = &BindingsSection{Names: names}
			return nil
		},
	}
}

// bindingsSize returns the number of bytes the names occupy on the wire:
// each name followed by a NUL terminator, without padding.
func bindingsSize(names []string) (uint64, bool) {
	total := uint64(len(names))
	for _, name := range names {
		var carry uint64
		total, carry = bits.Add64(total, uint64(len(name)), 0)
		if carry != 0 {
			return 0, false
		}
	}
	return total, true
}

// checkBindings rejects names that would not read back as written. A NUL
// inside a name would be taken as its terminator.
func checkBindings(t header.SectionType, at location, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return errors.New(errors.PhaseSerialize, errors.KindEmptyBinding).
				Section(t.String()).
				Unit(at.unit).
				SectionIndex(at.index).
				Detail("invalid empty binding").
				Build()
		}
		if strings.IndexByte(name, 0) >= 0 {
			return errors.New(errors.PhaseSerialize, errors.KindInvalidBinding).
				Section(t.String()).
				Unit(at.unit).
				SectionIndex(at.index).
				Binding(name).
				Detail("binding contains a NUL byte").
				Build()
		}
		if _, dup := seen[name]; dup {
			return errors.New(errors.PhaseSerialize, errors.KindDuplicateBinding).
				Section(t.String()).
				Unit(at.unit).
				SectionIndex(at.index).
				Binding(name).
				Detail("duplicate binding").
				Build()
		}
		seen[name] = struct{}{}
	}
	return nil
}

// checkSectionSize rejects sections whose length does not fit the section
// header's 32-bit length field.
func checkSectionSize(t header.SectionType, unit int, size uint64) error {
	if size > math.MaxUint32 {
		return errors.SectionTooBig(t.String(), unit, size)
	}
	return nil
}

// readBindings splits the next length bytes into NUL-terminated names.
// The window never extends past the declared length.
func (d *Decoder) readBindings(t header.SectionType, at location, length uint32) ([]string, error) {
	lr := d.r.Limit(uint64(length))
	names := make([]string, 0)
	seen := make(map[string]struct{})
	for {
		name, _, err := lr.ReadCString()
		if err == io.EOF {
			if name == "" {
				return names, nil
			}
			if d.opts.StrictBindings {
				return nil, errors.UnterminatedBinding(t.String(), at.unit, at.index, name)
			}
			Logger().Warn("dropping unterminated binding at end of section",
				zap.String("section", t.String()),
				zap.Int("unit", at.unit),
				zap.Int("index", at.index),
				zap.String("binding", name))
			return names, nil
		}
		if err != nil {
			return nil, errors.SectionRead(t.String(), t.Description(), at.unit, at.index, err)
		}
		if name == "" {
			return nil, errors.EmptyBinding(t.String(), at.unit, at.index)
		}
		if _, dup := seen[name]; dup {
			return nil, errors.DuplicateBinding(t.String(), at.unit, at.index, name)
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
}

func (d *Decoder) readPadding(at location, length uint64) error {
	err := d.r.ReadPadding(binary.PaddingSize(length))
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, binary.ErrNonZeroPadding):
		return errors.InvalidPadding(at.unit, at.index)
	default:
		return errors.PaddingRead(at.unit, at.index, err)
	}
}
