package executable

import (
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/sme/errors"
	"github.com/wippyai/sme/executable/internal/binary"
	"github.com/wippyai/sme/header"
)

// formatCodec handles everything after the common header for one file
// format version.
type formatCodec interface {
	validate(e *Executable) error
	encode(w *binary.Writer, e *Executable) error
	decode(d *Decoder) (units []LinkingUnit, active int, err error)
}

var formats = map[uint16]formatCodec{
	0: format0{},
}

func lookupFormat(phase errors.Phase, version uint) (formatCodec, error) {
	if version <= math.MaxUint16 {
		if c, ok := formats[uint16(version)]; ok {
			return c, nil
		}
	}
	return nil, errors.UnsupportedVersion(phase, version)
}

// Limits of the 8-bit "minus one" counters in format 0x0.
const (
	maxLinkingUnits = math.MaxUint8 + 1
	maxSections     = math.MaxUint8 + 1
)

type format0 struct{}

func (format0) validate(e *Executable) error {
	n := len(e.LinkingUnits)
	if n == 0 {
		return errors.NotSerializable(errors.KindNoLinkingUnits, "no linking units")
	}
	if n > maxLinkingUnits {
		return errors.New(errors.PhaseSerialize, errors.KindTooManyLinkingUnits).
			Value(n).
			Detail("%d linking units, at most %d allowed", n, maxLinkingUnits).
			Build()
	}
	if e.ActiveLinkingUnit < 0 || e.ActiveLinkingUnit >= n {
		return errors.New(errors.PhaseSerialize, errors.KindInvalidActiveLinkingUnit).
			Value(e.ActiveLinkingUnit).
			Detail("active linking unit %d out of range for %d linking units", e.ActiveLinkingUnit, n).
			Build()
	}

	for i := range e.LinkingUnits {
		u := &e.LinkingUnits[i]
		sections := u.NumSections()
		if sections == 0 {
			return errors.New(errors.PhaseSerialize, errors.KindNoSections).
				Unit(i).
				Detail("no sections in linking unit").
				Build()
		}
		if sections > maxSections {
			return errors.New(errors.PhaseSerialize, errors.KindTooManySections).
				Unit(i).
				Value(sections).
				Detail("%d sections, at most %d allowed", sections, maxSections).
				Build()
		}
		index := 0
		for t := range sectionCodecs {
			c := &sectionCodecs[t]
			if !c.present(u) {
				continue
			}
			at := location{unit: i, index: index}
			index++
			size, ok := c.length(u)
			if !ok {
				size = math.MaxUint64
			}
			if err := checkSectionSize(header.SectionType(t), i, size); err != nil {
				return err
			}
			if c.check != nil {
				if err := c.check(u, at); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (format0) encode(w *binary.Writer, e *Executable) error {
	var h header.Header0x0
	h.Init(uint8(len(e.LinkingUnits)-1), uint8(e.ActiveLinkingUnit))
	if _, err := h.WriteTo(w); err != nil {
		return err
	}

	for i := range e.LinkingUnits {
		u := &e.LinkingUnits[i]
		var uh header.UnitHeader0x0
		uh.Init(uint8(u.NumSections() - 1))
		if _, err := uh.WriteTo(w); err != nil {
			return err
		}

		for t := range sectionCodecs {
			c := &sectionCodecs[t]
			if !c.present(u) {
				continue
			}
			size, _ := c.length(u)
			var sh header.SectionHeader0x0
			sh.Init(header.SectionType(t), uint32(size))
			if _, err := sh.WriteTo(w); err != nil {
				return err
			}
			if err := c.write(w, u, size); err != nil {
				return err
			}
		}
	}
	return nil
}

func (format0) decode(d *Decoder) ([]LinkingUnit, int, error) {
	var h header.Header0x0
	if _, err := h.ReadFrom(d.r); err != nil {
		return nil, 0, headerError(errors.HeaderFormat0, errors.NoIndex, errors.NoIndex, err)
	}

	units := make([]LinkingUnit, h.NumberOfUnits())
	for i := range units {
		if err := d.readUnit0(i, &units[i]); err != nil {
			return nil, 0, err
		}
	}
	return units, int(h.ActiveLinkingUnit), nil
}

func (d *Decoder) readUnit0(unit int, u *LinkingUnit) error {
	var uh header.UnitHeader0x0
	if _, err := uh.ReadFrom(d.r); err != nil {
		return headerError(errors.HeaderUnit, unit, errors.NoIndex, err)
	}

	for i := 0; i < uh.NumberOfSections(); i++ {
		var sh header.SectionHeader0x0
		if _, err := sh.ReadFrom(d.r); err != nil {
			return headerError(errors.HeaderSection, unit, i, err)
		}

		t := sh.SectionType()
		c := &sectionCodecs[t]
		if c.present(u) {
			return errors.MultipleSections(t.String(), t.Description(), unit, i)
		}
		if err := c.read(d, u, location{unit: unit, index: i}, sh.Length); err != nil {
			return err
		}

		Logger().Debug("decoded section",
			zap.Int("unit", unit),
			zap.Int("index", i),
			zap.Stringer("kind", t),
			zap.Uint32("length", sh.Length))
	}
	return nil
}
