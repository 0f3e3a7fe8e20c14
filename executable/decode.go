package executable

import (
	"bytes"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/sme/errors"
	"github.com/wippyai/sme/executable/internal/binary"
	"github.com/wippyai/sme/header"
)

// Decoder reads executables from an input stream. It consumes exactly the
// bytes of one executable per Decode call and never reads ahead.
type Decoder struct {
	r    *binary.Reader
	opts Options
}

// NewDecoder returns a decoder that reads from r.
func NewDecoder(r io.Reader, opts Options) *Decoder {
	return &Decoder{
		r:    binary.NewReader(r),
		opts: opts,
	}
}

// InputOffset returns the number of bytes consumed so far.
func (d *Decoder) InputOffset() int64 {
	return d.r.Position()
}

// Decode reads one executable into e, replacing its contents.
//
// While decoding, e holds VersionUnset, no linking units and ActiveUnset.
// Once the file header has been read its version is stored in e even if
// decoding fails later. LinkingUnits and ActiveLinkingUnit are only set when
// Decode returns nil, so a failed decode never leaves e looking valid.
func (d *Decoder) Decode(e *Executable) error {
	e.reset()

	var common header.CommonHeader
	if _, err := common.ReadFrom(d.r); err != nil {
		return headerError(errors.HeaderFile, errors.NoIndex, errors.NoIndex, err)
	}
	e.FormatVersion = uint(common.FileFormatVersion)

	codec, err := lookupFormat(errors.PhaseDeserialize, e.FormatVersion)
	if err != nil {
		return err
	}
	units, active, err := codec.decode(d)
	if err != nil {
		return err
	}
	e.LinkingUnits = units
	e.ActiveLinkingUnit = active

	Logger().Debug("decoded executable",
		zap.Uint("version", e.FormatVersion),
		zap.Int("units", len(units)),
		zap.Int("active", active),
		zap.Int64("offset", d.r.Position()))
	return nil
}

// ReadFrom implements io.ReaderFrom using DefaultOptions.
func (e *Executable) ReadFrom(r io.Reader) (int64, error) {
	d := NewDecoder(r, DefaultOptions())
	err := d.Decode(e)
	return d.InputOffset(), err
}

// Decode reads one executable from r.
func Decode(r io.Reader) (*Executable, error) {
	e := &Executable{}
	if _, err := e.ReadFrom(r); err != nil {
		return nil, err
	}
	return e, nil
}

// Parse decodes an executable from data. Bytes following the executable
// are ignored.
func Parse(data []byte) (*Executable, error) {
	return Decode(bytes.NewReader(data))
}
