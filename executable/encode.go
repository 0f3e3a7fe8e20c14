package executable

import (
	"bytes"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/sme/errors"
	"github.com/wippyai/sme/executable/internal/binary"
	"github.com/wippyai/sme/header"
)

// Encoder writes executables to an output stream.
type Encoder struct {
	w *binary.Writer
}

// NewEncoder returns an encoder that writes to w.
func NewEncoder(w io.Writer, opts Options) *Encoder {
	return &Encoder{w: binary.NewWriter(w, opts.WriteChunkSize)}
}

// Written returns the number of bytes written so far.
func (enc *Encoder) Written() int64 {
	return enc.w.Count()
}

// Encode validates e and writes it. If validation fails nothing is written.
// A write failure is returned as a Kind io error; bytes already written
// before the failure stay in the output, and every later Encode on the same
// encoder fails with the same cause.
func (enc *Encoder) Encode(e *Executable) error {
	codec, err := lookupFormat(errors.PhaseSerialize, e.FormatVersion)
	if err != nil {
		return err
	}
	if err := codec.validate(e); err != nil {
		return err
	}
	if enc.w.Failed() {
		return errors.Write(enc.w.Err())
	}

	start := enc.w.Count()
	common := header.NewCommonHeader(uint16(e.FormatVersion))
	if _, err := common.WriteTo(enc.w); err != nil {
		return errors.Write(err)
	}
	if err := codec.encode(enc.w, e); err != nil {
		return errors.Write(err)
	}

	Logger().Debug("encoded executable",
		zap.Uint("version", e.FormatVersion),
		zap.Int("units", len(e.LinkingUnits)),
		zap.Int64("bytes", enc.w.Count()-start))
	return nil
}

// Validate runs the checks Encode performs before writing.
func (e *Executable) Validate() error {
	codec, err := lookupFormat(errors.PhaseSerialize, e.FormatVersion)
	if err != nil {
		return err
	}
	return codec.validate(e)
}

// WriteTo implements io.WriterTo using DefaultOptions.
func (e *Executable) WriteTo(w io.Writer) (int64, error) {
	enc := NewEncoder(w, DefaultOptions())
	err := enc.Encode(e)
	return enc.Written(), err
}

// Encode returns the serialized form of e.
func (e *Executable) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := e.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
