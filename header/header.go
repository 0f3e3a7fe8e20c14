package header

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"errors"
	"io"
	"strings"

	"github.com/lunixbochs/struc"
)

// MagicSize is the size of every magic field.
const MagicSize = 32

// Validation errors returned by Validate and UnmarshalBinary.
var (
	ErrMagic        = errors.New("header: invalid magic")
	ErrByteOrder    = errors.New("header: byte order verification failed")
	ErrPadding      = errors.New("header: non-zero padding")
	ErrInvalidField = errors.New("header: field value out of range")
)

// IsValidationError reports whether err is a header validation failure as
// opposed to an I/O error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMagic) ||
		errors.Is(err, ErrByteOrder) ||
		errors.Is(err, ErrPadding) ||
		errors.Is(err, ErrInvalidField)
}

// Header is implemented by every fixed-size record in this package.
type Header interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	io.WriterTo
	io.ReaderFrom

	// Size returns the encoded size in bytes.
	Size() int
	// Validate reports the first structural problem with the record.
	Validate() error
	// IsValid reports whether Validate returns nil.
	IsValid() bool
}

// magic returns s right-padded with NUL bytes to MagicSize.
func magic(s string) string {
	return s + strings.Repeat("\x00", MagicSize-len(s))
}

// fit returns p resized to exactly n bytes.
func fit(p []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, p)
	return out
}

func checkPadding(p []byte, n int) error {
	if len(p) != n {
		return ErrPadding
	}
	for _, c := range p {
		if c != 0 {
			return ErrPadding
		}
	}
	return nil
}

func pack(h any, size int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(size)
	if err := struc.PackWithOrder(&buf, h, binary.LittleEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unpack(data []byte, h any, size int) error {
	if len(data) < size {
		return io.ErrUnexpectedEOF
	}
	return struc.UnpackWithOrder(bytes.NewReader(data[:size]), h, binary.LittleEndian)
}

func writeTo(w io.Writer, h encoding.BinaryMarshaler) (int64, error) {
	data, err := h.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

func readFrom(r io.Reader, h encoding.BinaryUnmarshaler, size int) (int64, error) {
	buf := make([]byte, size)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return int64(n), err
	}
	return int64(n), h.UnmarshalBinary(buf)
}
