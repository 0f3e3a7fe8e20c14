package binary

import (
	"io"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// ErrNonZeroPadding is returned by ReadPadding when a padding byte is set.
var ErrNonZeroPadding = errors.New("non-zero padding")

// ErrTooLarge is returned when a requested read cannot be represented in
// memory on this host.
var ErrTooLarge = errors.New("read size exceeds addressable memory")

// readChunk bounds each allocation step of ReadBytes so that a corrupt
// length field cannot force a huge allocation before any data arrives.
const readChunk = 1 << 16

// Reader wraps an io.Reader with position tracking and exact-length reads.
// It never reads ahead of what the caller consumes.
type Reader struct {
	r   io.Reader
	br  io.ByteReader
	pos int64
	one [1]byte
}

// NewReader creates a new Reader wrapping r.
func NewReader(r io.Reader) *Reader {
	br, _ := r.(io.ByteReader)
	return &Reader{r: r, br: br}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int64 {
	return r.pos
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.pos += int64(n)
	return n, err
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.br != nil {
		b, err := r.br.ReadByte()
		if err != nil {
			return 0, err
		}
		r.pos++
		return b, nil
	}
	if _, err := io.ReadFull(r, r.one[:]); err != nil {
		return 0, err
	}
	return r.one[0], nil
}

// ReadFull fills p completely. Running out of data, even before the first
// byte, is reported as io.ErrUnexpectedEOF.
func (r *Reader) ReadFull(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	start := r.pos
	if _, err := io.ReadFull(r, p); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return errors.Wrapf(err, "read %d bytes at offset %d", len(p), start)
	}
	return nil
}

// ReadBytes reads exactly n bytes. Memory grows with the data actually
// received rather than with n.
func (r *Reader) ReadBytes(n uint64) ([]byte, error) {
	if n > math.MaxInt {
		return nil, errors.Wrapf(ErrTooLarge, "%d bytes", n)
	}
	if n <= readChunk {
		buf := make([]byte, n)
		if err := r.ReadFull(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}
	size := int(n)
	buf := make([]byte, 0, readChunk)
	for len(buf) < size {
		step := min(size-len(buf), readChunk)
		buf = slices.Grow(buf, step)[:len(buf)+step]
		if err := r.ReadFull(buf[len(buf)-step:]); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// ReadPadding consumes n padding bytes and checks that all are zero.
func (r *Reader) ReadPadding(n int) error {
	var buf [8]byte
	for n > 0 {
		step := min(n, len(buf))
		if err := r.ReadFull(buf[:step]); err != nil {
			return err
		}
		for _, c := range buf[:step] {
			if c != 0 {
				return errors.Wrapf(ErrNonZeroPadding, "at offset %d", r.pos-int64(step))
			}
		}
		n -= step
	}
	return nil
}

// Limit returns a reader over the next n bytes of r.
func (r *Reader) Limit(n uint64) *LimitedReader {
	return &LimitedReader{r: r, n: n}
}

// LimitedReader reads from a Reader but reports io.EOF once its window is
// exhausted, without touching the bytes that follow. Running out of
// underlying data inside the window is reported as io.ErrUnexpectedEOF.
type LimitedReader struct {
	r *Reader
	n uint64
}

// ReadByte reads the next byte of the window.
func (l *LimitedReader) ReadByte() (byte, error) {
	if l.n == 0 {
		return 0, io.EOF
	}
	b, err := l.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, errors.Wrapf(err, "read at offset %d", l.r.pos)
	}
	l.n--
	return b, nil
}

// Read implements io.Reader.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.n == 0 {
		return 0, io.EOF
	}
	if uint64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err := l.r.Read(p)
	l.n -= uint64(n)
	if err == io.EOF && l.n > 0 {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}

// ReadCString reads bytes up to the next NUL and returns them without the
// terminator. When the window closes first, the bytes read so far are
// returned with terminated set to false and err set to io.EOF.
func (l *LimitedReader) ReadCString() (s string, terminated bool, err error) {
	var buf []byte
	for {
		b, err := l.ReadByte()
		if err != nil {
			return string(buf), false, err
		}
		if b == 0 {
			return string(buf), true, nil
		}
		buf = append(buf, b)
	}
}

// PaddingSize returns the number of zero bytes that align n to eight bytes.
func PaddingSize(n uint64) int {
	return int((8 - n%8) % 8)
}
