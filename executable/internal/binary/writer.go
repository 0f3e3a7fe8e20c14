package binary

import (
	"io"

	"github.com/pkg/errors"
)

// MaxChunkSize is the largest single Write issued by a Writer by default.
const MaxChunkSize = 1 << 30

var zeros [8]byte

// Writer writes to an io.Writer in bounded chunks and counts the bytes
// written. The first failure is latched: every later write returns it
// without touching the underlying writer.
type Writer struct {
	w     io.Writer
	err   error
	n     int64
	chunk int
}

// NewWriter creates a new Writer. A chunk size of zero or less selects
// MaxChunkSize.
func NewWriter(w io.Writer, chunk int) *Writer {
	if chunk <= 0 {
		chunk = MaxChunkSize
	}
	return &Writer{w: w, chunk: chunk}
}

// Count returns the number of bytes written.
func (w *Writer) Count() int64 {
	return w.n
}

// Err returns the latched failure, if any.
func (w *Writer) Err() error {
	return w.err
}

// Failed reports whether a write has failed.
func (w *Writer) Failed() bool {
	return w.err != nil
}

// Write implements io.Writer, looping until p is flushed.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	written := 0
	for len(p) > 0 {
		step := min(len(p), w.chunk)
		n, err := w.w.Write(p[:step])
		written += n
		w.n += int64(n)
		if err == nil && n < step {
			err = io.ErrShortWrite
		}
		if err != nil {
			w.err = errors.Wrapf(err, "write at offset %d", w.n)
			return written, w.err
		}
		p = p[step:]
	}
	return written, nil
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) error {
	_, err := w.Write(data)
	return err
}

// WriteCString writes s followed by a NUL terminator.
func (w *Writer) WriteCString(s string) error {
	if err := w.WriteBytes([]byte(s)); err != nil {
		return err
	}
	return w.WriteBytes(zeros[:1])
}

// WritePadding writes the zero bytes that align n to eight bytes.
func (w *Writer) WritePadding(n uint64) error {
	return w.WriteBytes(zeros[:PaddingSize(n)])
}
