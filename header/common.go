package header

import (
	"fmt"
	"io"
)

// Common header constants
const (
	CommonHeaderSize = MagicSize + 8 + 2 + 6

	// ByteOrderMarker is stored little-endian; reading back any other value
	// means the reader and writer disagree about byte order.
	ByteOrderMarker uint64 = 0x0123456789abcdef

	// VersionSupported is the highest file format version this module reads
	// and writes.
	VersionSupported uint16 = 0x0

	commonPaddingSize = 6
)

var commonMagic = magic("Sharemind Executable")

// CommonHeader opens every Sharemind executable.
type CommonHeader struct {
	Magic                 string `struc:"[32]byte"`
	ByteOrderVerification uint64
	FileFormatVersion     uint16
	ZeroPadding           []byte `struc:"[6]byte"`
}

var _ Header = (*CommonHeader)(nil)

// NewCommonHeader returns an initialized header for version.
func NewCommonHeader(version uint16) *CommonHeader {
	h := &CommonHeader{}
	h.Init(version)
	return h
}

// Init populates the magic, byte order marker and version and zeroes the
// padding.
func (h *CommonHeader) Init(version uint16) {
	h.Magic = commonMagic
	h.ByteOrderVerification = ByteOrderMarker
	h.FileFormatVersion = version
	h.ZeroPadding = make([]byte, commonPaddingSize)
}

// Size returns CommonHeaderSize.
func (h *CommonHeader) Size() int { return CommonHeaderSize }

// Supported reports whether the header's version can be handled by this
// module.
func (h *CommonHeader) Supported() bool {
	return h.FileFormatVersion <= VersionSupported
}

// Validate checks the magic, the byte order marker and the padding. The
// version is not checked here; see Supported.
func (h *CommonHeader) Validate() error {
	if h.Magic != commonMagic {
		return fmt.Errorf("%w: %q", ErrMagic, h.Magic)
	}
	if h.ByteOrderVerification != ByteOrderMarker {
		return fmt.Errorf("%w: got %#016x", ErrByteOrder, h.ByteOrderVerification)
	}
	return checkPadding(h.ZeroPadding, commonPaddingSize)
}

// IsValid reports whether Validate returns nil.
func (h *CommonHeader) IsValid() bool { return h.Validate() == nil }

// MarshalBinary encodes the header.
func (h *CommonHeader) MarshalBinary() ([]byte, error) {
	c := *h
	c.ZeroPadding = fit(c.ZeroPadding, commonPaddingSize)
	return pack(&c, CommonHeaderSize)
}

// UnmarshalBinary decodes and validates a header from data.
func (h *CommonHeader) UnmarshalBinary(data []byte) error {
	var buf CommonHeader
	if err := unpack(data, &buf, CommonHeaderSize); err != nil {
		return err
	}
	if err := buf.Validate(); err != nil {
		return err
	}
	*h = buf
	return nil
}

// WriteTo writes the encoded header to w.
func (h *CommonHeader) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, h)
}

// ReadFrom reads exactly CommonHeaderSize bytes from r and decodes them.
func (h *CommonHeader) ReadFrom(r io.Reader) (int64, error) {
	return readFrom(r, h, CommonHeaderSize)
}
