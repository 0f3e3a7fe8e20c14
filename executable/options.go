package executable

import "github.com/wippyai/sme/executable/internal/binary"

// Options configures encoding and decoding.
type Options struct {
	// StrictBindings rejects a bindings section whose last name is cut off
	// by the end of the section. By default the partial name is dropped.
	StrictBindings bool

	// WriteChunkSize is the largest single Write issued to the output.
	// Zero or less selects a 1 GiB chunk.
	WriteChunkSize int
}

// DefaultOptions returns default codec configuration.
func DefaultOptions() Options {
	return Options{
		WriteChunkSize: binary.MaxChunkSize,
	}
}
