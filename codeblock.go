package sme

import (
	"encoding/binary"
	"math"
)

// CodeBlockSize is the size in bytes of a single CodeBlock.
const CodeBlockSize = 8

// CodeBlock is a single fixed-size record of the virtual machine's
// instruction stream. Its meaning is defined by the VM; this module only
// stores and transfers its bytes. The accessors below view the record as a
// little-endian 64-bit value.
type CodeBlock [CodeBlockSize]byte

// CodeBlockFromUint64 returns a CodeBlock holding v.
func CodeBlockFromUint64(v uint64) CodeBlock {
	var b CodeBlock
	binary.LittleEndian.PutUint64(b[:], v)
	return b
}

// CodeBlockFromInt64 returns a CodeBlock holding v.
func CodeBlockFromInt64(v int64) CodeBlock {
	return CodeBlockFromUint64(uint64(v))
}

// CodeBlockFromFloat64 returns a CodeBlock holding the IEEE 754 bits of v.
func CodeBlockFromFloat64(v float64) CodeBlock {
	return CodeBlockFromUint64(math.Float64bits(v))
}

// Uint64 returns the block as an unsigned integer.
func (b CodeBlock) Uint64() uint64 {
	return binary.LittleEndian.Uint64(b[:])
}

// Int64 returns the block as a signed integer.
func (b CodeBlock) Int64() int64 {
	return int64(b.Uint64())
}

// Float64 returns the block as a float.
func (b CodeBlock) Float64() float64 {
	return math.Float64frombits(b.Uint64())
}

// CodeBlocksToBytes flattens blocks into a contiguous byte slice.
func CodeBlocksToBytes(blocks []CodeBlock) []byte {
	out := make([]byte, len(blocks)*CodeBlockSize)
	for i := range blocks {
		copy(out[i*CodeBlockSize:], blocks[i][:])
	}
	return out
}

// CodeBlocksFromBytes splits data into blocks. len(data) must be a
// multiple of CodeBlockSize; trailing bytes are ignored.
func CodeBlocksFromBytes(data []byte) []CodeBlock {
	blocks := make([]CodeBlock, len(data)/CodeBlockSize)
	for i := range blocks {
		copy(blocks[i][:], data[i*CodeBlockSize:])
	}
	return blocks
}
