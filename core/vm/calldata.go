package vm

import "github.com/holiman/uint256"

// Calldata is a read-only view over a transaction's input bytes, presented
// to CALLDATALOAD/CALLDATASIZE/CALLDATACOPY.
type Calldata struct {
	data []byte
}

// NewCalldata wraps data as a Calldata view. The slice is not copied; callers
// must not mutate it afterwards.
func NewCalldata(data []byte) *Calldata {
	return &Calldata{data: data}
}

// Size returns the length of the calldata in bytes.
func (c *Calldata) Size() uint64 {
	return uint64(len(c.data))
}

// Load returns the 32-byte big-endian Word starting at offset, zero-extended
// on the right if the requested range extends past the end.
func (c *Calldata) Load(offset uint64) *Word {
	var buf [32]byte
	if offset < uint64(len(c.data)) {
		copy(buf[:], c.data[offset:])
	}
	var w uint256.Int
	w.SetBytes(buf[:])
	return &w
}

// LoadByte returns the single byte at offset, or 0 if offset is at or past
// the end.
func (c *Calldata) LoadByte(offset uint64) byte {
	if offset >= uint64(len(c.data)) {
		return 0
	}
	return c.data[offset]
}

// Slice returns size bytes starting at offset, zero-extended on the right
// past the end. Used by CALLDATACOPY.
func (c *Calldata) Slice(offset, size uint64) []byte {
	out := make([]byte, size)
	if offset < uint64(len(c.data)) {
		copy(out, c.data[offset:])
	}
	return out
}
