package vm

import "github.com/holiman/uint256"

// Memory is the EVM's byte-addressable scratch space. Its length is always
// a multiple of 32 bytes; any write, word load or slice read that touches a
// byte beyond the current length expands it, filling the new region with
// zeros. LoadByte is the exception: it reads 0 past the end without
// expanding.
type Memory struct {
	store []byte
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Len returns the current byte length, always a multiple of 32.
func (m *Memory) Len() int {
	return len(m.store)
}

// Data returns the full backing slice.
func (m *Memory) Data() []byte {
	return m.store
}

// expand grows the store so that byte offset `last` is addressable,
// rounding the new length up to the next multiple of 32.
func (m *Memory) expand(last uint64) {
	if uint64(len(m.store)) > last {
		return
	}
	newLen := (last/32 + 1) * 32
	grown := make([]byte, newLen)
	copy(grown, m.store)
	m.store = grown
}

// StoreByte writes a single byte at offset, expanding memory to cover it.
func (m *Memory) StoreByte(offset uint64, b byte) {
	m.expand(offset)
	m.store[offset] = b
}

// StoreWord writes w as 32 big-endian bytes at offset, expanding memory to
// cover offset+31.
func (m *Memory) StoreWord(offset uint64, w *uint256.Int) {
	m.expand(offset + 31)
	b := w.Bytes32()
	copy(m.store[offset:offset+32], b[:])
}

// Load reads 32 big-endian bytes at offset as a Word, expanding memory to
// cover offset+31.
func (m *Memory) Load(offset uint64) *uint256.Int {
	m.expand(offset + 31)
	var w uint256.Int
	w.SetBytes(m.store[offset : offset+32])
	return &w
}

// LoadByte reads a single byte at offset without expanding memory, returning
// 0 if offset is at or past the current length.
func (m *Memory) LoadByte(offset uint64) byte {
	if offset >= uint64(len(m.store)) {
		return 0
	}
	return m.store[offset]
}

// Slice returns a copy of size bytes starting at offset, expanding memory as
// needed and zero-filling past the logical end only if expansion requires it.
func (m *Memory) Slice(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	m.expand(offset + size - 1)
	out := make([]byte, size)
	copy(out, m.store[offset:offset+size])
	return out
}

// SetSlice copies value into memory starting at offset, expanding as needed.
// Exactly len(value) bytes are written; an empty value writes nothing and
// does not expand memory.
func (m *Memory) SetSlice(offset uint64, value []byte) {
	if len(value) == 0 {
		return
	}
	m.expand(offset + uint64(len(value)) - 1)
	copy(m.store[offset:offset+uint64(len(value))], value)
}
