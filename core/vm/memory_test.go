package vm

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

func TestMemoryStoreWordRoundTrip(t *testing.T) {
	m := NewMemory()
	w := uint256.NewInt(0x2a)
	m.StoreWord(0, w)
	got := m.Load(0)
	if !got.Eq(w) {
		t.Fatalf("load = %v, want %v", got, w)
	}
	if m.Len() != 32 {
		t.Fatalf("len = %d, want 32", m.Len())
	}
}

func TestMemoryExpansionIsMultipleOf32(t *testing.T) {
	m := NewMemory()
	m.StoreByte(40, 0xff)
	if m.Len()%32 != 0 {
		t.Fatalf("len = %d, not a multiple of 32", m.Len())
	}
	if m.Len() != 64 {
		t.Fatalf("len = %d, want 64", m.Len())
	}
	if m.LoadByte(40) != 0xff {
		t.Fatalf("byte at 40 = %x, want ff", m.LoadByte(40))
	}
}

func TestMemoryLoadByteNoExpansionPastEnd(t *testing.T) {
	m := NewMemory()
	if m.LoadByte(1000) != 0 {
		t.Fatalf("load_byte past end must be 0")
	}
	if m.Len() != 0 {
		t.Fatalf("load_byte must not expand memory, len = %d", m.Len())
	}
}

func TestMemorySliceZeroFillsOnExpansion(t *testing.T) {
	m := NewMemory()
	m.StoreByte(0, 0xaa)
	got := m.Slice(0, 4)
	want := []byte{0xaa, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("slice = %x, want %x", got, want)
	}
}

func TestMemorySetSliceThenSlice(t *testing.T) {
	m := NewMemory()
	m.SetSlice(2, []byte{1, 2, 3})
	got := m.Slice(2, 3)
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("got %x", got)
	}
}
