package vm

import (
	"bytes"
	"testing"
)

func TestCalldataLoadZeroExtendsPastEnd(t *testing.T) {
	c := NewCalldata([]byte{0x01, 0x02})
	got := c.Load(0)
	want := make([]byte, 32)
	want[0], want[1] = 0x01, 0x02
	if !bytes.Equal(got.Bytes32()[:], want) {
		t.Fatalf("load(0) = %x, want %x", got.Bytes32(), want)
	}
}

func TestCalldataLoadByteEOFIsZero(t *testing.T) {
	c := NewCalldata([]byte{0x01})
	if c.LoadByte(5) != 0 {
		t.Fatalf("load_byte past end must be 0")
	}
}

func TestCalldataSliceZeroExtends(t *testing.T) {
	c := NewCalldata([]byte{0xaa})
	got := c.Slice(0, 3)
	if !bytes.Equal(got, []byte{0xaa, 0, 0}) {
		t.Fatalf("slice = %x", got)
	}
}

func TestCalldataSize(t *testing.T) {
	c := NewCalldata([]byte{1, 2, 3})
	if c.Size() != 3 {
		t.Fatalf("size = %d, want 3", c.Size())
	}
}
