package vm

import (
	"testing"

	"github.com/holiman/uint256"
)

func negOne() *Word {
	return sub(newWord(), wordFromUint64(1))
}

func TestWordWrappingArithmeticLaws(t *testing.T) {
	a := wordFromUint64(123456789)
	if got := add(a, sub(newWord(), a)); !got.IsZero() {
		t.Fatalf("add(a, -a) = %v, want 0", got)
	}
	if got := mul(a, newWord()); !got.IsZero() {
		t.Fatalf("mul(a, 0) = %v, want 0", got)
	}
	if got := div(a, newWord()); !got.IsZero() {
		t.Fatalf("div(a, 0) = %v, want 0", got)
	}
	if got := mod(a, newWord()); !got.IsZero() {
		t.Fatalf("mod(a, 0) = %v, want 0", got)
	}
	if got := not(not(a)); !got.Eq(a) {
		t.Fatalf("not(not(a)) = %v, want %v", got, a)
	}
	if got := xor(a, a); !got.IsZero() {
		t.Fatalf("xor(a, a) = %v, want 0", got)
	}
}

func TestWordSubUnderflowWraps(t *testing.T) {
	got := sub(wordFromUint64(0), wordFromUint64(1))
	want := negOne()
	if !got.Eq(want) {
		t.Fatalf("0-1 = %v, want 2^256-1", got)
	}
}

func TestWordSignedSemantics(t *testing.T) {
	one := wordFromUint64(1)
	zero := newWord()
	negativeOne := negOne()

	if got := sdiv(negativeOne, negativeOne); !got.Eq(one) {
		t.Fatalf("sdiv(-1,-1) = %v, want 1", got)
	}
	if got := slt(negativeOne, zero); !got.Eq(one) {
		t.Fatalf("slt(-1,0) = %v, want 1", got)
	}
	if got := sgt(zero, negativeOne); !got.Eq(one) {
		t.Fatalf("sgt(0,-1) = %v, want 1", got)
	}
}

func TestWordByteExtraction(t *testing.T) {
	x := uint256.NewInt(0x0102)
	if got := byteAt(wordFromUint64(31), x); got.Uint64() != 0x02 {
		t.Fatalf("byte(31,x) = %v, want 2", got)
	}
	if got := byteAt(wordFromUint64(30), x); got.Uint64() != 0x01 {
		t.Fatalf("byte(30,x) = %v, want 1", got)
	}
	if got := byteAt(wordFromUint64(32), x); !got.IsZero() {
		t.Fatalf("byte(32,x) = %v, want 0", got)
	}
}

func TestWordComparisons(t *testing.T) {
	a, b := wordFromUint64(1), wordFromUint64(2)
	if lt(a, b).Uint64() != 1 || lt(b, a).Uint64() != 0 {
		t.Fatalf("lt broken")
	}
	if gt(b, a).Uint64() != 1 || gt(a, b).Uint64() != 0 {
		t.Fatalf("gt broken")
	}
	if eq(a, a).Uint64() != 1 || eq(a, b).Uint64() != 0 {
		t.Fatalf("eq broken")
	}
	if isZero(newWord()).Uint64() != 1 || isZero(a).Uint64() != 0 {
		t.Fatalf("isZero broken")
	}
}
