package vm

import "github.com/holiman/uint256"

// Word is a 256-bit unsigned integer reduced modulo 2^256. All arithmetic
// helpers below mirror the uint256.Int method of the same purpose but return
// a fresh value, leaving their operands untouched, which matches how the
// interpreter pops operands and pushes a single result.
type Word = uint256.Int

// newWord returns a zero-valued Word.
func newWord() *Word {
	return new(uint256.Int)
}

// wordFromUint64 returns a Word holding the given uint64.
func wordFromUint64(v uint64) *Word {
	return new(uint256.Int).SetUint64(v)
}

// add returns (a+b) mod 2^256.
func add(a, b *Word) *Word {
	return newWord().Add(a, b)
}

// sub returns (a-b) mod 2^256.
func sub(a, b *Word) *Word {
	return newWord().Sub(a, b)
}

// mul returns (a*b) mod 2^256.
func mul(a, b *Word) *Word {
	return newWord().Mul(a, b)
}

// div returns floor(a/b), or 0 if b is zero.
func div(a, b *Word) *Word {
	return newWord().Div(a, b)
}

// sdiv returns the signed truncated quotient of a and b, or 0 if b is zero.
// Operands and result are the unsigned Word encoding of signed 256-bit
// two's-complement values.
func sdiv(a, b *Word) *Word {
	return newWord().SDiv(a, b)
}

// mod returns a mod b (unsigned), or 0 if b is zero.
func mod(a, b *Word) *Word {
	return newWord().Mod(a, b)
}

// smod returns the signed remainder of a and b, sign following the
// dividend, or 0 if b is zero.
func smod(a, b *Word) *Word {
	return newWord().SMod(a, b)
}

// lt returns 1 if a<b (unsigned), else 0.
func lt(a, b *Word) *Word {
	if a.Lt(b) {
		return wordFromUint64(1)
	}
	return newWord()
}

// gt returns 1 if a>b (unsigned), else 0.
func gt(a, b *Word) *Word {
	if a.Gt(b) {
		return wordFromUint64(1)
	}
	return newWord()
}

// slt returns 1 if a<b under signed 256-bit interpretation, else 0.
func slt(a, b *Word) *Word {
	if a.Slt(b) {
		return wordFromUint64(1)
	}
	return newWord()
}

// sgt returns 1 if a>b under signed 256-bit interpretation, else 0.
func sgt(a, b *Word) *Word {
	if a.Sgt(b) {
		return wordFromUint64(1)
	}
	return newWord()
}

// eq returns 1 if a==b, else 0.
func eq(a, b *Word) *Word {
	if a.Eq(b) {
		return wordFromUint64(1)
	}
	return newWord()
}

// isZero returns 1 if a==0, else 0.
func isZero(a *Word) *Word {
	if a.IsZero() {
		return wordFromUint64(1)
	}
	return newWord()
}

// and returns the bitwise AND of a and b.
func and(a, b *Word) *Word {
	return newWord().And(a, b)
}

// or returns the bitwise OR of a and b.
func or(a, b *Word) *Word {
	return newWord().Or(a, b)
}

// xor returns the bitwise XOR of a and b.
func xor(a, b *Word) *Word {
	return newWord().Xor(a, b)
}

// not returns the bitwise complement of a.
func not(a *Word) *Word {
	return newWord().Not(a)
}

// byteAt returns the i-th most significant byte of x (i=0 is the most
// significant byte), or 0 if i>=32.
func byteAt(i, x *Word) *Word {
	if !i.IsUint64() || i.Uint64() > 31 {
		return newWord()
	}
	b := x.Bytes32()
	return wordFromUint64(uint64(b[i.Uint64()]))
}
