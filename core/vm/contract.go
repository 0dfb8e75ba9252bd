package vm

import "github.com/beskay/evm-from-scratch/core/types"

// Contract binds a code buffer to the address that owns it for the duration
// of one interpreter invocation, and caches the JUMPDEST analysis of that
// code so JUMP/JUMPI validation does not re-scan the buffer on every jump.
type Contract struct {
	Address  types.Address
	Caller   types.Address
	Code     []byte
	CodeHash types.Hash

	jumpdests map[uint64]bool // cached JUMPDEST analysis, built lazily
}

// NewContract returns a Contract for executing code at address on behalf of
// caller.
func NewContract(caller, address types.Address, code []byte) *Contract {
	return &Contract{
		Caller:  caller,
		Address: address,
		Code:    code,
	}
}

// GetOp returns the opcode at position n, or STOP if n is past the end of
// code (§4, "Reads past the end ... may safely halt").
func (c *Contract) GetOp(n uint64) OpCode {
	if n < uint64(len(c.Code)) {
		return OpCode(c.Code[n])
	}
	return STOP
}

// GetByte returns the raw byte at position n, or 0 past the end. Used by
// PUSHn to read immediate operand bytes, which are zero-filled if code ends
// prematurely (§4.8).
func (c *Contract) GetByte(n uint64) byte {
	if n < uint64(len(c.Code)) {
		return c.Code[n]
	}
	return 0
}

// validJumpdest reports whether dest names an in-bounds JUMPDEST that does
// not fall inside a PUSH immediate. The core spec performs no such
// validation by default (§9); this is used only when strict jump checking
// is enabled (see DESIGN.md).
func (c *Contract) validJumpdest(dest uint64) bool {
	if dest >= uint64(len(c.Code)) {
		return false
	}
	if OpCode(c.Code[dest]) != JUMPDEST {
		return false
	}
	return c.isCode(dest)
}

// isCode reports whether pos is a JUMPDEST opcode byte rather than PUSH
// immediate data; every other position reports false.
func (c *Contract) isCode(pos uint64) bool {
	if c.jumpdests == nil {
		c.jumpdests = make(map[uint64]bool)
		c.analyzeJumpdests()
	}
	return c.jumpdests[pos]
}

// analyzeJumpdests scans the code once, recording every byte offset that is
// a JUMPDEST opcode rather than a PUSH operand.
func (c *Contract) analyzeJumpdests() {
	for i := uint64(0); i < uint64(len(c.Code)); i++ {
		op := OpCode(c.Code[i])
		if op == JUMPDEST {
			c.jumpdests[i] = true
		}
		if op.IsPush() {
			i += uint64(op.PushSize())
		}
	}
}
