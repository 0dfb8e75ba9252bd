package vm

import (
	"testing"

	"github.com/beskay/evm-from-scratch/core/types"
)

func TestContractGetOpPastEndIsStop(t *testing.T) {
	c := NewContract(types.Address{}, types.Address{}, []byte{0x01})
	if c.GetOp(5) != STOP {
		t.Fatalf("GetOp past end = %v, want STOP", c.GetOp(5))
	}
}

func TestContractGetBytePastEndIsZero(t *testing.T) {
	c := NewContract(types.Address{}, types.Address{}, []byte{0x01})
	if c.GetByte(5) != 0 {
		t.Fatalf("GetByte past end must be 0")
	}
}

func TestContractValidJumpdestSkipsPushData(t *testing.T) {
	// PUSH1 0x5b ; JUMPDEST
	code := []byte{byte(PUSH1), 0x5b, byte(JUMPDEST)}
	c := NewContract(types.Address{}, types.Address{}, code)
	if c.validJumpdest(1) {
		t.Fatalf("offset 1 is PUSH data, must not be a valid jumpdest")
	}
	if !c.validJumpdest(2) {
		t.Fatalf("offset 2 is a real JUMPDEST")
	}
}
