package vm

import (
	"github.com/beskay/evm-from-scratch/crypto"
	"github.com/holiman/uint256"
)

// opKeccak256 implements SHA3/KECCAK256 (§4.11): pop (offset, size), hash
// exactly size bytes of memory starting at offset, push the digest.
func opKeccak256(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	offsetW, sizeW, err := pop2(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	offset, err := wordToOffset(offsetW)
	if err != nil {
		return 0, false, nil, err
	}
	size, err := wordToOffset(sizeW)
	if err != nil {
		return 0, false, nil, err
	}
	data := frame.memory.Slice(offset, size)
	digest := crypto.Keccak256(data)
	var w uint256.Int
	w.SetBytes(digest)
	if err := frame.stack.Push(&w); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}
