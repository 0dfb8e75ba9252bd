package vm

import (
	"github.com/beskay/evm-from-scratch/core/types"
	"github.com/beskay/evm-from-scratch/crypto"
	"github.com/beskay/evm-from-scratch/rlp"
)

// createAddress derives the address CREATE assigns to a newly deployed
// contract: the low 20 bytes of keccak256(RLP([caller, caller_nonce]))
// (§4.12).
func createAddress(caller types.Address, nonce *Word) types.Address {
	enc, err := rlp.EncodeToBytes([]interface{}{caller.Bytes(), nonce.Bytes()})
	if err != nil {
		// Both operands are well-formed fixed-size values; encoding cannot
		// fail in practice.
		panic(err)
	}
	digest := crypto.Keccak256(enc)
	return types.BytesToAddress(digest[12:])
}
