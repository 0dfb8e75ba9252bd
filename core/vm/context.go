package vm

import "github.com/beskay/evm-from-scratch/core/types"

// Transaction is the immutable envelope presented to ADDRESS, CALLER,
// ORIGIN, CALLVALUE, GASPRICE, and the CALLDATA* opcodes. CALL and CREATE
// derive a new Transaction for their sub-context rather than mutating this
// one.
type Transaction struct {
	To       types.Address
	From     types.Address
	Origin   types.Address
	GasPrice *Word
	Value    *Word
	Data     []byte
}

// Block is the immutable header presented to COINBASE, TIMESTAMP, NUMBER,
// DIFFICULTY, GASLIMIT, and CHAINID. It is shared unchanged across a
// top-level invocation and every sub-context it spawns.
type Block struct {
	Coinbase   types.Address
	Timestamp  *Word
	Number     *Word
	Difficulty *Word
	GasLimit   *Word
	ChainID    *Word
}

// derive builds the sub-transaction for a CALL or CREATE sub-context: same
// origin, gas price and block, new to/from/value/data.
func (tx *Transaction) derive(to, from types.Address, value *Word, data []byte) *Transaction {
	return &Transaction{
		To:       to,
		From:     from,
		Origin:   tx.Origin,
		GasPrice: tx.GasPrice,
		Value:    value,
		Data:     data,
	}
}
