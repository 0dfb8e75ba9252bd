package vm

import "github.com/beskay/evm-from-scratch/core/types"

func pushAddress(st *Stack, a types.Address) error {
	var w Word
	w.SetBytes(a.Bytes())
	return st.Push(&w)
}

// opAddress implements ADDRESS: push the executing contract's own address
// (tx.to).
func opAddress(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := pushAddress(frame.stack, frame.tx.To); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opBalance implements BALANCE: pop an address, push its account balance.
func opBalance(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	addrW, err := pop1(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	addr := types.BytesToAddress(addrW.Bytes())
	acct := in.world.Account(addr)
	if err := frame.stack.Push(new(Word).Set(acct.Balance)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opOrigin implements ORIGIN: push the originating externally-owned account.
func opOrigin(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := pushAddress(frame.stack, frame.tx.Origin); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opCaller implements CALLER: push the immediate caller of this frame.
func opCaller(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := pushAddress(frame.stack, frame.tx.From); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opCallValue implements CALLVALUE: push the wei value sent with this call.
func opCallValue(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(new(Word).Set(frame.tx.Value)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opCallDataLoad implements CALLDATALOAD.
func opCallDataLoad(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	offsetW, err := pop1(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	offset, err := wordToOffset(offsetW)
	if err != nil {
		return 0, false, nil, err
	}
	if err := frame.stack.Push(frame.calldata.Load(offset)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opCallDataSize implements CALLDATASIZE.
func opCallDataSize(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(wordFromUint64(frame.calldata.Size())); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opCallDataCopy implements CALLDATACOPY: pop (destOffset, srcOffset, size),
// copy size bytes from calldata into memory at destOffset.
func opCallDataCopy(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	destW, srcW, sizeW, err := pop3(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	dest, err := wordToOffset(destW)
	if err != nil {
		return 0, false, nil, err
	}
	src, err := wordToOffset(srcW)
	if err != nil {
		return 0, false, nil, err
	}
	size, err := wordToOffset(sizeW)
	if err != nil {
		return 0, false, nil, err
	}
	frame.memory.SetSlice(dest, frame.calldata.Slice(src, size))
	return pc + 1, false, nil, nil
}

// opCodeSize implements CODESIZE: push the length of the executing code.
func opCodeSize(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(wordFromUint64(uint64(len(frame.contract.Code)))); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opCodeCopy implements CODECOPY: pop (destOffset, srcOffset, size), copy
// size bytes from the executing code into memory at destOffset.
func opCodeCopy(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	destW, srcW, sizeW, err := pop3(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	dest, err := wordToOffset(destW)
	if err != nil {
		return 0, false, nil, err
	}
	src, err := wordToOffset(srcW)
	if err != nil {
		return 0, false, nil, err
	}
	size, err := wordToOffset(sizeW)
	if err != nil {
		return 0, false, nil, err
	}
	frame.memory.SetSlice(dest, zeroExtend(frame.contract.Code, src, size))
	return pc + 1, false, nil, nil
}

// opGasPrice implements GASPRICE.
func opGasPrice(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(new(Word).Set(frame.tx.GasPrice)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opExtCodeSize implements EXTCODESIZE: pop an address, push its code length.
func opExtCodeSize(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	addrW, err := pop1(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	addr := types.BytesToAddress(addrW.Bytes())
	acct := in.world.Account(addr)
	if err := frame.stack.Push(wordFromUint64(uint64(len(acct.Code)))); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opExtCodeCopy implements EXTCODECOPY: pop (address, destOffset,
// srcOffset, size), copy size bytes from the addressed account's code.
func opExtCodeCopy(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	addrW, err := pop1(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	destW, srcW, sizeW, err := pop3(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	dest, err := wordToOffset(destW)
	if err != nil {
		return 0, false, nil, err
	}
	src, err := wordToOffset(srcW)
	if err != nil {
		return 0, false, nil, err
	}
	size, err := wordToOffset(sizeW)
	if err != nil {
		return 0, false, nil, err
	}
	addr := types.BytesToAddress(addrW.Bytes())
	acct := in.world.Account(addr)
	frame.memory.SetSlice(dest, zeroExtend(acct.Code, src, size))
	return pc + 1, false, nil, nil
}

// opCoinbase implements COINBASE.
func opCoinbase(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := pushAddress(frame.stack, in.block.Coinbase); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opTimestamp implements TIMESTAMP.
func opTimestamp(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(new(Word).Set(in.block.Timestamp)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opNumber implements NUMBER.
func opNumber(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(new(Word).Set(in.block.Number)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opDifficulty implements DIFFICULTY.
func opDifficulty(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(new(Word).Set(in.block.Difficulty)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opGasLimit implements GASLIMIT.
func opGasLimit(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(new(Word).Set(in.block.GasLimit)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opChainID implements CHAINID.
func opChainID(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(new(Word).Set(in.block.ChainID)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opSelfBalance implements SELFBALANCE: balance(tx.to).
func opSelfBalance(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	acct := in.world.Account(frame.tx.To)
	if err := frame.stack.Push(new(Word).Set(acct.Balance)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// zeroExtend returns size bytes from src starting at offset, zero-padding
// on the right if the requested range extends past the end of src. Shared
// by CODECOPY, EXTCODECOPY and CALL's copy of the sub-call's return data.
func zeroExtend(src []byte, offset, size uint64) []byte {
	out := make([]byte, size)
	if offset < uint64(len(src)) {
		copy(out, src[offset:])
	}
	return out
}
