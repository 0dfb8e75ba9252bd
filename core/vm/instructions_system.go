package vm

import "github.com/beskay/evm-from-scratch/core/types"

// opCreate implements CREATE (§4.12): pop (value, initOffset, initSize),
// execute the init code at a derived address, push the new address on
// success or 0 on failure.
func opCreate(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	value, initOffsetW, initSizeW, err := pop3(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	initOffset, err := wordToOffset(initOffsetW)
	if err != nil {
		return 0, false, nil, err
	}
	initSize, err := wordToOffset(initSizeW)
	if err != nil {
		return 0, false, nil, err
	}
	initCode := frame.memory.Slice(initOffset, initSize)

	newAddr, ok := in.create(frame.tx, frame.tx.To, value, initCode)
	result := newWord()
	if ok {
		result.SetBytes(newAddr.Bytes())
	}
	if err := frame.stack.Push(result); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opCall implements CALL (§4.13): pop (gas, address, value, argsOffset,
// argsSize, retOffset, retSize). gas is accepted and discarded (gas
// accounting is out of scope). Pushes 1 on sub-call success, 0 otherwise.
func opCall(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	st := frame.stack
	if _, err := pop1(st); err != nil { // gas, discarded
		return 0, false, nil, err
	}
	addrW, err := pop1(st)
	if err != nil {
		return 0, false, nil, err
	}
	value, err := pop1(st)
	if err != nil {
		return 0, false, nil, err
	}
	argsOffsetW, err := pop1(st)
	if err != nil {
		return 0, false, nil, err
	}
	argsSizeW, err := pop1(st)
	if err != nil {
		return 0, false, nil, err
	}
	retOffsetW, err := pop1(st)
	if err != nil {
		return 0, false, nil, err
	}
	retSizeW, err := pop1(st)
	if err != nil {
		return 0, false, nil, err
	}

	argsOffset, err := wordToOffset(argsOffsetW)
	if err != nil {
		return 0, false, nil, err
	}
	argsSize, err := wordToOffset(argsSizeW)
	if err != nil {
		return 0, false, nil, err
	}
	retOffset, err := wordToOffset(retOffsetW)
	if err != nil {
		return 0, false, nil, err
	}
	retSize, err := wordToOffset(retSizeW)
	if err != nil {
		return 0, false, nil, err
	}

	target := types.BytesToAddress(addrW.Bytes())
	callData := frame.memory.Slice(argsOffset, argsSize)
	env := in.call(frame.tx, target, value, callData)

	frame.memory.SetSlice(retOffset, zeroExtend(env.Return, 0, retSize))

	result := newWord()
	if env.succeeded() {
		result = wordFromUint64(1)
	}
	if err := frame.stack.Push(result); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opReturn implements RETURN: pop (offset, size), halt successfully with
// those memory bytes as the return data.
func opReturn(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
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
	return pc, true, &ReturnEnvelope{Success: boolPtr(true), Return: data}, nil
}

// opRevert implements REVERT: pop (offset, size), halt with success=false
// and those memory bytes as the return data. REVERT is not an error (§7).
func opRevert(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
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
	return pc, true, &ReturnEnvelope{Success: boolPtr(false), Return: data}, nil
}
