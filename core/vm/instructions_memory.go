package vm

// opPop implements POP: discard the top stack item.
func opPop(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if _, err := pop1(frame.stack); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opMload implements MLOAD.
func opMload(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	offsetW, err := pop1(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	offset, err := wordToOffset(offsetW)
	if err != nil {
		return 0, false, nil, err
	}
	if err := frame.stack.Push(frame.memory.Load(offset)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opMstore implements MSTORE.
func opMstore(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	offsetW, value, err := pop2(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	offset, err := wordToOffset(offsetW)
	if err != nil {
		return 0, false, nil, err
	}
	frame.memory.StoreWord(offset, value)
	return pc + 1, false, nil, nil
}

// opMstore8 implements MSTORE8: store the low byte of value at offset.
func opMstore8(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	offsetW, value, err := pop2(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	offset, err := wordToOffset(offsetW)
	if err != nil {
		return 0, false, nil, err
	}
	b := value.Bytes32()
	frame.memory.StoreByte(offset, b[31])
	return pc + 1, false, nil, nil
}

// opMsize implements MSIZE: push the current memory length in bytes.
func opMsize(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(wordFromUint64(uint64(frame.memory.Len()))); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}
