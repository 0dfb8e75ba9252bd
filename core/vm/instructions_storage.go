package vm

// opSload implements SLOAD: pop a key, push its stored value (0 if unset).
func opSload(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	key, err := pop1(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	if err := frame.stack.Push(frame.storage.Load(key)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}

// opSstore implements SSTORE: pop (key, value), store value at key.
func opSstore(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	key, value, err := pop2(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	frame.storage.Store(key, value)
	return pc + 1, false, nil, nil
}
