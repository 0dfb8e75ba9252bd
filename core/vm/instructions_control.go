package vm

// opStop implements STOP (§4.7): success is true only when pc was the final
// byte of code, left undefined (nil) otherwise. This mirrors the retained
// source behavior documented in DESIGN.md rather than the conventional
// always-successful STOP.
func opStop(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	env := &ReturnEnvelope{}
	if pc == uint64(len(frame.contract.Code))-1 {
		env.Success = boolPtr(true)
	}
	return pc, true, env, nil
}

// opJump implements JUMP: pop dest, resume fetching at dest. When strict
// jump validation is enabled, dest must land on a JUMPDEST or the
// invocation fails with ErrInvalidJump.
func opJump(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	destW, err := pop1(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	dest, err := wordToOffset(destW)
	if err != nil {
		return 0, false, nil, err
	}
	if in.strictJump && !frame.contract.validJumpdest(dest) {
		return 0, false, nil, ErrInvalidJump
	}
	return dest, false, nil, nil
}

// opJumpi implements JUMPI: pop (dest, cond), jump iff cond != 0.
func opJumpi(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	destW, cond, err := pop2(frame.stack)
	if err != nil {
		return 0, false, nil, err
	}
	if cond.IsZero() {
		return pc + 1, false, nil, nil
	}
	dest, err := wordToOffset(destW)
	if err != nil {
		return 0, false, nil, err
	}
	if in.strictJump && !frame.contract.validJumpdest(dest) {
		return 0, false, nil, ErrInvalidJump
	}
	return dest, false, nil, nil
}

// opJumpdest implements JUMPDEST: a no-op marker.
func opJumpdest(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	return pc + 1, false, nil, nil
}

// opPC implements PC: push the program counter value at fetch time.
func opPC(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
	if err := frame.stack.Push(wordFromUint64(pc)); err != nil {
		return 0, false, nil, err
	}
	return pc + 1, false, nil, nil
}
