package vm

// opBinary adapts a pure two-operand Word function into an instructionFunc.
// Per §5's top-first convention, for "OP a b" the operand popped first is a
// (the most recently pushed item).
func opBinary(f func(a, b *Word) *Word) instructionFunc {
	return func(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
		a, b, err := pop2(frame.stack)
		if err != nil {
			return 0, false, nil, err
		}
		if err := frame.stack.Push(f(a, b)); err != nil {
			return 0, false, nil, err
		}
		return pc + 1, false, nil, nil
	}
}

// opUnary adapts a pure one-operand Word function into an instructionFunc.
func opUnary(f func(a *Word) *Word) instructionFunc {
	return func(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
		a, err := pop1(frame.stack)
		if err != nil {
			return 0, false, nil, err
		}
		if err := frame.stack.Push(f(a)); err != nil {
			return 0, false, nil, err
		}
		return pc + 1, false, nil, nil
	}
}
