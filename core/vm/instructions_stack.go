package vm

// opPush returns the handler for PUSHn: read the next n code bytes
// big-endian, push as a Word, advance pc past them (§4.8). Bytes past the
// end of code are treated as 0.
func opPush(n int) instructionFunc {
	return func(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
		var buf [32]byte
		for i := 0; i < n; i++ {
			buf[32-n+i] = frame.contract.GetByte(pc + 1 + uint64(i))
		}
		var w Word
		w.SetBytes(buf[:])
		if err := frame.stack.Push(&w); err != nil {
			return 0, false, nil, err
		}
		return pc + 1 + uint64(n), false, nil, nil
	}
}

// opDup returns the handler for DUPn: duplicate the n-th item from the top
// (1-based) onto the top (§4.9).
func opDup(n int) instructionFunc {
	return func(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
		if err := frame.stack.Dup(n - 1); err != nil {
			return 0, false, nil, err
		}
		return pc + 1, false, nil, nil
	}
}

// opSwap returns the handler for SWAPn: swap the top with the (n+1)-th item
// (§4.9).
func opSwap(n int) instructionFunc {
	return func(in *Interpreter, frame *callFrame, pc uint64) (uint64, bool, *ReturnEnvelope, error) {
		if err := frame.stack.Swap(n); err != nil {
			return 0, false, nil, err
		}
		return pc + 1, false, nil, nil
	}
}
