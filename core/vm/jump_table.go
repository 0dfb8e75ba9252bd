package vm

// instructionFunc executes one opcode against the given frame. It returns
// the program counter to resume at (normally pc+1, but PUSHn/JUMP/JUMPI
// override it per §4.7-§4.9), whether execution halted, and the return
// envelope to report if it did.
type instructionFunc func(in *Interpreter, frame *callFrame, pc uint64) (nextPC uint64, halted bool, envelope *ReturnEnvelope, err error)

// JumpTable maps every opcode this engine implements to its handler.
// Opcodes with no entry fail the fetch-decode step with ErrInvalidOpcode
// (§6: "Any opcode outside this table MUST fail with InvalidOpcode").
type JumpTable map[OpCode]instructionFunc

// newJumpTable builds the table once; callers share the single instance
// returned via defaultJumpTable since handlers carry no per-invocation
// state.
func newJumpTable() JumpTable {
	jt := JumpTable{
		STOP: opStop,

		ADD:  opBinary(add),
		MUL:  opBinary(mul),
		SUB:  opBinary(sub),
		DIV:  opBinary(div),
		SDIV: opBinary(sdiv),
		MOD:  opBinary(mod),
		SMOD: opBinary(smod),

		LT:     opBinary(lt),
		GT:     opBinary(gt),
		SLT:    opBinary(slt),
		SGT:    opBinary(sgt),
		EQ:     opBinary(eq),
		ISZERO: opUnary(isZero),
		AND:    opBinary(and),
		OR:     opBinary(or),
		XOR:    opBinary(xor),
		NOT:    opUnary(not),
		BYTE:   opBinary(byteAt),

		KECCAK256: opKeccak256,

		ADDRESS:      opAddress,
		BALANCE:      opBalance,
		ORIGIN:       opOrigin,
		CALLER:       opCaller,
		CALLVALUE:    opCallValue,
		CALLDATALOAD: opCallDataLoad,
		CALLDATASIZE: opCallDataSize,
		CALLDATACOPY: opCallDataCopy,
		CODESIZE:     opCodeSize,
		CODECOPY:     opCodeCopy,
		GASPRICE:     opGasPrice,
		EXTCODESIZE:  opExtCodeSize,
		EXTCODECOPY:  opExtCodeCopy,

		COINBASE:    opCoinbase,
		TIMESTAMP:   opTimestamp,
		NUMBER:      opNumber,
		DIFFICULTY:  opDifficulty,
		GASLIMIT:    opGasLimit,
		CHAINID:     opChainID,
		SELFBALANCE: opSelfBalance,

		POP:     opPop,
		MLOAD:   opMload,
		MSTORE:  opMstore,
		MSTORE8: opMstore8,
		SLOAD:   opSload,
		SSTORE:  opSstore,
		JUMP:    opJump,
		JUMPI:   opJumpi,
		PC:      opPC,
		MSIZE:   opMsize,

		JUMPDEST: opJumpdest,

		CREATE: opCreate,
		CALL:   opCall,
		RETURN: opReturn,
		REVERT: opRevert,
	}

	for n := 1; n <= 32; n++ {
		jt[PUSH1+OpCode(n-1)] = opPush(n)
	}
	for n := 1; n <= 16; n++ {
		jt[DUP1+OpCode(n-1)] = opDup(n)
	}
	for n := 1; n <= 16; n++ {
		jt[SWAP1+OpCode(n-1)] = opSwap(n)
	}
	return jt
}

var defaultJumpTable = newJumpTable()
