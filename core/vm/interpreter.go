package vm

import "github.com/beskay/evm-from-scratch/core/types"

// defaultMaxCallDepth bounds CALL/CREATE recursion. The engine does not meter
// gas, so nothing else would stop a self-recursive contract from exhausting
// the host stack; §5 asks implementers to document a maximum and suggests
// the conventional EVM value.
const defaultMaxCallDepth = 1024

// callFrame holds the five mutable state components of one interpreter
// invocation: the program counter (tracked locally in run), the operand
// stack, memory, this frame's private storage, and the return buffer
// assembled on termination. Code and Context (tx) are read-only for the
// frame's lifetime.
type callFrame struct {
	contract *Contract
	stack    *Stack
	memory   *Memory
	storage  *Storage
	calldata *Calldata
	tx       *Transaction
}

// Interpreter executes one contract invocation and, recursively, the
// sub-invocations its CALL and CREATE opcodes spawn. Each child invocation
// runs on a fresh copy of its parent's Interpreter with depth incremented,
// sharing the same WorldState and Block.
type Interpreter struct {
	world      *WorldState
	block      *Block
	depth      int
	maxDepth   int
	strictJump bool
}

// NewInterpreter returns an Interpreter for a top-level invocation against
// world and block. Jump-destination validation is permissive by default,
// matching §9's documented default (see DESIGN.md for the strict-mode
// decision).
func NewInterpreter(world *WorldState, block *Block) *Interpreter {
	return &Interpreter{
		world:    world,
		block:    block,
		maxDepth: defaultMaxCallDepth,
	}
}

// WithStrictJump enables or disables JUMPDEST validation on JUMP/JUMPI.
func (in *Interpreter) WithStrictJump(strict bool) *Interpreter {
	in.strictJump = strict
	return in
}

// child returns a copy of in for a CALL/CREATE sub-context one level deeper.
func (in *Interpreter) child() *Interpreter {
	return &Interpreter{
		world:      in.world,
		block:      in.block,
		depth:      in.depth + 1,
		maxDepth:   in.maxDepth,
		strictJump: in.strictJump,
	}
}

// Run executes code as tx.To against world state, returning the final
// operand stack (top-first) and the return envelope (§6, engine entry
// point). Storage is a clone of the target account's current storage: per
// the documented world-state decision (DESIGN.md), SSTORE writes are local
// to this invocation and are not written back to world state.
func (in *Interpreter) Run(code []byte, tx *Transaction) (*Stack, *ReturnEnvelope, error) {
	acct := in.world.Account(tx.To)
	frame := &callFrame{
		contract: NewContract(tx.From, tx.To, code),
		stack:    NewStack(),
		memory:   NewMemory(),
		storage:  acct.Storage.Clone(),
		calldata: NewCalldata(tx.Data),
		tx:       tx,
	}
	return in.run(frame)
}

// run is the fetch-decode-dispatch loop of §4.7.
func (in *Interpreter) run(frame *callFrame) (*Stack, *ReturnEnvelope, error) {
	pc := uint64(0)
	for pc < uint64(len(frame.contract.Code)) {
		op := frame.contract.GetOp(pc)
		handler, ok := defaultJumpTable[op]
		if !ok {
			return frame.stack, &ReturnEnvelope{}, ErrInvalidOpcode
		}
		nextPC, halted, env, err := handler(in, frame, pc)
		if err != nil {
			return frame.stack, &ReturnEnvelope{}, err
		}
		if halted {
			return frame.stack, env, nil
		}
		pc = nextPC
	}
	// Fell off the end of code without STOP/RETURN/REVERT: envelope-so-far,
	// both fields undefined (§4.7).
	return frame.stack, &ReturnEnvelope{}, nil
}

// call implements the recursive sub-invocation behind CALL (§4.13). Errors
// raised by the child are absorbed into success=false per §7's propagation
// policy; they never reach the parent as a Go error.
func (in *Interpreter) call(parentTx *Transaction, target types.Address, value *Word, data []byte) *ReturnEnvelope {
	if in.depth+1 > in.maxDepth {
		return &ReturnEnvelope{Success: boolPtr(false)}
	}
	acct := in.world.Account(target)
	sub := parentTx.derive(target, parentTx.To, value, data)
	_, env, err := in.child().Run(acct.Code, sub)
	if err != nil {
		return &ReturnEnvelope{Success: boolPtr(false)}
	}
	return env
}

// create implements the recursive sub-invocation behind CREATE (§4.12). On
// success the new account's runtime code is the init code's returned bytes,
// its balance is value, its nonce 0; the account is inserted into the
// shared world state. The new address and success state are reported back
// to the caller via the returned values; only catastrophic (non-child)
// failures would surface as a Go error, and there are none in this design.
func (in *Interpreter) create(parentTx *Transaction, caller types.Address, value *Word, initCode []byte) (types.Address, bool) {
	if in.depth+1 > in.maxDepth {
		return types.Address{}, false
	}
	callerAcct := in.world.Account(caller)
	newAddr := createAddress(caller, callerAcct.Nonce)
	sub := parentTx.derive(newAddr, caller, value, nil)
	_, env, err := in.child().Run(initCode, sub)
	if err != nil || !env.succeeded() {
		return types.Address{}, false
	}
	in.world.Create(newAddr, &Account{
		Balance: new(Word).Set(value),
		Code:    env.Return,
		Nonce:   newWord(),
		Storage: NewStorage(),
	})
	return newAddr, true
}
