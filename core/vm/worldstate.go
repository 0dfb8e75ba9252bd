package vm

import "github.com/beskay/evm-from-scratch/core/types"

// WorldState is the mapping from 20-byte address to Account record used by
// BALANCE, EXTCODESIZE, EXTCODECOPY, CALL and CREATE. A single WorldState is
// shared, by reference, across a top-level invocation and every sub-context
// it spawns: mutations made by a nested CALL/CREATE are visible to sibling
// and parent frames for the remainder of the run (see the world-state
// mutation-propagation decision in DESIGN.md). Nothing here persists once
// the top-level invocation returns.
type WorldState struct {
	accounts map[types.Address]*Account
}

// NewWorldState returns an empty WorldState.
func NewWorldState() *WorldState {
	return &WorldState{accounts: make(map[types.Address]*Account)}
}

// Init populates the state from a pre-built snapshot, taking ownership of
// the map and the Account values within it.
func Init(snapshot map[types.Address]*Account) *WorldState {
	if snapshot == nil {
		snapshot = make(map[types.Address]*Account)
	}
	return &WorldState{accounts: snapshot}
}

// Account returns the record at address, or the zero-default record if the
// address has never been populated. The zero-default is not inserted into
// the map.
func (ws *WorldState) Account(address types.Address) *Account {
	if a, ok := ws.accounts[address]; ok {
		return a
	}
	return newEmptyAccount()
}

// Exists reports whether address has an explicit entry in world state.
func (ws *WorldState) Exists(address types.Address) bool {
	_, ok := ws.accounts[address]
	return ok
}

// Create inserts record at address, overwriting any existing entry. Used by
// CREATE to install the newly deployed account.
func (ws *WorldState) Create(address types.Address, record *Account) {
	ws.accounts[address] = record
}
