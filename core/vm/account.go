package vm

// Account is the account record tuple of §3: balance, code, nonce, and a
// per-contract Storage. Missing accounts behave as the zero value returned
// by newEmptyAccount.
type Account struct {
	Balance *Word
	Code    []byte
	Nonce   *Word
	Storage *Storage
}

// newEmptyAccount returns the zero-default account record: (0, empty, 0,
// empty) as required for addresses absent from world state.
func newEmptyAccount() *Account {
	return &Account{
		Balance: newWord(),
		Code:    nil,
		Nonce:   newWord(),
		Storage: NewStorage(),
	}
}

// Clone returns a deep copy of the account record, including its storage,
// so writes to the copy cannot alias the original.
func (a *Account) Clone() *Account {
	return &Account{
		Balance: new(Word).Set(a.Balance),
		Code:    append([]byte(nil), a.Code...),
		Nonce:   new(Word).Set(a.Nonce),
		Storage: a.Storage.Clone(),
	}
}
