package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/beskay/evm-from-scratch/core/types"
	"github.com/beskay/evm-from-scratch/core/vm"
)

// envelope is the outer-boundary JSON shape fed to the engine entry point:
// code, tx, state and block, all hex-encoded per the external-interfaces
// hex conventions. Decoding this into vm.Transaction, vm.Block and a world
// snapshot is explicitly outer-boundary plumbing, not part of the core.
type envelope struct {
	Code  string                  `json:"code"`
	Tx    envelopeTx              `json:"tx"`
	State map[string]envelopeAcct `json:"state"`
	Block envelopeBlock           `json:"block"`
}

type envelopeTx struct {
	To       string `json:"to"`
	From     string `json:"from"`
	Origin   string `json:"origin"`
	GasPrice string `json:"gasprice"`
	Value    string `json:"value"`
	Data     string `json:"data"`
}

type envelopeBlock struct {
	Coinbase   string `json:"coinbase"`
	Timestamp  string `json:"timestamp"`
	Number     string `json:"number"`
	Difficulty string `json:"difficulty"`
	GasLimit   string `json:"gaslimit"`
	ChainID    string `json:"chainid"`
}

type envelopeAcct struct {
	Balance string            `json:"balance"`
	Code    string            `json:"code"`
	Nonce   string            `json:"nonce"`
	Storage map[string]string `json:"storage"`
}

// parseEnvelope decodes raw JSON bytes into the engine's native inputs.
func parseEnvelope(raw []byte) ([]byte, *vm.Transaction, *vm.WorldState, *vm.Block, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("decoding envelope: %w", err)
	}

	code, err := decodeHexBytes(env.Code)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("code: %w", err)
	}

	data, err := decodeHexBytes(env.Tx.Data)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("tx.data: %w", err)
	}

	tx := &vm.Transaction{
		To:       types.HexToAddress(env.Tx.To),
		From:     types.HexToAddress(env.Tx.From),
		Origin:   types.HexToAddress(env.Tx.Origin),
		GasPrice: wordOrZero(env.Tx.GasPrice),
		Value:    wordOrZero(env.Tx.Value),
		Data:     data,
	}

	block := &vm.Block{
		Coinbase:   types.HexToAddress(env.Block.Coinbase),
		Timestamp:  wordOrZero(env.Block.Timestamp),
		Number:     wordOrZero(env.Block.Number),
		Difficulty: wordOrZero(env.Block.Difficulty),
		GasLimit:   wordOrZero(env.Block.GasLimit),
		ChainID:    wordOrZero(env.Block.ChainID),
	}

	snapshot := make(map[types.Address]*vm.Account, len(env.State))
	for addrHex, a := range env.State {
		acctCode, err := decodeHexBytes(a.Code)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("state[%s].code: %w", addrHex, err)
		}
		storage := vm.NewStorage()
		for k, v := range a.Storage {
			storage.Store(wordOrZero(k), wordOrZero(v))
		}
		snapshot[types.HexToAddress(addrHex)] = &vm.Account{
			Balance: wordOrZero(a.Balance),
			Code:    acctCode,
			Nonce:   wordOrZero(a.Nonce),
			Storage: storage,
		}
	}

	return code, tx, vm.Init(snapshot), block, nil
}

// wordOrZero parses a hex-string field into a Word, treating an empty or
// unparseable string as zero (fields are frequently omitted in fixtures).
func wordOrZero(s string) *vm.Word {
	w := new(vm.Word)
	b, err := decodeHexBytes(s)
	if err != nil || len(b) == 0 {
		return w
	}
	w.SetBytes(b)
	return w
}

// decodeHexBytes decodes a hex string that may or may not carry a "0x"
// prefix, per §6's hex conventions. An empty string decodes to nil.
func decodeHexBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, nil
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// result is the JSON shape printed back to the caller: the final operand
// stack (top-first) and the return envelope.
type result struct {
	Stack   []string `json:"stack"`
	Success *bool    `json:"success,omitempty"`
	Return  string   `json:"return,omitempty"`
}

func buildResult(stack *vm.Stack, env *vm.ReturnEnvelope) result {
	items := stack.Items()
	r := result{Stack: make([]string, len(items))}
	for i, w := range items {
		b := w.Bytes32()
		r.Stack[i] = "0x" + hex.EncodeToString(b[:])
	}
	if env != nil {
		r.Success = env.Success
		if env.Return != nil {
			r.Return = hex.EncodeToString(env.Return)
		}
	}
	return r
}
