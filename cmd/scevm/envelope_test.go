package main

import (
	"testing"

	"github.com/beskay/evm-from-scratch/core/types"
)

func TestParseEnvelopeAddScenario(t *testing.T) {
	raw := []byte(`{
		"code": "60016001010000",
		"tx": {
			"to": "0x0000000000000000000000000000000000000001",
			"from": "0x0000000000000000000000000000000000000002",
			"origin": "0x0000000000000000000000000000000000000002",
			"gasprice": "0x0",
			"value": "0x0",
			"data": ""
		},
		"block": {
			"coinbase": "0x0000000000000000000000000000000000000000",
			"timestamp": "0x0",
			"number": "0x1",
			"difficulty": "0x0",
			"gaslimit": "0x0",
			"chainid": "0x1"
		},
		"state": {}
	}`)

	code, tx, world, block, err := parseEnvelope(raw)
	if err != nil {
		t.Fatalf("parseEnvelope: %v", err)
	}
	if len(code) != 7 {
		t.Fatalf("code len = %d, want 7", len(code))
	}
	want := types.HexToAddress("0x0000000000000000000000000000000000000001")
	if tx.To != want {
		t.Fatalf("tx.To = %x, want %x", tx.To, want)
	}
	if block.Number.Uint64() != 1 {
		t.Fatalf("block.Number = %v, want 1", block.Number)
	}
	if world.Exists(want) {
		t.Fatalf("empty state snapshot must not contain %x", want)
	}
}

func TestParseEnvelopeWithPrefundedAccount(t *testing.T) {
	raw := []byte(`{
		"code": "00",
		"tx": {"to": "0x01", "from": "0x02", "origin": "0x02"},
		"block": {},
		"state": {
			"0x0000000000000000000000000000000000000099": {
				"balance": "0x64",
				"code": "5b00",
				"nonce": "0x2",
				"storage": {"0x01": "0x2a"}
			}
		}
	}`)

	_, _, world, _, err := parseEnvelope(raw)
	if err != nil {
		t.Fatalf("parseEnvelope: %v", err)
	}
	addr := types.HexToAddress("0x99")
	acct := world.Account(addr)
	if acct.Balance.Uint64() != 0x64 {
		t.Fatalf("balance = %v, want 0x64", acct.Balance)
	}
	if acct.Nonce.Uint64() != 2 {
		t.Fatalf("nonce = %v, want 2", acct.Nonce)
	}
	if len(acct.Code) != 2 {
		t.Fatalf("code len = %d, want 2", len(acct.Code))
	}
	slot := acct.Storage.Load(wordOrZero("0x01"))
	if slot.Uint64() != 0x2a {
		t.Fatalf("storage[1] = %v, want 0x2a", slot)
	}
}

func TestDecodeHexBytesHandlesPrefixAndOddLength(t *testing.T) {
	b, err := decodeHexBytes("0x2a")
	if err != nil || len(b) != 1 || b[0] != 0x2a {
		t.Fatalf("decodeHexBytes(0x2a) = %x, %v", b, err)
	}
	b, err = decodeHexBytes("2a")
	if err != nil || len(b) != 1 || b[0] != 0x2a {
		t.Fatalf("decodeHexBytes(2a) = %x, %v", b, err)
	}
	b, err = decodeHexBytes("2")
	if err != nil || len(b) != 1 || b[0] != 0x02 {
		t.Fatalf("decodeHexBytes(2) odd-length = %x, %v", b, err)
	}
	b, err = decodeHexBytes("")
	if err != nil || b != nil {
		t.Fatalf("decodeHexBytes(\"\") = %x, %v, want nil,nil", b, err)
	}
}
