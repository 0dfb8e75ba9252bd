package vm

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestStackPushPop(t *testing.T) {
	st := NewStack()
	for i := uint64(1); i <= 3; i++ {
		if err := st.Push(uint256.NewInt(i)); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if st.Len() != 3 {
		t.Fatalf("len = %d, want 3", st.Len())
	}
	for i := uint64(3); i >= 1; i-- {
		w, err := st.Pop()
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		if w.Uint64() != i {
			t.Fatalf("pop = %d, want %d", w.Uint64(), i)
		}
	}
}

func TestStackPopEmptyUnderflows(t *testing.T) {
	st := NewStack()
	if _, err := st.Pop(); err != ErrStackUnderflow {
		t.Fatalf("err = %v, want ErrStackUnderflow", err)
	}
}

func TestStackOverflowAt1024(t *testing.T) {
	st := NewStack()
	for i := 0; i < stackLimit; i++ {
		if err := st.Push(uint256.NewInt(1)); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if err := st.Push(uint256.NewInt(1)); err != ErrStackOverflow {
		t.Fatalf("err = %v, want ErrStackOverflow", err)
	}
}

func TestStackPeek(t *testing.T) {
	st := NewStack()
	st.Push(uint256.NewInt(1))
	st.Push(uint256.NewInt(2))
	top, err := st.Peek(0)
	if err != nil || top.Uint64() != 2 {
		t.Fatalf("peek(0) = %v, %v, want 2", top, err)
	}
	below, err := st.Peek(1)
	if err != nil || below.Uint64() != 1 {
		t.Fatalf("peek(1) = %v, %v, want 1", below, err)
	}
	if st.Len() != 2 {
		t.Fatalf("peek must not remove items, len = %d", st.Len())
	}
}

func TestStackSwap(t *testing.T) {
	st := NewStack()
	st.Push(uint256.NewInt(1))
	st.Push(uint256.NewInt(2))
	st.Push(uint256.NewInt(3))
	if err := st.Swap(1); err != nil {
		t.Fatalf("swap(1): %v", err)
	}
	items := st.Items()
	if items[0].Uint64() != 2 || items[1].Uint64() != 3 {
		t.Fatalf("items = %v, want [2 3 1]", items)
	}
}

func TestStackDup(t *testing.T) {
	st := NewStack()
	st.Push(uint256.NewInt(10))
	st.Push(uint256.NewInt(20))
	if err := st.Dup(1); err != nil {
		t.Fatalf("dup(1): %v", err)
	}
	items := st.Items()
	if len(items) != 3 || items[0].Uint64() != 10 {
		t.Fatalf("items = %v, want top=10", items)
	}
}

func TestStackItemsTopFirstAreCopies(t *testing.T) {
	st := NewStack()
	st.Push(uint256.NewInt(1))
	items := st.Items()
	items[0].SetUint64(99)
	again, _ := st.Peek(0)
	if again.Uint64() != 1 {
		t.Fatalf("Items() must return copies, internal state mutated to %d", again.Uint64())
	}
}
