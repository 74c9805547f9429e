package convolutional

import "testing"

func TestErrorTableSwap(t *testing.T) {
	e := NewErrorTable(4)
	e.Errors[0] = 7
	e.PreviousErrors[0] = 3
	e.Swap()
	if e.Errors[0] != 3 || e.PreviousErrors[0] != 7 {
		t.Fatalf("Swap did not exchange buffers: Errors[0]=%d PreviousErrors[0]=%d", e.Errors[0], e.PreviousErrors[0])
	}
}

func TestErrorTableReset(t *testing.T) {
	e := NewErrorTable(4)
	for i := range e.Errors {
		e.Errors[i] = 9
		e.PreviousErrors[i] = 9
	}
	e.Reset()
	for i := range e.Errors {
		if e.Errors[i] != 0 || e.PreviousErrors[i] != 0 {
			t.Fatalf("Reset left nonzero metric at %d", i)
		}
	}
}

func TestHistoryTableRenormalizeZeroesMinimum(t *testing.T) {
	h := NewHistoryTable(5, 15, 4, 2, 2)
	errors := []uint16{40, 25}
	best := h.leastErrorPath(errors, 1)
	if best != 1 {
		t.Fatalf("leastErrorPath = %d, want 1", best)
	}
	h.renormalize(errors, best)
	if errors[best] != 0 {
		t.Fatalf("renormalize left errors[%d] = %d, want 0", best, errors[best])
	}
	if errors[0] != 15 {
		t.Fatalf("renormalize errors[0] = %d, want 15", errors[0])
	}
}
