package walletdex

import "testing"

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewSelection()
	s = s.Toggle("a").Toggle("b")
	if !sameIDs(s.IDs, []string{"a", "b"}) {
		t.Fatalf("ids = %v want [a b]", s.IDs)
	}
	if !s.Contains("a") || s.Contains("c") {
		t.Error("Contains misreports membership")
	}
	s = s.Toggle("a")
	if !sameIDs(s.IDs, []string{"b"}) {
		t.Errorf("ids after removing a = %v want [b]", s.IDs)
	}
}

func TestToggleIsInvolution(t *testing.T) {
	s := NewSelection().Toggle("a").Toggle("b")
	after := s.Toggle("x").Toggle("x")
	if !sameIDs(after.IDs, s.IDs) {
		t.Errorf("toggle-toggle changed the selection: %v want %v", after.IDs, s.IDs)
	}
}

func TestToggleAtCapacityIsNoOp(t *testing.T) {
	s := Selection{Max: 2}
	s = s.Toggle("a").Toggle("b")
	if !s.Full() {
		t.Fatal("selection not full at capacity")
	}
	s = s.Toggle("c")
	if !sameIDs(s.IDs, []string{"a", "b"}) {
		t.Errorf("ids = %v want [a b], toggle above capacity must not add", s.IDs)
	}
	// Removal still works at capacity, and frees a slot.
	s = s.Toggle("a")
	if !sameIDs(s.IDs, []string{"b"}) {
		t.Fatalf("ids = %v want [b]", s.IDs)
	}
	s = s.Toggle("c")
	if !sameIDs(s.IDs, []string{"b", "c"}) {
		t.Errorf("ids = %v want [b c]", s.IDs)
	}
}

func TestTogglePreservesInsertionOrder(t *testing.T) {
	s := NewSelection().Toggle("c").Toggle("a").Toggle("b")
	if !sameIDs(s.IDs, []string{"c", "a", "b"}) {
		t.Errorf("ids = %v want [c a b]", s.IDs)
	}
}

func TestToggleNeverExceedsMax(t *testing.T) {
	s := NewSelection()
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "a", "h"} {
		s = s.Toggle(id)
		if len(s.IDs) > s.Max {
			t.Fatalf("selection grew past its capacity: %v", s.IDs)
		}
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	s := Selection{Max: 3}
	s = s.Toggle("a").Toggle("b").Clear()
	if len(s.IDs) != 0 {
		t.Errorf("ids after Clear = %v want empty", s.IDs)
	}
	if s.Max != 3 {
		t.Errorf("Max after Clear = %d want 3", s.Max)
	}
}

func TestToggleDoesNotAliasPreviousValue(t *testing.T) {
	base := NewSelection().Toggle("a")
	grown := base.Toggle("b")
	if !sameIDs(base.IDs, []string{"a"}) {
		t.Errorf("base mutated by a later toggle: %v", base.IDs)
	}
	if !sameIDs(grown.IDs, []string{"a", "b"}) {
		t.Errorf("grown = %v want [a b]", grown.IDs)
	}
}
