package kvstore

import (
	"path/filepath"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer s.Close()

	type payload struct {
		Names []string `json:"names"`
		Count int      `json:"count"`
	}
	want := payload{Names: []string{"a", "b"}, Count: 2}
	if err := s.Put("sample", want); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	var got payload
	found, err := s.Get("sample", &got)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !found {
		t.Fatal("Get reported bucket missing after Put")
	}
	if got.Count != want.Count || len(got.Names) != len(want.Names) {
		t.Errorf("Get = %+v want %+v", got, want)
	}
}

func TestGetMissingBucket(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer s.Close()

	var v struct{}
	found, err := s.Get("nope", &v)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if found {
		t.Error("Get reported a bucket that was never written")
	}
}

func TestPutOverwrites(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer s.Close()

	if err := s.Put("mode", "grid"); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s.Put("mode", "table"); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	var mode string
	if _, err := s.Get("mode", &mode); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if mode != "table" {
		t.Errorf("mode = %q want %q", mode, "table")
	}
}

func TestDelete(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer s.Close()

	if err := s.Put("gone", 1); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s.Delete("gone"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	var v int
	found, err := s.Get("gone", &v)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if found {
		t.Error("bucket still present after Delete")
	}
	// deleting again is not an error
	if err := s.Delete("gone"); err != nil {
		t.Errorf("second Delete error: %v", err)
	}
}
