package walletdex

import (
	"fmt"

	"github.com/walletdex/walletdex/kvstore"
)

// The persisted slice of the store lives in three independently-keyed
// buckets. The live filter spec and the wallet collection are never
// persisted: the surrounding system relies on them being reloaded fresh each
// run.
const (
	bucketPresets    = "presets"
	bucketComparison = "comparison"
	bucketViewMode   = "view-mode"
)

// State persists the snapshot slice of a Store: saved presets, the
// comparison selection with its capacity, and the last-used view mode.
type State struct {
	kv *kvstore.Store
}

// OpenState opens the snapshot store at path.
func OpenState(path string) (*State, error) {
	kv, err := kvstore.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open state: %w", err)
	}
	return &State{kv: kv}, nil
}

// Close releases the underlying store.
func (s *State) Close() error { return s.kv.Close() }

// LoadPresets returns the saved presets, or nil when none were persisted.
func (s *State) LoadPresets() ([]Preset, error) {
	var presets []Preset
	if _, err := s.kv.Get(bucketPresets, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// SavePresets persists the preset list.
func (s *State) SavePresets(presets []Preset) error {
	return s.kv.Put(bucketPresets, presets)
}

// LoadSelection returns the persisted comparison selection. The boolean
// reports whether one was persisted.
func (s *State) LoadSelection() (Selection, bool, error) {
	var sel Selection
	found, err := s.kv.Get(bucketComparison, &sel)
	if err != nil {
		return Selection{}, false, err
	}
	if found && sel.Max == 0 {
		sel.Max = DefaultMaxSelection
	}
	return sel, found, nil
}

// SaveSelection persists the comparison selection and its capacity.
func (s *State) SaveSelection(sel Selection) error {
	return s.kv.Put(bucketComparison, sel)
}

// LoadViewMode returns the persisted display-mode tag. The boolean reports
// whether one was persisted.
func (s *State) LoadViewMode() (string, bool, error) {
	var mode string
	found, err := s.kv.Get(bucketViewMode, &mode)
	if err != nil {
		return "", false, err
	}
	return mode, found, nil
}

// SaveViewMode persists the display-mode tag.
func (s *State) SaveViewMode(mode string) error {
	return s.kv.Put(bucketViewMode, mode)
}
