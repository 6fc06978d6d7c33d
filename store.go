package walletdex

import (
	"log"
	"slices"

	"github.com/walletdex/walletdex/date"
)

// Preset is a named, persisted snapshot of a filter specification.
type Preset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Spec        Spec      `json:"filters"`
	CreatedAt   date.Date `json:"createdAt"`
}

// Patch is a partial filter specification applied onto the live one. A nil
// field leaves the corresponding facet untouched. Feature constraints merge
// key by key: Features overlays set keys, ClearFeatures removes keys.
type Patch struct {
	Platforms     *[]Platform
	Custodies     *[]Custody
	Categories    *[]Category
	Features      *FeatureFilter
	ClearFeatures []FeatureKey
	Search        *string
	SortBy        *SortKey
	Descending    *bool
}

// Store owns the canonical wallet collection, the live filter specification,
// the derived view, the comparison selection, saved presets, and the current
// display-mode tag. All state is mutated only through its methods, and the
// view is recomputed synchronously on every mutation.
//
// The persisted slice (presets, comparison, view mode) is written through the
// attached State after each change. The live spec and the wallet collection
// are deliberately never persisted: they are reloaded fresh each run.
type Store struct {
	wallets   []Wallet
	spec      Spec
	view      []Wallet
	selection Selection
	presets   []Preset
	viewMode  string
	state     *State // optional, nil means ephemeral
}

// NewStore creates an empty store with the default spec and selection.
func NewStore() *Store {
	return &Store{
		spec:      DefaultSpec(),
		selection: NewSelection(),
		viewMode:  "grid",
	}
}

// AttachState connects a persistence backend and restores the persisted
// slice from it: saved presets, the comparison selection, and the view mode.
func (s *Store) AttachState(st *State) error {
	presets, err := st.LoadPresets()
	if err != nil {
		return err
	}
	if presets != nil {
		s.presets = presets
	}
	sel, ok, err := st.LoadSelection()
	if err != nil {
		return err
	}
	if ok {
		s.selection = sel
	}
	mode, ok, err := st.LoadViewMode()
	if err != nil {
		return err
	}
	if ok {
		s.viewMode = mode
	}
	s.state = st
	return nil
}

// SetWallets replaces the whole collection. Colliding ids are reported with a
// *DuplicateIDError; the error is recoverable: the store keeps the collection
// with duplicates removed (first occurrence wins) and the view recomputed, so
// the caller may proceed or discard the load.
func (s *Store) SetWallets(wallets []Wallet) error {
	seen := make(map[string]struct{}, len(wallets))
	var dups []string
	deduped := make([]Wallet, 0, len(wallets))
	for _, w := range wallets {
		if _, ok := seen[w.ID]; ok {
			dups = append(dups, w.ID)
			continue
		}
		seen[w.ID] = struct{}{}
		deduped = append(deduped, w)
	}
	s.wallets = deduped
	s.recompute()
	if len(dups) > 0 {
		return &DuplicateIDError{IDs: dups}
	}
	return nil
}

// Wallets returns a copy of the canonical collection.
func (s *Store) Wallets() []Wallet { return slices.Clone(s.wallets) }

// View returns a copy of the current derived view.
func (s *Store) View() []Wallet { return slices.Clone(s.view) }

// Spec returns the live filter specification.
func (s *Store) Spec() Spec { return s.spec }

// Wallet returns the record with the given id, or a *NotFoundError.
func (s *Store) Wallet(id string) (Wallet, error) {
	for _, w := range s.wallets {
		if w.ID == id {
			return w, nil
		}
	}
	return Wallet{}, &NotFoundError{Kind: "wallet", ID: id}
}

// SetFilters merges the patch into the live specification and recomputes the
// view. The merge is shallow except for feature constraints, which merge key
// by key.
func (s *Store) SetFilters(p Patch) {
	if p.Platforms != nil {
		s.spec.Platforms = slices.Clone(*p.Platforms)
	}
	if p.Custodies != nil {
		s.spec.Custodies = slices.Clone(*p.Custodies)
	}
	if p.Categories != nil {
		s.spec.Categories = slices.Clone(*p.Categories)
	}
	s.spec.Features = s.spec.Features.merge(p.Features, p.ClearFeatures)
	if p.Search != nil {
		s.spec.Search = *p.Search
	}
	if p.SortBy != nil {
		s.spec.SortBy = *p.SortBy
	}
	if p.Descending != nil {
		s.spec.Descending = *p.Descending
	}
	s.recompute()
}

// ResetFilters restores the default specification and recomputes the view.
func (s *Store) ResetFilters() {
	s.spec = DefaultSpec()
	s.recompute()
}

// Selection returns the current comparison selection.
func (s *Store) Selection() Selection { return s.selection }

// ToggleComparison toggles an id in the comparison selection and persists the
// new selection.
func (s *Store) ToggleComparison(id string) error {
	s.selection = s.selection.Toggle(id)
	return s.persistSelection()
}

// ClearComparison empties the comparison selection and persists it.
func (s *Store) ClearComparison() error {
	s.selection = s.selection.Clear()
	return s.persistSelection()
}

// Presets returns a copy of the saved presets.
func (s *Store) Presets() []Preset { return slices.Clone(s.presets) }

// SavePreset stores a preset. Saving with an existing id overwrites in place,
// preserving list position.
func (s *Store) SavePreset(p Preset) error {
	replaced := false
	for i := range s.presets {
		if s.presets[i].ID == p.ID {
			s.presets[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.presets = append(s.presets, p)
	}
	return s.persistPresets()
}

// DeletePreset removes a preset by id, or returns a *NotFoundError.
func (s *Store) DeletePreset(id string) error {
	for i := range s.presets {
		if s.presets[i].ID == id {
			s.presets = append(s.presets[:i:i], s.presets[i+1:]...)
			return s.persistPresets()
		}
	}
	return &NotFoundError{Kind: "preset", ID: id}
}

// LoadPreset replaces the live specification with the preset's snapshot and
// recomputes the view. Loading an unknown id is a no-op reported as a
// *NotFoundError.
func (s *Store) LoadPreset(id string) error {
	for _, p := range s.presets {
		if p.ID == id {
			s.spec = p.Spec
			s.recompute()
			return nil
		}
	}
	return &NotFoundError{Kind: "preset", ID: id}
}

// ViewMode returns the current display-mode tag. The tag is opaque to the
// core; the presentation layer owns its meaning.
func (s *Store) ViewMode() string { return s.viewMode }

// SetViewMode records and persists the display-mode tag.
func (s *Store) SetViewMode(mode string) error {
	s.viewMode = mode
	if s.state == nil {
		return nil
	}
	return s.state.SaveViewMode(mode)
}

// recompute derives the view from the canonical collection and the live spec.
// The view is always rebuilt whole, never patched incrementally.
func (s *Store) recompute() {
	s.view = Filter(s.wallets, s.spec)
}

func (s *Store) persistSelection() error {
	if s.state == nil {
		return nil
	}
	if err := s.state.SaveSelection(s.selection); err != nil {
		return err
	}
	log.Printf("persist-selection count=%d", len(s.selection.IDs))
	return nil
}

func (s *Store) persistPresets() error {
	if s.state == nil {
		return nil
	}
	if err := s.state.SavePresets(s.presets); err != nil {
		return err
	}
	log.Printf("persist-presets count=%d", len(s.presets))
	return nil
}
