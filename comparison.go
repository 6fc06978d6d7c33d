package walletdex

import "slices"

// DefaultMaxSelection is the default capacity of a comparison selection.
const DefaultMaxSelection = 5

// Selection is the bounded working set of wallet ids a user is actively
// comparing. Insertion order is preserved; ids are unique; the length never
// exceeds Max.
type Selection struct {
	IDs []string `json:"ids"`
	Max int      `json:"max"`
}

// NewSelection returns an empty selection with the default capacity.
func NewSelection() Selection {
	return Selection{Max: DefaultMaxSelection}
}

// Contains reports whether the id is currently selected.
func (s Selection) Contains(id string) bool {
	return slices.Contains(s.IDs, id)
}

// Full reports whether the selection is at capacity.
func (s Selection) Full() bool {
	return len(s.IDs) >= s.Max
}

// Toggle returns a new selection with the id removed if present, or appended
// at the end if absent and below capacity. At capacity the call is a silent
// no-op: the caller is expected to disable the control, but the transition
// must stay safe under repeated invocation.
func (s Selection) Toggle(id string) Selection {
	if i := slices.Index(s.IDs, id); i >= 0 {
		ids := make([]string, 0, len(s.IDs)-1)
		ids = append(ids, s.IDs[:i]...)
		ids = append(ids, s.IDs[i+1:]...)
		s.IDs = ids
		return s
	}
	if s.Full() {
		return s
	}
	s.IDs = append(slices.Clone(s.IDs), id)
	return s
}

// Clear returns an empty selection with the same capacity.
func (s Selection) Clear() Selection {
	s.IDs = nil
	return s
}
