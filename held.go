package keydown

import (
	"iter"
	"slices"
)

// HeldSet is the ordered set of key codes currently reported down. The set
// rarely holds more than a handful of codes, so a slice is used.
type HeldSet struct {
	codes []int
}

// Insert adds code unless it is already present and reports whether it was
// added. A false result means the event was an OS key repeat.
func (hs *HeldSet) Insert(code int) bool {
	if hs.Contains(code) {
		return false
	}
	hs.codes = append(hs.codes, code)
	return true
}

// Remove deletes code and returns it, or reports false if it was not held.
func (hs *HeldSet) Remove(code int) (int, bool) {
	i := slices.Index(hs.codes, code)
	if i < 0 {
		return 0, false
	}
	hs.codes = slices.Delete(hs.codes, i, i+1)
	return code, true
}

func (hs *HeldSet) Clear() {
	hs.codes = hs.codes[:0]
}

func (hs *HeldSet) Contains(code int) bool {
	return slices.Contains(hs.codes, code)
}

func (hs *HeldSet) Len() int {
	return len(hs.codes)
}

// ForEach calls fn for a snapshot of the held codes, so fn may change the
// set without disturbing the iteration.
func (hs *HeldSet) ForEach(fn func(code int)) {
	for _, code := range hs.Codes() {
		fn(code)
	}
}

// Codes returns a copy of the held codes in insertion order.
func (hs *HeldSet) Codes() []int {
	return slices.Clone(hs.codes)
}

// All iterates over a snapshot of the held codes.
func (hs *HeldSet) All() iter.Seq[int] {
	return slices.Values(hs.Codes())
}
