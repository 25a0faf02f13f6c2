// Package folding tracks collapsible ranges of a document and their
// folded state. It is the concrete fold index consumed by the caret
// position model: the caret asks which folded regions strictly contain
// an offset and snaps out of them, and asks for regions to be expanded
// when it lands inside one.
package folding

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrRegionInvalid is returned when a region's start is not before its end.
var ErrRegionInvalid = errors.New("invalid fold region")

// Region is a contiguous character range [Start, End) that can be
// collapsed from view.
type Region struct {
	Start  int
	End    int
	Folded bool
}

// String returns a human-readable representation of the region.
func (r Region) String() string {
	state := "open"
	if r.Folded {
		state = "folded"
	}
	return fmt.Sprintf("[%d:%d) %s", r.Start, r.End, state)
}

// Len returns the length of the region in characters.
func (r Region) Len() int {
	return r.End - r.Start
}

// Inside returns true if the given offset lies strictly inside the
// region. Offsets on the boundaries are visible even when the region is
// folded, so they do not count.
func (r Region) Inside(offset int) bool {
	return offset > r.Start && offset < r.End
}

// Index is the set of fold regions for one document. Regions may nest;
// they are kept sorted by start offset.
type Index struct {
	mu      sync.RWMutex
	regions []Region
}

// NewIndex creates an empty fold index.
func NewIndex() *Index {
	return &Index{}
}

// Add registers a foldable region, initially open. Adding an existing
// region is a no-op.
func (x *Index) Add(start, end int) error {
	if start < 0 || start >= end {
		return ErrRegionInvalid
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.find(start, end) >= 0 {
		return nil
	}
	x.regions = append(x.regions, Region{Start: start, End: end})
	sort.Slice(x.regions, func(i, j int) bool {
		if x.regions[i].Start != x.regions[j].Start {
			return x.regions[i].Start < x.regions[j].Start
		}
		return x.regions[i].End < x.regions[j].End
	})
	return nil
}

// Remove deletes a region from the index.
func (x *Index) Remove(start, end int) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if i := x.find(start, end); i >= 0 {
		x.regions = append(x.regions[:i], x.regions[i+1:]...)
	}
}

// find returns the index of the exact region, or -1.
// Caller must hold the lock.
func (x *Index) find(start, end int) int {
	for i, r := range x.regions {
		if r.Start == start && r.End == end {
			return i
		}
	}
	return -1
}

// Fold collapses the region [start, end), registering it if needed.
func (x *Index) Fold(start, end int) error {
	if start < 0 || start >= end {
		return ErrRegionInvalid
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if i := x.find(start, end); i >= 0 {
		x.regions[i].Folded = true
		return nil
	}
	x.regions = append(x.regions, Region{Start: start, End: end, Folded: true})
	sort.Slice(x.regions, func(i, j int) bool {
		if x.regions[i].Start != x.regions[j].Start {
			return x.regions[i].Start < x.regions[j].Start
		}
		return x.regions[i].End < x.regions[j].End
	})
	return nil
}

// Unfold expands the region [start, end) if it is registered.
func (x *Index) Unfold(start, end int) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if i := x.find(start, end); i >= 0 {
		x.regions[i].Folded = false
	}
}

// UnfoldAll expands every region.
func (x *Index) UnfoldAll() {
	x.mu.Lock()
	defer x.mu.Unlock()
	for i := range x.regions {
		x.regions[i].Folded = false
	}
}

// IsFolded reports whether the exact region is registered and collapsed.
func (x *Index) IsFolded(start, end int) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if i := x.find(start, end); i >= 0 {
		return x.regions[i].Folded
	}
	return false
}

// Covering returns all regions strictly containing the given offset, in
// start order.
func (x *Index) Covering(offset int) []Region {
	x.mu.RLock()
	defer x.mu.RUnlock()
	var out []Region
	for _, r := range x.regions {
		if r.Inside(offset) {
			out = append(out, r)
		}
	}
	return out
}

// EnsureUnfolded expands every folded region strictly containing the
// given offset, so a caret at that offset is never hidden.
func (x *Index) EnsureUnfolded(offset int) {
	x.mu.Lock()
	defer x.mu.Unlock()
	for i, r := range x.regions {
		if r.Folded && r.Inside(offset) {
			x.regions[i].Folded = false
		}
	}
}

// HidesOffset reports whether any folded region strictly contains the
// given offset.
func (x *Index) HidesOffset(offset int) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	for _, r := range x.regions {
		if r.Folded && r.Inside(offset) {
			return true
		}
	}
	return false
}

// Regions returns a copy of all registered regions in start order.
func (x *Index) Regions() []Region {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]Region, len(x.regions))
	copy(out, x.regions)
	return out
}
