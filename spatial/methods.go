package spatial

// Add stores v at the cell containing (x, y) and returns the cell's updated
// value list. The returned slice is a live view: callers may inspect or
// reorder it in place (e.g. sort by depth for a pseudo z-buffer) but must
// not append to it or hold it across later mutations.
// Complexity: O(1) expected.
func (h *SpatialHash[T]) Add(x, y float64, v T) []T {
	return h.appendAt(h.keyAt(x, y), v)
}

// Query returns the values stored at the exact cell containing (x, y), or
// nil when the cell is empty. The returned slice is a read-only view.
// Complexity: O(1) expected.
func (h *SpatialHash[T]) Query(x, y float64) []T {
	return h.lookup(h.keyAt(x, y))
}

// AddResolve stores v at the cell containing (x, y) while enforcing at most
// one logical value per cell. An empty cell stores v directly; a cell with
// exactly one existing value old is replaced by resolve(old, v). A cell
// holding more than one value breaks this API's precondition and returns
// ErrCellConflict without modifying the container.
// Complexity: O(1) expected.
func (h *SpatialHash[T]) AddResolve(x, y float64, v T, resolve func(old, next T) T) error {
	if resolve == nil {
		return ErrNilResolve
	}

	k := h.keyAt(x, y)
	b := h.buckets[h.bucketIndex(k)]
	vs := b[k]
	switch len(vs) {
	case 0:
		b[k] = append(vs, v)
		h.count++
	case 1:
		vs[0] = resolve(vs[0], v)
	default:
		return ErrCellConflict
	}

	return nil
}

// SameBin reports whether the two continuous points fall into the same
// exact cell under the active tiling. Complexity: O(1).
func (h *SpatialHash[T]) SameBin(x0, y0, x1, y1 float64) bool {
	return h.keyAt(x0, y0) == h.keyAt(x1, y1)
}

// Len reports the total number of stored values across all cells. Ring and
// line insertions count once per touched cell.
func (h *SpatialHash[T]) Len() int { return h.count }

// Clear empties every bucket. Kind, hasher, and bucket count are unchanged,
// and bucket map allocations are kept for reuse.
func (h *SpatialHash[T]) Clear() {
	for _, b := range h.buckets {
		clear(b)
	}
	h.count = 0
}
