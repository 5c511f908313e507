package cadence

// staggerOverlap stretches each item's reveal window to 1.5x its share of the
// parent's alpha range. Items overlap, producing a smooth cascade rather than
// discrete pops.
const staggerOverlap = 1.5

// StaggerAlpha subdivides a parent element's alpha across n ordered
// sub-items, returning the alpha for the item at index. With stagger off or a
// single item it is a passthrough. Used for bullet and checklist items, grid
// cells (row-major), network layers, timeline events, and 3D scatter points;
// pure and deterministic, so scrubbing backward replays identically.
func StaggerAlpha(alpha float64, index, n int, stagger bool) float64 {
	if !stagger || n <= 1 {
		return alpha
	}
	portion := 1.0 / float64(n)
	itemStart := float64(index) * portion
	itemEnd := itemStart + portion*staggerOverlap
	if alpha < itemStart {
		return 0
	}
	if alpha >= itemEnd {
		return 1
	}
	return clamp01((alpha - itemStart) / (itemEnd - itemStart))
}
