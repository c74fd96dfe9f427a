package goban

import "sort"

// --- Star Point Placement ---

// starPointIndices resolves the configured star point setting into a
// deterministic, duplicate-free list of grid intersections, sorted by
// row and then column. Explicit points were bounds-checked when the
// BoardSpec was built.
func (b *BoardSpec) starPointIndices() []GridIndex {
	switch b.starPos.mode {
	case starExplicit:
		return dedupGridIndices(b.starPos.points)
	case starEvery:
		k := b.starPos.every
		var points []GridIndex
		for row := 0; row < b.size.Rows; row += k {
			for col := 0; col < b.size.Cols; col += k {
				points = append(points, GridIndex{Col: col, Row: row})
			}
		}
		return points
	default:
		return autoStarPoints(b.size.Cols, b.size.Rows)
	}
}

// starInset gives the 0-based distance of the corner star points from
// the board edge: 3 on full-size boards, 2 on small ones. Axes shorter
// than 9 lines have no traditional star line at all.
func starInset(n int) (int, bool) {
	switch {
	case n >= 13:
		return 3, true
	case n >= 9:
		return 2, true
	default:
		return 0, false
	}
}

// axisStarCandidates derives the candidate line indices for one axis:
// the two corner lines at the inset, plus the center line when the axis
// has an odd length long enough for the center to clear the corners.
func axisStarCandidates(n int) (lo, hi, center int, ok, hasCenter bool) {
	inset, ok := starInset(n)
	if !ok {
		return 0, 0, 0, false, false
	}
	lo, hi = inset, n-1-inset
	if n%2 == 1 && n > 2*inset {
		center, hasCenter = (n-1)/2, true
	}
	return lo, hi, center, true, hasCenter
}

// autoStarPoints reproduces the traditional hoshi layout. The four
// corner points appear whenever both axes have candidates; the edge
// midpoints and the true center only when both axes also have a center
// line. Each axis is judged on its own, so rectangular boards get the
// layout their dimensions allow, and a board with an axis under 9 lines
// gets none.
func autoStarPoints(cols, rows int) []GridIndex {
	cLo, cHi, cMid, cOK, cCenter := axisStarCandidates(cols)
	rLo, rHi, rMid, rOK, rCenter := axisStarCandidates(rows)
	if !cOK || !rOK {
		return nil
	}
	points := []GridIndex{
		{Col: cLo, Row: rLo},
		{Col: cHi, Row: rLo},
		{Col: cLo, Row: rHi},
		{Col: cHi, Row: rHi},
	}
	if cCenter && rCenter {
		points = append(points,
			GridIndex{Col: cMid, Row: rLo},
			GridIndex{Col: cMid, Row: rHi},
			GridIndex{Col: cLo, Row: rMid},
			GridIndex{Col: cHi, Row: rMid},
			GridIndex{Col: cMid, Row: rMid},
		)
	}
	return dedupGridIndices(points)
}

func dedupGridIndices(points []GridIndex) []GridIndex {
	seen := make(map[GridIndex]struct{}, len(points))
	out := make([]GridIndex, 0, len(points))
	for _, p := range points {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
