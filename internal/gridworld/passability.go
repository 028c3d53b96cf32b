package gridworld

// boundaryBlocks reports whether p's position on the map boundary rules out
// starting (or continuing) motion in direction dir. Cardinal directions
// check the boundary ahead plus both lateral boundaries; diagonals check
// only the two boundaries they touch.
func (m *GridMap) boundaryBlocks(p Point, dir Direction) bool {
	e := m.IsEastBoundary(p, 0)
	n := m.IsNorthBoundary(p, 0)
	w := m.IsWestBoundary(p, 0)
	s := m.IsSouthBoundary(p, 0)

	switch dir {
	case DirEast:
		return e || n || s
	case DirNorth:
		return n || e || w
	case DirWest:
		return w || n || s
	case DirSouth:
		return s || e || w
	case DirNortheast:
		return e || n
	case DirNorthwest:
		return n || w
	case DirSouthwest:
		return w || s
	case DirSoutheast:
		return s || e
	default:
		return true
	}
}

// cellsForDirection returns the cells the agent would immediately adjoin on
// the forward side of p if it began moving in dir, per the
// classification/direction table in spec.md §4.2. The same table also
// serves the resolver's per-event obstacle check (spec.md §4.3 step g),
// applied to the event point's own classification.
func cellsForDirection(cls Classification, dir Direction) []CellIndex {
	idx := cls.NearestIndex
	r, c := idx.R, idx.C

	switch {
	case cls.IsCorner:
		switch dir {
		case DirEast:
			return []CellIndex{{R: r, C: c}, {R: r - 1, C: c}}
		case DirNortheast:
			return []CellIndex{{R: r, C: c}}
		case DirNorth:
			return []CellIndex{{R: r, C: c}, {R: r, C: c - 1}}
		case DirNorthwest:
			return []CellIndex{{R: r, C: c - 1}}
		case DirWest:
			return []CellIndex{{R: r, C: c - 1}, {R: r - 1, C: c - 1}}
		case DirSouthwest:
			return []CellIndex{{R: r - 1, C: c - 1}}
		case DirSouth:
			return []CellIndex{{R: r - 1, C: c}, {R: r - 1, C: c - 1}}
		default: // DirSoutheast
			return []CellIndex{{R: r - 1, C: c}}
		}
	case cls.OnHorizontalEdge:
		switch dir {
		case DirEast:
			return []CellIndex{{R: r, C: c}, {R: r - 1, C: c}}
		case DirNortheast:
			return []CellIndex{{R: r, C: c}}
		case DirNorth:
			return []CellIndex{{R: r, C: c}}
		case DirNorthwest:
			return []CellIndex{{R: r, C: c - 1}}
		case DirWest:
			return []CellIndex{{R: r, C: c - 1}, {R: r - 1, C: c - 1}}
		case DirSouthwest:
			return []CellIndex{{R: r - 1, C: c - 1}}
		case DirSouth:
			return []CellIndex{{R: r - 1, C: c}}
		default: // DirSoutheast
			return []CellIndex{{R: r - 1, C: c}}
		}
	case cls.OnVerticalEdge:
		switch dir {
		case DirEast:
			return []CellIndex{{R: r, C: c}}
		case DirNortheast:
			return []CellIndex{{R: r, C: c}}
		case DirNorth:
			return []CellIndex{{R: r, C: c}, {R: r, C: c - 1}}
		case DirNorthwest:
			return []CellIndex{{R: r, C: c - 1}}
		case DirWest:
			return []CellIndex{{R: r, C: c - 1}}
		case DirSouthwest:
			return []CellIndex{{R: r, C: c - 1}}
		case DirSouth:
			return []CellIndex{{R: r, C: c}, {R: r, C: c - 1}}
		default: // DirSoutheast
			return []CellIndex{{R: r, C: c}}
		}
	default: // interior
		return []CellIndex{{R: r, C: c}}
	}
}

// CanMove reports whether the agent may begin moving from p in direction
// dir: p must not sit on a boundary that would immediately be crossed, and
// none of the cells the motion would adjoin may be an Obstacle.
func (m *GridMap) CanMove(p Point, dir Direction) bool {
	if m.boundaryBlocks(p, dir) {
		return false
	}
	cls := m.Classify(p)
	for _, idx := range cellsForDirection(cls, dir) {
		if m.isObstacleAt(idx) {
			return false
		}
	}
	return true
}
