package gridworld

// ResolveResult is the outcome of a single MotionResolver call: where the
// agent ends up, the reward collected there, and whether that point lies
// inside the End cell.
type ResolveResult struct {
	Point      Point
	Reward     float64
	Terminated bool
}

// maxResolveSteps bounds the segment walk defensively; a well-formed grid
// crosses at most rows+cols+2 grid lines before leaving the map or hitting
// an obstacle.
func maxResolveSteps(m *GridMap) int {
	return m.rows + m.cols + 4
}

// clampToBoundary pulls p onto the map's edge along whichever axis (or
// both) pushed it outside. Used as a defensive fallback when a final point
// (or, in Resolve's no-move branch, the origin itself) lies past the map
// edge and so cannot be evaluated.
func clampToBoundary(m *GridMap, p Point) Point {
	c := m.corners
	x, y := p.X, p.Y
	if x < c[0].X {
		x = c[0].X
	} else if x > c[1].X {
		x = c[1].X
	}
	if y < c[0].Y {
		y = c[0].Y
	} else if y > c[3].Y {
		y = c[3].Y
	}
	return Point{X: x, Y: y}
}

// Resolve walks the straight segment from origin in direction v, stopping
// at the first obstacle or map boundary it encounters, per spec.md §4.3. It
// is a pure function of (map, origin, v) and never fails: an invalid
// (zero) displacement is treated as "the agent does not move."
func Resolve(m *GridMap, origin Point, v Displacement) ResolveResult {
	dir, ok := v.Direction()
	if !ok || !m.CanMove(origin, dir) {
		reward, err := m.Evaluate(origin)
		if err != nil {
			reward, _ = m.Evaluate(clampToBoundary(m, origin))
		}
		return ResolveResult{Point: origin, Reward: reward, Terminated: m.IsInsideEndCell(origin)}
	}

	dest := origin.Add(v)
	corners := m.Corners()

	p := origin
	for step := 0; step < maxResolveSteps(m); step++ {
		cls := m.Classify(p)
		idx := cls.NearestIndex

		haveV := v.DX != 0
		haveH := v.DY != 0

		var idxVC, idxHR int
		if v.DX > 0 {
			idxVC = idx.C + 1
		} else if cls.OnVerticalEdge {
			idxVC = idx.C - 1
		} else {
			idxVC = idx.C
		}
		if v.DY > 0 {
			idxHR = idx.R + 1
		} else if cls.OnHorizontalEdge {
			idxHR = idx.R - 1
		} else {
			idxHR = idx.R
		}

		var pV, pH Point
		var flagV, flagH IntersectFlag = FlagOther, FlagOther

		if haveV {
			xV := m.ConvertIndexToPoint(CellIndex{R: 0, C: idxVC}).X
			pV, flagV = intersectSegments(
				origin.X, origin.Y, dest.X, dest.Y,
				xV, corners[0].Y, xV, corners[3].Y,
			)
		}
		if haveH {
			yH := m.ConvertIndexToPoint(CellIndex{R: idxHR, C: 0}).Y
			pH, flagH = intersectSegments(
				origin.X, origin.Y, dest.X, dest.Y,
				corners[0].X, yH, corners[1].X, yH,
			)
		}

		validV := flagV == FlagValid
		validH := flagH == FlagValid

		var distV, distH float64
		if validV {
			distV = distance(p, pV)
		}
		if validH {
			distH = distance(p, pH)
		}

		switch {
		case validV && (!validH || distV < distH):
			if stop, final := m.resolveEventStop(pV, dir); stop {
				return finishResolve(m, final)
			}
			p = pV
		case validH && validV && distV == distH:
			// Tie: a diagonal crossing lands exactly on a grid corner.
			// Inspect all four cells meeting there, not just the one
			// ahead in the direction of travel.
			if m.IsOutOfOrOnBoundary(pH) {
				return finishResolve(m, pH)
			}
			cornerCls := m.Classify(pH)
			if anyObstacle(m, neighborsFor(cornerCls)) {
				return finishResolve(m, pH)
			}
			p = pH
		case validH:
			if stop, final := m.resolveEventStop(pH, dir); stop {
				return finishResolve(m, final)
			}
			p = pH
		default:
			// Neither grid line lies ahead: the full displacement lands
			// inside (or on) the map.
			return finishResolve(m, dest)
		}
	}

	// Safety net: should not be reachable for a well-formed map.
	return finishResolve(m, p)
}

// resolveEventStop applies the boundary-then-obstacle check shared by the
// vertical and horizontal (non-tie) event branches: q's own classification,
// combined with the direction of travel, selects the cells per the
// spec.md §4.2 table.
func (m *GridMap) resolveEventStop(q Point, dir Direction) (stop bool, final Point) {
	if m.IsOutOfOrOnBoundary(q) {
		return true, q
	}
	cls := m.Classify(q)
	if anyObstacle(m, cellsForDirection(cls, dir)) {
		return true, q
	}
	return false, q
}

func anyObstacle(m *GridMap, idxs []CellIndex) bool {
	for _, idx := range idxs {
		if m.isObstacleAt(idx) {
			return true
		}
	}
	return false
}

func finishResolve(m *GridMap, p Point) ResolveResult {
	reward, err := m.Evaluate(p)
	if err != nil {
		p = clampToBoundary(m, p)
		reward, _ = m.Evaluate(p)
	}
	return ResolveResult{Point: p, Reward: reward, Terminated: m.IsInsideEndCell(p)}
}
