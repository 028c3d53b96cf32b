package gridworld

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// GridMap owns a row-major matrix of cells plus map-level metadata: origin,
// step size, out-of-bounds value, the optional Start/End indices, and the
// obstacle set.
type GridMap struct {
	ID   uuid.UUID
	Name string

	rows int
	cols int

	origin   Point
	stepSize Point // (stepX, stepY)

	outOfBoundsValue float64

	cells [][]Cell // rows x cols, row-major

	haveStart bool
	startIdx  CellIndex
	haveEnd   bool
	endIdx    CellIndex

	obstacles   []CellIndex // insertion order, deduplicated
	obstacleSet map[CellIndex]struct{}

	corners [4]Point // SW, SE, NE, NW

	initialized bool
}

// GridMapOption configures a GridMap at construction time.
type GridMapOption func(*GridMap)

// WithName sets the map's display name.
func WithName(name string) GridMapOption {
	return func(m *GridMap) { m.Name = name }
}

// WithOrigin sets the south-west corner of the map in map-local coordinates.
func WithOrigin(x, y float64) GridMapOption {
	return func(m *GridMap) { m.origin = Point{X: x, Y: y} }
}

// WithStepSize sets the per-cell width and height. Values must be positive;
// NewGridMap rejects non-positive step sizes with ErrInvalidArgument.
func WithStepSize(stepX, stepY float64) GridMapOption {
	return func(m *GridMap) { m.stepSize = Point{X: stepX, Y: stepY} }
}

// WithOutOfBoundsValue sets the scalar contributed by any off-grid neighbor
// during evaluation.
func WithOutOfBoundsValue(v float64) GridMapOption {
	return func(m *GridMap) { m.outOfBoundsValue = v }
}

// NewGridMap allocates an uninitialized map of the given size. Call
// Initialize before using it: the cell matrix is not allocated until then,
// so CellAt and the other cell accessors panic on an in-range index, and
// the corners are all zero.
func NewGridMap(rows, cols int, opts ...GridMapOption) (*GridMap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("gridmap %dx%d: %w", rows, cols, ErrInvalidArgument)
	}

	m := &GridMap{
		ID:               uuid.New(),
		Name:             "unnamed",
		rows:             rows,
		cols:             cols,
		origin:           Point{X: 0, Y: 0},
		stepSize:         Point{X: 1, Y: 1},
		outOfBoundsValue: -100,
		obstacleSet:      make(map[CellIndex]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.stepSize.X <= 0 || m.stepSize.Y <= 0 {
		return nil, fmt.Errorf("gridmap step size %v: %w", m.stepSize, ErrInvalidArgument)
	}

	return m, nil
}

// Initialize fills every cell with a fresh Normal cell holding the given
// value and computes the map's outer corners. It fails with
// ErrAlreadyInitialized on a second call.
func (m *GridMap) Initialize(value float64) error {
	if m.initialized {
		return fmt.Errorf("gridmap %q: %w", m.Name, ErrAlreadyInitialized)
	}

	m.cells = make([][]Cell, m.rows)
	for r := 0; r < m.rows; r++ {
		row := make([]Cell, m.cols)
		for c := 0; c < m.cols; c++ {
			row[c] = Cell{
				Kind:    KindNormal,
				AnchorX: m.origin.X + float64(c)*m.stepSize.X,
				AnchorY: m.origin.Y + float64(r)*m.stepSize.Y,
				Width:   m.stepSize.X,
				Height:  m.stepSize.Y,
				Value:   value,
			}
		}
		m.cells[r] = row
	}

	w := float64(m.cols) * m.stepSize.X
	h := float64(m.rows) * m.stepSize.Y
	m.corners = [4]Point{
		{X: m.origin.X, Y: m.origin.Y},         // SW
		{X: m.origin.X + w, Y: m.origin.Y},     // SE
		{X: m.origin.X + w, Y: m.origin.Y + h}, // NE
		{X: m.origin.X, Y: m.origin.Y + h},     // NW
	}

	m.initialized = true
	return nil
}

// Rows returns the number of rows.
func (m *GridMap) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *GridMap) Cols() int { return m.cols }

// Origin returns the map's south-west coordinate.
func (m *GridMap) Origin() Point { return m.origin }

// StepSize returns the per-cell (width, height) as a Point.
func (m *GridMap) StepSize() Point { return m.stepSize }

// OutOfBoundsValue returns the scalar contributed by off-grid neighbors.
func (m *GridMap) OutOfBoundsValue() float64 { return m.outOfBoundsValue }

// Corners returns the four outer corners in SW, SE, NE, NW order.
func (m *GridMap) Corners() [4]Point { return m.corners }

func (m *GridMap) inRange(idx CellIndex) bool {
	return idx.R >= 0 && idx.R < m.rows && idx.C >= 0 && idx.C < m.cols
}

// CellAt returns the cell at idx, or ErrIndexOutOfRange.
func (m *GridMap) CellAt(idx CellIndex) (Cell, error) {
	if !m.inRange(idx) {
		return Cell{}, fmt.Errorf("cell at %s: %w", idx, ErrIndexOutOfRange)
	}
	return m.cells[idx.R][idx.C], nil
}

// isObstacleAt reports whether idx holds an Obstacle cell. Any index outside
// the grid counts as an obstacle: the agent can never leave the map.
func (m *GridMap) isObstacleAt(idx CellIndex) bool {
	if !m.inRange(idx) {
		return true
	}
	return m.cells[idx.R][idx.C].Kind == KindObstacle
}

func (m *GridMap) overwriteCell(idx CellIndex, kind Kind, value float64) {
	cell := &m.cells[idx.R][idx.C]
	if cell.Kind == KindObstacle && kind != KindObstacle {
		m.removeObstacle(idx)
	}
	cell.Kind = kind
	cell.Value = value
}

func (m *GridMap) removeObstacle(idx CellIndex) {
	if _, ok := m.obstacleSet[idx]; !ok {
		return
	}
	delete(m.obstacleSet, idx)
	for i, o := range m.obstacles {
		if o == idx {
			m.obstacles = append(m.obstacles[:i], m.obstacles[i+1:]...)
			break
		}
	}
}

// HaveStart reports whether a Start cell has been set.
func (m *GridMap) HaveStart() bool { return m.haveStart }

// StartIndex returns the Start cell's index, or ErrMissingStart.
func (m *GridMap) StartIndex() (CellIndex, error) {
	if !m.haveStart {
		return CellIndex{}, ErrMissingStart
	}
	return m.startIdx, nil
}

// SetStart assigns the Start cell, demoting any prior Start to Normal.
func (m *GridMap) SetStart(idx CellIndex) error {
	if !m.inRange(idx) {
		return fmt.Errorf("set start %s: %w", idx, ErrIndexOutOfRange)
	}
	if m.haveStart {
		m.overwriteCell(m.startIdx, KindNormal, defaultValue(KindNormal))
	}
	m.overwriteCell(idx, KindStart, defaultValue(KindStart))
	m.startIdx = idx
	m.haveStart = true
	return nil
}

// HaveEnd reports whether an End cell has been set.
func (m *GridMap) HaveEnd() bool { return m.haveEnd }

// EndIndex returns the End cell's index, or ErrMissingEnd.
func (m *GridMap) EndIndex() (CellIndex, error) {
	if !m.haveEnd {
		return CellIndex{}, ErrMissingEnd
	}
	return m.endIdx, nil
}

// SetEnd assigns the End cell, demoting any prior End to Normal.
func (m *GridMap) SetEnd(idx CellIndex) error {
	if !m.inRange(idx) {
		return fmt.Errorf("set end %s: %w", idx, ErrIndexOutOfRange)
	}
	if m.haveEnd {
		m.overwriteCell(m.endIdx, KindNormal, defaultValue(KindNormal))
	}
	m.overwriteCell(idx, KindEnd, defaultValue(KindEnd))
	m.endIdx = idx
	m.haveEnd = true
	return nil
}

// AddObstacle marks idx as an Obstacle cell. It fails with
// ErrForbiddenObstacle if idx is the Start or End index, and is a silent
// no-op if idx is already an obstacle.
func (m *GridMap) AddObstacle(idx CellIndex) error {
	if !m.inRange(idx) {
		return fmt.Errorf("add obstacle %s: %w", idx, ErrIndexOutOfRange)
	}
	if m.haveStart && idx == m.startIdx {
		return fmt.Errorf("add obstacle %s: %w", idx, ErrForbiddenObstacle)
	}
	if m.haveEnd && idx == m.endIdx {
		return fmt.Errorf("add obstacle %s: %w", idx, ErrForbiddenObstacle)
	}
	if m.cells[idx.R][idx.C].Kind == KindObstacle {
		return nil
	}
	m.overwriteCell(idx, KindObstacle, defaultValue(KindObstacle))
	m.obstacleSet[idx] = struct{}{}
	m.obstacles = append(m.obstacles, idx)
	return nil
}

// Obstacles returns the obstacle indices in insertion order.
func (m *GridMap) Obstacles() []CellIndex {
	out := make([]CellIndex, len(m.obstacles))
	copy(out, m.obstacles)
	return out
}

// ConvertIndexToPoint maps a cell index to its south-west anchor coordinate.
// It is not bounds-checked: callers may convert indices one step outside the
// grid (e.g. column cols) to locate the far grid line.
func (m *GridMap) ConvertIndexToPoint(idx CellIndex) Point {
	return Point{
		X: m.origin.X + float64(idx.C)*m.stepSize.X,
		Y: m.origin.Y + float64(idx.R)*m.stepSize.Y,
	}
}

// nearestIndex floors (p - origin) / stepSize to the containing cell index.
// Not bounds-checked.
func (m *GridMap) nearestIndex(p Point) CellIndex {
	return CellIndex{
		R: int(math.Floor((p.Y - m.origin.Y) / m.stepSize.Y)),
		C: int(math.Floor((p.X - m.origin.X) / m.stepSize.X)),
	}
}

// Classification is the result of Classify: whether p sits on a grid corner,
// a horizontal or vertical grid line, and which cell it is nearest to.
type Classification struct {
	IsCorner         bool
	OnHorizontalEdge bool
	OnVerticalEdge   bool
	NearestIndex     CellIndex
}

// Classify locates p relative to the grid lines. Equality is exact; callers
// needing tolerance must pre-snap their coordinates.
func (m *GridMap) Classify(p Point) Classification {
	idx := m.nearestIndex(p)
	anchor := m.ConvertIndexToPoint(idx)

	cls := Classification{
		OnHorizontalEdge: p.Y == anchor.Y,
		OnVerticalEdge:   p.X == anchor.X,
		NearestIndex:     idx,
	}
	cls.IsCorner = cls.OnHorizontalEdge && cls.OnVerticalEdge
	return cls
}

// IsEastBoundary reports whether p lies on the map's east edge, within eps.
func (m *GridMap) IsEastBoundary(p Point, eps float64) bool {
	return onBoundary(p.X, m.corners[1].X, eps)
}

// IsNorthBoundary reports whether p lies on the map's north edge, within eps.
func (m *GridMap) IsNorthBoundary(p Point, eps float64) bool {
	return onBoundary(p.Y, m.corners[2].Y, eps)
}

// IsWestBoundary reports whether p lies on the map's west edge, within eps.
func (m *GridMap) IsWestBoundary(p Point, eps float64) bool {
	return onBoundary(p.X, m.corners[0].X, eps)
}

// IsSouthBoundary reports whether p lies on the map's south edge, within eps.
func (m *GridMap) IsSouthBoundary(p Point, eps float64) bool {
	return onBoundary(p.Y, m.corners[0].Y, eps)
}

func onBoundary(v, edge, eps float64) bool {
	if eps == 0 {
		return v == edge
	}
	d := v - edge
	if d < 0 {
		d = -d
	}
	return d < eps
}

// IsOutOfOrOnBoundary reports true when p is outside the map or exactly on
// its edge.
func (m *GridMap) IsOutOfOrOnBoundary(p Point) bool {
	return p.X <= m.corners[0].X || p.X >= m.corners[1].X ||
		p.Y <= m.corners[0].Y || p.Y >= m.corners[3].Y
}

// IsOutOfBoundary reports true when p is strictly outside the map, excluding
// the boundary itself.
func (m *GridMap) IsOutOfBoundary(p Point) bool {
	return p.X < m.corners[0].X || p.X > m.corners[1].X ||
		p.Y < m.corners[0].Y || p.Y > m.corners[3].Y
}

// IsInsideEndCell reports whether p lies strictly inside the End cell (not
// on any of its edges or corners).
func (m *GridMap) IsInsideEndCell(p Point) bool {
	if m.IsOutOfOrOnBoundary(p) {
		return false
	}
	cls := m.Classify(p)
	if cls.IsCorner || cls.OnHorizontalEdge || cls.OnVerticalEdge {
		return false
	}
	cell, err := m.CellAt(cls.NearestIndex)
	if err != nil {
		return false
	}
	return cell.Kind == KindEnd
}

// neighborsFor returns the set of cell indices touching p, keyed by
// classification: four at a corner, two on an edge, one in the interior.
func neighborsFor(cls Classification) []CellIndex {
	idx := cls.NearestIndex
	switch {
	case cls.IsCorner:
		return []CellIndex{
			idx,
			{R: idx.R, C: idx.C - 1},
			{R: idx.R - 1, C: idx.C - 1},
			{R: idx.R - 1, C: idx.C},
		}
	case cls.OnHorizontalEdge:
		return []CellIndex{idx, {R: idx.R - 1, C: idx.C}}
	case cls.OnVerticalEdge:
		return []CellIndex{idx, {R: idx.R, C: idx.C - 1}}
	default:
		return []CellIndex{idx}
	}
}

// sumBlockValues implements the block-value summation rule: any out-of-grid
// neighbor contributes outOfBoundsValue once, every Obstacle neighbor
// contributes additively, and the Normal/Start/End neighbors together
// contribute at most one representative value.
func (m *GridMap) sumBlockValues(idxs []CellIndex) (float64, error) {
	var total float64
	var haveOOB, haveNormalLike, haveAny bool
	var normalVal float64

	for _, idx := range idxs {
		if !m.inRange(idx) {
			haveOOB = true
			continue
		}
		haveAny = true
		cell := m.cells[idx.R][idx.C]
		if cell.Kind == KindObstacle {
			total += cell.Value
			continue
		}
		// Normal, Start, and End all count as one Normal-equivalent
		// contribution (spec.md §4.1 Open Question: Start/End are treated
		// as Normal here, not dropped as in the original).
		haveNormalLike = true
		normalVal = cell.Value
	}

	if haveOOB {
		total += m.outOfBoundsValue
	}
	if haveNormalLike {
		total += normalVal
	}
	if !haveAny && !haveOOB {
		return 0, ErrNoNeighbors
	}
	return total, nil
}

// Evaluate attributes a scalar value to p by summing the contributions of
// every cell touching it, per the block-value summation rule. It fails with
// ErrOutOfMap for a strictly-exterior point.
func (m *GridMap) Evaluate(p Point) (float64, error) {
	if m.IsOutOfBoundary(p) {
		return 0, fmt.Errorf("evaluate %s: %w", p, ErrOutOfMap)
	}
	cls := m.Classify(p)
	return m.sumBlockValues(neighborsFor(cls))
}

// Describe renders a human-readable multi-line summary of the map: name,
// dimensions, start/end, obstacle list, and corners.
func (m *GridMap) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "GridMap %q (%s)\n", m.Name, m.ID)
	fmt.Fprintf(&b, "rows=%d cols=%d origin=%s stepSize=%s outOfBoundsValue=%g\n",
		m.rows, m.cols, m.origin, m.stepSize, m.outOfBoundsValue)

	if m.haveStart {
		fmt.Fprintf(&b, "start: %s\n", m.startIdx)
	} else {
		b.WriteString("start: (none)\n")
	}
	if m.haveEnd {
		fmt.Fprintf(&b, "end: %s\n", m.endIdx)
	} else {
		b.WriteString("end: (none)\n")
	}

	if len(m.obstacles) == 0 {
		b.WriteString("obstacles: none\n")
	} else {
		fmt.Fprintf(&b, "obstacles (%d):\n", len(m.obstacles))
		for _, o := range m.obstacles {
			fmt.Fprintf(&b, "  %s\n", o)
		}
	}

	b.WriteString("corners:\n")
	for _, c := range m.corners {
		fmt.Fprintf(&b, "  %s\n", c)
	}

	return b.String()
}
