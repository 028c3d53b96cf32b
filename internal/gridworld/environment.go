package gridworld

import "fmt"

// Environment drives an episode over a GridMap: it owns the agent's current
// position and action/location history, the accumulated reward, the step
// counter and budget, and whether the episode has terminated.
type Environment struct {
	m *GridMap

	agentRadius    float64
	pathArrowWidth float64
	maxSteps       int

	agentStart Point
	pos        Point
	currentAct Displacement
	locHistory []Point
	actHistory []Displacement
	nSteps     int
	totalValue float64
	haveReset  bool
	terminated bool
}

// EnvOption configures an Environment at construction time.
type EnvOption func(*Environment)

// WithAgentRadius sets the agent's render radius, consumed by cmd/gridview;
// it has no effect on resolution or evaluation.
func WithAgentRadius(r float64) EnvOption {
	return func(e *Environment) { e.agentRadius = r }
}

// WithPathArrowWidth sets the stroke width cmd/gridview uses when drawing
// the agent's trajectory.
func WithPathArrowWidth(w float64) EnvOption {
	return func(e *Environment) { e.pathArrowWidth = w }
}

// WithMaxSteps caps an episode at n steps; Step terminates the episode once
// nSteps reaches n, independent of the resolver's own termination report.
// 0 (the default) means unbounded.
func WithMaxSteps(n int) EnvOption {
	return func(e *Environment) { e.maxSteps = n }
}

// NewEnvironment binds an Environment to m. It fails only for a nil map; the
// Start and End cells are checked by Reset, on every call.
func NewEnvironment(m *GridMap, opts ...EnvOption) (*Environment, error) {
	if m == nil {
		return nil, ErrMissingMap
	}
	step := m.StepSize()
	minStep := step.X
	if step.Y < minStep {
		minStep = step.Y
	}

	e := &Environment{
		m:              m,
		agentRadius:    0.3 * minStep,
		pathArrowWidth: 0.05 * minStep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Map returns the bound GridMap.
func (e *Environment) Map() *GridMap { return e.m }

// AgentRadius returns the render radius: 0.3 of the smaller step size unless
// set via WithAgentRadius.
func (e *Environment) AgentRadius() float64 { return e.agentRadius }

// PathArrowWidth returns the trajectory stroke width: 0.05 of the smaller
// step size unless set via WithPathArrowWidth.
func (e *Environment) PathArrowWidth() float64 { return e.pathArrowWidth }

// StateSize reports the dimensionality of the observation Reset and Step
// return: the agent's (x, y) position.
func (e *Environment) StateSize() int { return 2 }

// ActionSize reports the dimensionality of the action Step accepts: a
// (dx, dy) displacement.
func (e *Environment) ActionSize() int { return 2 }

// Reset places the agent at the map's Start cell, clears the location and
// action histories to [start] and [], zeroes the step counter and
// accumulated value, and clears termination. It fails with ErrMissingStart
// or ErrMissingEnd if either is unset.
func (e *Environment) Reset() (Point, error) {
	startIdx, err := e.m.StartIndex()
	if err != nil {
		return Point{}, err
	}
	if _, err := e.m.EndIndex(); err != nil {
		return Point{}, err
	}

	start, err := e.m.CellAt(startIdx)
	if err != nil {
		return Point{}, err
	}

	e.agentStart = Point{
		X: start.AnchorX + start.Width/2,
		Y: start.AnchorY + start.Height/2,
	}
	e.pos = e.agentStart
	e.currentAct = Displacement{}
	e.locHistory = []Point{e.agentStart}
	e.actHistory = nil
	e.nSteps = 0
	e.totalValue = 0
	e.haveReset = true
	e.terminated = false
	return e.pos, nil
}

// Position returns the agent's current location.
func (e *Environment) Position() Point { return e.pos }

// CurrentAction returns the most recent displacement passed to Step, or the
// zero Displacement before the first step of an episode.
func (e *Environment) CurrentAction() Displacement { return e.currentAct }

// LocHistory returns the sequence of positions visited this episode,
// beginning with the Start cell's center.
func (e *Environment) LocHistory() []Point {
	out := make([]Point, len(e.locHistory))
	copy(out, e.locHistory)
	return out
}

// ActHistory returns the sequence of actions applied this episode.
func (e *Environment) ActHistory() []Displacement {
	out := make([]Displacement, len(e.actHistory))
	copy(out, e.actHistory)
	return out
}

// NSteps returns the number of steps taken this episode.
func (e *Environment) NSteps() int { return e.nSteps }

// MaxSteps returns the step cap set via WithMaxSteps, or 0 for unbounded.
func (e *Environment) MaxSteps() int { return e.maxSteps }

// TotalValue returns the sum of rewards collected this episode.
func (e *Environment) TotalValue() float64 { return e.totalValue }

// Terminated reports whether the episode has ended.
func (e *Environment) Terminated() bool { return e.terminated }

// Step resolves one motion action from the agent's current position via
// Resolve, updates the agent's position, appends to both histories,
// increments the step counter, accumulates the reward, and returns the new
// position, the reward collected there, and whether the episode has now
// terminated — either because the resolver reports arrival inside the End
// cell or because the step cap (if any) has been reached. It fails with
// ErrMissingMap if Reset was never called, ErrEpisodeTerminated once the
// agent has already reached the End cell or the step cap, and
// ErrInvalidArgument for a zero displacement.
func (e *Environment) Step(action Displacement) (Point, float64, bool, error) {
	if !e.haveReset {
		return Point{}, 0, false, fmt.Errorf("step: %w", ErrMissingMap)
	}
	if e.terminated {
		return e.pos, 0, true, ErrEpisodeTerminated
	}
	if action.IsZero() {
		return e.pos, 0, false, fmt.Errorf("step %s: %w", action, ErrInvalidArgument)
	}

	result := Resolve(e.m, e.pos, action)
	e.pos = result.Point
	e.currentAct = action
	e.locHistory = append(e.locHistory, e.pos)
	e.actHistory = append(e.actHistory, action)
	e.nSteps++
	e.totalValue += result.Reward

	e.terminated = result.Terminated || (e.maxSteps > 0 && e.nSteps >= e.maxSteps)
	return e.pos, result.Reward, e.terminated, nil
}
