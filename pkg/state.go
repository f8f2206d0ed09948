package pkg

import (
	"fmt"
)

// Stage of a pipeline run. Ready and Failed are terminal.
type State int

const (
	StateIdle State = iota
	StateSampling
	StateNormalizing
	StateBuilding
	StateFraming
	StateReady
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:        "Idle",
	StateSampling:    "Sampling",
	StateNormalizing: "Normalizing",
	StateBuilding:    "Building",
	StateFraming:     "Framing",
	StateReady:       "Ready",
	StateFailed:      "Failed",
}

var allowedTransitions = map[State][]State{
	StateIdle:        {StateSampling},
	StateSampling:    {StateNormalizing, StateFailed},
	StateNormalizing: {StateBuilding, StateFailed},
	StateBuilding:    {StateFraming, StateFailed},
	StateFraming:     {StateReady},
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) IsTerminal() bool {
	return s == StateReady || s == StateFailed
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Single owner of one conversion. Every run starts from Idle and ends in Ready or Failed.
type PipelineRun struct {
	Generation uint64

	state   State
	history []State
}

func newPipelineRun(generation uint64) *PipelineRun {
	return &PipelineRun{
		Generation: generation,
		state:      StateIdle,
		history:    []State{StateIdle},
	}
}

func (r *PipelineRun) State() State {
	return r.state
}

// Returns the states the run went through, starting with Idle
func (r *PipelineRun) History() []State {
	history := make([]State, len(r.history))
	copy(history, r.history)
	return history
}

func (r *PipelineRun) transition(next State) {
	for _, allowed := range allowedTransitions[r.state] {
		if allowed == next {
			r.state = next
			r.history = append(r.history, next)
			return
		}
	}
	panic(fmt.Sprintf("invalid pipeline transition %s -> %s", r.state, next))
}

// Failure of a run, keeps the stage it failed in. The kind of the cause is reachable
// through errkind.KindOf.
type RunError struct {
	Generation uint64
	Stage      State
	History    []State
	Err        error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run %d failed while %s: %v", e.Generation, stageVerb(e.Stage), e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

func (e *RunError) Cause() error {
	return e.Err
}

func stageVerb(s State) string {
	switch s {
	case StateSampling:
		return "sampling"
	case StateNormalizing:
		return "normalizing"
	case StateBuilding:
		return "building"
	case StateFraming:
		return "framing"
	}
	return s.String()
}
