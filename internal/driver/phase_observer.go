package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// Phase names reported to observers.
const (
	PhaseScan  = "scan"
	PhaseParse = "parse"
	PhaseCheck = "check"
)

// PhaseEvent describes a phase boundary of one unit.
type PhaseEvent struct {
	Path    string
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
	Failed  bool // только для PhaseEnd
	Cached  bool
}

// PhaseObserver receives phase events. It may be called from several
// goroutines during CheckDir.
type PhaseObserver func(PhaseEvent)

func (o PhaseObserver) emit(ev PhaseEvent) {
	if o != nil {
		o(ev)
	}
}
