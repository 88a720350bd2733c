package domain

// RunResult collects the outcome of one run. Observation modules set the
// end condition to stop the run before its configured end time.
type RunResult struct {
	endCondition bool
	endReason    string
	endTime      int
	finished     bool
}

// SetEndCondition marks the run for termination after the current cycle.
func (r *RunResult) SetEndCondition(reason string) {
	r.endCondition = true
	r.endReason = reason
}

// IsEndCondition reports whether an end condition was reached.
func (r *RunResult) IsEndCondition() bool { return r.endCondition }

// EndReason returns the reason passed to SetEndCondition.
func (r *RunResult) EndReason() string { return r.endReason }

// Complete records the last executed instant.
func (r *RunResult) Complete(t int) {
	r.endTime = t
	r.finished = true
}

// EndTime returns the last executed instant of a completed run.
func (r *RunResult) EndTime() int { return r.endTime }

// Finished reports whether the run reached Finalize without failing.
func (r *RunResult) Finished() bool { return r.finished }
