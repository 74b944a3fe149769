package wfc

// RunStep advances the solve by exactly one collapse-plus-propagation, or
// (only once the frontier of Uncollapsed cells is empty) one repair
// attempt. It never spins beyond that single unit of work, so callers can
// interleave solving with their own event loops (§5).
func (e *Engine[EdgeData]) RunStep() (StepResult, error) {
	if _, ok := e.findMinEntropyCell(); ok {
		if err := e.collapseStep(); err != nil {
			return StepCollapsed, err
		}
		return StepCollapsed, nil
	}

	if !e.HasConflicts() {
		return StepComplete, nil
	}

	resolved, err := e.resolveConflicts()
	if err != nil {
		return StepConflictResolutionFailed, err
	}
	if !resolved {
		return StepConflictResolutionFailed, ErrUnresolvableConflicts
	}
	return StepConflictsResolved, nil
}

// Run loops RunStep until it terminates: Complete (nil error) or
// ErrUnresolvableConflicts (or any other error from a malformed input).
func (e *Engine[EdgeData]) Run() error {
	for {
		result, err := e.RunStep()
		if err != nil {
			return err
		}
		if result == StepComplete {
			return nil
		}
	}
}
