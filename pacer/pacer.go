// Package pacer runs a virtual machine for a bounded number of instructions
// per frame.
package pacer

import vmcore "github.com/user-none/lc3sim/api"

// DefaultBudget is the number of instructions executed per frame.
const DefaultBudget = 1000

// State is the pacer lifecycle state.
type State int

const (
	NoVM State = iota
	Running
	Halted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NoVM:
		return "no vm"
	case Running:
		return "running"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}

// Pacer steps an attached machine up to Budget times per Advance and stops
// for good on the first failing step.
type Pacer struct {
	vm     vmcore.Stepper
	budget int
	halted bool
	last   vmcore.StepResult
}

// New creates a pacer with the given per-frame budget. Budgets below 1
// select DefaultBudget.
func New(budget int) *Pacer {
	p := &Pacer{}
	p.SetBudget(budget)
	return p
}

// SetBudget changes the per-frame budget. Budgets below 1 select
// DefaultBudget.
func (p *Pacer) SetBudget(budget int) {
	if budget < 1 {
		budget = DefaultBudget
	}
	p.budget = budget
}

// Budget returns the per-frame budget.
func (p *Pacer) Budget() int { return p.budget }

// Attach starts pacing vm and clears the halted latch.
func (p *Pacer) Attach(vm vmcore.Stepper) {
	p.vm = vm
	p.halted = false
	p.last = vmcore.StepSuccess
}

// Detach stops pacing.
func (p *Pacer) Detach() {
	p.vm = nil
	p.halted = false
	p.last = vmcore.StepSuccess
}

// Halted reports whether the attached machine has stopped.
func (p *Pacer) Halted() bool { return p.halted }

// LastResult returns the step result that halted the machine, or
// StepSuccess while it is running.
func (p *Pacer) LastResult() vmcore.StepResult { return p.last }

// State returns the lifecycle state.
func (p *Pacer) State() State {
	switch {
	case p.vm == nil:
		return NoVM
	case p.halted:
		return Halted
	default:
		return Running
	}
}

// Advance steps the machine until the budget is spent or a step fails, and
// returns the number of steps attempted.
func (p *Pacer) Advance() int {
	if p.vm == nil || p.halted {
		return 0
	}
	for i := 0; i < p.budget; i++ {
		if r := p.vm.Step(); r != vmcore.StepSuccess {
			p.halted = true
			p.last = r
			return i + 1
		}
	}
	return p.budget
}
