package wizard

import (
	"context"
	"sync"

	"talentmatch-be/pkg/profile"
)

// NavigationState is the externally visible snapshot of the orchestrator.
type NavigationState struct {
	CurrentStepIndex int
	ActiveSection    SectionID
	Mode             Mode
}

// ForwardResult reports what a successful Forward did: the save outcome of
// the persisted step and, on entering the terminal section, the dashboard
// redirect the caller should issue.
type ForwardResult struct {
	State    NavigationState
	Save     profile.SaveResult
	Finished bool
	Redirect string
}

// DashboardPath is where a finished onboarding flow redirects to.
const DashboardPath = "/dashboard"

// Orchestrator owns the wizard's navigation state for one candidate. It is
// created when a wizard session starts and discarded when it ends; the
// aggregate itself stays with the profile store.
type Orchestrator struct {
	store *profile.Store

	mu    sync.Mutex
	mode  Mode
	order []SectionID
	idx   int
}

// NewOrchestrator builds the orchestrator for the given mode. Onboarding
// mode starts at welcome and fast-forwards past steps already completed;
// profile mode starts at personal. force enters onboarding mode regardless
// of persisted completion state; it is an explicit escape hatch, not
// derived from data.
func NewOrchestrator(store *profile.Store, mode Mode, force bool) *Orchestrator {
	o := &Orchestrator{store: store}

	if mode == ModeProfile && !force {
		o.mode = ModeProfile
		o.order = ProfileOrder
		o.idx = 0
		return o
	}

	o.mode = ModeOnboarding
	o.order = OnboardingOrder
	o.idx = 0

	// Fast-forward to the first section not yet completed.
	agg := store.Aggregate()
	for i, id := range o.order {
		if id == SectionComplete {
			break
		}
		if !agg.HasCompletedStep(string(id)) {
			o.idx = i
			return o
		}
	}
	o.idx = len(o.order) - 1
	return o
}

func (o *Orchestrator) State() NavigationState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stateLocked()
}

func (o *Orchestrator) stateLocked() NavigationState {
	return NavigationState{
		CurrentStepIndex: o.idx,
		ActiveSection:    o.order[o.idx],
		Mode:             o.mode,
	}
}

// Store exposes the backing profile store.
func (o *Orchestrator) Store() *profile.Store {
	return o.store
}

func (o *Orchestrator) Mode() Mode {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mode
}

// Order returns the section sequence for the active mode.
func (o *Orchestrator) Order() []SectionID {
	return o.order
}

// CanAdvance reports whether the active section permits moving forward:
// always for non-required sections and the welcome/complete pseudo-sections,
// otherwise only when the section's essential fields validate.
func (o *Orchestrator) CanAdvance() bool {
	o.mu.Lock()
	cur := o.order[o.idx]
	o.mu.Unlock()
	return o.canAdvanceFrom(cur)
}

func (o *Orchestrator) canAdvanceFrom(id SectionID) bool {
	if id == SectionWelcome || id == SectionComplete {
		return true
	}
	sec := Sections[id]
	if !sec.Required {
		return true
	}
	return ValidateSection(id, o.store.Aggregate()).Valid
}

// Forward marks the current section complete, persists, and advances one
// step. Entering the terminal complete section additionally raises the
// explicit onboarding_completed flag before the final save and reports the
// dashboard redirect. A gated section that does not validate is a no-op.
func (o *Orchestrator) Forward(ctx context.Context) (ForwardResult, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.idx >= len(o.order)-1 {
		return ForwardResult{State: o.stateLocked()}, false
	}

	cur := o.order[o.idx]
	if !o.canAdvanceFrom(cur) {
		return ForwardResult{State: o.stateLocked()}, false
	}

	o.store.CompleteStep(string(cur))

	next := o.order[o.idx+1]
	finished := o.mode == ModeOnboarding && next == SectionComplete
	if finished {
		done := true
		o.store.Update(profile.Patch{OnboardingCompleted: &done})
	}

	save := o.store.Save(ctx)
	o.idx++

	res := ForwardResult{
		State:    o.stateLocked(),
		Save:     save,
		Finished: finished,
	}
	if finished {
		res.Redirect = DashboardPath
	}
	return res, true
}

// Back moves one step backwards. Unconditional, no persistence.
func (o *Orchestrator) Back() NavigationState {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.idx > 0 {
		o.idx--
	}
	return o.stateLocked()
}

// Jump moves to the named section. Unconditional in profile mode; in
// onboarding mode only sections already completed may be jumped to, so the
// wizard cannot be skipped ahead. Returns false (state unchanged) when the
// jump is refused or the section is not in this mode's order.
func (o *Orchestrator) Jump(id SectionID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	target := -1
	for i, s := range o.order {
		if s == id {
			target = i
			break
		}
	}
	if target == -1 {
		return false
	}

	if o.mode == ModeOnboarding && !o.store.Aggregate().HasCompletedStep(string(id)) {
		return false
	}

	o.idx = target
	return true
}
