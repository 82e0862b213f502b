package wizard

import (
	"context"
	"errors"
	"testing"

	"talentmatch-be/internal/entity"
	"talentmatch-be/pkg/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubRemote struct {
	onboarding     *entity.OnboardingState
	upsertPrefsErr error
	saves          int
}

func (s *stubRemote) FetchProfile(ctx context.Context, userId uuid.UUID) (*entity.CandidateProfile, error) {
	return nil, nil
}

func (s *stubRemote) FetchPreferences(ctx context.Context, userId uuid.UUID) (*entity.CandidatePreferences, error) {
	return nil, nil
}

func (s *stubRemote) FetchOnboarding(ctx context.Context, userId uuid.UUID) (*entity.OnboardingState, error) {
	return s.onboarding, nil
}

func (s *stubRemote) UpsertProfile(ctx context.Context, p *entity.CandidateProfile) error {
	return nil
}

func (s *stubRemote) UpsertPreferences(ctx context.Context, p *entity.CandidatePreferences) error {
	return s.upsertPrefsErr
}

func (s *stubRemote) UpsertOnboarding(ctx context.Context, st *entity.OnboardingState) error {
	s.onboarding = st
	s.saves++
	return nil
}

func newTestStore(t *testing.T, remote profile.RemoteStore) *profile.Store {
	t.Helper()
	store := profile.NewStore(uuid.New(), remote, nopLogger{})
	require.NoError(t, store.Load(context.Background()))
	return store
}

func fillPersonal(store *profile.Store) {
	name := "Ada Lovelace"
	email := "ada@example.com"
	store.Update(profile.Patch{FullName: &name, Email: &email})
}

func fillRoles(store *profile.Store) {
	roles := []string{"Backend Engineer"}
	store.Update(profile.Patch{SelectedRoles: &roles})
}

func TestNewOrchestratorOnboardingStartsAtWelcome(t *testing.T) {
	store := newTestStore(t, &stubRemote{})
	o := NewOrchestrator(store, ModeOnboarding, false)

	st := o.State()
	assert.Equal(t, SectionWelcome, st.ActiveSection)
	assert.Equal(t, ModeOnboarding, st.Mode)
	assert.Equal(t, OnboardingOrder, o.Order())
}

func TestNewOrchestratorProfileStartsAtPersonal(t *testing.T) {
	store := newTestStore(t, &stubRemote{})
	o := NewOrchestrator(store, ModeProfile, false)

	st := o.State()
	assert.Equal(t, SectionPersonal, st.ActiveSection)
	assert.Equal(t, ModeProfile, st.Mode)
	assert.Equal(t, ProfileOrder, o.Order())
}

func TestNewOrchestratorFastForwardsPastCompletedSteps(t *testing.T) {
	remote := &stubRemote{
		onboarding: &entity.OnboardingState{
			CompletedSteps: []string{"welcome", "personal"},
		},
	}
	store := newTestStore(t, remote)
	o := NewOrchestrator(store, ModeOnboarding, false)

	assert.Equal(t, SectionRoles, o.State().ActiveSection)
}

func TestNewOrchestratorForceIgnoresCompletion(t *testing.T) {
	remote := &stubRemote{
		onboarding: &entity.OnboardingState{
			SelectedRoles:  []string{"Backend Engineer"},
			CompletedSteps: []string{"welcome", "personal", "roles", "preferences", "education", "resume"},
			Completed:      true,
		},
	}
	store := newTestStore(t, remote)
	o := NewOrchestrator(store, ModeProfile, true)

	// force puts the candidate back into onboarding mode; completed steps
	// still fast-forward within it.
	assert.Equal(t, ModeOnboarding, o.Mode())
	assert.Equal(t, SectionComplete, o.State().ActiveSection)
}

func TestForwardGatedByValidation(t *testing.T) {
	store := newTestStore(t, &stubRemote{})
	o := NewOrchestrator(store, ModeOnboarding, false)

	// welcome is a pseudo-section, always passable
	_, ok := o.Forward(context.Background())
	require.True(t, ok)
	assert.Equal(t, SectionPersonal, o.State().ActiveSection)

	// personal gates on its essential fields
	_, ok = o.Forward(context.Background())
	assert.False(t, ok)
	assert.Equal(t, SectionPersonal, o.State().ActiveSection)

	fillPersonal(store)
	res, ok := o.Forward(context.Background())
	require.True(t, ok)
	assert.True(t, res.Save.Ok())
	assert.Equal(t, SectionRoles, res.State.ActiveSection)
	assert.True(t, store.Aggregate().HasCompletedStep("personal"))
}

func TestForwardThroughFullOnboardingFlow(t *testing.T) {
	remote := &stubRemote{}
	store := newTestStore(t, remote)
	o := NewOrchestrator(store, ModeOnboarding, false)

	fillPersonal(store)
	fillRoles(store)

	var last ForwardResult
	for i := 0; i < len(OnboardingOrder)-1; i++ {
		res, ok := o.Forward(context.Background())
		require.True(t, ok, "step %d (%s)", i, o.State().ActiveSection)
		last = res
	}

	assert.True(t, last.Finished)
	assert.Equal(t, DashboardPath, last.Redirect)
	assert.Equal(t, SectionComplete, last.State.ActiveSection)
	assert.True(t, store.Aggregate().OnboardingCompleted)
	assert.True(t, remote.onboarding.Completed)

	// One save per Forward, already at the terminal section afterwards.
	assert.Equal(t, len(OnboardingOrder)-1, remote.saves)
	_, ok := o.Forward(context.Background())
	assert.False(t, ok)
}

func TestForwardReportsPartialSave(t *testing.T) {
	remote := &stubRemote{upsertPrefsErr: errors.New("timeout")}
	store := newTestStore(t, remote)
	o := NewOrchestrator(store, ModeOnboarding, false)

	res, ok := o.Forward(context.Background())
	require.True(t, ok)

	// The step still advances; the failure is reported, not retried.
	assert.False(t, res.Save.Ok())
	assert.Error(t, res.Save.Preferences)
	assert.Equal(t, SectionPersonal, res.State.ActiveSection)
}

func TestBackIsUnconditional(t *testing.T) {
	store := newTestStore(t, &stubRemote{})
	o := NewOrchestrator(store, ModeOnboarding, false)

	_, ok := o.Forward(context.Background())
	require.True(t, ok)

	st := o.Back()
	assert.Equal(t, SectionWelcome, st.ActiveSection)

	// Back at index zero stays put.
	st = o.Back()
	assert.Equal(t, SectionWelcome, st.ActiveSection)
}

func TestJumpRules(t *testing.T) {
	remote := &stubRemote{
		onboarding: &entity.OnboardingState{
			CompletedSteps: []string{"welcome", "personal"},
		},
	}
	store := newTestStore(t, remote)
	o := NewOrchestrator(store, ModeOnboarding, false)

	// Completed steps may be revisited.
	assert.True(t, o.Jump(SectionPersonal))
	assert.Equal(t, SectionPersonal, o.State().ActiveSection)

	// Uncompleted steps may not be skipped to.
	assert.False(t, o.Jump(SectionResume))
	assert.Equal(t, SectionPersonal, o.State().ActiveSection)

	// Unknown sections are refused.
	assert.False(t, o.Jump(SectionID("bogus")))
}

func TestJumpIsFreeInProfileMode(t *testing.T) {
	store := newTestStore(t, &stubRemote{})
	o := NewOrchestrator(store, ModeProfile, false)

	assert.True(t, o.Jump(SectionResume))
	assert.Equal(t, SectionResume, o.State().ActiveSection)

	// welcome is not part of the profile order
	assert.False(t, o.Jump(SectionWelcome))
}
