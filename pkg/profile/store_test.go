package profile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"talentmatch-be/internal/entity"

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

// fakeRemote is an in-memory RemoteStore with per-table error injection and
// fetch counters.
type fakeRemote struct {
	mu sync.Mutex

	profile     *entity.CandidateProfile
	preferences *entity.CandidatePreferences
	onboarding  *entity.OnboardingState

	fetchErr        error
	upsertProfErr   error
	upsertPrefsErr  error
	upsertOnbErr    error
	fetchCalls      int32
	fetchDelay      time.Duration
	upsertProfCalls int32
}

func (f *fakeRemote) FetchProfile(ctx context.Context, userId uuid.UUID) (*entity.CandidateProfile, error) {
	atomic.AddInt32(&f.fetchCalls, 1)
	if f.fetchDelay > 0 {
		time.Sleep(f.fetchDelay)
	}
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profile, nil
}

func (f *fakeRemote) FetchPreferences(ctx context.Context, userId uuid.UUID) (*entity.CandidatePreferences, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.preferences, nil
}

func (f *fakeRemote) FetchOnboarding(ctx context.Context, userId uuid.UUID) (*entity.OnboardingState, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.onboarding, nil
}

func (f *fakeRemote) UpsertProfile(ctx context.Context, p *entity.CandidateProfile) error {
	atomic.AddInt32(&f.upsertProfCalls, 1)
	if f.upsertProfErr != nil {
		return f.upsertProfErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = p
	return nil
}

func (f *fakeRemote) UpsertPreferences(ctx context.Context, p *entity.CandidatePreferences) error {
	if f.upsertPrefsErr != nil {
		return f.upsertPrefsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.preferences = p
	return nil
}

func (f *fakeRemote) UpsertOnboarding(ctx context.Context, s *entity.OnboardingState) error {
	if f.upsertOnbErr != nil {
		return f.upsertOnbErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onboarding = s
	return nil
}

func TestLoadNewUserGetsDefaults(t *testing.T) {
	userId := uuid.New()
	remote := &fakeRemote{} // all three fetches return (nil, nil)
	store := NewStore(userId, remote, nopLogger{})

	err := store.Load(context.Background())
	require.NoError(t, err)

	agg := store.Aggregate()
	assert.Equal(t, userId, agg.Id)
	assert.Empty(t, agg.FullName)
	assert.Empty(t, agg.SelectedRoles)
	assert.Empty(t, agg.CompletedSteps)
	assert.False(t, store.IsOnboardingComplete())
}

func TestLoadMergePrecedence(t *testing.T) {
	userId := uuid.New()
	remote := &fakeRemote{
		profile: &entity.CandidateProfile{
			UserId:   userId,
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
		},
		preferences: &entity.CandidatePreferences{
			UserId:             userId,
			RemotePreference:   entity.RemoteFull,
			PreferredLocations: []string{"London"},
			CompanyStagePrefs:  map[string]entity.StagePreference{"seed": entity.StagePreferred},
		},
		onboarding: &entity.OnboardingState{
			UserId:         userId,
			SelectedRoles:  []string{"Backend Engineer"},
			CompletedSteps: []string{"welcome", "personal"},
		},
	}
	store := NewStore(userId, remote, nopLogger{})

	require.NoError(t, store.Load(context.Background()))

	agg := store.Aggregate()
	assert.Equal(t, "Ada Lovelace", agg.FullName)
	assert.Equal(t, entity.RemoteFull, agg.RemotePreference)
	assert.Equal(t, []string{"London"}, agg.PreferredLocations)
	assert.Equal(t, entity.StagePreferred, agg.CompanyStagePrefs["seed"])
	assert.Equal(t, []string{"Backend Engineer"}, agg.SelectedRoles)
	assert.Equal(t, []string{"welcome", "personal"}, agg.CompletedSteps)
}

func TestLoadErrorFallsBackToDefaults(t *testing.T) {
	userId := uuid.New()
	remote := &fakeRemote{fetchErr: errors.New("connection refused")}
	store := NewStore(userId, remote, nopLogger{})

	// Seed some local state first so the reset is observable.
	name := "stale"
	store.Update(Patch{FullName: &name})

	err := store.Load(context.Background())
	require.Error(t, err)

	agg := store.Aggregate()
	assert.Empty(t, agg.FullName)
	assert.Equal(t, userId, agg.Id)
}

func TestLoadCoalescesConcurrentCalls(t *testing.T) {
	userId := uuid.New()
	remote := &fakeRemote{fetchDelay: 50 * time.Millisecond}
	store := NewStore(userId, remote, nopLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Load(context.Background())
		}()
	}
	wg.Wait()

	// Only one Load should have reached the remote store.
	assert.Equal(t, int32(1), atomic.LoadInt32(&remote.fetchCalls))
}

func TestUpdateIsLocalOnly(t *testing.T) {
	userId := uuid.New()
	remote := &fakeRemote{}
	store := NewStore(userId, remote, nopLogger{})

	name := "Grace Hopper"
	store.Update(Patch{FullName: &name})

	assert.Equal(t, "Grace Hopper", store.Aggregate().FullName)
	assert.Equal(t, int32(0), atomic.LoadInt32(&remote.upsertProfCalls))
	assert.Nil(t, remote.profile)
}

func TestUpdateLeavesNilFieldsUntouched(t *testing.T) {
	store := NewStore(uuid.New(), &fakeRemote{}, nopLogger{})

	name := "Grace Hopper"
	email := "grace@example.com"
	store.Update(Patch{FullName: &name, Email: &email})

	title := "Rear Admiral"
	store.Update(Patch{Title: &title})

	agg := store.Aggregate()
	assert.Equal(t, "Grace Hopper", agg.FullName)
	assert.Equal(t, "grace@example.com", agg.Email)
	assert.Equal(t, "Rear Admiral", agg.Title)
}

func TestCompleteStepIsIdempotent(t *testing.T) {
	store := NewStore(uuid.New(), &fakeRemote{}, nopLogger{})

	store.CompleteStep("personal")
	store.CompleteStep("personal")
	store.CompleteStep("roles")

	assert.Equal(t, []string{"personal", "roles"}, store.Aggregate().CompletedSteps)
}

func TestHasCompletedStepReadsSnapshot(t *testing.T) {
	store := NewStore(uuid.New(), &fakeRemote{}, nopLogger{})

	store.CompleteStep("personal")

	// Callable directly on the snapshot value, no binding required.
	assert.True(t, store.Aggregate().HasCompletedStep("personal"))
	assert.False(t, store.Aggregate().HasCompletedStep("roles"))
}

func TestSavePersistsAllThreeTables(t *testing.T) {
	userId := uuid.New()
	remote := &fakeRemote{}
	store := NewStore(userId, remote, nopLogger{})

	name := "Ada Lovelace"
	roles := []string{"Backend Engineer"}
	store.Update(Patch{FullName: &name, SelectedRoles: &roles})
	store.CompleteStep("personal")

	res := store.Save(context.Background())
	require.True(t, res.Ok())

	assert.Equal(t, "Ada Lovelace", remote.profile.FullName)
	assert.Equal(t, []string{"Backend Engineer"}, remote.onboarding.SelectedRoles)
	assert.Equal(t, []string{"personal"}, remote.onboarding.CompletedSteps)
	assert.NotNil(t, remote.preferences)
}

func TestSavePartialFailureDoesNotBlockOtherTables(t *testing.T) {
	userId := uuid.New()
	remote := &fakeRemote{upsertPrefsErr: errors.New("deadlock detected")}
	store := NewStore(userId, remote, nopLogger{})

	name := "Ada Lovelace"
	store.Update(Patch{FullName: &name})

	res := store.Save(context.Background())

	assert.False(t, res.Ok())
	assert.NoError(t, res.Profile)
	assert.Error(t, res.Preferences)
	assert.NoError(t, res.Onboarding)

	// The two healthy tables were still written.
	assert.Equal(t, "Ada Lovelace", remote.profile.FullName)
	assert.NotNil(t, remote.onboarding)

	// In-memory state survives a partial save untouched.
	assert.Equal(t, "Ada Lovelace", store.Aggregate().FullName)
}

func TestAggregateReturnsACopy(t *testing.T) {
	store := NewStore(uuid.New(), &fakeRemote{}, nopLogger{})
	roles := []string{"Backend Engineer"}
	store.Update(Patch{SelectedRoles: &roles})

	agg := store.Aggregate()
	agg.SelectedRoles[0] = "mutated"
	agg.CompanyStagePrefs["seed"] = entity.StageAvoid

	fresh := store.Aggregate()
	assert.Equal(t, "Backend Engineer", fresh.SelectedRoles[0])
	assert.NotContains(t, fresh.CompanyStagePrefs, "seed")
}
