package profile

// IsOnboardingComplete derives the completion signal consumed by route
// guards. A candidate counts as onboarded when the explicit persisted flag
// is set, or when the minimum-requirements heuristic holds: at least one
// selected role and at least two completed steps. The heuristic can fire
// before the candidate ever reaches the explicit finish action; that is the
// shipped behavior and is kept as-is.
func IsOnboardingComplete(a Aggregate) bool {
	if a.OnboardingCompleted {
		return true
	}
	return len(a.SelectedRoles) >= 1 && len(a.CompletedSteps) >= 2
}
