package profile

import (
	"testing"

	"github.com/google/uuid"
)

func TestIsOnboardingComplete(t *testing.T) {
	tests := []struct {
		name           string
		completed      bool
		selectedRoles  []string
		completedSteps []string
		want           bool
	}{
		{
			name: "new user",
			want: false,
		},
		{
			name:      "explicit flag set",
			completed: true,
			want:      true,
		},
		{
			name:           "explicit flag wins without roles or steps",
			completed:      true,
			selectedRoles:  nil,
			completedSteps: nil,
			want:           true,
		},
		{
			name:           "one role two steps",
			selectedRoles:  []string{"Backend Engineer"},
			completedSteps: []string{"welcome", "personal"},
			want:           true,
		},
		{
			name:           "one role one step",
			selectedRoles:  []string{"Backend Engineer"},
			completedSteps: []string{"welcome"},
			want:           false,
		},
		{
			name:           "no roles many steps",
			completedSteps: []string{"welcome", "personal", "preferences"},
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := defaultAggregate(uuid.New())
			agg.OnboardingCompleted = tt.completed
			agg.SelectedRoles = tt.selectedRoles
			agg.CompletedSteps = tt.completedSteps

			if got := IsOnboardingComplete(agg); got != tt.want {
				t.Errorf("IsOnboardingComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}
