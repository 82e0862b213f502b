package match

import (
	"testing"

	"talentmatch-be/internal/entity"
	"talentmatch-be/pkg/profile"
)

func candidateAggregate() profile.Aggregate {
	return profile.Aggregate{
		SelectedRoles:      []string{"Backend Engineer", "Platform Engineer"},
		RemotePreference:   entity.RemoteFull,
		EmploymentType:     entity.EmploymentFullTime,
		PreferredLocations: []string{"Berlin", "Amsterdam"},
		CompanyStagePrefs: map[string]entity.StagePreference{
			string(entity.CompanyStageSeed):   entity.StagePreferred,
			string(entity.CompanyStagePublic): entity.StageAvoid,
		},
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name        string
		job         entity.JobPosting
		wantValue   int
		wantReasons int
	}{
		{
			name:        "no overlap",
			job:         entity.JobPosting{RoleCategory: "Designer", Location: "Tokyo", RemotePolicy: entity.RemoteOnsite},
			wantValue:   baseScore,
			wantReasons: 0,
		},
		{
			name: "role match is case insensitive",
			job:  entity.JobPosting{RoleCategory: "backend engineer", Location: "Tokyo", RemotePolicy: entity.RemoteOnsite},
			// base + role
			wantValue:   baseScore + roleWeight,
			wantReasons: 1,
		},
		{
			name: "remote job satisfies location too",
			job:  entity.JobPosting{RoleCategory: "Designer", Location: "Tokyo", RemotePolicy: entity.RemoteFull},
			// base + remote + location
			wantValue:   baseScore + remoteWeight + locationWeight,
			wantReasons: 2,
		},
		{
			name:        "flexible policy matches any preference",
			job:         entity.JobPosting{RoleCategory: "Designer", Location: "Tokyo", RemotePolicy: entity.RemoteFlexible},
			wantValue:   baseScore + remoteWeight,
			wantReasons: 1,
		},
		{
			name:        "preferred location with whitespace",
			job:         entity.JobPosting{RoleCategory: "Designer", Location: " berlin ", RemotePolicy: entity.RemoteOnsite},
			wantValue:   baseScore + locationWeight,
			wantReasons: 1,
		},
		{
			name: "preferred company stage",
			job: entity.JobPosting{
				RoleCategory: "Designer",
				Location:     "Tokyo",
				RemotePolicy: entity.RemoteOnsite,
				Company:      &entity.Company{Stage: entity.CompanyStageSeed},
			},
			wantValue:   baseScore + stageWeight,
			wantReasons: 1,
		},
		{
			name: "avoided stage is penalized not hidden",
			job: entity.JobPosting{
				RoleCategory: "Designer",
				Location:     "Tokyo",
				RemotePolicy: entity.RemoteOnsite,
				Company:      &entity.Company{Stage: entity.CompanyStagePublic},
			},
			// base - penalty clamps at zero
			wantValue:   0,
			wantReasons: 1,
		},
		{
			name: "everything fits",
			job: entity.JobPosting{
				RoleCategory:   "Backend Engineer",
				Location:       "Berlin",
				RemotePolicy:   entity.RemoteFull,
				EmploymentType: entity.EmploymentFullTime,
				Company:        &entity.Company{Stage: entity.CompanyStageSeed},
			},
			wantValue:   baseScore + roleWeight + remoteWeight + employmentWeight + locationWeight + stageWeight,
			wantReasons: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rate(candidateAggregate(), tt.job)
			if got.Value != tt.wantValue {
				t.Errorf("Value = %d, want %d (reasons: %v)", got.Value, tt.wantValue, got.Reasons)
			}
			if len(got.Reasons) != tt.wantReasons {
				t.Errorf("Reasons = %v, want %d entries", got.Reasons, tt.wantReasons)
			}
		})
	}
}

func TestRateEmptyAggregate(t *testing.T) {
	got := Rate(profile.Aggregate{}, entity.JobPosting{
		RoleCategory: "Backend Engineer",
		RemotePolicy: entity.RemoteFull,
		Company:      &entity.Company{Stage: entity.CompanyStageSeed},
	})

	// No preferences set: only the remote-covers-location rule fires.
	if got.Value != baseScore+locationWeight {
		t.Errorf("Value = %d, want %d", got.Value, baseScore+locationWeight)
	}
}

func TestRateNeverExceedsBounds(t *testing.T) {
	agg := candidateAggregate()
	for _, job := range []entity.JobPosting{
		{},
		{Company: &entity.Company{Stage: entity.CompanyStagePublic}},
		{
			RoleCategory:   "Backend Engineer",
			Location:       "Berlin",
			RemotePolicy:   entity.RemoteFull,
			EmploymentType: entity.EmploymentFullTime,
			Company:        &entity.Company{Stage: entity.CompanyStageSeed},
		},
	} {
		got := Rate(agg, job)
		if got.Value < 0 || got.Value > 100 {
			t.Errorf("score %d out of [0,100] for job %+v", got.Value, job)
		}
	}
}
