package match

import (
	"strings"

	"talentmatch-be/internal/entity"
	"talentmatch-be/pkg/profile"
)

// Score is a 0-100 fit rating of one job against a candidate's aggregate,
// with human-readable reasons for the dashboard.
type Score struct {
	Value   int
	Reasons []string
}

const (
	baseScore         = 10
	roleWeight        = 40
	remoteWeight      = 15
	employmentWeight  = 15
	locationWeight    = 10
	stageWeight       = 10
	stageAvoidPenalty = 25
)

// Rate scores a job posting against the candidate. Jobs at companies whose
// stage the candidate avoids are penalized, never hidden; ranking is the
// dashboard's job, filtering is not.
func Rate(agg profile.Aggregate, job entity.JobPosting) Score {
	s := Score{Value: baseScore}

	for _, role := range agg.SelectedRoles {
		if strings.EqualFold(role, job.RoleCategory) {
			s.Value += roleWeight
			s.Reasons = append(s.Reasons, "matches a selected role")
			break
		}
	}

	if remoteMatches(agg.RemotePreference, job.RemotePolicy) {
		s.Value += remoteWeight
		s.Reasons = append(s.Reasons, "remote policy fits")
	}

	if agg.EmploymentType != "" && agg.EmploymentType == job.EmploymentType {
		s.Value += employmentWeight
		s.Reasons = append(s.Reasons, "employment type fits")
	}

	if locationMatches(agg.PreferredLocations, job) {
		s.Value += locationWeight
		s.Reasons = append(s.Reasons, "in a preferred location")
	}

	if job.Company != nil {
		switch agg.CompanyStagePrefs[string(job.Company.Stage)] {
		case entity.StagePreferred:
			s.Value += stageWeight
			s.Reasons = append(s.Reasons, "preferred company stage")
		case entity.StageAvoid:
			s.Value -= stageAvoidPenalty
			s.Reasons = append(s.Reasons, "company stage marked avoid")
		}
	}

	if s.Value < 0 {
		s.Value = 0
	}
	if s.Value > 100 {
		s.Value = 100
	}
	return s
}

func remoteMatches(pref entity.RemotePreference, policy entity.RemotePreference) bool {
	if pref == "" {
		return false
	}
	if pref == entity.RemoteFlexible || policy == entity.RemoteFlexible {
		return true
	}
	return pref == policy
}

func locationMatches(preferred []string, job entity.JobPosting) bool {
	// Fully remote jobs satisfy any location preference.
	if job.RemotePolicy == entity.RemoteFull {
		return true
	}
	for _, loc := range preferred {
		if strings.EqualFold(strings.TrimSpace(loc), strings.TrimSpace(job.Location)) {
			return true
		}
	}
	return false
}
