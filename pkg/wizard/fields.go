package wizard

// SectionID names one step of the onboarding/profile wizard.
type SectionID string

const (
	SectionWelcome     SectionID = "welcome"
	SectionPersonal    SectionID = "personal"
	SectionRoles       SectionID = "roles"
	SectionPreferences SectionID = "preferences"
	SectionEducation   SectionID = "education"
	SectionResume      SectionID = "resume"
	SectionComplete    SectionID = "complete"
)

type Field struct {
	ID       string
	Tier     Tier
	Required bool
}

type Section struct {
	ID       SectionID
	Title    string
	Required bool
	Fields   []Field
}

// OnboardingOrder is the fixed section sequence of the onboarding wizard.
var OnboardingOrder = []SectionID{
	SectionWelcome,
	SectionPersonal,
	SectionRoles,
	SectionPreferences,
	SectionEducation,
	SectionResume,
	SectionComplete,
}

// ProfileOrder is the free-navigation grid of full-profile mode; it enters
// at personal and has no welcome/complete pseudo-sections.
var ProfileOrder = []SectionID{
	SectionPersonal,
	SectionRoles,
	SectionPreferences,
	SectionEducation,
	SectionResume,
}

// Sections is the static field table, defined once at startup and never
// mutated. Every required section carries at least one essential field.
var Sections = map[SectionID]Section{
	SectionWelcome: {
		ID:    SectionWelcome,
		Title: "Welcome",
	},
	SectionPersonal: {
		ID:       SectionPersonal,
		Title:    "Personal Info",
		Required: true,
		Fields: []Field{
			{ID: "full_name", Tier: TierEssential, Required: true},
			{ID: "email", Tier: TierEssential, Required: true},
			{ID: "phone", Tier: TierEssential},
			{ID: "location", Tier: TierImportant},
			{ID: "title", Tier: TierImportant},
			{ID: "linkedin_url", Tier: TierImportant},
			{ID: "github_url", Tier: TierImportant},
			{ID: "website_url", Tier: TierComprehensive},
			{ID: "bio", Tier: TierComprehensive},
		},
	},
	SectionRoles: {
		ID:       SectionRoles,
		Title:    "Target Roles",
		Required: true,
		Fields: []Field{
			{ID: "selected_roles", Tier: TierEssential, Required: true},
		},
	},
	SectionPreferences: {
		ID:    SectionPreferences,
		Title: "Job Preferences",
		Fields: []Field{
			{ID: "remote_preference", Tier: TierEssential},
			{ID: "employment_type", Tier: TierEssential},
			{ID: "preferred_locations", Tier: TierImportant},
			{ID: "company_stage_prefs", Tier: TierComprehensive},
		},
	},
	SectionEducation: {
		ID:    SectionEducation,
		Title: "Education",
		Fields: []Field{
			{ID: "education_level", Tier: TierEssential},
			{ID: "school", Tier: TierImportant},
			{ID: "degree", Tier: TierImportant},
			{ID: "graduation_year", Tier: TierComprehensive},
		},
	},
	SectionResume: {
		ID:       SectionResume,
		Title:    "Resume",
		Required: true,
		Fields: []Field{
			{ID: "resume", Tier: TierEssential},
		},
	},
	SectionComplete: {
		ID:    SectionComplete,
		Title: "All Set",
	},
}

// VisibleFields filters a section's fields by mode through the tier
// classifier.
func VisibleFields(sec Section, mode Mode) []Field {
	out := make([]Field, 0, len(sec.Fields))
	for _, f := range sec.Fields {
		if IsVisible(f, mode) {
			out = append(out, f)
		}
	}
	return out
}
