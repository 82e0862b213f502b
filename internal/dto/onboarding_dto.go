package dto

// StartOnboardingRequest opens (or reopens) a navigation session.
// Mode defaults to "onboarding"; Force reloads remote state even when a
// live session already exists.
type StartOnboardingRequest struct {
	Mode  string `json:"mode" validate:"omitempty,oneof=onboarding profile"`
	Force bool   `json:"force"`
}

// FieldView is a single renderable field of a section after tier filtering.
type FieldView struct {
	ID       string `json:"id"`
	Tier     string `json:"tier"`
	Required bool   `json:"required"`
}

// SectionView is one step of the flow with only the fields visible in the
// session's mode.
type SectionView struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Required bool        `json:"required"`
	Fields   []FieldView `json:"fields"`
}

// NavigationStateResponse describes where the session currently sits.
type NavigationStateResponse struct {
	Mode           string            `json:"mode"`
	CurrentStep    int               `json:"current_step"`
	ActiveSection  string            `json:"active_section"`
	Order          []string          `json:"order"`
	CompletedSteps []string          `json:"completed_steps"`
	CanAdvance     bool              `json:"can_advance"`
	Section        *SectionView      `json:"section,omitempty"`
	FieldErrors    map[string]string `json:"field_errors,omitempty"`
}

// ForwardResponse reports the outcome of one forward transition, including
// the per-table save report and the redirect on terminal completion.
type ForwardResponse struct {
	Advanced bool                    `json:"advanced"`
	Finished bool                    `json:"finished"`
	Redirect string                  `json:"redirect,omitempty"`
	Save     *SaveReport             `json:"save,omitempty"`
	State    NavigationStateResponse `json:"state"`
}

// JumpRequest targets a section by id.
type JumpRequest struct {
	Section string `json:"section" validate:"required"`
}
