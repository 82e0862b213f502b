package wizard

import (
	"testing"
)

func TestIsVisible(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		mode Mode
		want bool
	}{
		{name: "essential in onboarding", tier: TierEssential, mode: ModeOnboarding, want: true},
		{name: "important in onboarding", tier: TierImportant, mode: ModeOnboarding, want: false},
		{name: "comprehensive in onboarding", tier: TierComprehensive, mode: ModeOnboarding, want: false},
		{name: "essential in profile", tier: TierEssential, mode: ModeProfile, want: true},
		{name: "important in profile", tier: TierImportant, mode: ModeProfile, want: true},
		{name: "comprehensive in profile", tier: TierComprehensive, mode: ModeProfile, want: true},
		{name: "unknown tier hidden in onboarding", tier: Tier("bogus"), mode: ModeOnboarding, want: false},
		{name: "unknown tier shown in profile", tier: Tier("bogus"), mode: ModeProfile, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Field{ID: "x", Tier: tt.tier}
			if got := IsVisible(f, tt.mode); got != tt.want {
				t.Errorf("IsVisible(%q, %q) = %v, want %v", tt.tier, tt.mode, got, tt.want)
			}
		})
	}
}

func TestVisibleFieldsPersonalSection(t *testing.T) {
	sec := Sections[SectionPersonal]

	onboarding := VisibleFields(sec, ModeOnboarding)
	for _, f := range onboarding {
		if f.Tier != TierEssential {
			t.Errorf("onboarding mode leaked non-essential field %q (%s)", f.ID, f.Tier)
		}
	}
	if len(onboarding) != 3 {
		t.Errorf("onboarding visible fields = %d, want 3", len(onboarding))
	}

	profileMode := VisibleFields(sec, ModeProfile)
	if len(profileMode) != len(sec.Fields) {
		t.Errorf("profile mode visible fields = %d, want all %d", len(profileMode), len(sec.Fields))
	}
}

func TestEveryRequiredSectionHasAnEssentialField(t *testing.T) {
	for id, sec := range Sections {
		if !sec.Required {
			continue
		}
		found := false
		for _, f := range sec.Fields {
			if f.Tier == TierEssential {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required section %q has no essential field", id)
		}
	}
}
