package wizard

import (
	"testing"

	"talentmatch-be/pkg/profile"
)

func TestValidatePersonal(t *testing.T) {
	tests := []struct {
		name      string
		fullName  string
		email     string
		phone     string
		wantValid bool
		wantField string
	}{
		{
			name:      "valid without phone",
			fullName:  "Ada Lovelace",
			email:     "ada@example.com",
			wantValid: true,
		},
		{
			name:      "valid with phone",
			fullName:  "Ada Lovelace",
			email:     "ada@example.com",
			phone:     "+44 (20) 7946-0958",
			wantValid: true,
		},
		{
			name:      "name too short",
			fullName:  "A",
			email:     "ada@example.com",
			wantValid: false,
			wantField: "full_name",
		},
		{
			name:      "whitespace name",
			fullName:  "   ",
			email:     "ada@example.com",
			wantValid: false,
			wantField: "full_name",
		},
		{
			name:      "missing email",
			fullName:  "Ada Lovelace",
			wantValid: false,
			wantField: "email",
		},
		{
			name:      "malformed email",
			fullName:  "Ada Lovelace",
			email:     "ada@nodot",
			wantValid: false,
			wantField: "email",
		},
		{
			name:      "phone too short",
			fullName:  "Ada Lovelace",
			email:     "ada@example.com",
			phone:     "12345",
			wantValid: false,
			wantField: "phone",
		},
		{
			name:      "phone with letters",
			fullName:  "Ada Lovelace",
			email:     "ada@example.com",
			phone:     "call me 0123456789",
			wantValid: false,
			wantField: "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := profile.Aggregate{
				FullName: tt.fullName,
				Email:    tt.email,
				Phone:    tt.phone,
			}
			res := ValidateSection(SectionPersonal, agg)

			if res.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (errors: %v)", res.Valid, tt.wantValid, res.FieldErrors)
			}
			if tt.wantField != "" {
				if _, ok := res.FieldErrors[tt.wantField]; !ok {
					t.Errorf("expected error on field %q, got %v", tt.wantField, res.FieldErrors)
				}
			}
		})
	}
}

func TestValidateRoles(t *testing.T) {
	res := ValidateSection(SectionRoles, profile.Aggregate{})
	if res.Valid {
		t.Error("empty role selection should not validate")
	}
	if _, ok := res.FieldErrors["selected_roles"]; !ok {
		t.Errorf("expected selected_roles error, got %v", res.FieldErrors)
	}

	res = ValidateSection(SectionRoles, profile.Aggregate{SelectedRoles: []string{"Backend Engineer"}})
	if !res.Valid {
		t.Errorf("one selected role should validate, got %v", res.FieldErrors)
	}
}

func TestNonGatedSectionsAlwaysValidate(t *testing.T) {
	for _, id := range []SectionID{SectionWelcome, SectionPreferences, SectionEducation, SectionResume, SectionComplete} {
		res := ValidateSection(id, profile.Aggregate{})
		if !res.Valid {
			t.Errorf("section %q should validate on an empty aggregate", id)
		}
	}
}
