package wizard

// Tier controls field visibility by mode.
type Tier string

const (
	TierEssential     Tier = "essential"
	TierImportant     Tier = "important"
	TierComprehensive Tier = "comprehensive"
)

// Mode is the visibility/navigation mode of the orchestrator.
type Mode string

const (
	ModeOnboarding Mode = "onboarding"
	ModeProfile    Mode = "profile"
)

// IsVisible reports whether a field appears in the given mode: everything in
// profile mode, essential fields only during onboarding. A field carrying an
// unknown tier is treated as comprehensive so renderers stay total.
func IsVisible(f Field, mode Mode) bool {
	if mode == ModeProfile {
		return true
	}
	switch f.Tier {
	case TierEssential:
		return true
	case TierImportant, TierComprehensive:
		return false
	default:
		return false
	}
}
