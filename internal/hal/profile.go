package hal

import "fmt"

// PerformanceProfile is a performance profile of the uniwill interface,
// its value is the code written to the device.
type PerformanceProfile uint8

const (
	ProfileBalanced   PerformanceProfile = 0x01
	ProfileEnthusiast PerformanceProfile = 0x02
	ProfileOverboost  PerformanceProfile = 0x03
)

// profiles in the order a device reports support for them
var profiles = []PerformanceProfile{
	ProfileBalanced,
	ProfileEnthusiast,
	ProfileOverboost,
}

func (p PerformanceProfile) String() string {
	switch p {
	case ProfileBalanced:
		return "power_save"
	case ProfileEnthusiast:
		return "enthusiast"
	case ProfileOverboost:
		return "overboost"
	default:
		return fmt.Sprintf("PerformanceProfile(%d)", uint8(p))
	}
}

// ParseProfile looks up a profile by its exact name.
func ParseProfile(name string) (PerformanceProfile, error) {
	for _, profile := range profiles {
		if profile.String() == name {
			return profile, nil
		}
	}
	return 0, fmt.Errorf("unknown performance profile %q: %w", name, ErrInvalidArguments)
}

// ProfileNames returns the names of all known profiles.
func ProfileNames() []string {
	return profileNames(len(profiles))
}

// profileNames returns the names of the first count profiles.
func profileNames(count int) []string {
	names := make([]string, 0, count)
	for _, profile := range profiles[:count] {
		names = append(names, profile.String())
	}
	return names
}
