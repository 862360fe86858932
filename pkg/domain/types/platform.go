package types

import "fmt"

// Platform identifies the origin of a review
type Platform string

const (
	PlatformGoogle     Platform = "google"
	PlatformAppStore   Platform = "appstore"
	PlatformTrustpilot Platform = "trustpilot"

	// PlatformSimulated tags synthesized reviews so they are never mistaken
	// for real source data
	PlatformSimulated Platform = "simulated"
)

// AllPlatforms returns the real source platforms in collection order.
// PlatformSimulated is excluded: it is a fallback, not a source.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformGoogle,
		PlatformAppStore,
		PlatformTrustpilot,
	}
}

// IsValid checks if the platform is a known value
func (p Platform) IsValid() bool {
	switch p {
	case PlatformGoogle, PlatformAppStore, PlatformTrustpilot, PlatformSimulated:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable platform name used in review
// records and platform distributions
func (p Platform) DisplayName() string {
	switch p {
	case PlatformGoogle:
		return "Google Reviews"
	case PlatformAppStore:
		return "Apple App Store"
	case PlatformTrustpilot:
		return "Trustpilot"
	case PlatformSimulated:
		return "Simulated"
	default:
		return string(p)
	}
}

// String returns the string representation of the platform
func (p Platform) String() string {
	return string(p)
}

// ParsePlatform parses a string into a Platform
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid platform: %s", s)
	}
	return p, nil
}
