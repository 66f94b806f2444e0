package capability

import (
	"strconv"
	"strings"
)

// Platform identifies the client operating system family.
type Platform uint8

const (
	PlatformUnknown Platform = iota
	PlatformIOS
	PlatformAndroid
	PlatformMacOS
	PlatformWindows
	PlatformLinux
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "ios"
	case PlatformAndroid:
		return "android"
	case PlatformMacOS:
		return "macos"
	case PlatformWindows:
		return "windows"
	case PlatformLinux:
		return "linux"
	default:
		return "unknown"
	}
}

// Set is a bitmask of granted capabilities.
type Set uint8

const (
	// CapPush marks support for web push notifications.
	CapPush Set = 1 << iota

	// CapInstallPrompt marks support for a programmatic install prompt.
	CapInstallPrompt

	// CapBadging marks support for app icon badges.
	CapBadging
)

// Has reports whether every capability in want is granted.
func (s Set) Has(want Set) bool {
	return s&want == want
}

// Env describes the client environment being evaluated.
type Env struct {
	Platform Platform

	// Version is the platform or browser version as a dotted numeric
	// string, e.g. "16.4" or "17.0.1". Empty matches only rules without a
	// minimum version.
	Version string

	// Standalone reports whether the app runs installed (standalone
	// display mode) rather than in a browser tab.
	Standalone bool
}

// Rule grants capabilities when its conditions match. A rule matches when
// the platform equals, the version is at least MinVersion (empty matches
// any), and, if RequireStandalone is set, the app runs standalone.
type Rule struct {
	Platform          Platform
	MinVersion        string
	RequireStandalone bool
	Grants            Set
}

// defaultRules encodes the platform matrix for PWA capabilities. iOS gained
// web push in 16.4 and only exposes it to installed (standalone) apps;
// desktop Safari gained it in 16; Chromium-based platforms support the full
// set.
var defaultRules = []Rule{
	{Platform: PlatformIOS, MinVersion: "16.4", RequireStandalone: true, Grants: CapPush | CapBadging},
	{Platform: PlatformMacOS, MinVersion: "16", Grants: CapPush},
	{Platform: PlatformAndroid, Grants: CapPush | CapInstallPrompt | CapBadging},
	{Platform: PlatformWindows, Grants: CapPush | CapInstallPrompt | CapBadging},
	{Platform: PlatformLinux, Grants: CapPush | CapInstallPrompt},
}

// Detect evaluates env against the default rule table and returns the union
// of granted capabilities.
func Detect(env Env) Set {
	return DetectWith(defaultRules, env)
}

// DetectWith evaluates env against a custom rule table. Applications with
// their own support matrix supply their own rules instead of branching per
// platform at every call site.
func DetectWith(rules []Rule, env Env) Set {
	var out Set
	for _, r := range rules {
		if r.Platform != env.Platform {
			continue
		}
		if r.RequireStandalone && !env.Standalone {
			continue
		}
		if r.MinVersion != "" && compareVersions(env.Version, r.MinVersion) < 0 {
			continue
		}
		out |= r.Grants
	}
	return out
}

// compareVersions compares dotted numeric version strings segment by
// segment. Missing segments count as zero, so "16" == "16.0". Non-numeric
// segments compare as zero, which makes malformed versions fail version
// gates rather than pass them.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(strings.TrimSpace(as[i]))
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(strings.TrimSpace(bs[i]))
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
