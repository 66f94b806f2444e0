// Package capability answers "does this client support feature X" from a
// single table of platform/version rules instead of version checks
// duplicated across call sites.
//
// The canonical example is web push support: iOS exposes it only from 16.4
// and only to installed (standalone) apps, desktop Safari from 16, and
// Chromium-based platforms generally. Encoding those conditions as Rule rows
// gives one source of truth that is trivially extended when a platform
// changes its support matrix.
//
// # Usage
//
//	set := capability.Detect(capability.Env{
//	    Platform:   capability.PlatformIOS,
//	    Version:    "17.2",
//	    Standalone: true,
//	})
//	if set.Has(capability.CapPush) {
//	    offerPushOptIn()
//	}
//
// Applications with their own matrix use DetectWith and a custom rule slice.
package capability
