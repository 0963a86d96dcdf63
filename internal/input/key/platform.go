package key

import (
	"fmt"
	"runtime"
	"strings"
)

// PlatformStyle selects platform-dependent naming and display conventions.
type PlatformStyle uint8

const (
	// PlatformLinux uses Control as the secondary modifier and ❖ for Super.
	PlatformLinux PlatformStyle = iota

	// PlatformMac uses Cmd as the secondary modifier and ⌘ for Cmd.
	PlatformMac

	// PlatformWindows uses Control as the secondary modifier and ⊞ for Win.
	PlatformWindows
)

// CurrentPlatformStyle returns the style of the running operating system.
func CurrentPlatformStyle() PlatformStyle {
	switch runtime.GOOS {
	case "darwin", "ios":
		return PlatformMac
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// ParsePlatformStyle parses "mac", "linux" or "windows".
// The empty string and "auto" select the running platform.
func ParsePlatformStyle(s string) (PlatformStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CurrentPlatformStyle(), nil
	case "mac", "macos", "darwin":
		return PlatformMac, nil
	case "linux":
		return PlatformLinux, nil
	case "windows", "win":
		return PlatformWindows, nil
	}
	return PlatformLinux, fmt.Errorf("unknown platform style %q", s)
}

// String returns the style name.
func (p PlatformStyle) String() string {
	switch p {
	case PlatformMac:
		return "mac"
	case PlatformWindows:
		return "windows"
	default:
		return "linux"
	}
}

// platformGlyph returns the display glyph for the platform modifier.
func (p PlatformStyle) platformGlyph() string {
	switch p {
	case PlatformMac:
		return "⌘"
	case PlatformWindows:
		return "⊞"
	default:
		return "❖"
	}
}
