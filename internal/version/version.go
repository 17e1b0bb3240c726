// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - INPOP/DE byte-swap auto-discovery, granule subdivision, sky view TUI
// 0.2.0 - JPL DE binary ephemeris loader and Chebyshev position queries
// 0.1.0 - Initial release: spectral type FSM parser, V1/V2 packed class codec
