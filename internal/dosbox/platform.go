// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

import "runtime"

// Platforms with special DOSBox invocation. Any other value is treated like
// linux.
const (
	Windows Platform = "windows"
	Darwin  Platform = "darwin"
	Linux   Platform = "linux"
)

// HostPlatform is the platform the program runs on.
const HostPlatform = Platform(runtime.GOOS)

// Platform is an operating system as named by [runtime.GOOS].
type Platform string

func (p Platform) String() string {
	return string(p)
}

// IsWindows reports whether DOSBox on this platform opens its own console.
func (p Platform) IsWindows() bool {
	return p == Windows
}

// IsMac reports whether DOSBox on this platform is an app bundle.
func (p Platform) IsMac() bool {
	return p == Darwin
}
