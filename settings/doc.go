// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package settings persists the ambient app configuration (dark mode,
// institution selection, school and fraternity names) in the sqlite
// setting table. Settings travel as an explicit value through whatever
// needs them, never as process-wide globals.
package settings
