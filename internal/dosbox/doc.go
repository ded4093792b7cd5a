// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dosbox provides utilities for composing and running DOSBox
// commands. It expects the DOSBox binary to be present on the system.
//
// Boot commands are either passed as "-c" flags or, if there are too many of
// them, written into the autoexec block of a generated config file.
//
// On windows, DOSBox opens its own console window unless it is started with
// "-noconsole". In that case it writes its console output into the files
// stdout.txt and stderr.txt in its working directory. Those are read once the
// process exited, so callers get the same [Result] on every platform.
package dosbox
