// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package conf models the DOSBox configuration file. It covers the sections
// DOSBox 0.74 reads from its conf file and the trailing autoexec block with
// commands that are run on boot.
//
// See https://www.dosbox.com/wiki/Dosbox.conf for the meaning of the keys.
package conf
