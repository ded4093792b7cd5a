// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package conf

import "errors"

var (
	// ErrInvalidOverrides is returned if an override document can not be
	// applied to a [Config], e.g. because it names unknown sections or keys.
	ErrInvalidOverrides = errors.New("invalid config overrides")

	// ErrInvalidValue is returned if a value can not be written into a
	// DOSBox config file so that DOSBox reads it unchanged.
	ErrInvalidValue = errors.New("value not representable in config file")
)
