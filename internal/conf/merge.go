// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package conf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Merge applies a partial config to c. The partial config is a YAML document
// with sections as top level keys, e.g.:
//
//	cpu:
//	  cycles: max
//	sdl:
//	  fullscreen: true
//
// Only the given keys are changed. Keys not given and sections not present
// keep their current values. Unknown sections or keys fail the merge and
// leave c untouched.
func (c *Config) Merge(r io.Reader) error {
	merged := c.Clone()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(merged)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidOverrides, err)
	}

	*c = *merged

	return nil
}

// MergeFile applies the partial config in the YAML file at path to c.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides: %w", err)
	}

	return c.Merge(bytes.NewReader(data))
}
