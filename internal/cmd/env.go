// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// EnvFile is loaded from the current directory before flags are parsed.
const EnvFile = ".dosbox.env"

// LoadEnvFile sets environment variables from the given file in dotenv
// format. Variables that are already set are not overridden, so the
// environment takes precedence over the file. A missing file is not an
// error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}

	return nil
}
