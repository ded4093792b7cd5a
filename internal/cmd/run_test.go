// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xsro/dosbox-interface/internal/cmd"
	"github.com/xsro/dosbox-interface/internal/conf"
)

const argsScript = `for arg in "$@"; do
  printf '%s\n' "$arg"
done
`

func stubBinary(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub emulator requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "dosbox.sh")
	err := os.WriteFile(path, []byte(script), 0o600)
	require.NoError(t, err)

	return "sh " + path
}

type output struct {
	exitCode int
	stdout   string
	stderr   string
}

func run(t *testing.T, args ...string) output {
	t.Helper()

	var stdout, stderr bytes.Buffer

	exitCode := cmd.Run(context.Background(), args, cmd.IO{
		Stdout: &stdout,
		Stderr: &stderr,
	})

	return output{
		exitCode: exitCode,
		stdout:   stdout.String(),
		stderr:   stderr.String(),
	}
}

func TestRun_Help(t *testing.T) {
	out := run(t, "--help")

	assert.Equal(t, 0, out.exitCode)
	assert.Contains(t, out.stdout, "Usage: dosbox-run")
	assert.Contains(t, out.stdout, "--max-inline")
}

func TestRun_ParseError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "unknown command",
			args: []string{"boot"},
		},
		{
			name: "invalid console",
			args: []string{"--console", "hidden", "version"},
		},
		{
			name: "missing overrides file",
			args: []string{"--overrides", "/nonexistent.yaml", "config"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, tt.args...)

			assert.Equal(t, -1, out.exitCode)
			assert.Contains(t, out.stderr, "Error [dosbox-run]: ")
		})
	}
}

func TestRun_Run(t *testing.T) {
	binary := stubBinary(t, argsScript)

	t.Run("inline commands", func(t *testing.T) {
		out := run(t, "--binary", binary, "--dir", t.TempDir(),
			"run", "--params=-fullscreen", "mount c .", "c:")

		assert.Equal(t, 0, out.exitCode, out.stderr)
		assert.Equal(t, "-fullscreen\n-c\nmount c .\n-c\nc:\n", out.stdout)
	})

	t.Run("autoexec", func(t *testing.T) {
		dir := t.TempDir()

		out := run(t, "--binary", binary, "--dir", dir, "--max-inline", "1",
			"--keep-config", "run", "mount c .", "c:")

		assert.Equal(t, 0, out.exitCode, out.stderr)

		confPath := filepath.Join(dir, "dosbox-interface.conf")
		assert.Equal(t, "-conf\n"+confPath+"\n", out.stdout)

		written, err := conf.LoadFile(confPath)
		require.NoError(t, err)
		assert.Equal(t, []string{"mount c .", "c:"}, written.Autoexec)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("DOSBOX_BINARY", binary)
		t.Setenv("DOSBOX_DIR", t.TempDir())

		out := run(t, "run", "dir")

		assert.Equal(t, 0, out.exitCode, out.stderr)
		assert.Equal(t, "-c\ndir\n", out.stdout)
	})
}

func TestRun_EnvFile(t *testing.T) {
	binary := stubBinary(t, argsScript)
	dir := t.TempDir()

	content := "DOSBOX_BINARY=" + binary + "\n"
	err := os.WriteFile(filepath.Join(dir, cmd.EnvFile), []byte(content), 0o600)
	require.NoError(t, err)

	unsetEnv(t, "DOSBOX_BINARY")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out := run(t, "exec", "--", "-fullscreen")

	assert.Equal(t, 0, out.exitCode, out.stderr)
	assert.Equal(t, "-fullscreen\n", out.stdout)
}

func TestRun_ExitCode(t *testing.T) {
	binary := stubBinary(t, "printf 'not found\\n'\nexit 3\n")

	out := run(t, "--binary", binary, "--dir", t.TempDir(), "exec")

	assert.Equal(t, 3, out.exitCode)
	assert.Equal(t, "not found\n", out.stdout)
	assert.Empty(t, out.stderr, "no error is printed for dosbox failures")

	t.Run("metrics file error", func(t *testing.T) {
		metricsFile := filepath.Join(t.TempDir(), "missing", "dosbox.prom")

		out := run(t, "--binary", binary, "--dir", t.TempDir(),
			"--metrics-file", metricsFile, "exec")

		assert.Equal(t, 3, out.exitCode)
		assert.Contains(t, out.stderr, "Error [dosbox-run]: write metrics: ")
		assert.NotContains(t, out.stderr, "failed to run dosbox")
	})
}

func TestRun_Version(t *testing.T) {
	binary := stubBinary(t, argsScript)

	out := run(t, "--binary", binary, "--dir", t.TempDir(), "version")

	assert.Equal(t, 0, out.exitCode, out.stderr)
	assert.Regexp(t, `^dosbox-run .+\n-version\n$`, out.stdout)
}

func TestRun_Config(t *testing.T) {
	overrides := filepath.Join(t.TempDir(), "overrides.yaml")
	err := os.WriteFile(overrides, []byte("cpu:\n  cycles: max\n"), 0o600)
	require.NoError(t, err)

	base := filepath.Join(t.TempDir(), "base.conf")
	err = os.WriteFile(base, []byte("[sdl]\nfullscreen=true\n[autoexec]\n# boot\n  mount c .\n\n"), 0o600)
	require.NoError(t, err)

	tests := []struct {
		name     string
		args     []string
		expected func(*conf.Config)
	}{
		{
			name:     "defaults",
			args:     []string{"config"},
			expected: func(*conf.Config) {},
		},
		{
			name: "overrides",
			args: []string{"--overrides", overrides, "config"},
			expected: func(cfg *conf.Config) {
				cfg.CPU.Cycles = "max"
			},
		},
		{
			name: "base and commands",
			args: []string{"--base", base, "--overrides", overrides, "config", "c:"},
			expected: func(cfg *conf.Config) {
				cfg.SDL.Fullscreen = true
				cfg.CPU.Cycles = "max"
				cfg.Autoexec = []string{"mount c .", "c:"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, tt.args...)
			require.Equal(t, 0, out.exitCode, out.stderr)

			actual, err := conf.Parse([]byte(out.stdout))
			require.NoError(t, err)

			expected := conf.Default()
			tt.expected(expected)

			assert.Equal(t, expected, actual)
		})
	}

	t.Run("output file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dosbox.conf")

		out := run(t, "config", "-o", path, "c:")
		require.Equal(t, 0, out.exitCode, out.stderr)
		assert.Empty(t, out.stdout)

		written, err := conf.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"c:"}, written.Autoexec)
	})

	t.Run("invalid overrides", func(t *testing.T) {
		invalid := filepath.Join(t.TempDir(), "invalid.yaml")
		err := os.WriteFile(invalid, []byte("cpu:\n  turbo: true\n"), 0o600)
		require.NoError(t, err)

		out := run(t, "--overrides", invalid, "config")

		assert.Equal(t, -1, out.exitCode)
		assert.Contains(t, out.stderr, "invalid config overrides")
	})
}

func TestRun_MetricsFile(t *testing.T) {
	binary := stubBinary(t, argsScript)
	path := filepath.Join(t.TempDir(), "dosbox.prom")

	out := run(t, "--binary", binary, "--dir", t.TempDir(),
		"--metrics-file", path, "run", "dir")
	require.Equal(t, 0, out.exitCode, out.stderr)

	metrics, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(metrics), `dosbox_runs_total{outcome="success"} 1`)
	assert.Contains(t, string(metrics), "dosbox_run_duration_seconds_count 1")
}
