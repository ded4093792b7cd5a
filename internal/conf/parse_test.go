// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package conf_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xsro/dosbox-interface/internal/conf"
)

const stockConfig = `# This is the configuration file for DOSBox 0.74-3. (Please use the latest version of DOSBox)
# Lines starting with a # are comment lines and are ignored by DOSBox.

[sdl]
#       fullscreen: Start dosbox directly in fullscreen. (Press ALT-Enter to go back)
fullscreen=true
output=opengl

[cpu]
core=dynamic
cycles=max
cycleup=10

[render]
glshader=none

[autoexec]
# Lines in this section will be run at startup.
mount c ~/dos
c:
`

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		opts     []conf.ParseOption
		autoexec []string
	}{
		{
			name:     "verbatim autoexec",
			autoexec: []string{"# Lines in this section will be run at startup.", "mount c ~/dos", "c:"},
		},
		{
			name:     "skip autoexec comments",
			opts:     []conf.ParseOption{conf.SkipAutoexecComments()},
			autoexec: []string{"mount c ~/dos", "c:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := conf.Parse([]byte(stockConfig), tt.opts...)
			require.NoError(t, err)

			expected := conf.Default()
			expected.SDL.Fullscreen = true
			expected.SDL.Output = "opengl"
			expected.CPU.Core = "dynamic"
			expected.CPU.Cycles = "max"
			expected.Autoexec = tt.autoexec

			assert.Equal(t, expected, cfg)
		})
	}
}

func TestParse_Autoexec(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		opts     []conf.ParseOption
		expected []string
	}{
		{
			name:     "leading space and blank lines",
			data:     "[autoexec]\n  @echo off\n\n#not a comment\n",
			expected: []string{"  @echo off", "", "#not a comment"},
		},
		{
			name:     "comment characters",
			data:     "[AUTOEXEC]\necho ;done\necho a # b\n",
			expected: []string{"echo ;done", "echo a # b"},
		},
		{
			name:     "crlf",
			data:     "[cpu]\r\ncycles=max\r\n[autoexec]\r\nmount c .\r\nc:\r\n",
			expected: []string{"mount c .", "c:"},
		},
		{
			name:     "missing terminator",
			data:     "[autoexec]\ndir",
			expected: []string{"dir"},
		},
		{
			name:     "sections after autoexec",
			data:     "[autoexec]\nmount c .\n[cpu]\ncycles=max\n[Autoexec]\nc:\n",
			expected: []string{"mount c .", "c:"},
		},
		{
			name:     "skip comments",
			data:     "[autoexec]\n  @echo off\n\n# comment\n\tc:\n",
			opts:     []conf.ParseOption{conf.SkipAutoexecComments()},
			expected: []string{"@echo off", "c:"},
		},
		{
			name: "empty block",
			data: "[autoexec]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := conf.Parse([]byte(tt.data), tt.opts...)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, cfg.Autoexec)
		})
	}

	t.Run("settings after autoexec", func(t *testing.T) {
		cfg, err := conf.Parse([]byte("[autoexec]\nc:\n[cpu]\ncycles=max\n"))
		require.NoError(t, err)

		assert.Equal(t, "max", cfg.CPU.Cycles)
	})
}

func TestParse_LiteralValues(t *testing.T) {
	data := "[midi]\nmidiconfig=128:0 ; port\n[dosbox]\ncaptures=c:\\cap\\\nlanguage=\"german.lng\"\n"

	cfg, err := conf.Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "128:0 ; port", cfg.MIDI.Midiconfig)
	assert.Equal(t, `c:\cap\`, cfg.DOSBox.Captures)
	assert.Equal(t, `"german.lng"`, cfg.DOSBox.Language)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := conf.Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, conf.Default(), cfg)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := conf.LoadFile(filepath.Join(t.TempDir(), "missing.conf"))
	require.Error(t, err)
}
