// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package conf

import "slices"

// Config is a complete DOSBox configuration.
//
// Each section is a fixed record type, so only keys known to the model can
// be set. Autoexec is not a regular section. It is always written as the
// last block of the file with one command per line.
type Config struct {
	SDL          SDL          `ini:"sdl"      yaml:"sdl"`
	DOSBox       DOSBox       `ini:"dosbox"   yaml:"dosbox"`
	Render       Render       `ini:"render"   yaml:"render"`
	CPU          CPU          `ini:"cpu"      yaml:"cpu"`
	Mixer        Mixer        `ini:"mixer"    yaml:"mixer"`
	MIDI         MIDI         `ini:"midi"     yaml:"midi"`
	SoundBlaster SoundBlaster `ini:"sblaster" yaml:"sblaster"`
	GUS          GUS          `ini:"gus"      yaml:"gus"`
	Speaker      Speaker      `ini:"speaker"  yaml:"speaker"`
	Joystick     Joystick     `ini:"joystick" yaml:"joystick"`
	Serial       Serial       `ini:"serial"   yaml:"serial"`
	DOS          DOS          `ini:"dos"      yaml:"dos"`
	IPX          IPX          `ini:"ipx"      yaml:"ipx"`

	// Commands run on boot in the given order.
	Autoexec []string `ini:"-" yaml:"autoexec"`
}

// Default returns a new [Config] with the DOSBox 0.74 defaults.
func Default() *Config {
	return &Config{
		SDL: SDL{
			Fullscreen:       false,
			Fulldouble:       false,
			Fullresolution:   "original",
			Windowresolution: "original",
			Output:           "surface",
			Autolock:         true,
			Sensitivity:      "100",
			Waitonerror:      true,
			Priority:         "higher,normal",
			Mapperfile:       "mapper-0.74-3.map",
			Usescancodes:     true,
		},
		DOSBox: DOSBox{
			Language: "",
			Machine:  "svga_s3",
			Captures: "capture",
			Memsize:  "16",
		},
		Render: Render{
			Frameskip: "0",
			Aspect:    false,
			Scaler:    "normal2x",
		},
		CPU: CPU{
			Core:      "auto",
			CPUType:   "auto",
			Cycles:    "auto",
			Cycleup:   "10",
			Cycledown: "20",
		},
		Mixer: Mixer{
			Nosound:   false,
			Rate:      "44100",
			Blocksize: "1024",
			Prebuffer: "25",
		},
		MIDI: MIDI{
			MPU401:     "intelligent",
			Mididevice: "default",
			Midiconfig: "",
		},
		SoundBlaster: SoundBlaster{
			SBType:  "sb16",
			SBBase:  "220",
			IRQ:     "7",
			DMA:     "1",
			HDMA:    "5",
			SBMixer: true,
			Oplmode: "auto",
			Oplemu:  "default",
			Oplrate: "44100",
		},
		GUS: GUS{
			GUS:      false,
			Gusrate:  "44100",
			Gusbase:  "240",
			Gusirq:   "5",
			Gusdma:   "3",
			Ultradir: `C:\ULTRASND`,
		},
		Speaker: Speaker{
			PCSpeaker: true,
			PCRate:    "44100",
			Tandy:     "auto",
			Tandyrate: "44100",
			Disney:    true,
		},
		Joystick: Joystick{
			Joysticktype: "auto",
			Timed:        true,
			Autofire:     false,
			Swap34:       false,
			Buttonwrap:   false,
		},
		Serial: Serial{
			Serial1: "dummy",
			Serial2: "dummy",
			Serial3: "disabled",
			Serial4: "disabled",
		},
		DOS: DOS{
			XMS:            true,
			EMS:            true,
			UMB:            true,
			Keyboardlayout: "auto",
		},
		IPX: IPX{
			IPX: false,
		},
	}
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Autoexec = slices.Clone(c.Autoexec)

	return &clone
}

// AppendAutoexec adds the given commands after the already present autoexec
// commands.
func (c *Config) AppendAutoexec(commands ...string) {
	c.Autoexec = append(c.Autoexec, commands...)
}
