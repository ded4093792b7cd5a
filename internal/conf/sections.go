// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package conf

// The field order of the section types is the key order in the serialized
// file.

// SDL holds the [sdl] section.
type SDL struct {
	// Start DOSBox directly in fullscreen.
	Fullscreen bool `ini:"fullscreen" yaml:"fullscreen"`
	// Use double buffering in fullscreen. It can reduce screen flickering,
	// but it can also result in a slow DOSBox.
	Fulldouble       bool   `ini:"fulldouble"       yaml:"fulldouble"`
	Fullresolution   string `ini:"fullresolution"   yaml:"fullresolution"`
	Windowresolution string `ini:"windowresolution" yaml:"windowresolution"`
	Output           string `ini:"output"           yaml:"output"`
	Autolock         bool   `ini:"autolock"         yaml:"autolock"`
	Sensitivity      string `ini:"sensitivity"      yaml:"sensitivity"`
	Waitonerror      bool   `ini:"waitonerror"      yaml:"waitonerror"`
	Priority         string `ini:"priority"         yaml:"priority"`
	Mapperfile       string `ini:"mapperfile"       yaml:"mapperfile"`
	Usescancodes     bool   `ini:"usescancodes"     yaml:"usescancodes"`
}

// DOSBox holds the [dosbox] section.
type DOSBox struct {
	Language string `ini:"language" yaml:"language"`
	Machine  string `ini:"machine"  yaml:"machine"`
	Captures string `ini:"captures" yaml:"captures"`
	// Memory size in MB.
	Memsize string `ini:"memsize" yaml:"memsize"`
}

// Render holds the [render] section.
type Render struct {
	Frameskip string `ini:"frameskip" yaml:"frameskip"`
	Aspect    bool   `ini:"aspect"    yaml:"aspect"`
	Scaler    string `ini:"scaler"    yaml:"scaler"`
}

// CPU holds the [cpu] section.
type CPU struct {
	Core    string `ini:"core"    yaml:"core"`
	CPUType string `ini:"cputype" yaml:"cputype"`
	// Either "auto", "max" or a fixed number of instructions per
	// millisecond.
	Cycles    string `ini:"cycles"    yaml:"cycles"`
	Cycleup   string `ini:"cycleup"   yaml:"cycleup"`
	Cycledown string `ini:"cycledown" yaml:"cycledown"`
}

// Mixer holds the [mixer] section.
type Mixer struct {
	Nosound   bool   `ini:"nosound"   yaml:"nosound"`
	Rate      string `ini:"rate"      yaml:"rate"`
	Blocksize string `ini:"blocksize" yaml:"blocksize"`
	Prebuffer string `ini:"prebuffer" yaml:"prebuffer"`
}

// MIDI holds the [midi] section.
type MIDI struct {
	MPU401     string `ini:"mpu401"     yaml:"mpu401"`
	Mididevice string `ini:"mididevice" yaml:"mididevice"`
	Midiconfig string `ini:"midiconfig" yaml:"midiconfig"`
}

// SoundBlaster holds the [sblaster] section.
type SoundBlaster struct {
	SBType  string `ini:"sbtype"  yaml:"sbtype"`
	SBBase  string `ini:"sbbase"  yaml:"sbbase"`
	IRQ     string `ini:"irq"     yaml:"irq"`
	DMA     string `ini:"dma"     yaml:"dma"`
	HDMA    string `ini:"hdma"    yaml:"hdma"`
	SBMixer bool   `ini:"sbmixer" yaml:"sbmixer"`
	Oplmode string `ini:"oplmode" yaml:"oplmode"`
	Oplemu  string `ini:"oplemu"  yaml:"oplemu"`
	Oplrate string `ini:"oplrate" yaml:"oplrate"`
}

// GUS holds the [gus] section.
type GUS struct {
	GUS      bool   `ini:"gus"      yaml:"gus"`
	Gusrate  string `ini:"gusrate"  yaml:"gusrate"`
	Gusbase  string `ini:"gusbase"  yaml:"gusbase"`
	Gusirq   string `ini:"gusirq"   yaml:"gusirq"`
	Gusdma   string `ini:"gusdma"   yaml:"gusdma"`
	Ultradir string `ini:"ultradir" yaml:"ultradir"`
}

// Speaker holds the [speaker] section.
type Speaker struct {
	PCSpeaker bool   `ini:"pcspeaker" yaml:"pcspeaker"`
	PCRate    string `ini:"pcrate"    yaml:"pcrate"`
	Tandy     string `ini:"tandy"     yaml:"tandy"`
	Tandyrate string `ini:"tandyrate" yaml:"tandyrate"`
	Disney    bool   `ini:"disney"    yaml:"disney"`
}

// Joystick holds the [joystick] section.
type Joystick struct {
	Joysticktype string `ini:"joysticktype" yaml:"joysticktype"`
	Timed        bool   `ini:"timed"        yaml:"timed"`
	Autofire     bool   `ini:"autofire"     yaml:"autofire"`
	Swap34       bool   `ini:"swap34"       yaml:"swap34"`
	Buttonwrap   bool   `ini:"buttonwrap"   yaml:"buttonwrap"`
}

// Serial holds the [serial] section.
type Serial struct {
	Serial1 string `ini:"serial1" yaml:"serial1"`
	Serial2 string `ini:"serial2" yaml:"serial2"`
	Serial3 string `ini:"serial3" yaml:"serial3"`
	Serial4 string `ini:"serial4" yaml:"serial4"`
}

// DOS holds the [dos] section.
type DOS struct {
	XMS            bool   `ini:"xms"            yaml:"xms"`
	EMS            bool   `ini:"ems"            yaml:"ems"`
	UMB            bool   `ini:"umb"            yaml:"umb"`
	Keyboardlayout string `ini:"keyboardlayout" yaml:"keyboardlayout"`
}

// IPX holds the [ipx] section.
type IPX struct {
	IPX bool `ini:"ipx" yaml:"ipx"`
}
