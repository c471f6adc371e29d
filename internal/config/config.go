// Package config provides YAML-based settings loading, validation and
// persistence for the memorize game.
package config

import (
	"fmt"
	"strconv"
)

// Settings is the user-tunable game configuration.
type Settings struct {
	Figures int    `yaml:"figures"`
	Time    int    `yaml:"time"`
	Speed   int    `yaml:"speed"`
	Colors  string `yaml:"colors"`
	Sound   string `yaml:"sound"`
	Flame   bool   `yaml:"flame"`
	Images  string `yaml:"images"` // Directory with custom figure images
}

// Allowed values for each enumerated setting.
var (
	FigureValues = []int{2, 3, 4}
	TimeValues   = []int{5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60}
	SpeedValues  = []int{1, 2, 3, 4}
	ColorValues  = []string{"Easy", "Medium", "Hard"}
	SoundValues  = []string{"Off", "On"}
)

// DefaultSettings returns the settings used when nothing valid is stored.
func DefaultSettings() Settings {
	return Settings{
		Figures: 3,
		Time:    60,
		Speed:   2,
		Colors:  "Medium",
		Sound:   "Off",
	}
}

// SoundOn reports whether the spawn sound is enabled.
func (s Settings) SoundOn() bool {
	return s.Sound == "On"
}

// Sanitize returns a copy of s where every value outside its allowed set is
// replaced by the default.
func Sanitize(s Settings) Settings {
	def := DefaultSettings()
	out := s

	if !contains(FigureValues, s.Figures) {
		out.Figures = def.Figures
	}
	if !contains(TimeValues, s.Time) {
		out.Time = def.Time
	}
	if !contains(SpeedValues, s.Speed) {
		out.Speed = def.Speed
	}
	if !contains(ColorValues, s.Colors) {
		out.Colors = def.Colors
	}
	if !contains(SoundValues, s.Sound) {
		out.Sound = def.Sound
	}
	return out
}

// Valid reports whether every enumerated value is allowed.
func (s Settings) Valid() bool {
	return Sanitize(s) == s
}

// Field identifies one row of the settings screen.
type Field int

const (
	FieldFigures Field = iota
	FieldTime
	FieldSpeed
	FieldColors
	FieldSound
	FieldFlame
)

// Fields lists the editable settings in display order.
var Fields = []Field{FieldFigures, FieldTime, FieldSpeed, FieldColors, FieldSound, FieldFlame}

// Label returns the display name of the field.
func (f Field) Label() string {
	switch f {
	case FieldFigures:
		return "Figures"
	case FieldTime:
		return "Time"
	case FieldSpeed:
		return "Speed"
	case FieldColors:
		return "Colors"
	case FieldSound:
		return "Sound"
	case FieldFlame:
		return "Flame"
	default:
		return "?"
	}
}

// Value returns the current value of a field formatted for display.
func (s Settings) Value(f Field) string {
	switch f {
	case FieldFigures:
		return strconv.Itoa(s.Figures)
	case FieldTime:
		return fmt.Sprintf("%ds", s.Time)
	case FieldSpeed:
		return strconv.Itoa(s.Speed)
	case FieldColors:
		return s.Colors
	case FieldSound:
		return s.Sound
	case FieldFlame:
		if s.Flame {
			return "On"
		}
		return "Off"
	default:
		return ""
	}
}

// Cycle moves a field to the next (dir > 0) or previous (dir < 0) allowed
// value. Values stop at the first and last allowed entries.
func (s Settings) Cycle(f Field, dir int) Settings {
	s = Sanitize(s)
	switch f {
	case FieldFigures:
		s.Figures = step(FigureValues, s.Figures, dir)
	case FieldTime:
		s.Time = step(TimeValues, s.Time, dir)
	case FieldSpeed:
		s.Speed = step(SpeedValues, s.Speed, dir)
	case FieldColors:
		s.Colors = step(ColorValues, s.Colors, dir)
	case FieldSound:
		s.Sound = step(SoundValues, s.Sound, dir)
	case FieldFlame:
		s.Flame = !s.Flame
	}
	return s
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func step[T comparable](values []T, cur T, dir int) T {
	idx := 0
	for i, v := range values {
		if v == cur {
			idx = i
			break
		}
	}
	switch {
	case dir > 0:
		idx = min(idx+1, len(values)-1)
	case dir < 0:
		idx = max(idx-1, 0)
	}
	return values[idx]
}
