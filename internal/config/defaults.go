package config

import "github.com/loopbar/loopbar"

// NewDefaults returns a Config populated with all default values. Bar
// styling defaults mirror the library's own so that configuration and
// direct library use render identically.
func NewDefaults() *Config {
	return &Config{
		Bar: BarConfig{
			FillChar:   loopbar.DefaultFill,
			TrackChar:  loopbar.DefaultTrack,
			FillColor:  loopbar.DefaultColor,
			TrackColor: loopbar.DefaultColor,
		},
		Output: OutputConfig{
			Width: 0, // auto-detect
		},
		Hash: HashConfig{
			Workers: 4,
		},
	}
}
