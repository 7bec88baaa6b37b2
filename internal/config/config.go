package config

// Config is the top-level configuration structure mapping to loopbar.toml.
type Config struct {
	Bar    BarConfig    `toml:"bar"`
	Output OutputConfig `toml:"output"`
	Hash   HashConfig   `toml:"hash"`
}

// BarConfig maps to the [bar] section in loopbar.toml. The characters are
// stored verbatim; single-column enforcement happens in Validate so a bad
// value surfaces as a finding instead of a skewed bar.
type BarConfig struct {
	FillChar   string `toml:"fill_char"`
	TrackChar  string `toml:"track_char"`
	FillColor  string `toml:"fill_color"`
	TrackColor string `toml:"track_color"`
}

// OutputConfig maps to the [output] section in loopbar.toml.
// Width 0 means automatic terminal width discovery.
type OutputConfig struct {
	Width   int  `toml:"width"`
	NoColor bool `toml:"no_color"`
}

// HashConfig maps to the [hash] section in loopbar.toml.
type HashConfig struct {
	Workers int `toml:"workers"`
}
