package config

import (
	"strconv"

	"github.com/BurntSushi/toml"
)

// ConfigSource identifies where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates the value came from built-in defaults.
	SourceDefault ConfigSource = "default"
	// SourceFile indicates the value came from the loopbar.toml config file.
	SourceFile ConfigSource = "file"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
	// SourceCLI indicates the value came from a CLI flag.
	SourceCLI ConfigSource = "cli"
)

// ResolvedConfig holds the fully-resolved configuration with source tracking.
// The Config field contains the merged values; Sources tracks where each came from.
type ResolvedConfig struct {
	Config  *Config
	Sources map[string]ConfigSource // key is dotted path, e.g., "bar.fill_char"
	Path    string                  // path to the config file used (empty if none)
}

// CLIOverrides captures flag values that can override configuration.
// Nil fields mean "not set" (do not override). A *string that is nil means
// "not overridden"; a *string pointing to "" means "override to empty".
type CLIOverrides struct {
	FillChar   *string
	TrackChar  *string
	FillColor  *string
	TrackColor *string
	Width      *int
	NoColor    *bool
	Workers    *int
}

// EnvFunc is a function that looks up environment variables.
// Default implementation is os.LookupEnv. Injected for testability.
type EnvFunc func(key string) (string, bool)

// Resolve merges configuration from all sources in priority order:
// CLI flags > environment variables > config file > defaults.
//
// meta is the TOML metadata returned by LoadFromFile and may be nil. When
// present it makes the file layer presence-aware: a key is merged exactly
// when it appeared in the file, so an explicit `no_color = false` or
// `width = 0` still counts as a file-provided value. Without metadata the
// file layer falls back to merging non-zero values only.
func Resolve(defaults *Config, fileConfig *Config, meta *toml.MetaData, envFn EnvFunc, overrides *CLIOverrides) *ResolvedConfig {
	rc := &ResolvedConfig{
		Config:  &Config{},
		Sources: make(map[string]ConfigSource),
	}

	if defaults == nil {
		defaults = &Config{}
	}
	if envFn == nil {
		envFn = func(string) (string, bool) { return "", false }
	}
	if overrides == nil {
		overrides = &CLIOverrides{}
	}

	// Layer 1: defaults as the base.
	resolveFromDefaults(rc, defaults)

	// Layer 2: file config on top.
	if fileConfig != nil {
		resolveFromFile(rc, fileConfig, meta)
	}

	// Layer 3: environment variables.
	resolveFromEnv(rc, envFn)

	// Layer 4: CLI overrides.
	resolveFromCLI(rc, overrides)

	return rc
}

// --- Layer 1: Defaults ---

func resolveFromDefaults(rc *ResolvedConfig, defaults *Config) {
	rc.Config.Bar = defaults.Bar
	rc.Config.Output = defaults.Output
	rc.Config.Hash = defaults.Hash

	for _, path := range []string{
		"bar.fill_char", "bar.track_char", "bar.fill_color", "bar.track_color",
		"output.width", "output.no_color",
		"hash.workers",
	} {
		rc.Sources[path] = SourceDefault
	}
}

// --- Layer 2: File ---

// fileHas reports whether a file-layer key should be merged. With metadata
// the answer is exact presence in the TOML document; without it, nonZero
// is the fallback signal.
func fileHas(meta *toml.MetaData, nonZero bool, key ...string) bool {
	if meta != nil {
		return meta.IsDefined(key...)
	}
	return nonZero
}

func resolveFromFile(rc *ResolvedConfig, file *Config, meta *toml.MetaData) {
	b := &rc.Config.Bar
	f := &file.Bar

	if fileHas(meta, f.FillChar != "", "bar", "fill_char") {
		b.FillChar = f.FillChar
		rc.Sources["bar.fill_char"] = SourceFile
	}
	if fileHas(meta, f.TrackChar != "", "bar", "track_char") {
		b.TrackChar = f.TrackChar
		rc.Sources["bar.track_char"] = SourceFile
	}
	if fileHas(meta, f.FillColor != "", "bar", "fill_color") {
		b.FillColor = f.FillColor
		rc.Sources["bar.fill_color"] = SourceFile
	}
	if fileHas(meta, f.TrackColor != "", "bar", "track_color") {
		b.TrackColor = f.TrackColor
		rc.Sources["bar.track_color"] = SourceFile
	}

	if fileHas(meta, file.Output.Width != 0, "output", "width") {
		rc.Config.Output.Width = file.Output.Width
		rc.Sources["output.width"] = SourceFile
	}
	if fileHas(meta, file.Output.NoColor, "output", "no_color") {
		rc.Config.Output.NoColor = file.Output.NoColor
		rc.Sources["output.no_color"] = SourceFile
	}

	if fileHas(meta, file.Hash.Workers != 0, "hash", "workers") {
		rc.Config.Hash.Workers = file.Hash.Workers
		rc.Sources["hash.workers"] = SourceFile
	}
}

// --- Layer 3: Environment ---

// Environment variable mapping:
//
//	LOOPBAR_FILL_CHAR    -> bar.fill_char
//	LOOPBAR_TRACK_CHAR   -> bar.track_char
//	LOOPBAR_FILL_COLOR   -> bar.fill_color
//	LOOPBAR_TRACK_COLOR  -> bar.track_color
//	LOOPBAR_WIDTH        -> output.width
//	LOOPBAR_HASH_WORKERS -> hash.workers
//	NO_COLOR, LOOPBAR_NO_COLOR -> output.no_color (non-empty value disables color)
//
// Numeric variables that do not parse are ignored; an unparseable width
// should not take down commands that never look at it.
func resolveFromEnv(rc *ResolvedConfig, envFn EnvFunc) {
	b := &rc.Config.Bar

	if val, ok := envFn("LOOPBAR_FILL_CHAR"); ok {
		b.FillChar = val
		rc.Sources["bar.fill_char"] = SourceEnv
	}
	if val, ok := envFn("LOOPBAR_TRACK_CHAR"); ok {
		b.TrackChar = val
		rc.Sources["bar.track_char"] = SourceEnv
	}
	if val, ok := envFn("LOOPBAR_FILL_COLOR"); ok {
		b.FillColor = val
		rc.Sources["bar.fill_color"] = SourceEnv
	}
	if val, ok := envFn("LOOPBAR_TRACK_COLOR"); ok {
		b.TrackColor = val
		rc.Sources["bar.track_color"] = SourceEnv
	}

	if val, ok := envFn("LOOPBAR_WIDTH"); ok {
		if n, err := strconv.Atoi(val); err == nil {
			rc.Config.Output.Width = n
			rc.Sources["output.width"] = SourceEnv
		}
	}
	if val, ok := envFn("LOOPBAR_HASH_WORKERS"); ok {
		if n, err := strconv.Atoi(val); err == nil {
			rc.Config.Hash.Workers = n
			rc.Sources["hash.workers"] = SourceEnv
		}
	}

	// NO_COLOR follows the https://no-color.org convention: any non-empty
	// value disables color; it can never re-enable it.
	for _, name := range []string{"NO_COLOR", "LOOPBAR_NO_COLOR"} {
		if val, ok := envFn(name); ok && val != "" {
			rc.Config.Output.NoColor = true
			rc.Sources["output.no_color"] = SourceEnv
		}
	}
}

// --- Layer 4: CLI overrides ---

func resolveFromCLI(rc *ResolvedConfig, overrides *CLIOverrides) {
	b := &rc.Config.Bar

	if overrides.FillChar != nil {
		b.FillChar = *overrides.FillChar
		rc.Sources["bar.fill_char"] = SourceCLI
	}
	if overrides.TrackChar != nil {
		b.TrackChar = *overrides.TrackChar
		rc.Sources["bar.track_char"] = SourceCLI
	}
	if overrides.FillColor != nil {
		b.FillColor = *overrides.FillColor
		rc.Sources["bar.fill_color"] = SourceCLI
	}
	if overrides.TrackColor != nil {
		b.TrackColor = *overrides.TrackColor
		rc.Sources["bar.track_color"] = SourceCLI
	}
	if overrides.Width != nil {
		rc.Config.Output.Width = *overrides.Width
		rc.Sources["output.width"] = SourceCLI
	}
	if overrides.NoColor != nil {
		rc.Config.Output.NoColor = *overrides.NoColor
		rc.Sources["output.no_color"] = SourceCLI
	}
	if overrides.Workers != nil {
		rc.Config.Hash.Workers = *overrides.Workers
		rc.Sources["hash.workers"] = SourceCLI
	}
}
