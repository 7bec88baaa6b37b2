package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-runewidth"

	"github.com/loopbar/loopbar/internal/ansi"
)

// ValidationSeverity indicates whether a validation issue is an error or warning.
type ValidationSeverity string

const (
	// SeverityError indicates a fatal validation issue; the configuration is unusable.
	SeverityError ValidationSeverity = "error"
	// SeverityWarning indicates an informational validation issue; the configuration
	// works but may not behave as intended.
	SeverityWarning ValidationSeverity = "warning"
)

// ValidationIssue represents a single validation finding.
type ValidationIssue struct {
	Severity ValidationSeverity
	Field    string // dotted path, e.g., "bar.fill_char"
	Message  string
}

// ValidationResult holds all validation findings.
type ValidationResult struct {
	Issues []ValidationIssue
}

// HasErrors returns true if any issue has error severity.
func (vr *ValidationResult) HasErrors() bool {
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any issue has warning severity.
func (vr *ValidationResult) HasWarnings() bool {
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Errors returns only error-severity issues.
func (vr *ValidationResult) Errors() []ValidationIssue {
	var errs []ValidationIssue
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}
	return errs
}

// Warnings returns only warning-severity issues.
func (vr *ValidationResult) Warnings() []ValidationIssue {
	var warns []ValidationIssue
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityWarning {
			warns = append(warns, issue)
		}
	}
	return warns
}

// Validate checks the configuration for correctness and completeness. It
// performs structural validation, semantic validation, and unknown key
// detection.
//
// meta is the TOML metadata from BurntSushi/toml and may be nil when no
// file was loaded. Check HasErrors() to determine if the config is usable.
func Validate(cfg *Config, meta *toml.MetaData) *ValidationResult {
	vr := &ValidationResult{}

	if cfg == nil {
		addError(vr, "", "configuration is nil")
		return vr
	}

	validateBar(vr, &cfg.Bar)
	validateOutput(vr, &cfg.Output)
	validateHash(vr, &cfg.Hash)
	validateUnknownKeys(vr, meta)

	return vr
}

// validateBar checks the [bar] section.
//
// Bar characters must occupy exactly one terminal column; anything else
// breaks the fixed layout budget. Display width is measured with
// go-runewidth rather than rune count so wide CJK characters and
// multi-rune strings are both rejected.
func validateBar(vr *ValidationResult, b *BarConfig) {
	if w := runewidth.StringWidth(b.FillChar); w != 1 {
		addError(vr, "bar.fill_char",
			fmt.Sprintf("%q occupies %d terminal columns; must occupy exactly 1", b.FillChar, w))
	}
	if w := runewidth.StringWidth(b.TrackChar); w != 1 {
		addError(vr, "bar.track_char",
			fmt.Sprintf("%q occupies %d terminal columns; must occupy exactly 1", b.TrackChar, w))
	}

	// Warning only: the renderer falls back to uncolored output for names
	// it does not recognize, so a typo degrades rather than breaks.
	if !ansi.Known(b.FillColor) {
		addWarning(vr, "bar.fill_color",
			fmt.Sprintf("unknown color %q; rendering will fall back to default", b.FillColor))
	}
	if !ansi.Known(b.TrackColor) {
		addWarning(vr, "bar.track_color",
			fmt.Sprintf("unknown color %q; rendering will fall back to default", b.TrackColor))
	}
}

// validateOutput checks the [output] section.
func validateOutput(vr *ValidationResult, o *OutputConfig) {
	if o.Width < 0 {
		addError(vr, "output.width",
			fmt.Sprintf("must be 0 (auto) or positive, got %d", o.Width))
	}
}

// validateHash checks the [hash] section.
func validateHash(vr *ValidationResult, h *HashConfig) {
	if h.Workers < 1 {
		addError(vr, "hash.workers",
			fmt.Sprintf("must be at least 1, got %d", h.Workers))
	}
}

// validateUnknownKeys checks for TOML keys that did not map to any config
// struct field.
func validateUnknownKeys(vr *ValidationResult, meta *toml.MetaData) {
	if meta == nil {
		return
	}

	for _, key := range meta.Undecoded() {
		path := strings.Join(key, ".")
		addWarning(vr, path, "unknown configuration key")
	}
}

// addError appends an error-severity issue to the validation result.
func addError(vr *ValidationResult, field, message string) {
	vr.Issues = append(vr.Issues, ValidationIssue{
		Severity: SeverityError,
		Field:    field,
		Message:  message,
	})
}

// addWarning appends a warning-severity issue to the validation result.
func addWarning(vr *ValidationResult, field, message string) {
	vr.Issues = append(vr.Issues, ValidationIssue{
		Severity: SeverityWarning,
		Field:    field,
		Message:  message,
	})
}
