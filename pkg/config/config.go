// Package config loads sglint's layered configuration: embedded
// defaults, then a project or user config file, then SGLINT_*
// environment variables. The resulting Config is the only tuning
// surface the core consumes — enabled rules, severity overrides, and
// the Elm namespace set.
package config

import (
	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/rules"
	"github.com/arthur-debert/sglint/pkg/types"
)

// ElmConfig tunes the Elm namespace rule
type ElmConfig struct {
	NamespacePrefixes []string `koanf:"namespace_prefixes" toml:"namespace_prefixes"`
	ApprovedModules   []string `koanf:"approved_modules" toml:"approved_modules"`
}

// OutputConfig selects the report rendering
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
	Color  string `koanf:"color" toml:"color"`
}

// Config is the effective configuration for a run
type Config struct {
	EnabledRules      []string          `koanf:"enabled_rules" toml:"enabled_rules"`
	DisabledRules     []string          `koanf:"disabled_rules" toml:"disabled_rules"`
	SeverityOverrides map[string]string `koanf:"severity_overrides" toml:"severity_overrides"`
	Ignore            []string          `koanf:"ignore" toml:"ignore"`
	Baseline          string            `koanf:"baseline" toml:"baseline"`
	Elm               ElmConfig         `koanf:"elm" toml:"elm"`
	Output            OutputConfig      `koanf:"output" toml:"output"`
}

// ElmOptions converts the config to the rule catalog's options type
func (c *Config) ElmOptions() rules.ElmOptions {
	return rules.ElmOptions{
		NamespacePrefixes: c.Elm.NamespacePrefixes,
		ApprovedModules:   c.Elm.ApprovedModules,
	}
}

// Validate checks that every referenced rule identifier exists and
// every severity name is recognized. known resolves rule identifiers
// against the registry; config typos are fatal, fix-before-run.
func (c *Config) Validate(known func(id string) bool) error {
	for _, id := range c.EnabledRules {
		if !known(id) {
			return errors.Newf(errors.ErrConfigValid, "enabled_rules references unknown rule %q", id)
		}
	}
	for _, id := range c.DisabledRules {
		if !known(id) {
			return errors.Newf(errors.ErrConfigValid, "disabled_rules references unknown rule %q", id)
		}
	}
	for id, sev := range c.SeverityOverrides {
		if !known(id) {
			return errors.Newf(errors.ErrConfigValid, "severity_overrides references unknown rule %q", id)
		}
		if !types.ValidSeverity(sev) {
			return errors.Newf(errors.ErrConfigValid, "severity_overrides[%s]: unknown severity %q", id, sev)
		}
	}
	switch c.Output.Format {
	case "text", "json", "checkstyle", "sarif":
	default:
		return errors.Newf(errors.ErrConfigValid, "output.format: unknown format %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.Newf(errors.ErrConfigValid, "output.color: must be auto, always, or never, got %q", c.Output.Color)
	}
	return nil
}

// EffectiveRules filters and reshapes a language catalog per the
// config: enabled_rules narrows the set when non-empty, disabled_rules
// removes, severity_overrides replaces default severities. Catalog
// order is preserved.
func (c *Config) EffectiveRules(catalog []rules.Rule) []rules.Rule {
	enabled := make(map[string]bool, len(c.EnabledRules))
	for _, id := range c.EnabledRules {
		enabled[id] = true
	}
	disabled := make(map[string]bool, len(c.DisabledRules))
	for _, id := range c.DisabledRules {
		disabled[id] = true
	}

	var effective []rules.Rule
	for _, rule := range catalog {
		if len(enabled) > 0 && !enabled[rule.ID] {
			continue
		}
		if disabled[rule.ID] {
			continue
		}
		if sev, ok := c.SeverityOverrides[rule.ID]; ok {
			rule = rule.WithSeverity(types.Severity(sev))
		}
		effective = append(effective, rule)
	}
	return effective
}
