package config

import (
	_ "embed"
	"strings"

	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/paths"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load builds the effective config for a project root.
//
// Layers, later wins: embedded defaults, the config file (explicitPath
// when given, otherwise the first of .sglint.toml, sglint.toml, or the
// user XDG config), then SGLINT_* environment variables. The variable
// name maps each underscore to a key separator, so
// SGLINT_OUTPUT_FORMAT=json sets output.format and SGLINT_BASELINE
// sets baseline. Keys whose own names contain underscores
// (enabled_rules, elm.namespace_prefixes, ...) have no environment
// form; they are file-only.
func Load(root, explicitPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, koanftoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	configPath := explicitPath
	if configPath == "" {
		configPath, _ = paths.FindConfigFile(root)
	}
	if configPath != "" {
		var parser koanf.Parser = koanftoml.Parser()
		if strings.HasSuffix(configPath, ".yaml") || strings.HasSuffix(configPath, ".yml") {
			parser = koanfyaml.Parser()
		}
		if err := k.Load(file.Provider(configPath), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath)
		}
	}

	if err := k.Load(env.Provider("SGLINT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SGLINT_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

// Default returns the built-in defaults without touching the
// filesystem or environment
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, koanftoml.Parser()); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic("embedded defaults do not decode: " + err.Error())
	}
	return &cfg
}
