package config

import (
	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// GenerateTOML renders the built-in defaults as a TOML document
// suitable for writing to .sglint.toml. Used by `sglint gen-config`.
func GenerateTOML() ([]byte, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode default config")
	}
	return data, nil
}
