package config_test

import (
	"testing"

	"github.com/arthur-debert/sglint/pkg/config"
	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/rules"
	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knownRules mimics the registry lookup for validation tests
func knownRules(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Empty(t, cfg.EnabledRules)
	assert.Empty(t, cfg.DisabledRules)
	assert.Equal(t, ".sglint-baseline.yaml", cfg.Baseline)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Contains(t, cfg.Elm.NamespacePrefixes, "Views.")
	assert.Contains(t, cfg.Elm.ApprovedModules, "Main")
}

func TestValidate(t *testing.T) {
	known := knownRules("sql/keywords-uppercase", "elm/port-docs")

	valid := func() *config.Config {
		cfg := config.Default()
		cfg.EnabledRules = []string{"sql/keywords-uppercase"}
		cfg.SeverityOverrides = map[string]string{"elm/port-docs": "error"}
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, valid().Validate(known))
	})

	t.Run("unknown enabled rule fails", func(t *testing.T) {
		cfg := valid()
		cfg.EnabledRules = append(cfg.EnabledRules, "sql/keywords-upercase")
		err := cfg.Validate(known)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Contains(t, err.Error(), "sql/keywords-upercase")
	})

	t.Run("unknown disabled rule fails", func(t *testing.T) {
		cfg := valid()
		cfg.DisabledRules = []string{"sql/nope"}
		assert.Error(t, cfg.Validate(known))
	})

	t.Run("unknown override rule fails", func(t *testing.T) {
		cfg := valid()
		cfg.SeverityOverrides = map[string]string{"sql/nope": "error"}
		assert.Error(t, cfg.Validate(known))
	})

	t.Run("unknown severity fails", func(t *testing.T) {
		cfg := valid()
		cfg.SeverityOverrides = map[string]string{"elm/port-docs": "fatal"}
		err := cfg.Validate(known)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fatal")
	})

	t.Run("unknown format fails", func(t *testing.T) {
		cfg := valid()
		cfg.Output.Format = "xml"
		assert.Error(t, cfg.Validate(known))
	})

	t.Run("unknown color mode fails", func(t *testing.T) {
		cfg := valid()
		cfg.Output.Color = "sometimes"
		assert.Error(t, cfg.Validate(known))
	})
}

func TestEffectiveRules(t *testing.T) {
	catalog := []rules.Rule{
		{ID: "sql/a", Severity: types.SeverityError},
		{ID: "sql/b", Severity: types.SeverityWarning},
		{ID: "sql/c", Severity: types.SeverityError},
	}

	ids := func(rs []rules.Rule) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.ID
		}
		return out
	}

	t.Run("empty config keeps all in order", func(t *testing.T) {
		cfg := &config.Config{}
		assert.Equal(t, []string{"sql/a", "sql/b", "sql/c"}, ids(cfg.EffectiveRules(catalog)))
	})

	t.Run("enabled narrows", func(t *testing.T) {
		cfg := &config.Config{EnabledRules: []string{"sql/c", "sql/a"}}
		// catalog order wins over the enabled list's order
		assert.Equal(t, []string{"sql/a", "sql/c"}, ids(cfg.EffectiveRules(catalog)))
	})

	t.Run("disabled removes", func(t *testing.T) {
		cfg := &config.Config{DisabledRules: []string{"sql/b"}}
		assert.Equal(t, []string{"sql/a", "sql/c"}, ids(cfg.EffectiveRules(catalog)))
	})

	t.Run("disabled beats enabled", func(t *testing.T) {
		cfg := &config.Config{
			EnabledRules:  []string{"sql/a", "sql/b"},
			DisabledRules: []string{"sql/b"},
		}
		assert.Equal(t, []string{"sql/a"}, ids(cfg.EffectiveRules(catalog)))
	})

	t.Run("severity override applied", func(t *testing.T) {
		cfg := &config.Config{SeverityOverrides: map[string]string{"sql/a": "warning"}}
		effective := cfg.EffectiveRules(catalog)
		require.Len(t, effective, 3)
		assert.Equal(t, types.SeverityWarning, effective[0].Severity)
		// the catalog itself is untouched
		assert.Equal(t, types.SeverityError, catalog[0].Severity)
	})
}

func TestElmOptions(t *testing.T) {
	cfg := &config.Config{Elm: config.ElmConfig{
		NamespacePrefixes: []string{"Components."},
		ApprovedModules:   []string{"Root"},
	}}

	opts := cfg.ElmOptions()
	assert.Equal(t, []string{"Components."}, opts.NamespacePrefixes)
	assert.Equal(t, []string{"Root"}, opts.ApprovedModules)
}
