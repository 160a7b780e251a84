package registry

import (
	"github.com/arthur-debert/sglint/pkg/rules"
	"github.com/arthur-debert/sglint/pkg/types"
)

// Global rule registries, one per language plus one for the engine's
// internal meta rules. They are populated once by core initialization
// and read-only for the rest of the process lifetime; concurrent reads
// during a parallel run are safe.
var (
	sqlRuleRegistry  Registry[rules.Rule]
	elmRuleRegistry  Registry[rules.Rule]
	metaRuleRegistry Registry[rules.Rule]
)

func init() {
	sqlRuleRegistry = New[rules.Rule]()
	elmRuleRegistry = New[rules.Rule]()
	metaRuleRegistry = New[rules.Rule]()
}

// ruleRegistryFor picks the registry holding rules for a language.
// Meta rules carry an empty language.
func ruleRegistryFor(lang types.Language) Registry[rules.Rule] {
	switch lang {
	case types.LangSQL:
		return sqlRuleRegistry
	case types.LangElm:
		return elmRuleRegistry
	default:
		return metaRuleRegistry
	}
}

// RegisterRule adds a rule to its language's registry. Registering two
// rules with the same identifier and language is a startup
// misconfiguration and fails with an ALREADY_EXISTS error.
func RegisterRule(rule rules.Rule) error {
	return ruleRegistryFor(rule.Language).Register(rule.ID, rule)
}

// RulesFor returns the rules applicable to a language in registration order
func RulesFor(lang types.Language) []rules.Rule {
	return ruleRegistryFor(lang).Items()
}

// LookupRule resolves a rule identifier across all languages
func LookupRule(id string) (rules.Rule, bool) {
	for _, reg := range []Registry[rules.Rule]{sqlRuleRegistry, elmRuleRegistry, metaRuleRegistry} {
		if rule, err := reg.Get(id); err == nil {
			return rule, true
		}
	}
	return rules.Rule{}, false
}

// KnownRuleIDs returns every registered rule identifier, languages in
// catalog order
func KnownRuleIDs() []string {
	var ids []string
	for _, reg := range []Registry[rules.Rule]{sqlRuleRegistry, elmRuleRegistry, metaRuleRegistry} {
		ids = append(ids, reg.List()...)
	}
	return ids
}

// AllRules returns every registered rule, languages in catalog order
func AllRules() []rules.Rule {
	var all []rules.Rule
	for _, reg := range []Registry[rules.Rule]{sqlRuleRegistry, elmRuleRegistry, metaRuleRegistry} {
		all = append(all, reg.Items()...)
	}
	return all
}
