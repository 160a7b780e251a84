// Package core wires the pipeline together: one-time registry
// construction and the per-run scan → evaluate → aggregate flow.
package core

import (
	"fmt"
	"sync"

	"github.com/arthur-debert/sglint/pkg/registry"
	"github.com/arthur-debert/sglint/pkg/rules"
)

var (
	initOnce sync.Once
	initErr  error
)

// Initialize populates the global rule registries from the built-in
// catalog. It runs exactly once per process, before any evaluation, so
// the registries are immutable for the lifetime of every run; repeated
// calls return the first outcome. A duplicate rule identifier is a
// programming error and fails initialization.
func Initialize(elmOpts rules.ElmOptions) error {
	initOnce.Do(func() {
		catalogs := [][]rules.Rule{
			rules.SQLRules(),
			rules.ElmRules(elmOpts),
			rules.MetaRules(),
		}
		for _, catalog := range catalogs {
			for _, rule := range catalog {
				if err := registry.RegisterRule(rule); err != nil {
					initErr = err
					return
				}
			}
		}
	})
	return initErr
}

// MustInitialize is Initialize for main(): registration failures are
// startup misconfiguration, not runtime conditions
func MustInitialize(elmOpts rules.ElmOptions) {
	if err := Initialize(elmOpts); err != nil {
		panic(fmt.Sprintf("rule registry initialization failed: %v", err))
	}
}
