package core

import (
	"context"
	"runtime"
	"time"

	"github.com/arthur-debert/sglint/pkg/baseline"
	"github.com/arthur-debert/sglint/pkg/config"
	"github.com/arthur-debert/sglint/pkg/evaluator"
	"github.com/arthur-debert/sglint/pkg/logging"
	"github.com/arthur-debert/sglint/pkg/registry"
	"github.com/arthur-debert/sglint/pkg/report"
	"github.com/arthur-debert/sglint/pkg/rules"
	"github.com/arthur-debert/sglint/pkg/scanner"
	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Runner executes lint runs against the initialized registries
type Runner struct {
	cfg      *config.Config
	base     *baseline.Baseline
	eval     *evaluator.Evaluator
	logger   zerolog.Logger
	parallel int
}

// NewRunner creates a Runner. base may be nil for runs without a
// baseline (including baseline regeneration itself).
func NewRunner(cfg *config.Config, base *baseline.Baseline) *Runner {
	return &Runner{
		cfg:      cfg,
		base:     base,
		eval:     evaluator.New(),
		logger:   logging.GetLogger("core.runner"),
		parallel: runtime.GOMAXPROCS(0),
	}
}

// Run scans and evaluates every file on a bounded worker pool and
// aggregates the results. File pipelines share no mutable state: each
// worker writes only its own result slot, so the merge before
// aggregation is the run's single synchronization point.
func (r *Runner) Run(ctx context.Context, files []*types.SourceFile) (*types.Report, error) {
	start := time.Now()
	defer logging.LogDuration(start, "lint run")

	effective := map[types.Language][]rules.Rule{
		types.LangSQL: r.cfg.EffectiveRules(registry.RulesFor(types.LangSQL)),
		types.LangElm: r.cfg.EffectiveRules(registry.RulesFor(types.LangElm)),
	}

	perFile := make([][]types.Violation, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perFile[i] = r.lintFile(file, effective)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	suppressed := 0
	if r.base != nil {
		for i, violations := range perFile {
			kept, n := r.base.Filter(violations)
			perFile[i] = kept
			suppressed += n
		}
	}

	rep := report.Aggregate(perFile, len(files), suppressed)
	r.logger.Info().
		Int("files", rep.Files).
		Int("errors", rep.Errors()).
		Int("warnings", rep.Warnings()).
		Int("suppressed", rep.Suppressed).
		Bool("pass", rep.Pass).
		Msg("Run completed")
	return rep, nil
}

// lintFile is the per-file pipeline: scan, then evaluate. Files whose
// language is not one the run built a rule set for (unclassified,
// unknown, or an empty catalog) yield a single unsupported-language
// warning instead of failing the run.
func (r *Runner) lintFile(file *types.SourceFile, effective map[types.Language][]rules.Rule) []types.Violation {
	ruleSet, ok := effective[file.Language]
	if !ok || len(registry.RulesFor(file.Language)) == 0 {
		return []types.Violation{evaluator.UnsupportedLanguage(file.Path, file.Language)}
	}
	file.Tokens = scanner.Scan(file.Content, file.Language)
	return r.eval.Evaluate(file, ruleSet)
}
