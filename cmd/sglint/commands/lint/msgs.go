package lint

const (
	MsgShort = "Lint SQL and Elm files against the style guide"

	MsgLong = `Lint discovers .sql and .elm files under the given paths (default:
the current directory), checks them against the enabled rules, and
prints a report.

The exit status is 0 when no error-severity violations remain, 1 when
any do, and 2 for operational failures. Warnings annotate the report
but never fail the run.`

	MsgExample = `  # Lint the current project
  sglint lint

  # Lint specific paths as SARIF for code scanning
  sglint lint --format sarif db/ client/src/

  # Accept all current findings into the baseline
  sglint lint --update-baseline`
)
