package rules

const (
	MsgShort = "Show the rule catalog"

	MsgLong = `Rules prints every rule sglint knows about: identifier, language,
default severity, and what it checks.

Advisory rules document conventions the token-level engine cannot
decide mechanically; they are listed here for completeness but never
produce violations.`

	MsgExample = `  # Full catalog, rendered for the terminal
  sglint rules

  # Only the SQL rules, as plain Markdown
  sglint rules --language sql --plain`
)
