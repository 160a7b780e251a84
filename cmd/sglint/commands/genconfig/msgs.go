package genconfig

const (
	MsgShort = "Print or write the default configuration"

	MsgLong = `Gen-config emits the built-in default configuration as TOML, ready
to be edited and committed as .sglint.toml in the project root.`

	MsgExample = `  # Inspect the defaults
  sglint gen-config

  # Write .sglint.toml into the current directory
  sglint gen-config --write`
)
