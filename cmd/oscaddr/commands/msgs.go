package commands

// Message constants
const (
	MsgRootShort = "Parse and validate OSC-style addresses and address patterns"
	MsgRootLong  = `oscaddr parses slash-delimited control addresses (like a synthesis
engine's parameter tree) and glob-style address patterns, reporting the
structured form or the exact reason an input was rejected.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: text or json"

	MsgAddressShort   = "Parse a concrete address"
	MsgAddressLong    = "Parse a strict, pattern-free address into its container path and method name."
	MsgAddressExample = `  oscaddr address /oscillator/4/voice/1/frequency
  oscaddr address --format json /mixer/master/gain`

	MsgPatternShort   = "Parse an address pattern"
	MsgPatternLong    = "Parse a glob-style address pattern and print its classified elements in order."
	MsgPatternExample = `  oscaddr pattern '/oscillator/[0-9]/*/{frequency,phase}'
  oscaddr pattern --format json '/voice/?/gate'`

	MsgCheckShort   = "Validate a routing manifest"
	MsgCheckLong    = "Load a TOML or YAML routing manifest and run every endpoint through the\naddress grammar and every route through the pattern grammar."
	MsgCheckExample = `  oscaddr check surface.toml
  oscaddr check rig.yaml`
)
