// Package rules embeds the default replacement rules for the fixup command.
package rules

import _ "embed"

// Default contains the built-in rule set, applied when the user does
// not supply a rules file.
//
//go:embed default.toml
var Default []byte
