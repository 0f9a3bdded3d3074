// Package parser implements the command-line parser: it tokenizes a
// raw input line and walks it against a catalog command tree,
// producing either a resolved Invocation or a diagnostic Error.
package parser

import "github.com/apparata/appconsole/catalog"

// Invocation is the fully-resolved result of parsing one command
// line: the chain of commands walked to reach the leaf, and the
// argument values bound to its flags/options/inputs.
type Invocation struct {
	Version   int
	Commands  []string
	Arguments map[string]catalog.ArgumentValue
}
