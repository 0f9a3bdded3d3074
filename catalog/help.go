package catalog

// HelpName is the synthesized entry every command tree auto-contains:
// a subcommand named "help" when a command holds subcommands, or a
// flag named "help" (-h/--help) when a command holds arguments.
const HelpName = "help"

const helpShort = "h"

// WithHelp returns a deep copy of cmd with the synthesized help entry
// injected at every level of the tree, recursively. Injection is
// idempotent: calling it again on an already-injected tree is a no-op
// beyond the copy, which is what keeps the synthesized entries stable
// across encode/decode round-trips.
func WithHelp(cmd *Command) *Command {
	injected := cmd.Clone()
	injectHelp(injected)
	return injected
}

func injectHelp(cmd *Command) {
	if sc := cmd.Context.Subcommands; sc != nil {
		for _, sub := range sc.Commands {
			injectHelp(sub)
		}
		if !hasSubcommand(sc.Commands, HelpName) {
			sc.Commands = append(sc.Commands, helpSubcommand())
		}
		return
	}

	ac := cmd.Context.Arguments
	if ac == nil {
		return
	}
	if !hasFlag(ac.Flags, HelpName) {
		ac.Flags = append(ac.Flags, &Flag{
			Name:        HelpName,
			Short:       helpShort,
			Description: "Show usage information.",
		})
	}
}

func hasSubcommand(commands []*Command, name string) bool {
	for _, c := range commands {
		if c.Name == name {
			return true
		}
	}
	return false
}

func hasFlag(flags []*Flag, name string) bool {
	for _, f := range flags {
		if f.Name == name {
			return true
		}
	}
	return false
}

// helpSubcommand builds the synthesized "help" subcommand, which
// optionally accepts the name of a sibling command to show usage for.
func helpSubcommand() *Command {
	return &Command{
		Name:        HelpName,
		Description: "Show usage information.",
		Context: Context{
			Arguments: &ArgumentsContext{
				Inputs: []*Input{
					{
						Name:       "subcommand",
						DataType:   DataTypeString,
						IsOptional: true,
					},
				},
			},
		},
	}
}

// HasHelpFlag reports whether cmd's ArgumentsContext carries the
// synthesized help flag.
func HasHelpFlag(cmd *Command) bool {
	ac := cmd.Context.Arguments
	if ac == nil {
		return false
	}
	return hasFlag(ac.Flags, HelpName)
}

// HasHelpSubcommand reports whether cmd's SubcommandsContext carries
// the synthesized help subcommand.
func HasHelpSubcommand(cmd *Command) bool {
	sc := cmd.Context.Subcommands
	if sc == nil {
		return false
	}
	return hasSubcommand(sc.Commands, HelpName)
}
