package catalog

// FindSubcommand looks up a subcommand by name within cmd's
// SubcommandsContext. Returns nil, false if cmd holds no subcommands
// or none match.
func FindSubcommand(cmd *Command, name string) (*Command, bool) {
	sc := cmd.Context.Subcommands
	if sc == nil {
		return nil, false
	}
	for _, sub := range sc.Commands {
		if sub.Name == name {
			return sub, true
		}
	}
	return nil, false
}

// FindFlag looks up a flag within cmd's ArgumentsContext by its long
// name or short alias.
func FindFlag(cmd *Command, token string) (*Flag, bool) {
	ac := cmd.Context.Arguments
	if ac == nil {
		return nil, false
	}
	for _, f := range ac.Flags {
		if f.Name == token || (f.Short != "" && f.Short == token) {
			return f, true
		}
	}
	return nil, false
}

// FindOption looks up an option within cmd's ArgumentsContext by its
// long name or short alias.
func FindOption(cmd *Command, token string) (*Option, bool) {
	ac := cmd.Context.Arguments
	if ac == nil {
		return nil, false
	}
	for _, o := range ac.Options {
		if o.Name == token || (o.Short != "" && o.Short == token) {
			return o, true
		}
	}
	return nil, false
}

// Inputs returns cmd's positional inputs in binding order, or nil if
// cmd holds no ArgumentsContext.
func Inputs(cmd *Command) []*Input {
	ac := cmd.Context.Arguments
	if ac == nil {
		return nil
	}
	return ac.Inputs
}

// IsVariadic reports whether cmd's last input absorbs any trailing
// positional tokens instead of just one.
func IsVariadic(cmd *Command) bool {
	ac := cmd.Context.Arguments
	return ac != nil && ac.IsLastInputVariadic
}
