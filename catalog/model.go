package catalog

import "regexp"

// Flag is a boolean argument descriptor: its presence means true,
// its absence means false.
type Flag struct {
	Name        string
	Short       string
	Description string
}

// Option is a named argument descriptor carrying one value of
// DataType per occurrence.
type Option struct {
	Name              string
	Short             string
	DataType          DataType
	IsMultipleAllowed bool
	ValidationRegex   string
	Description       string

	compiled *regexp.Regexp
}

// Regexp lazily compiles and caches ValidationRegex. A nil result
// means no validation is required.
func (o *Option) Regexp() (*regexp.Regexp, error) {
	if o.ValidationRegex == "" {
		return nil, nil
	}
	if o.compiled != nil {
		return o.compiled, nil
	}
	re, err := regexp.Compile(o.ValidationRegex)
	if err != nil {
		return nil, err
	}
	o.compiled = re
	return re, nil
}

// Input is a positional argument descriptor. Order within a command's
// Inputs slice is significant: positional binding consumes them
// left-to-right.
type Input struct {
	Name            string
	DataType        DataType
	IsOptional      bool
	ValidationRegex string
	Description     string

	compiled *regexp.Regexp
}

// Regexp lazily compiles and caches ValidationRegex.
func (i *Input) Regexp() (*regexp.Regexp, error) {
	if i.ValidationRegex == "" {
		return nil, nil
	}
	if i.compiled != nil {
		return i.compiled, nil
	}
	re, err := regexp.Compile(i.ValidationRegex)
	if err != nil {
		return nil, err
	}
	i.compiled = re
	return re, nil
}

// Context is the sum type distinguishing an inner-menu command from
// a leaf command accepting flags/options/inputs. Exactly one of
// SubcommandsContext or ArgumentsContext is non-nil.
type Context struct {
	Subcommands *SubcommandsContext
	Arguments   *ArgumentsContext
}

// SubcommandsContext holds an inner menu of commands.
type SubcommandsContext struct {
	Commands []*Command
}

// ArgumentsContext holds the flags, options, and positional inputs a
// leaf command accepts.
type ArgumentsContext struct {
	Flags               []*Flag
	Options             []*Option
	Inputs              []*Input
	IsLastInputVariadic bool
}

// Command is one entry in the recursive command tree.
type Command struct {
	Name        string
	Description string
	Context     Context
}

// IsSubcommandContainer reports whether this command holds an inner
// menu rather than flags/options/inputs.
func (c *Command) IsSubcommandContainer() bool {
	return c.Context.Subcommands != nil
}

// Clone deep-copies a command tree so a catalog's immutability can be
// enforced by never handing out the original.
func (c *Command) Clone() *Command {
	clone := &Command{Name: c.Name, Description: c.Description}

	if sc := c.Context.Subcommands; sc != nil {
		commands := make([]*Command, len(sc.Commands))
		for i, sub := range sc.Commands {
			commands[i] = sub.Clone()
		}
		clone.Context.Subcommands = &SubcommandsContext{Commands: commands}
		return clone
	}

	ac := c.Context.Arguments
	flags := make([]*Flag, len(ac.Flags))
	for i, f := range ac.Flags {
		cp := *f
		flags[i] = &cp
	}
	options := make([]*Option, len(ac.Options))
	for i, o := range ac.Options {
		cp := *o
		cp.compiled = nil
		options[i] = &cp
	}
	inputs := make([]*Input, len(ac.Inputs))
	for i, in := range ac.Inputs {
		cp := *in
		cp.compiled = nil
		inputs[i] = &cp
	}
	clone.Context.Arguments = &ArgumentsContext{
		Flags:               flags,
		Options:             options,
		Inputs:              inputs,
		IsLastInputVariadic: ac.IsLastInputVariadic,
	}
	return clone
}

// Document is the top-level catalog document exchanged over the wire.
type Document struct {
	Version  int
	Commands []*Command
}
