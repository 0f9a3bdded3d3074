package parser

import (
	"strings"

	"github.com/apparata/appconsole/catalog"
)

// CatalogVersion is stamped onto every Invocation this package
// produces, tying a parsed invocation to the catalog document it was
// resolved against.
const CatalogVersion = catalog.Version

// Parse tokenizes line and evaluates it against roots, the top-level
// commands of a catalog document (already carrying the synthesized
// help entries).
func Parse(roots []*catalog.Command, line string) (*Invocation, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	return Evaluate(roots, tokens)
}

// Evaluate walks pre-tokenized input against roots and either returns
// a fully bound Invocation or a diagnostic *Error. A *Error with Kind
// ErrUsageRequested is not a failure in the everyday sense: it is how
// help text requests surface to the caller.
func Evaluate(roots []*catalog.Command, tokens []string) (*Invocation, error) {
	if len(tokens) == 0 {
		return nil, &Error{Kind: ErrNoSuchCommand, Msg: "empty command line"}
	}

	root, ok := findRoot(roots, tokens[0])
	if !ok {
		return nil, &Error{Kind: ErrNoSuchCommand, Token: tokens[0]}
	}

	ctx := newParsingContext(root)
	rest := tokens[1:]

	for ctx.current.IsSubcommandContainer() {
		if len(rest) == 0 {
			return nil, ctx.fail(usageRequestedFor(ctx.chain, ctx.current))
		}

		token := rest[0]
		sub, ok := catalog.FindSubcommand(ctx.current, token)
		if !ok {
			return nil, ctx.fail(&Error{Kind: ErrNoSuchSubcommand, Token: token, Command: append([]string{}, ctx.chain...)})
		}
		rest = rest[1:]

		if sub.Name == catalog.HelpName && sub != root {
			return evaluateHelpSubcommand(ctx, sub, rest)
		}

		if err := ctx.descend(sub); err != nil {
			return nil, ctx.fail(err)
		}
	}

	return evaluateArguments(ctx, rest)
}

func findRoot(roots []*catalog.Command, name string) (*catalog.Command, bool) {
	for _, r := range roots {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// evaluateHelpSubcommand implements the synthesized "help [subcommand]"
// entry: it always ends in usageRequested, for either the named
// sibling (if it resolves) or, when the name is absent or does not
// resolve to a sibling, the containing command itself.
func evaluateHelpSubcommand(ctx *parsingContext, help *catalog.Command, rest []string) (*Invocation, error) {
	container := ctx.current
	if len(rest) == 0 {
		return nil, ctx.fail(usageRequestedFor(ctx.chain, container))
	}

	target, ok := catalog.FindSubcommand(container, rest[0])
	if !ok {
		// Unresolvable help target: fall back to help for the
		// containing command rather than erroring out.
		return nil, ctx.fail(usageRequestedFor(ctx.chain, container))
	}

	chain := append(append([]string{}, ctx.chain...), target.Name)
	return nil, ctx.fail(usageRequestedFor(chain, target))
}

func usageRequestedFor(chain []string, cmd *catalog.Command) *Error {
	return &Error{
		Kind:    ErrUsageRequested,
		Command: append([]string{}, chain...),
		Usage:   RenderUsage(chain, cmd),
	}
}

// evaluateArguments binds flags, options, and positional inputs
// against ctx.current's ArgumentsContext.
func evaluateArguments(ctx *parsingContext, tokens []string) (*Invocation, error) {
	if err := ctx.transition(StateBindingArguments); err != nil {
		return nil, ctx.fail(err)
	}

	ac := ctx.current.Context.Arguments
	inputs := ac.Inputs

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if isFlagToken(token) {
			name := strings.TrimLeft(token, "-")

			if name == catalog.HelpName || name == "h" {
				return nil, ctx.fail(usageRequestedFor(ctx.chain, ctx.current))
			}

			if flag, ok := catalog.FindFlag(ctx.current, name); ok {
				ctx.arguments[flag.Name] = catalog.BoolValue(true)
				continue
			}

			if opt, ok := catalog.FindOption(ctx.current, name); ok {
				if i+1 >= len(tokens) || isFlagToken(tokens[i+1]) {
					return nil, ctx.fail(&Error{Kind: ErrMissingOptionValue, Token: token, Command: ctx.chain})
				}
				i++
				value, err := bindOptionValue(opt, tokens[i])
				if err != nil {
					return nil, ctx.fail(err)
				}
				if opt.IsMultipleAllowed {
					existing, _ := ctx.arguments[opt.Name].(catalog.SliceValue)
					ctx.arguments[opt.Name] = append(existing, value)
				} else {
					ctx.arguments[opt.Name] = value
				}
				continue
			}

			return nil, ctx.fail(&Error{Kind: ErrInvalidFlagOrOption, Token: token, Command: ctx.chain})
		}

		if ctx.nextInput >= len(inputs) {
			return nil, ctx.fail(&Error{Kind: ErrUnexpectedArgument, Token: token, Command: ctx.chain})
		}

		input := inputs[ctx.nextInput]
		isLast := ctx.nextInput == len(inputs)-1

		if isLast && ac.IsLastInputVariadic {
			values := catalog.SliceValue{}
			for ; i < len(tokens); i++ {
				v, err := bindInputValue(input, tokens[i])
				if err != nil {
					return nil, ctx.fail(err)
				}
				values = append(values, v)
			}
			ctx.arguments[input.Name] = values
			ctx.nextInput++
			break
		}

		v, err := bindInputValue(input, token)
		if err != nil {
			return nil, ctx.fail(err)
		}
		ctx.arguments[input.Name] = v
		ctx.nextInput++
	}

	for ; ctx.nextInput < len(inputs); ctx.nextInput++ {
		input := inputs[ctx.nextInput]
		if !input.IsOptional {
			return nil, ctx.fail(&Error{Kind: ErrMissingInputArgument, Token: input.Name, Command: ctx.chain})
		}
	}

	if err := ctx.transition(StateComplete); err != nil {
		return nil, ctx.fail(err)
	}
	return &Invocation{
		Version:   CatalogVersion,
		Commands:  ctx.chain,
		Arguments: ctx.arguments,
	}, nil
}

func isFlagToken(token string) bool {
	return strings.HasPrefix(token, "-")
}

func bindOptionValue(opt *catalog.Option, raw string) (catalog.ArgumentValue, error) {
	if re, err := opt.Regexp(); err == nil && re != nil && !re.MatchString(raw) {
		return nil, &Error{Kind: ErrInvalidOptionValueFormat, Token: raw, Msg: "does not match " + opt.ValidationRegex}
	}
	v, err := convert(opt.DataType, raw)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidOptionValueFormat, Token: raw, Msg: err.Error()}
	}
	return v, nil
}

func bindInputValue(in *catalog.Input, raw string) (catalog.ArgumentValue, error) {
	if re, err := in.Regexp(); err == nil && re != nil && !re.MatchString(raw) {
		return nil, &Error{Kind: ErrInvalidInputValueFormat, Token: raw, Msg: "does not match " + in.ValidationRegex}
	}
	v, err := convert(in.DataType, raw)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidInputValueFormat, Token: raw, Msg: err.Error()}
	}
	return v, nil
}
