package parser

import "github.com/apparata/appconsole/catalog"

// parsingContext tracks progress through one command line: the chain
// of command names walked so far, the leaf command once resolved, the
// arguments bound to it, and which input is next to bind.
type parsingContext struct {
	state     ParserState
	chain     []string
	current   *catalog.Command
	arguments map[string]catalog.ArgumentValue
	nextInput int
}

func newParsingContext(root *catalog.Command) *parsingContext {
	return &parsingContext{
		state:     StateWalkingCommands,
		chain:     []string{root.Name},
		current:   root,
		arguments: make(map[string]catalog.ArgumentValue),
	}
}

// transition moves the context to state to if the machine in state.go
// allows it, rejecting the move otherwise. A rejection means an
// internal bug in the walk/bind sequencing, not a user-facing parse
// error.
func (c *parsingContext) transition(to ParserState) error {
	if !CanTransition(c.state, to) {
		return &Error{Kind: ErrUnexpected, Msg: "illegal parser state transition from " + string(c.state) + " to " + string(to)}
	}
	c.state = to
	return nil
}

// fail transitions the context to StateFailed and passes err through,
// so every exit-on-error path also advances the state machine. A
// context already in a terminal state (StateComplete/StateFailed)
// stays put rather than attempting an illegal self-transition.
func (c *parsingContext) fail(err error) error {
	if !IsTerminal(c.state) {
		_ = c.transition(StateFailed)
	}
	return err
}

func (c *parsingContext) descend(next *catalog.Command) error {
	c.chain = append(c.chain, next.Name)
	c.current = next
	if next.IsSubcommandContainer() {
		return c.transition(StateWalkingCommands)
	}
	return c.transition(StateBindingArguments)
}
