package parser

// ParserState is a stage in walking and binding one command line.
type ParserState string

const (
	// StateWalkingCommands is descending the subcommand tree,
	// consuming one command-name token per step.
	StateWalkingCommands ParserState = "walkingCommands"
	// StateBindingArguments is binding flags, options, and inputs
	// against the resolved leaf command.
	StateBindingArguments ParserState = "bindingArguments"
	// StateComplete means every token was consumed and bound.
	StateComplete ParserState = "complete"
	// StateFailed means parsing stopped on an error.
	StateFailed ParserState = "failed"
)

// ParserEvent is a reason the state machine advances.
type ParserEvent string

const (
	EventSubcommandResolved ParserEvent = "subcommandResolved"
	EventLeafResolved       ParserEvent = "leafResolved"
	EventInputsExhausted    ParserEvent = "inputsExhausted"
	EventUsageRequested     ParserEvent = "usageRequested"
	EventError              ParserEvent = "error"
)

// validTransitions enumerates the states reachable from each state.
// Mirrors the connection lifecycle machine in the frame package: a
// plain adjacency table keeps the rules declarative
// and the legality check a single map lookup.
var validTransitions = map[ParserState][]ParserState{
	StateWalkingCommands:  {StateWalkingCommands, StateBindingArguments, StateComplete, StateFailed},
	StateBindingArguments: {StateBindingArguments, StateComplete, StateFailed},
	StateComplete:         {},
	StateFailed:           {},
}

// CanTransition reports whether moving from one state to another is a
// legal step of the machine.
func CanTransition(from, to ParserState) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no further legal transitions.
func IsTerminal(s ParserState) bool {
	return len(validTransitions[s]) == 0
}
