package parser_test

import (
	"testing"

	"github.com/apparata/appconsole/parser"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, parser.CanTransition(parser.StateWalkingCommands, parser.StateBindingArguments))
	assert.True(t, parser.CanTransition(parser.StateBindingArguments, parser.StateComplete))
	assert.False(t, parser.CanTransition(parser.StateComplete, parser.StateBindingArguments))
	assert.False(t, parser.CanTransition(parser.StateFailed, parser.StateWalkingCommands))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, parser.IsTerminal(parser.StateComplete))
	assert.True(t, parser.IsTerminal(parser.StateFailed))
	assert.False(t, parser.IsTerminal(parser.StateWalkingCommands))
	assert.False(t, parser.IsTerminal(parser.StateBindingArguments))
}
