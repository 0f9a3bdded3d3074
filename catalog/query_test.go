package catalog_test

import (
	"testing"

	"github.com/apparata/appconsole/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSubcommand(t *testing.T) {
	tree := sampleTree()
	sub, ok := catalog.FindSubcommand(tree, "process")
	require.True(t, ok)
	assert.Equal(t, "process", sub.Name)

	_, ok = catalog.FindSubcommand(tree, "nope")
	assert.False(t, ok)

	_, ok = catalog.FindSubcommand(sub, "anything")
	assert.False(t, ok, "leaf command has no subcommands to find")
}

func TestFindFlagByNameOrShort(t *testing.T) {
	leaf := sampleCommand()
	byName, ok := catalog.FindFlag(leaf, "verbose")
	require.True(t, ok)
	byShort, ok := catalog.FindFlag(leaf, "v")
	require.True(t, ok)
	assert.Same(t, byName, byShort)

	_, ok = catalog.FindFlag(leaf, "missing")
	assert.False(t, ok)
}

func TestFindOptionByNameOrShort(t *testing.T) {
	leaf := sampleCommand()
	byName, ok := catalog.FindOption(leaf, "passes")
	require.True(t, ok)
	byShort, ok := catalog.FindOption(leaf, "p")
	require.True(t, ok)
	assert.Same(t, byName, byShort)
}

func TestInputsAndIsVariadic(t *testing.T) {
	leaf := sampleCommand()
	inputs := catalog.Inputs(leaf)
	require.Len(t, inputs, 1)
	assert.Equal(t, "path", inputs[0].Name)
	assert.False(t, catalog.IsVariadic(leaf))

	leaf.Context.Arguments.IsLastInputVariadic = true
	assert.True(t, catalog.IsVariadic(leaf))
}

func TestInputsOnSubcommandContainerIsNil(t *testing.T) {
	tree := sampleTree()
	assert.Nil(t, catalog.Inputs(tree))
	assert.False(t, catalog.IsVariadic(tree))
}
