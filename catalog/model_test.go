package catalog_test

import (
	"testing"

	"github.com/apparata/appconsole/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCommand() *catalog.Command {
	return &catalog.Command{
		Name:        "process",
		Description: "Run a processing pass over a file.",
		Context: catalog.Context{
			Arguments: &catalog.ArgumentsContext{
				Flags: []*catalog.Flag{
					{Name: "verbose", Short: "v"},
				},
				Options: []*catalog.Option{
					{Name: "passes", Short: "p", DataType: catalog.DataTypeInt},
				},
				Inputs: []*catalog.Input{
					{Name: "path", DataType: catalog.DataTypeFile},
				},
			},
		},
	}
}

func TestCommandIsSubcommandContainer(t *testing.T) {
	leaf := sampleCommand()
	assert.False(t, leaf.IsSubcommandContainer())

	container := &catalog.Command{
		Name: "stuff",
		Context: catalog.Context{
			Subcommands: &catalog.SubcommandsContext{Commands: []*catalog.Command{leaf}},
		},
	}
	assert.True(t, container.IsSubcommandContainer())
}

func TestCommandCloneIsDeep(t *testing.T) {
	original := sampleCommand()
	clone := original.Clone()

	clone.Context.Arguments.Flags[0].Name = "mutated"
	assert.Equal(t, "verbose", original.Context.Arguments.Flags[0].Name)

	clone.Context.Arguments.Options[0].Description = "mutated"
	assert.Empty(t, original.Context.Arguments.Options[0].Description)
}

func TestOptionRegexpCompilesAndCaches(t *testing.T) {
	o := &catalog.Option{Name: "passes", DataType: catalog.DataTypeInt, ValidationRegex: `^\d+$`}
	re, err := o.Regexp()
	require.NoError(t, err)
	require.NotNil(t, re)
	assert.True(t, re.MatchString("8"))
	assert.False(t, re.MatchString("xyz"))

	re2, err := o.Regexp()
	require.NoError(t, err)
	assert.Same(t, re, re2)
}

func TestOptionRegexpEmptyIsNil(t *testing.T) {
	o := &catalog.Option{Name: "passes", DataType: catalog.DataTypeInt}
	re, err := o.Regexp()
	require.NoError(t, err)
	assert.Nil(t, re)
}

func TestDataTypeValid(t *testing.T) {
	for _, dt := range []catalog.DataType{
		catalog.DataTypeBool, catalog.DataTypeInt, catalog.DataTypeDouble,
		catalog.DataTypeString, catalog.DataTypeDate, catalog.DataTypeFile,
	} {
		assert.True(t, dt.Valid())
	}
	assert.False(t, catalog.DataType("array").Valid())
}
