package parser_test

import (
	"testing"

	"github.com/apparata/appconsole/catalog"
	"github.com/apparata/appconsole/parser"
	"github.com/stretchr/testify/assert"
)

func TestRenderUsageForSubcommandContainer(t *testing.T) {
	cmd := &catalog.Command{
		Name: "stuff",
		Context: catalog.Context{
			Subcommands: &catalog.SubcommandsContext{
				Commands: []*catalog.Command{
					{Name: "process", Description: "Run a processing pass."},
				},
			},
		},
	}

	usage := parser.RenderUsage([]string{"stuff"}, cmd)
	assert.Contains(t, usage, "Usage: stuff")
	assert.Contains(t, usage, "SUBCOMMANDS")
	assert.Contains(t, usage, "process")
}

func TestRenderUsageForLeafCommand(t *testing.T) {
	cmd := &catalog.Command{
		Name: "process",
		Context: catalog.Context{
			Arguments: &catalog.ArgumentsContext{
				Flags:   []*catalog.Flag{{Name: "verbose", Short: "v", Description: "Verbose output."}},
				Options: []*catalog.Option{{Name: "passes", Short: "p", DataType: catalog.DataTypeInt, Description: "Pass count."}},
				Inputs:  []*catalog.Input{{Name: "path", DataType: catalog.DataTypeFile}},
			},
		},
	}

	usage := parser.RenderUsage([]string{"stuff", "process"}, cmd)
	assert.Contains(t, usage, "Usage: stuff process")
	assert.Contains(t, usage, "FLAGS")
	assert.Contains(t, usage, "-v, --verbose")
	assert.Contains(t, usage, "OPTIONS")
	assert.Contains(t, usage, "-p, --passes <int>")
	assert.Contains(t, usage, "INPUTS")
	assert.Contains(t, usage, "path")
}

func TestRenderUsageMarksVariadicInput(t *testing.T) {
	cmd := &catalog.Command{
		Name: "run",
		Context: catalog.Context{
			Arguments: &catalog.ArgumentsContext{
				Inputs:              []*catalog.Input{{Name: "targets", DataType: catalog.DataTypeString}},
				IsLastInputVariadic: true,
			},
		},
	}

	usage := parser.RenderUsage([]string{"run"}, cmd)
	assert.Contains(t, usage, "targets...")
}
