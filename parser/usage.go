package parser

import (
	"fmt"
	"strings"

	"github.com/apparata/appconsole/catalog"
)

const usageColumnWidth = 26

// RenderUsage formats a two-column usage summary for cmd, in the
// chain it was reached through.
func RenderUsage(chain []string, cmd *catalog.Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Usage: %s\n", strings.Join(chain, " "))
	if cmd.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", cmd.Description)
	}

	if sc := cmd.Context.Subcommands; sc != nil {
		b.WriteString("\nSUBCOMMANDS\n")
		for _, sub := range sc.Commands {
			writeRow(&b, sub.Name, sub.Description)
		}
		return b.String()
	}

	ac := cmd.Context.Arguments
	if len(ac.Flags) > 0 {
		b.WriteString("\nFLAGS\n")
		for _, f := range ac.Flags {
			writeRow(&b, flagLabel(f.Name, f.Short), f.Description)
		}
	}
	if len(ac.Options) > 0 {
		b.WriteString("\nOPTIONS\n")
		for _, o := range ac.Options {
			label := flagLabel(o.Name, o.Short) + " <" + string(o.DataType) + ">"
			writeRow(&b, label, o.Description)
		}
	}
	if len(ac.Inputs) > 0 {
		b.WriteString("\nINPUTS\n")
		for i, in := range ac.Inputs {
			label := in.Name
			if in.IsOptional {
				label += " (optional)"
			}
			if ac.IsLastInputVariadic && i == len(ac.Inputs)-1 {
				label += "..."
			}
			writeRow(&b, label, in.Description)
		}
	}

	return b.String()
}

func flagLabel(name, short string) string {
	if short == "" {
		return "--" + name
	}
	return fmt.Sprintf("-%s, --%s", short, name)
}

// writeRow pads label to usageColumnWidth when it fits, otherwise
// puts the description on its own indented line.
func writeRow(b *strings.Builder, label, description string) {
	if description == "" {
		fmt.Fprintf(b, "  %s\n", label)
		return
	}
	if len(label) < usageColumnWidth {
		fmt.Fprintf(b, "  %-*s%s\n", usageColumnWidth, label, description)
		return
	}
	fmt.Fprintf(b, "  %s\n      %s\n", label, description)
}
