package catalog

import (
	"encoding/json"
	"fmt"
)

// Version is the only catalog document version this package
// understands. Receivers reject anything else with ErrVersionMismatch.
const Version = 1

type wireDocument struct {
	Version  int           `json:"version"`
	Commands []wireCommand `json:"commands"`
}

type wireCommand struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Subcommands []wireCommand `json:"subcommands,omitempty"`
	Flags       []wireFlag    `json:"flags,omitempty"`
	Options     []wireOption  `json:"options,omitempty"`
	Inputs      []wireInput   `json:"inputs,omitempty"`

	IsLastInputVariadic bool `json:"isLastInputVariadic,omitempty"`
}

type wireFlag struct {
	Name        string `json:"name"`
	Short       string `json:"short,omitempty"`
	Description string `json:"description,omitempty"`
}

type wireOption struct {
	Name              string   `json:"name"`
	Short             string   `json:"short,omitempty"`
	DataType          DataType `json:"dataType"`
	IsMultipleAllowed bool     `json:"isMultipleAllowed,omitempty"`
	ValidationRegex   string   `json:"validationRegex,omitempty"`
	Description       string   `json:"description,omitempty"`
}

type wireInput struct {
	Name            string   `json:"name"`
	DataType        DataType `json:"dataType"`
	IsOptional      bool     `json:"isOptional,omitempty"`
	ValidationRegex string   `json:"validationRegex,omitempty"`
	Description     string   `json:"description,omitempty"`
}

// Encode renders a catalog document to its self-describing wire form.
// The synthesized help entries are injected into every command before
// encoding, so they are always part of the bytes on the wire.
func Encode(doc *Document) ([]byte, error) {
	w := wireDocument{Version: doc.Version}
	for _, cmd := range doc.Commands {
		w.Commands = append(w.Commands, encodeCommand(WithHelp(cmd)))
	}
	return json.Marshal(w)
}

func encodeCommand(cmd *Command) wireCommand {
	wc := wireCommand{Name: cmd.Name, Description: cmd.Description}

	if sc := cmd.Context.Subcommands; sc != nil {
		for _, sub := range sc.Commands {
			wc.Subcommands = append(wc.Subcommands, encodeCommand(sub))
		}
		return wc
	}

	ac := cmd.Context.Arguments
	wc.IsLastInputVariadic = ac.IsLastInputVariadic
	for _, f := range ac.Flags {
		wc.Flags = append(wc.Flags, wireFlag{Name: f.Name, Short: f.Short, Description: f.Description})
	}
	for _, o := range ac.Options {
		wc.Options = append(wc.Options, wireOption{
			Name:              o.Name,
			Short:             o.Short,
			DataType:          o.DataType,
			IsMultipleAllowed: o.IsMultipleAllowed,
			ValidationRegex:   o.ValidationRegex,
			Description:       o.Description,
		})
	}
	for _, i := range ac.Inputs {
		wc.Inputs = append(wc.Inputs, wireInput{
			Name:            i.Name,
			DataType:        i.DataType,
			IsOptional:      i.IsOptional,
			ValidationRegex: i.ValidationRegex,
			Description:     i.Description,
		})
	}
	return wc
}

// Decode parses a catalog document from its wire form. A version
// mismatch is reported as ErrVersionMismatch. The synthesized help
// entries are (re-)injected so every decoded command satisfies the
// help invariant regardless of what the sender actually sent.
func Decode(data []byte) (*Document, error) {
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &Error{Kind: ErrMalformed, Msg: err.Error()}
	}
	if w.Version != Version {
		return nil, &Error{Kind: ErrVersionMismatch, Msg: fmt.Sprintf("got %d, want %d", w.Version, Version)}
	}

	doc := &Document{Version: w.Version}
	for _, wc := range w.Commands {
		cmd, err := decodeCommand(wc)
		if err != nil {
			return nil, err
		}
		doc.Commands = append(doc.Commands, WithHelp(cmd))
	}
	return doc, nil
}

func decodeCommand(wc wireCommand) (*Command, error) {
	cmd := &Command{Name: wc.Name, Description: wc.Description}

	if wc.Subcommands != nil {
		commands := make([]*Command, 0, len(wc.Subcommands))
		for _, sub := range wc.Subcommands {
			c, err := decodeCommand(sub)
			if err != nil {
				return nil, err
			}
			commands = append(commands, c)
		}
		cmd.Context.Subcommands = &SubcommandsContext{Commands: commands}
		return cmd, nil
	}

	ac := &ArgumentsContext{IsLastInputVariadic: wc.IsLastInputVariadic}
	for _, f := range wc.Flags {
		ac.Flags = append(ac.Flags, &Flag{Name: f.Name, Short: f.Short, Description: f.Description})
	}
	for _, o := range wc.Options {
		if !o.DataType.Valid() {
			return nil, &Error{Kind: ErrMalformed, Msg: fmt.Sprintf("option %q has invalid dataType %q", o.Name, o.DataType)}
		}
		ac.Options = append(ac.Options, &Option{
			Name:              o.Name,
			Short:             o.Short,
			DataType:          o.DataType,
			IsMultipleAllowed: o.IsMultipleAllowed,
			ValidationRegex:   o.ValidationRegex,
			Description:       o.Description,
		})
	}
	for _, i := range wc.Inputs {
		if !i.DataType.Valid() {
			return nil, &Error{Kind: ErrMalformed, Msg: fmt.Sprintf("input %q has invalid dataType %q", i.Name, i.DataType)}
		}
		ac.Inputs = append(ac.Inputs, &Input{
			Name:            i.Name,
			DataType:        i.DataType,
			IsOptional:      i.IsOptional,
			ValidationRegex: i.ValidationRegex,
			Description:     i.Description,
		})
	}
	cmd.Context.Arguments = ac
	return cmd, nil
}
