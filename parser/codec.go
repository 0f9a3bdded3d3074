package parser

import (
	"encoding/json"

	"github.com/apparata/appconsole/catalog"
)

type wireInvocation struct {
	Version   int                        `json:"version"`
	Commands  []string                   `json:"commands"`
	Arguments map[string]json.RawMessage `json:"arguments"`
}

// EncodeInvocation renders an Invocation to the bytes sent as an
// executeCommand message's payload.
func EncodeInvocation(inv *Invocation) ([]byte, error) {
	w := wireInvocation{
		Version:   inv.Version,
		Commands:  inv.Commands,
		Arguments: make(map[string]json.RawMessage, len(inv.Arguments)),
	}
	for name, v := range inv.Arguments {
		raw, err := catalog.EncodeValue(v)
		if err != nil {
			return nil, err
		}
		w.Arguments[name] = raw
	}
	return json.Marshal(w)
}

// DecodeInvocation parses an executeCommand message's payload back
// into an Invocation.
func DecodeInvocation(data []byte) (*Invocation, error) {
	var w wireInvocation
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &Error{Kind: ErrUnexpected, Msg: err.Error()}
	}

	inv := &Invocation{
		Version:   w.Version,
		Commands:  w.Commands,
		Arguments: make(map[string]catalog.ArgumentValue, len(w.Arguments)),
	}
	for name, raw := range w.Arguments {
		v, err := catalog.DecodeValue(raw)
		if err != nil {
			return nil, &Error{Kind: ErrUnexpected, Msg: err.Error()}
		}
		inv.Arguments[name] = v
	}
	return inv, nil
}
