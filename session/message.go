// Package session is the L1/L2/L3 glue: it dispatches frames by
// message type, drives the client and service message-order
// obligations, and keeps the service's active-connection table.
package session

import "github.com/apparata/appconsole/frame"

// MessageType is the string enum carried verbatim as a frame's
// metadata bytes.
type MessageType string

const (
	MessageListCommands          MessageType = "listCommands"
	MessageExecuteCommand        MessageType = "executeCommand"
	MessageGeneralInfo           MessageType = "generalInfo"
	MessageCommandsSpecification MessageType = "commandsSpecification"
	MessageConsoleOutput         MessageType = "consoleOutput"
	MessageScreenshot            MessageType = "screenshot"
	MessageReadyForCommand       MessageType = "readyForCommand"
	MessageFile                  MessageType = "file"
)

// Envelope pairs a decoded message type with its raw payload.
type Envelope struct {
	Type    MessageType
	Payload []byte
}

// EncodeMetadata renders a MessageType as frame metadata bytes.
func EncodeMetadata(t MessageType) []byte {
	return []byte(t)
}

// DecodeEnvelope turns a received (metadata, payload) pair into an
// Envelope. An unrecognized message type is returned as-is: per the
// wire contract, unknown message types are ignored by callers, not
// fatal to the session.
func DecodeEnvelope(ev frame.Event) Envelope {
	return Envelope{Type: MessageType(ev.Metadata), Payload: ev.Payload}
}

// FileDocument is the payload shape for a "file" message.
type FileDocument struct {
	Filename string `json:"filename"`
	Filedata []byte `json:"filedata"`
}

// HostInfo is the payload shape for a "generalInfo" message.
type HostInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
