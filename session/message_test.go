package session_test

import (
	"testing"

	"github.com/apparata/appconsole/frame"
	"github.com/apparata/appconsole/session"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeMetadataRoundTrip(t *testing.T) {
	metadata := session.EncodeMetadata(session.MessageExecuteCommand)
	env := session.DecodeEnvelope(frame.Event{Metadata: metadata, Payload: []byte("x")})

	assert.Equal(t, session.MessageExecuteCommand, env.Type)
	assert.Equal(t, []byte("x"), env.Payload)
}

func TestDecodeEnvelopeUnknownTypeIsNotFatal(t *testing.T) {
	env := session.DecodeEnvelope(frame.Event{Metadata: []byte("somethingNew"), Payload: nil})
	assert.Equal(t, session.MessageType("somethingNew"), env.Type)
}
