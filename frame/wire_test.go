package frame_test

import (
	"bytes"
	"testing"

	"github.com/apparata/appconsole/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, frame.WriteFrame(&buf, []byte{1}, []byte("hello")))

	metadata, payload, err := frame.ReadFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, metadata)
	assert.Equal(t, []byte("hello"), payload)
}

func TestWriteReadFrameEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, frame.WriteFrame(&buf, []byte{1}, nil))

	metadata, payload, err := frame.ReadFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, metadata)
	assert.Empty(t, payload)
}

func TestWriteFrameRejectsOversizedPayload(t *testing.T) {
	var buf bytes.Buffer
	oversized := make([]byte, frame.MaxPayloadLength)

	err := frame.WriteFrame(&buf, nil, oversized)
	require.Error(t, err)

	var ferr *frame.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, frame.ErrCorruptMessage, ferr.Kind)
}

func TestReadFrameRejectsOversizedPayloadLength(t *testing.T) {
	var buf bytes.Buffer
	// Hand-craft a frame header claiming a payload at the cap, with
	// no payload bytes following: the reader must reject before
	// trying to consume them.
	require.NoError(t, frame.WriteFrame(&buf, []byte{9}, nil))
	raw := buf.Bytes()

	// Overwrite the int32 payload length (bytes after int16 metadata
	// length + 1 metadata byte) with MaxPayloadLength.
	header := raw[:3]
	corrupted := append([]byte{}, header...)
	corrupted = append(corrupted, byte(frame.MaxPayloadLength), byte(frame.MaxPayloadLength>>8), byte(frame.MaxPayloadLength>>16), byte(frame.MaxPayloadLength>>24))

	_, _, err := frame.ReadFrame(bytes.NewReader(corrupted))
	require.Error(t, err)

	var ferr *frame.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, frame.ErrCorruptMessage, ferr.Kind)
}

func TestReadFrameRejectsNegativeMetadataLength(t *testing.T) {
	// int16(-1) little-endian is 0xFF 0xFF.
	_, _, err := frame.ReadFrame(bytes.NewReader([]byte{0xFF, 0xFF}))
	require.Error(t, err)

	var ferr *frame.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, frame.ErrCorruptMessage, ferr.Kind)
}
