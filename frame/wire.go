package frame

import (
	"encoding/binary"
	"io"
)

// MaxPayloadLength is the hard cap on a single frame's payload size.
// A length field at or above this value is corruptMessage.
const MaxPayloadLength = 10_000_000

// WriteFrame writes one (metadata, payload) frame to w: a little-
// endian int16 metadata length, the metadata bytes, a little-endian
// int32 payload length, then the payload bytes. Each frame is a
// single call to this function; callers serialize concurrent sends
// with their own lock (see Conn.Send) so no half-framed message is
// ever interleaved on the wire.
func WriteFrame(w io.Writer, metadata, payload []byte) error {
	if len(metadata) > 0x7fff || len(metadata) < 0 {
		return &Error{Kind: ErrCorruptMessage, Msg: "metadata too large"}
	}
	if len(payload) >= MaxPayloadLength {
		return &Error{Kind: ErrCorruptMessage, Msg: "payload exceeds cap"}
	}

	if err := binary.Write(w, binary.LittleEndian, int16(len(metadata))); err != nil {
		return &Error{Kind: ErrUnknown, Msg: err.Error()}
	}
	if len(metadata) > 0 {
		if _, err := w.Write(metadata); err != nil {
			return &Error{Kind: ErrUnknown, Msg: err.Error()}
		}
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(payload))); err != nil {
		return &Error{Kind: ErrUnknown, Msg: err.Error()}
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return &Error{Kind: ErrUnknown, Msg: err.Error()}
		}
	}
	return nil
}

// ReadFrame blocks for one complete (metadata, payload) frame from r.
// A payload_length at or above MaxPayloadLength, or negative, is
// corruptMessage and no payload bytes are consumed past the length
// field. Any short read is reported with ErrUnknown: the caller tears
// the connection down either way.
func ReadFrame(r io.Reader) (metadata []byte, payload []byte, err error) {
	var metaLen int16
	if err := binary.Read(r, binary.LittleEndian, &metaLen); err != nil {
		return nil, nil, &Error{Kind: ErrUnknown, Msg: err.Error()}
	}
	if metaLen < 0 {
		return nil, nil, &Error{Kind: ErrCorruptMessage, Msg: "negative metadata length"}
	}

	metadata = make([]byte, metaLen)
	if metaLen > 0 {
		if _, err := io.ReadFull(r, metadata); err != nil {
			return nil, nil, &Error{Kind: ErrUnknown, Msg: err.Error()}
		}
	}

	var payloadLen int32
	if err := binary.Read(r, binary.LittleEndian, &payloadLen); err != nil {
		return nil, nil, &Error{Kind: ErrUnknown, Msg: err.Error()}
	}
	if payloadLen < 0 || payloadLen >= MaxPayloadLength {
		return nil, nil, &Error{Kind: ErrCorruptMessage, Msg: "payload length out of range"}
	}

	payload = make([]byte, payloadLen)
	if payloadLen > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, nil, &Error{Kind: ErrUnknown, Msg: err.Error()}
		}
	}

	return metadata, payload, nil
}
