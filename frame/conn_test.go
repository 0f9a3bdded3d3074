package frame_test

import (
	"testing"
	"time"

	"github.com/apparata/appconsole/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialedPair(t *testing.T) (service *frame.Conn, client *frame.Conn) {
	t.Helper()

	ln, err := frame.Listen("127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Cancel() })

	serviceCh := make(chan *frame.Conn, 1)
	errCh := make(chan error, 1)
	go func() {
		c, err := ln.Accept()
		if err != nil {
			errCh <- err
			return
		}
		serviceCh <- c
	}()

	client, err = frame.NewClient(ln.Addr())
	require.NoError(t, err)

	select {
	case service = <-serviceCh:
	case err := <-errCh:
		t.Fatalf("accept failed: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for service-side accept")
	}
	return service, client
}

func TestConnHandshakeReachesEstablished(t *testing.T) {
	service, client := dialedPair(t)
	defer service.Cancel()
	defer client.Cancel()

	assert.Equal(t, frame.StateEstablished, service.State())
	assert.Equal(t, frame.StateEstablished, client.State())
}

func TestConnSendAndRun(t *testing.T) {
	service, client := dialedPair(t)
	defer service.Cancel()
	defer client.Cancel()

	received := make(chan frame.Event, 1)
	go client.Run(func(ev frame.Event) { received <- ev })

	require.NoError(t, service.Send([]byte{7}, []byte("hi")))

	select {
	case ev := <-received:
		assert.Equal(t, []byte{7}, ev.Metadata)
		assert.Equal(t, []byte("hi"), ev.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
	}
}

func TestConnReadOne(t *testing.T) {
	service, client := dialedPair(t)
	defer service.Cancel()
	defer client.Cancel()

	require.NoError(t, service.Send([]byte{3}, []byte("one")))

	ev, err := client.ReadOne()
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, ev.Metadata)
	assert.Equal(t, []byte("one"), ev.Payload)
}

func TestConnCancelIsIdempotent(t *testing.T) {
	service, client := dialedPair(t)
	defer client.Cancel()

	require.NoError(t, service.Cancel())
	require.NoError(t, service.Cancel())
	assert.Equal(t, frame.StateCancelled, service.State())
}

func TestConnRunEndsOnPeerCancel(t *testing.T) {
	service, client := dialedPair(t)
	defer client.Cancel()

	done := make(chan error, 1)
	go func() { done <- client.Run(func(frame.Event) {}) }()

	service.Cancel()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after peer cancel")
	}
	assert.Equal(t, frame.StateCancelled, client.State())
}
