package frame_test

import (
	"testing"

	"github.com/apparata/appconsole/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenerCancelThenRebuild(t *testing.T) {
	ln, err := frame.Listen("127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr()
	require.NotEmpty(t, addr)

	require.NoError(t, ln.Cancel())
	assert.Empty(t, ln.Addr())

	_, err = ln.Accept()
	require.Error(t, err)
	var ferr *frame.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, frame.ErrNoConnection, ferr.Kind)
}
