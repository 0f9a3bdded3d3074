package catalog_test

import (
	"testing"

	"github.com/apparata/appconsole/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := &catalog.Document{
		Version:  catalog.Version,
		Commands: []*catalog.Command{sampleTree()},
	}

	data, err := catalog.Encode(doc)
	require.NoError(t, err)

	decoded, err := catalog.Decode(data)
	require.NoError(t, err)
	require.Len(t, decoded.Commands, 1)

	root := decoded.Commands[0]
	assert.Equal(t, "stuff", root.Name)
	assert.True(t, root.IsSubcommandContainer())
	assert.True(t, catalog.HasHelpSubcommand(root))

	leaf, ok := catalog.FindSubcommand(root, "process")
	require.True(t, ok)
	assert.True(t, catalog.HasHelpFlag(leaf))

	opt, ok := catalog.FindOption(leaf, "passes")
	require.True(t, ok)
	assert.Equal(t, catalog.DataTypeInt, opt.DataType)
}

func TestDecodeRoundTripIsStable(t *testing.T) {
	doc := &catalog.Document{Version: catalog.Version, Commands: []*catalog.Command{sampleTree()}}

	first, err := catalog.Encode(doc)
	require.NoError(t, err)
	decoded, err := catalog.Decode(first)
	require.NoError(t, err)

	second, err := catalog.Encode(decoded)
	require.NoError(t, err)
	decodedAgain, err := catalog.Decode(second)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, decoded, decodedAgain)
}

func TestDecodeRejectsVersionMismatch(t *testing.T) {
	_, err := catalog.Decode([]byte(`{"version":2,"commands":[]}`))
	require.Error(t, err)

	var catErr *catalog.Error
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, catalog.ErrVersionMismatch, catErr.Kind)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := catalog.Decode([]byte(`not json`))
	require.Error(t, err)

	var catErr *catalog.Error
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, catalog.ErrMalformed, catErr.Kind)
}

func TestDecodeRejectsInvalidDataType(t *testing.T) {
	raw := `{"version":1,"commands":[{"name":"x","options":[{"name":"o","dataType":"array"}]}]}`
	_, err := catalog.Decode([]byte(raw))
	require.Error(t, err)

	var catErr *catalog.Error
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, catalog.ErrMalformed, catErr.Kind)
}

func TestEncodeDistinguishesSubcommandsFromArguments(t *testing.T) {
	doc := &catalog.Document{Version: catalog.Version, Commands: []*catalog.Command{sampleTree()}}
	data, err := catalog.Encode(doc)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"subcommands":[`)
	assert.Contains(t, string(data), `"options":[`)
}
