package parser_test

import (
	"testing"

	"github.com/apparata/appconsole/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeSimple(t *testing.T) {
	tokens, err := parser.Tokenize(`stuff process -v --passes 8`)
	require.NoError(t, err)
	assert.Equal(t, []string{"stuff", "process", "-v", "--passes", "8"}, tokens)
}

func TestTokenizeQuotedSpanPreservesWhitespace(t *testing.T) {
	tokens, err := parser.Tokenize(`say "hello there" done`)
	require.NoError(t, err)
	assert.Equal(t, []string{"say", "hello there", "done"}, tokens)
}

func TestTokenizeEscapedQuote(t *testing.T) {
	tokens, err := parser.Tokenize(`say \"quoted\"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"say", `"quoted"`}, tokens)
}

func TestTokenizeEscapedBackslash(t *testing.T) {
	tokens, err := parser.Tokenize(`path C:\\tmp`)
	require.NoError(t, err)
	assert.Equal(t, []string{"path", `C:\tmp`}, tokens)
}

func TestTokenizeUnterminatedQuoteFails(t *testing.T) {
	_, err := parser.Tokenize(`say "unterminated`)
	require.Error(t, err)

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrFailedToTokenizeCommandLine, perr.Kind)
}

func TestTokenizeTrailingBackslashFails(t *testing.T) {
	_, err := parser.Tokenize(`say trailing\`)
	require.Error(t, err)

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrFailedToTokenizeCommandLine, perr.Kind)
}

func TestTokenizeEmptyLine(t *testing.T) {
	tokens, err := parser.Tokenize(``)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeCollapsesRepeatedWhitespace(t *testing.T) {
	tokens, err := parser.Tokenize("stuff   process")
	require.NoError(t, err)
	assert.Equal(t, []string{"stuff", "process"}, tokens)
}
