package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/buspi/message"
)

func TestTerminal_Present(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	require.NoError(t, term.Configure(Options{Rows: 32, Cols: 64}))

	require.NoError(t, Render(term, DefaultLayout("M72:", yellow), message.Message{Lines: []string{"3 minutes", "DELAY"}}))

	expected := "" +
		"+------------+\n" +
		"|M72:        |\n" +
		"|3 minutes   |\n" +
		"|DELAY       |\n" +
		"+------------+\n"
	assert.Equal(t, expected, buf.String())
}

func TestTerminal_ClearDropsPreviousFrame(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	require.NoError(t, term.Configure(Options{Rows: 32, Cols: 64}))

	require.NoError(t, Render(term, DefaultLayout("M72:", yellow), message.NoService()))
	buf.Reset()
	require.NoError(t, Render(term, DefaultLayout("M72:", yellow), message.Message{Lines: []string{"ARRIVING"}}))

	assert.NotContains(t, buf.String(), "No buses")
	assert.Contains(t, buf.String(), "ARRIVING")
}

func TestTerminal_WidensForLongLines(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	require.NoError(t, Render(term, DefaultLayout("M72:", yellow), message.Broken()))
	assert.Contains(t, buf.String(), "|something broke!|")
}

func TestTerminal_ConfigureRejectsEmptyMatrix(t *testing.T) {
	assert.Error(t, NewTerminal(&bytes.Buffer{}).Configure(Options{}))
}
