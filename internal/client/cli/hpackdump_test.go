package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRootCommandDecodesHexBlockAsTable(t *testing.T) {
	cmd := NewRootCommand(zap.NewNop())
	cmd.SetArgs([]string{"--encoding", "hex"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("82"))

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), ":method")
}

func TestRootCommandDecodesJSON(t *testing.T) {
	cmd := NewRootCommand(zap.NewNop())
	cmd.SetArgs([]string{"--json"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("82"))

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "\"kind\"")
}

func TestRootCommandDecodesBase64(t *testing.T) {
	cmd := NewRootCommand(zap.NewNop())
	cmd.SetArgs([]string{"--encoding", "base64"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	// 0x82 base64-encoded
	cmd.SetIn(strings.NewReader("gg=="))

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), ":method")
}

func TestRootCommandRejectsUnknownEncoding(t *testing.T) {
	cmd := NewRootCommand(zap.NewNop())
	cmd.SetArgs([]string{"--encoding", "rot13"})
	cmd.SetIn(strings.NewReader("82"))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestRootCommandReportsDecodeErrors(t *testing.T) {
	cmd := NewRootCommand(zap.NewNop())
	cmd.SetIn(strings.NewReader("80")) // index 0, invalid
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	assert.Error(t, err)
}
