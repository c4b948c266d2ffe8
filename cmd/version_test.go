package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Video Digest API")
	assert.Contains(t, out.String(), "Version:")
}

func TestVersionCommandShort(t *testing.T) {
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version", "--short"})

	require.NoError(t, root.Execute())

	assert.Equal(t, "v"+Version+"\n", out.String())
}
