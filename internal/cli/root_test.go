package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()

	server, err := cmd.Flags().GetString("server")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", server)

	timeout, err := cmd.Flags().GetDuration("timeout")
	require.NoError(t, err)
	assert.Equal(t, "10s", timeout.String())

	verbose, err := cmd.Flags().GetBool("verbose")
	require.NoError(t, err)
	assert.False(t, verbose)
}

func TestNewRootCommand_Help(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "userdir", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}
