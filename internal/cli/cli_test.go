package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	cfg, err := ParseArgs([]string{"-i", "mapping.xml", "-o", "out.xml", "-a", "Pkg::Root"})
	require.NoError(t, err)
	assert.Equal(t, "mapping.xml", cfg.Input)
	assert.Equal(t, "out.xml", cfg.Output)
	assert.True(t, cfg.AllDataSets)
	assert.Equal(t, "Pkg::Root", cfg.Operator)
	assert.False(t, cfg.NumericTypes)
}

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Input)
	assert.Equal(t, "", cfg.Output)
	assert.Equal(t, "", cfg.Operator)
	assert.False(t, cfg.AllDataSets)
	assert.Equal(t, 0, cfg.Verbosity)
}

func TestParseArgs_StdinDash(t *testing.T) {
	cfg, err := ParseArgs([]string{"-i", "-"})
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Input)
}

func TestParseArgs_Verbosity(t *testing.T) {
	cfg, err := ParseArgs([]string{"-vv", "--numeric-types"})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Verbosity)
	assert.True(t, cfg.NumericTypes)
}

func TestParseArgs_TooManyOperators(t *testing.T) {
	_, err := ParseArgs([]string{"Pkg::A", "Pkg::B"})
	assert.Error(t, err)
}

func TestParseArgs_Version(t *testing.T) {
	cfg, err := ParseArgs([]string{"--version"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}
