package commands

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestExecute(t *testing.T) {
	reg := NewRegistry("run")

	var ran string
	var seed uint64
	runFS := newFlagSet("run")
	runFS.Uint64Var(&seed, "seed", 0, "")
	reg.Register("run", "start the scene", runFS, func() error {
		ran = "run"
		return nil
	})
	reg.Register("config", "print the config", newFlagSet("config"), func() error {
		ran = "config"
		return nil
	})

	require.NoError(t, reg.Execute(nil))
	assert.Equal(t, "run", ran)

	require.NoError(t, reg.Execute([]string{"-seed", "9"}))
	assert.Equal(t, "run", ran)
	assert.Equal(t, uint64(9), seed)

	require.NoError(t, reg.Execute([]string{"config"}))
	assert.Equal(t, "config", ran)

	assert.ErrorIs(t, reg.Execute([]string{"fly"}), ErrUnknown)
	assert.Error(t, reg.Execute([]string{"run", "-nope"}))
}

func TestNamesAndUsage(t *testing.T) {
	reg := NewRegistry("run")
	reg.Register("run", "start the scene", newFlagSet("run"), func() error { return nil })
	reg.Register("config", "print the config", newFlagSet("config"), func() error { return nil })
	assert.Equal(t, []string{"config", "run"}, reg.Names())

	var buf bytes.Buffer
	reg.PrintUsage(&buf)
	assert.Contains(t, buf.String(), "config")
	assert.Contains(t, buf.String(), "start the scene")
}
