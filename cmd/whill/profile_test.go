package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/whill.go/pkg/whill/data"
)

func TestCopyArgs(t *testing.T) {
	cmd := newProfileCmd()
	copyCmd, _, err := cmd.Find([]string{"copy"})
	require.NoError(t, err)

	require.NoError(t, copyCmd.Args(copyCmd, nil))
	require.NoError(t, copyCmd.Args(copyCmd, []string{"0", "3"}))
	require.Error(t, copyCmd.Args(copyCmd, []string{"2"}))
	require.Error(t, copyCmd.Args(copyCmd, []string{"0", "1", "2"}))
	require.ErrorIs(t, copyCmd.Args(copyCmd, []string{"0", "6"}), data.ErrSpeedMode)
}

func TestParseModes(t *testing.T) {
	modes, err := parseModes([]string{"5", "0"})
	require.NoError(t, err)
	require.Equal(t, []int{5, 0}, modes)

	_, err = parseModes([]string{"x"})
	require.ErrorIs(t, err, data.ErrSpeedMode)
}
