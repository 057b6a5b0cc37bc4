package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestSyncPercent(t *testing.T) {
	tests := []struct {
		synced, lag, want int64
	}{
		{0, 0, 100},
		{0, 100, 0},
		{25, 100, 25},
		{99, 100, 99},
		{100, 100, 100},
		{120, 100, 100},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, syncPercent(tc.synced, tc.lag), "%d/%d", tc.synced, tc.lag)
	}
}

func TestPrinter(t *testing.T) {
	color.NoColor = true
	var out, errOut bytes.Buffer
	p := newPrinter(&out, &errOut)

	p.Success("sent %d", 3)
	p.Info("hello")
	p.Error("failed")
	require.Equal(t, "✓ sent 3\nℹ hello\n", out.String())
	require.Equal(t, "✗ failed\n", errOut.String())

	out.Reset()
	p.Mnemonic(strings.Fields("a b c d e"))
	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "  Mnemonic (5 words):", lines[0])
	require.Contains(t, lines[2], " 1. a")
	require.Contains(t, lines[2], " 4. d")
	require.Contains(t, lines[3], " 5. e")

	out.Reset()
	require.NoError(t, p.JSON(map[string]int{"n": 1}))
	require.Equal(t, "{\n  \"n\": 1\n}\n", out.String())
}

func TestResolveName(t *testing.T) {
	a := newApp(&bytes.Buffer{}, &bytes.Buffer{})
	a.walletName = "flag"
	require.Equal(t, "arg", a.resolveName([]string{"arg"}, 0))
	require.Equal(t, "flag", a.resolveName(nil, 0))
	require.Equal(t, "flag", a.resolveName([]string{"x"}, 1))
}

func TestRootCommands(t *testing.T) {
	a := newApp(&bytes.Buffer{}, &bytes.Buffer{})
	root := a.rootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.ElementsMatch(t, []string{
		"create", "import", "list", "balance", "send", "fund", "register-dust",
		"set-default", "remove", "address", "network", "encrypt", "serve",
	}, names)
	require.NotNil(t, root.PersistentFlags().Lookup("json"))
	require.NotNil(t, root.PersistentFlags().Lookup("wallet"))
}
