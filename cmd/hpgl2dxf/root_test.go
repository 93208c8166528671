package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hpgl2dxf v"+hpgl2dxf.Version)
}

func TestVersionFlag(t *testing.T) {
	t.Cleanup(func() { rootCmd.Flags().Set("version", "false") })

	out, errOut, err := execute(t, "-v")
	require.NoError(t, err, "-v succeeds")
	assert.Empty(t, out)
	assert.Contains(t, errOut, "hpgl2dxf v"+hpgl2dxf.Version)
}

func TestRootConvert(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("plot.hpgl", []byte("PD;PA1,2;\n"), 0644))

	_, _, err := execute(t, "-i", "plot.hpgl", "-o", "plot.dxf")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "plot.dxf"))
	require.NoError(t, err)
	assert.Equal(t, "0\nSECTION\n0\nENTITIES\n0\nLINE\n10\n0.000\n20\n0.000\n11\n1.000\n21\n2.000\n0\nENDSEC\n", string(got))
}

func TestRootConvert_MissingInput(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "-i", "absent.hpgl", "-o", "plot.dxf")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestInspectCommand_JSON(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("plot.hpgl", []byte("PD;PA1,2;PU;"), 0644))

	out, _, err := execute(t, "inspect", "plot.hpgl", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"source": "plot.hpgl"`)
	assert.Contains(t, out, `"status": "up"`)
}
