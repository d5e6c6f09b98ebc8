package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleIni = `
; application settings
name = demo

[server]
host = localhost
port = 0x1F90
debug = yes
tags = a, b ,c

[client]
retries = 3
`

// run 执行一条命令，返回 stdout、stderr 与错误
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	*rootParams = RootParams{}
	*getParams = GetParams{Type: "string"}
	*lintParams = LintParams{}
	*exportParams = ExportParams{Format: "toml"}

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "Iniq v0.1 -- HEAD\n", out)
}

func TestGetValues(t *testing.T) {
	out, _, err := run(t, sampleIni, "get", "-s", "server", "-k", "host")
	require.NoError(t, err)
	assert.Equal(t, "localhost\n", out)

	out, _, err = run(t, sampleIni, "get", "-k", "port", "-t", "int")
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)

	out, _, err = run(t, sampleIni, "get", "-s", "client", "-k", "retries", "-t", "float")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, _, err = run(t, sampleIni, "get", "-k", "tags", "-t", "csv")
	require.NoError(t, err)
	assert.Equal(t, "a\nb \nc\n", out)

	_, _, err = run(t, sampleIni, "get", "-k", "debug", "-t", "bool")
	assert.Error(t, err)

	_, _, err = run(t, sampleIni, "get", "-s", "client", "-k", "host")
	assert.ErrorContains(t, err, "key 'host' not found in section 'client'")

	_, _, err = run(t, sampleIni, "get", "-k", "host", "-t", "complex")
	assert.ErrorContains(t, err, "unknown type")
}

func TestGetListings(t *testing.T) {
	out, _, err := run(t, sampleIni, "get", "--list-sections")
	require.NoError(t, err)
	assert.Equal(t, "server\nclient\n", out)

	out, _, err = run(t, sampleIni, "get", "--list-keys", "-s", "server")
	require.NoError(t, err)
	assert.Equal(t, "host\nport\ndebug\ntags\n", out)

	out, _, err = run(t, sampleIni, "get", "--list-keys")
	require.NoError(t, err)
	assert.Equal(t, "name\nhost\nport\ndebug\ntags\nretries\n", out)

	out, _, err = run(t, sampleIni, "get", "-s", "client")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, _, err = run(t, sampleIni, "get", "-s", "missing")
	assert.ErrorContains(t, err, "section 'missing' not found")
}

func TestGetOptions(t *testing.T) {
	src := "[A]\nkey = first\nKEY = second\n"

	out, _, err := run(t, src, "get", "-s", "A", "-k", "key")
	require.NoError(t, err)
	assert.Equal(t, "first\n", out)

	out, _, err = run(t, src, "get", "--disable-case-sensitivity", "--override-duplicate-keys", "-s", "a", "-k", "key")
	require.NoError(t, err)
	assert.Equal(t, "second\n", out)

	out, _, err = run(t, src, "get", "-O", "disable-case-sensitivity", "-s", "a", "-k", "Key")
	require.NoError(t, err)
	assert.Equal(t, "first\n", out)
}

func TestGetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")
	require.NoError(t, os.WriteFile(path, []byte(sampleIni), 0o644))

	out, _, err := run(t, "", "get", path, "-k", "name")
	require.NoError(t, err)
	assert.Equal(t, "demo\n", out)

	_, _, err = run(t, "", "get", filepath.Join(t.TempDir(), "missing.ini"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestLint(t *testing.T) {
	out, _, err := run(t, sampleIni, "lint")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = run(t, "[broken\nkey[0] = v\n", "lint", "--disable-warnings")
	assert.Error(t, err)
	assert.Contains(t, out, "stdin:1:8: warning: newline found in section name")

	out, _, err = run(t, "[open", "lint")
	assert.ErrorContains(t, err, "stdin: 0 warning(s)")
	assert.Equal(t, "ini: stdin: input ends inside a section header, key or quoted value\n", out)

	out, _, err = run(t, "k] = v\n", "lint", "-q")
	assert.ErrorContains(t, err, "stdin: 1 warning(s)")
	assert.Empty(t, out)
}

func TestWarningsGoToStderr(t *testing.T) {
	out, errOut, err := run(t, "k] = v\n", "get", "-k", "k]")
	require.NoError(t, err)
	assert.Equal(t, "v\n", out)
	assert.Contains(t, errOut, "stdin:1:2: warning: ']' found in key name")
}

func TestExport(t *testing.T) {
	out, _, err := run(t, sampleIni, "export", "-f", "json", "-s", "client")
	require.NoError(t, err)
	assert.JSONEq(t, `{"client": {"retries": "3"}}`, out)

	out, _, err = run(t, sampleIni, "export", "-f", "yaml", "-s", "server")
	require.NoError(t, err)
	assert.Contains(t, out, "server:\n  debug: \"yes\"\n")

	out, _, err = run(t, sampleIni, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "[global]")
	assert.Contains(t, out, `name = "demo"`)
	assert.Contains(t, out, "[client]")
	assert.Contains(t, out, `retries = "3"`)

	_, _, err = run(t, sampleIni, "export", "-f", "xml")
	assert.ErrorContains(t, err, "unsupported format")
}
