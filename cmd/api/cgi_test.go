package main

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cgiEnv sets the variables a CGI host passes for one request and points
// storage at a temp dir.
func cgiEnv(t *testing.T, dir, method, body string) {
	t.Helper()
	t.Setenv("GATEWAY_INTERFACE", "CGI/1.1")
	t.Setenv("SERVER_PROTOCOL", "HTTP/1.1")
	t.Setenv("REQUEST_METHOD", method)
	t.Setenv("SCRIPT_NAME", "./cgi_bin/profile.py")
	t.Setenv("PATH_INFO", "./cgi_bin/profile.py")
	t.Setenv("QUERY_STRING", "")
	t.Setenv("CONTENT_TYPE", "application/x-www-form-urlencoded")
	t.Setenv("CONTENT_LENGTH", strconv.Itoa(len(body)))
	t.Setenv("HTTP_ACCEPT", "application/json")

	t.Setenv("DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("LEGACY_PROFILES_FILE", filepath.Join(dir, "legacy.json"))
	t.Setenv("UPLOAD_DIR", filepath.Join(dir, "upload"))
	t.Setenv("DATABASE_PATH", filepath.Join(dir, "history.db"))
}

// executeCGI runs the root command with stdin holding body and returns what
// was written to stdout.
func executeCGI(t *testing.T, args []string, body string) string {
	t.Helper()
	in, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	_, err = io.WriteString(in, body)
	require.NoError(t, err)
	_, err = in.Seek(0, io.SeekStart)
	require.NoError(t, err)

	out, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)

	stdin, stdout := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = in, out
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	os.Stdin, os.Stdout = stdin, stdout
	rootCmd.SetArgs(nil)
	in.Close()
	out.Close()
	require.NoError(t, err)

	raw, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	return string(raw)
}

func TestRootServesCGIWithScriptArgument(t *testing.T) {
	dir := t.TempDir()

	body := "name=Alice&hobby=tennis"
	cgiEnv(t, dir, "POST", body)
	got := executeCGI(t, []string{"cgi_bin/profile.py"}, body)
	assert.Contains(t, got, "Status: 200 OK")
	assert.Contains(t, got, `"ok":true`)
	assert.Contains(t, got, `"id":"alice"`)
	assert.FileExists(t, filepath.Join(dir, "data", "profiles", "profile_alice.json"))

	cgiEnv(t, dir, "GET", "")
	got = executeCGI(t, []string{"cgi_bin/profile.py"}, "")
	assert.Contains(t, got, "Status: 200 OK")
	assert.Contains(t, got, `"name":"Alice"`)
	assert.Contains(t, got, "X-Debug-Version: 5")
}

func TestCGICommandWithExplicitEndpoint(t *testing.T) {
	dir := t.TempDir()
	cgiEnv(t, dir, "GET", "")
	t.Setenv("SCRIPT_NAME", "/cgi-bin/cardserv")
	t.Setenv("PATH_INFO", "")
	t.Setenv("QUERY_STRING", "q=gin")
	t.Setenv("REDIRECT_BASE_URL", "https://www.google.com")

	got := executeCGI(t, []string{"cgi", "redirect"}, "")
	assert.Contains(t, got, "Status: 302 Found")
	assert.Contains(t, got, "Location: https://www.google.com/search?q=gin")
}

func TestRootRejectsUnknownCommandOutsideCGI(t *testing.T) {
	t.Setenv("GATEWAY_INTERFACE", "")
	rootCmd.SetArgs([]string{"cgi_bin/profile.py"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "cgi_bin/profile.py"`)
}
