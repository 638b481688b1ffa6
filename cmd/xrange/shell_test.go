package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cute-angelia/go-xrange/components/appstate"
	"github.com/cute-angelia/go-xrange/components/rangestore"
	"github.com/cute-angelia/go-xrange/components/session"
	"github.com/cute-angelia/go-xrange/syntax/irandom"
	"github.com/cute-angelia/go-xrange/syntax/irange"
)

func newShell(t *testing.T, jsonOut bool) (*shell, *bytes.Buffer, *session.Session) {
	t.Helper()
	var out bytes.Buffer
	sess := session.Open(rangestore.New(rangestore.WithDir(t.TempDir())), appstate.WithSource(irandom.NewSeeded(3)))
	return &shell{sess: sess, out: &out, jsonMode: jsonOut}, &out, sess
}

func TestShellEditsAndGenerate(t *testing.T) {
	sh, out, sess := newShell(t, false)
	require.NoError(t, sh.run(strings.NewReader("start 50\nend 50\ngen\nquit\nstart 1\n")))

	assert.Equal(t, irange.MustParse("50"), sess.State().Start())
	r, ok := sess.State().Result()
	require.True(t, ok)
	assert.Equal(t, irange.MustParse("50"), r)
	assert.Contains(t, out.String(), "=> 50")
}

func TestShellRejectsInvalid(t *testing.T) {
	sh, out, sess := newShell(t, false)
	require.NoError(t, sh.run(strings.NewReader("start 0\nend 256\nstart abc\nend\n")))

	assert.Equal(t, 4, strings.Count(out.String(), enUS.Invalid))
	assert.Equal(t, irange.Default, sess.State().Start())
	assert.Equal(t, irange.Default, sess.State().End())
}

func TestShellBlocked(t *testing.T) {
	sh, out, sess := newShell(t, false)
	require.NoError(t, sh.run(strings.NewReader("start 10\nend 5\ngen\n")))

	assert.True(t, sess.State().GenerationBlocked())
	assert.Contains(t, out.String(), enUS.Disabled)
	assert.Contains(t, out.String(), "("+enUS.Gen+")")
	_, ok := sess.State().Result()
	assert.False(t, ok)
}

func TestShellBlockedKeepsPreviousResult(t *testing.T) {
	sh, out, sess := newShell(t, false)
	require.NoError(t, sh.run(strings.NewReader("start 8\nend 8\ngen\nend 2\ngen\ngen\n")))

	r, ok := sess.State().Result()
	require.True(t, ok)
	assert.Equal(t, irange.MustParse("8"), r)
	assert.Equal(t, 2, strings.Count(out.String(), enUS.Disabled))
}

func TestShellLocale(t *testing.T) {
	sh, out, sess := newShell(t, false)
	require.NoError(t, sh.run(strings.NewReader("lang\nstart x\n")))

	assert.True(t, sess.LocaleIsChinese())
	assert.Contains(t, out.String(), zhCN.Title)
	assert.Contains(t, out.String(), zhCN.Invalid)
}

func TestShellJSON(t *testing.T) {
	sh, out, _ := newShell(t, true)
	require.NoError(t, sh.run(strings.NewReader("start 7\nend 7\ngen\n")))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	last := lines[len(lines)-1]
	assert.JSONEq(t, `{"start":7,"end":7,"result":7,"generation_blocked":false}`, last)
	assert.Contains(t, out.String(), `"result":null`)
}

func TestRunPersistsOnExit(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(t.TempDir(), "xrange.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("config_dir: "+dir+"\nlog:\n  level: error\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("start 3\nend 200\nlang\nquit\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", settings})
	require.NoError(t, rootCmd.Execute())

	cfg := rangestore.New(rangestore.WithDir(dir)).Load()
	assert.Equal(t, rangestore.PersistedConfig{
		Start: irange.MustParse("3"), End: irange.MustParse("200"), LocaleIsChinese: true,
	}, cfg)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Version=")
}

func TestRootSilencesErrors(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, rootCmd.Execute())
	assert.NotContains(t, out.String(), "Error:")
}
