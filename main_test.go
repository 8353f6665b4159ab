package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range newRootCmd().Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "export", "send"})
}

func TestSendCmd(t *testing.T) {
	mailer := &fakeMailer{}
	srv := httptest.NewServer(relayEngine(mailer))
	defer srv.Close()

	url := srv.URL + "/api/contact"
	out, err := runCmd(t, "send", "--url", url, "--name", "Ops", "--email", "ops@example.com", "--message", "ping")
	require.NoError(t, err)
	assert.Equal(t, "Submission relayed to "+url+"\n", out)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "New contact form submission from Ops", mailer.sent[0].Subject)
	assert.Equal(t, "ops@example.com", mailer.sent[0].ReplyTo)
}

func TestSendCmd_RelayFailure(t *testing.T) {
	srv := httptest.NewServer(relayEngine(&fakeMailer{err: assert.AnError}))
	defer srv.Close()

	_, err := runCmd(t, "send", "--url", srv.URL+"/api/contact")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestExportCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")

	out, err := runCmd(t, "export", "--out", dir)
	require.NoError(t, err)
	assert.Equal(t, "Exported site to "+dir+"\n", out)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), OwnerName)
	assert.Contains(t, string(index), `<section id="contact"`)

	js, err := os.ReadFile(filepath.Join(dir, "static", "js", "nav.js"))
	require.NoError(t, err)
	assert.Contains(t, string(js), "function sectionGeometry")

	_, err = os.Stat(filepath.Join(dir, "static", "css", "site.css"))
	assert.NoError(t, err)
}
