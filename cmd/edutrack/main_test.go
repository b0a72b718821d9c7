package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("EDUTRACK_STORAGE_DRIVER", "memory")

	var out, errOut bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestExec(t *testing.T) {
	out, logs, err := execute(t, "", "exec",
		"add /c CS2103T",
		"add /s John Doe /id A0123456X /c CS2103T",
		"mark /s 1 /c CS2103T",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "New class added: CS2103T")
	assert.Contains(t, out, "John Doe has been marked present for the current lesson of CS2103T")
	assert.Contains(t, out, "[CS2103T] 1 student(s), 1 present")
	assert.Contains(t, logs, `"message":"roster loaded"`)
}

func TestExec_ReportsFailures(t *testing.T) {
	out, _, err := execute(t, "", "exec", "add /c T01", "frobnicate", "add /c t01")
	require.Error(t, err)
	assert.Equal(t, "2 of 3 command(s) failed", err.Error())
	assert.Contains(t, out, "Unknown command")
	assert.Contains(t, out, "This class already exists in EduTrack")
}

func TestExec_RequiresArguments(t *testing.T) {
	_, _, err := execute(t, "", "exec")
	assert.Error(t, err)
}

func TestInteractive(t *testing.T) {
	out, _, err := execute(t, "add /c T01\nexit\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Welcome to EduTrack!"))
	assert.Contains(t, out, "Exiting EduTrack as requested ...")
}

func TestBadConfig(t *testing.T) {
	t.Setenv("EDUTRACK_LOG_FORMAT", "xml")
	_, _, err := execute(t, "", "exec", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format must be json or text")
}
