package opener

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorCommandWithArgs(t *testing.T) {
	var gotName string
	var gotArgs []string
	e := New("code --wait")
	e.run = func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}

	require.NoError(t, e.Open("/docs/guide.txt"))
	assert.Equal(t, "code", gotName)
	assert.Equal(t, []string{"--wait", "/docs/guide.txt"}, gotArgs)
}

func TestEditorDefaultApplication(t *testing.T) {
	var opened string
	e := New("")
	e.openFile = func(path string) error {
		opened = path
		return nil
	}

	require.NoError(t, e.Open("/docs/guide.txt"))
	assert.Equal(t, "/docs/guide.txt", opened)
}

func TestEditorErrorsCarryPath(t *testing.T) {
	e := New("vim")
	e.run = func(string, ...string) error { return errors.New("exit status 1") }

	err := e.Open("/docs/guide.txt")
	assert.ErrorContains(t, err, "opening /docs/guide.txt with vim")
}
