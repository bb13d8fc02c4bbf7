package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", "json", &buf)

	log.Infof("scanning %s", "docs-golang")
	assert.Empty(t, buf.String(), "info should be filtered at warn level")

	log.With("repo", "docs-golang").Warn("skipping repository", errors.New("bad pattern"))
	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"repo":"docs-golang"`)
	assert.Contains(t, out, `"error":"bad pattern"`)
	assert.Contains(t, out, "skipping repository")
}

func TestNewUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New("chatty", "json", &buf)

	log.Debugf("hidden")
	log.Warn("shown", errors.New("x"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Warn("nothing", errors.New("x"))
}
