package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	quiet := New(&buf, false)
	quiet.Debug("hidden")
	quiet.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	New(&buf, true).Debug("details")
	assert.Contains(t, buf.String(), "details")
}

func TestForRunTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	ForRun(New(&buf, false)).Warn("tagged")
	assert.Contains(t, buf.String(), "run=")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("dropped") })
}
