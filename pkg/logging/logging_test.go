package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWritesToBuffer(t *testing.T) {
	assert := assert.New(t)
	buf := &bytes.Buffer{}

	logger := New(buf, false)
	logger.Debug("hidden")
	logger.GetLoggerWithField("run", "r1").Info("visible")

	out := buf.String()
	assert.NotContains(out, "hidden")
	assert.Contains(out, "visible")
	assert.Contains(out, "run=r1")
	assert.Contains(out, "logging_test.go:")
}

func TestNewDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	New(buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "level=debug")
}
