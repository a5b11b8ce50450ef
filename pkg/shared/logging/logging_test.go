// 指示: miu200521358
package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFiltersByLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := NewLogger(buf, LOG_LEVEL_INFO)

	logger.Debug("hidden %d", 1)
	logger.Info("shown %s", "info")
	logger.Warn("shown %s", "warn")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown info")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "level=WARN")
}

func TestLoggerSetLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := NewLogger(buf, LOG_LEVEL_ERROR)
	logger.Info("before")

	logger.SetLevel(LOG_LEVEL_DEBUG)
	logger.Debug("after")

	assert.Equal(t, LOG_LEVEL_DEBUG, logger.Level())
	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
}

func TestSetDefaultLogger(t *testing.T) {
	original := DefaultLogger()
	defer SetDefaultLogger(original)

	buf := new(bytes.Buffer)
	SetDefaultLogger(NewLogger(buf, LOG_LEVEL_DEBUG))
	SetDefaultLogger(nil)

	DefaultLogger().Debug("default %s", "swapped")
	assert.Contains(t, buf.String(), "default swapped")
}
