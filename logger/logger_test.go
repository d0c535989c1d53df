package logger

import (
	"os"
	"testing"
	"time"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_NewLogger(t *testing.T) {
	t.Run("debug", func(t *testing.T) {
		log := NewLogger("DEBUG", "testDebugModule")
		assert.NotNil(t, log)
		assert.True(t, log.IsEnabledFor(logging.DEBUG))
	})

	t.Run("case insensitive", func(t *testing.T) {
		log := NewLogger("warning", "testWarningModule")
		assert.True(t, log.IsEnabledFor(logging.WARNING))
		assert.False(t, log.IsEnabledFor(logging.INFO))
	})

	t.Run("invalid log level", func(t *testing.T) {
		log := NewLogger("INVALID", "testInvalidModule")
		assert.NotNil(t, log)
		assert.True(t, log.IsEnabledFor(logging.INFO))
		assert.False(t, log.IsEnabledFor(logging.DEBUG))
	})
}

func TestLogger_ParseTime(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		h, m, s uint32
	}{
		{"zero", 0, 0, 0, 0},
		{"one of each", 3661 * time.Second, 1, 1, 1},
		{"rounds to seconds", 59*time.Second + 600*time.Millisecond, 0, 1, 0},
		{"many hours", 26*time.Hour + 5*time.Second, 26, 0, 5},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h, m, s := ParseTime(test.elapsed)
			assert.Equal(t, test.h, h)
			assert.Equal(t, test.m, m)
			assert.Equal(t, test.s, s)
		})
	}
}

func TestLogger_PlainFormatWithoutTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	assert.False(t, isTerminal(w))

	assert.NotContains(t, logFormat(false), "%{color")
	assert.Contains(t, logFormat(true), "%{color}")
}
