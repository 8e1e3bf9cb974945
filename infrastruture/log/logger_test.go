package log

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	t.Run("Writes prefix and level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", color.FgCyan, &buf)
		require.NoError(t, err)

		l.Info("generated")
		l.Warning("retrying")
		l.Error("failed")

		out := buf.String()
		assert.Contains(t, out, "[MAZE] [INFO] generated")
		assert.Contains(t, out, "[MAZE] [WARNING] retrying")
		assert.Contains(t, out, "[MAZE] [ERROR] failed")
	})

	t.Run("Rejects bad arguments", func(t *testing.T) {
		_, err := New("", color.FgCyan, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)

		_, err = New("MAZE", color.FgCyan, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})
}
