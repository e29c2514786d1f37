package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesMemoryFileAndConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scene.txt")
	var console bytes.Buffer
	l := New(path, &console)

	l.Log("cmd list")
	l.Slog().Error("texture failed", "path", "color.jpg")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "] cmd list"))
	assert.Contains(t, lines[1], "level=ERROR")
	assert.Contains(t, lines[1], "path=color.jpg")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(data))
	// A buffer is not a terminal, so the echo carries no escape codes.
	assert.Equal(t, string(data), console.String())
}

func TestLinesAreBounded(t *testing.T) {
	l := New("", nil)
	for i := 0; i < maxLines+10; i++ {
		l.Log(fmt.Sprint(i))
	}
	lines := l.Lines()
	assert.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "] 10"))
}

func TestLevelColor(t *testing.T) {
	assert.NotNil(t, levelColor("level=ERROR msg=x"))
	assert.NotNil(t, levelColor("level=WARN msg=x"))
	assert.Nil(t, levelColor("level=INFO msg=x"))
}
