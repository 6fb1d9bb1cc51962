package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(l *Logger) {
	l.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.Local) }
}

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "aviator.txt")
	l := New(path)
	fixedClock(l)

	l.Log("window opened")
	l.Logf("seed %d", 42)

	want := []string{
		"[2026-10-16 09:30:00] window opened",
		"[2026-10-16 09:30:00] seed 42",
	}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
}

func TestLogMemoryOnly(t *testing.T) {
	l := New("")
	l.Log("hello")
	require.Len(t, l.Lines(), 1)
	assert.True(t, strings.HasSuffix(l.Lines()[0], "] hello"))
}

func TestLogKeepsRecentLines(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+10; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "line 10"))
	assert.True(t, strings.HasSuffix(lines[maxLines-1], "line 265"))
}

func TestLinesIsACopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}
