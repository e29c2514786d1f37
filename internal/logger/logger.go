package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/scene.txt"

// maxLines bounds the in-memory history shown by the terminal.
const maxLines = 500

// Logger stores lines in memory for the in-game terminal, appends them to a file on disk and
// echoes them to a console. Slog exposes the same sink as a structured logger.
type Logger struct {
	mu      sync.Mutex
	lines   []string
	path    string
	console *termenv.Output
	slog    *slog.Logger
}

// New returns a logger appending to path (empty disables the file) and echoing to console
// (nil disables the echo). The log directory is created if needed.
func New(path string, console io.Writer) *Logger {
	l := &Logger{path: path}
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if console != nil {
		l.console = termenv.NewOutput(console)
	}
	l.slog = slog.New(slog.NewTextHandler(sink{l}, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return l
}

// Log appends a line prefixed with the local time.
func (l *Logger) Log(line string) {
	l.write("[" + time.Now().Format("2006-01-02 15:04:05") + "] " + line)
}

// Slog returns a structured logger writing into this logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Logger) write(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	if l.console != nil {
		style := l.console.String(line)
		if c := levelColor(line); c != nil {
			style = style.Foreground(c)
		}
		_, _ = io.WriteString(l.console, style.String()+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(line + "\n")
	_ = f.Close()
}

func levelColor(line string) termenv.Color {
	switch {
	case strings.Contains(line, "level=ERROR"):
		return termenv.ANSIRed
	case strings.Contains(line, "level=WARN"):
		return termenv.ANSIYellow
	case strings.Contains(line, "level=DEBUG"):
		return termenv.ANSIBrightBlack
	}
	return nil
}

// sink adapts the logger to the io.Writer slog's text handler expects; each Write is one record.
type sink struct{ l *Logger }

func (s sink) Write(p []byte) (int, error) {
	s.l.write(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
