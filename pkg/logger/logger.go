package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

// Level represents a logging level.
type Level int

const (
	// DEBUG level for detailed information.
	DEBUG Level = iota
	// INFO level for general information.
	INFO
	// ERROR level for error conditions.
	ERROR
)

// ErrNoLogFile is returned by GetEntries on a logger without a log file.
var ErrNoLogFile = errors.New("logger has no log file")

// String returns the string representation of a log level.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel returns the level named by s, ignoring case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

// Console level tags, uncolored and colored.
var levelTags = [2][3]string{
	{DEBUG: "DEBUG", INFO: " INFO", ERROR: "ERROR"},
	{DEBUG: "\033[37mDEBUG\033[0m", INFO: "\033[34m INFO\033[0m", ERROR: "\033[31mERROR\033[0m"},
}

// Entry represents a log entry.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Event     string    `json:"event"`
	Status    string    `json:"status"`
	Details   string    `json:"details,omitempty"`
}

// Logger handles application logging. A file logger writes JSON lines and
// can read them back; a console logger writes human-readable lines.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	path     string
	console  io.Writer
	color    int
	level    Level
	callback func(Entry)
}

// NewLogger creates a new logger instance.
func NewLogger(logPath string, level Level, callback func(Entry)) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		file:     file,
		path:     logPath,
		level:    level,
		callback: callback,
	}, nil
}

// NewConsoleLogger creates a logger that writes to f, usually os.Stderr.
// Level tags are colored when f is a terminal.
func NewConsoleLogger(f *os.File, level Level, callback func(Entry)) *Logger {
	l := &Logger{console: f, level: level, callback: callback}

	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		l.console = colorable.NewColorable(f)
		l.color = 1
	}

	return l
}

// Log writes a log entry.
func (l *Logger) Log(level Level, event, status, details string) {
	l.mu.Lock()
	if level < l.level {
		l.mu.Unlock()
		return
	}

	entry := Entry{
		Timestamp: time.Now(),
		Level:     level,
		Event:     event,
		Status:    status,
		Details:   details,
	}

	if l.file != nil {
		data, err := json.Marshal(entry)
		if err == nil {
			fmt.Fprintln(l.file, string(data))
		}
	}
	if l.console != nil {
		l.writeConsole(entry)
	}
	callback := l.callback
	l.mu.Unlock()

	// Called unlocked so the callback may use the logger.
	if callback != nil {
		callback(entry)
	}
}

func (l *Logger) writeConsole(e Entry) {
	tag := e.Level.String()
	if e.Level >= DEBUG && e.Level <= ERROR {
		tag = levelTags[l.color][e.Level]
	}

	line := fmt.Sprintf("%s [%s] %s: %s", e.Timestamp.Format(time.DateTime), tag, e.Event, e.Status)
	if e.Details != "" {
		line += " (" + e.Details + ")"
	}
	fmt.Fprintln(l.console, line)
}

// Debug logs a debug level message.
func (l *Logger) Debug(event, status, details string) {
	l.Log(DEBUG, event, status, details)
}

// Info logs an info level message.
func (l *Logger) Info(event, status, details string) {
	l.Log(INFO, event, status, details)
}

// Error logs an error level message.
func (l *Logger) Error(event, status, details string) {
	l.Log(ERROR, event, status, details)
}

// Close closes the log file. The console of a console logger is left open.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	return l.file.Close()
}

// SetLevel changes the logging level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetCallback replaces the per-entry callback.
func (l *Logger) SetCallback(callback func(Entry)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callback = callback
}

// GetEntries reads back logged entries with timestamps in [start, end] whose
// event, status or details contain filter, ignoring case. A zero start or end
// leaves that side of the range open.
func (l *Logger) GetEntries(start, end time.Time, filter string) ([]Entry, error) {
	if l.path == "" {
		return nil, ErrNoLogFile
	}

	// Hold the lock so no half-written line is read.
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	filter = strings.ToLower(filter)

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue // Skip foreign or truncated lines.
		}
		if !start.IsZero() && e.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && e.Timestamp.After(end) {
			continue
		}
		if filter != "" && !matchesFilter(e, filter) {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	return entries, nil
}

func matchesFilter(e Entry, filter string) bool {
	for _, field := range []string{e.Event, e.Status, e.Details} {
		if strings.Contains(strings.ToLower(field), filter) {
			return true
		}
	}

	return false
}
