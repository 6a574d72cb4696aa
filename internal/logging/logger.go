package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level defines the logging verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Action tags one step of a placement.
type Action string

const (
	ActionConfig    Action = "CONFIG"
	ActionMatch     Action = "MATCH"
	ActionSkip      Action = "SKIP"
	ActionResolve   Action = "RESOLVE"
	ActionTranslate Action = "TRANSLATE"
	ActionApply     Action = "APPLY"
	ActionFail      Action = "FAIL"
)

// Config holds logger configuration.
type Config struct {
	// Console receives entries at or above ConsoleLevel. Nil disables it.
	Console      io.Writer
	ConsoleLevel Level

	// FilePath enables the file sink when non-empty.
	FilePath  string
	FileLevel Level
	MaxSizeMB int
	MaxFiles  int
}

// Logger writes placement actions to the console and an optional rotating
// file. A nil *Logger discards everything.
type Logger struct {
	mu          sync.Mutex
	config      Config
	file        *os.File
	currentSize int64
	now         func() time.Time
}

// New creates a logger. The log directory is created when a file sink is set.
func New(cfg Config) (*Logger, error) {
	l := &Logger{config: cfg, now: time.Now}
	if cfg.FilePath == "" {
		return l, nil
	}

	dir := filepath.Dir(cfg.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.FilePath, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	l.file = f
	l.currentSize = stat.Size()
	return l, nil
}

// Debug logs at debug level.
func (l *Logger) Debug(action Action, msg string, details map[string]any) {
	l.Log(LevelDebug, action, msg, details)
}

// Info logs at info level.
func (l *Logger) Info(action Action, msg string, details map[string]any) {
	l.Log(LevelInfo, action, msg, details)
}

// Warn logs at warn level.
func (l *Logger) Warn(action Action, msg string, details map[string]any) {
	l.Log(LevelWarn, action, msg, details)
}

// Error logs at error level.
func (l *Logger) Error(action Action, msg string, details map[string]any) {
	l.Log(LevelError, action, msg, details)
}

// Log records one entry.
func (l *Logger) Log(level Level, action Action, msg string, details map[string]any) {
	if l == nil {
		return
	}
	toConsole := l.config.Console != nil && level >= l.config.ConsoleLevel
	toFile := l.config.FilePath != "" && level >= l.config.FileLevel
	if !toConsole && !toFile {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.format(level, action, msg, details)

	if toConsole {
		io.WriteString(l.config.Console, entry)
	}
	if toFile {
		l.writeFile(entry)
	}
}

func (l *Logger) format(level Level, action Action, msg string, details map[string]any) string {
	var sb strings.Builder
	sb.WriteString(l.now().Format("2006-01-02 15:04:05"))
	sb.WriteString(" ")
	sb.WriteString(strings.ToUpper(level.String()))
	sb.WriteString(" [")
	sb.WriteString(string(action))
	sb.WriteString("]")
	if msg != "" {
		sb.WriteString(" ")
		sb.WriteString(msg)
	}

	// Sorted keys keep entries diffable.
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch val := details[k].(type) {
		case string:
			sb.WriteString(fmt.Sprintf(" %s=%q", k, val))
		case error:
			sb.WriteString(fmt.Sprintf(" %s=%q", k, val.Error()))
		default:
			sb.WriteString(fmt.Sprintf(" %s=%v", k, val))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func (l *Logger) writeFile(entry string) {
	if l.file == nil {
		return
	}

	maxBytes := int64(l.config.MaxSizeMB) * 1024 * 1024
	if maxBytes > 0 && l.currentSize >= maxBytes {
		if err := l.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
		}
		if l.file == nil {
			return
		}
	}

	n, err := l.file.WriteString(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
		return
	}
	l.currentSize += int64(n)
}

// Close closes the file sink.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// rotate shifts winplace.log -> winplace.log.1 -> ... keeping MaxFiles
// rotated files.
func (l *Logger) rotate() error {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	basePath := l.config.FilePath
	for i := l.config.MaxFiles; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		if i == l.config.MaxFiles {
			os.Remove(oldPath)
			continue
		}
		os.Rename(oldPath, fmt.Sprintf("%s.%d", basePath, i+1))
	}

	if l.config.MaxFiles > 0 {
		if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	} else if err := os.Remove(basePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to truncate log file: %w", err)
	}

	f, err := os.OpenFile(basePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open new log file: %w", err)
	}

	l.file = f
	l.currentSize = 0
	return nil
}

// ParseLevel converts a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
