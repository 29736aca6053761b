// Package logging provides leveled, optionally styled logging with an
// optional plain-text file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	styleInfo    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleWarn    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleDryRun  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	styleDebug   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// Logger writes leveled lines to stdout/stderr and, when configured, a log
// file. The file always receives unstyled text.
type Logger struct {
	mu      sync.Mutex
	styled  bool
	verbose bool
	file    *os.File
}

// Options configures a Logger.
type Options struct {
	Verbose bool
	NoColor bool   // Force plain output even on a terminal.
	LogFile string // Append-mode plain-text sink; empty disables it.
}

// New builds a Logger. Styling is enabled only on a terminal and respects
// both NO_COLOR and the NoColor option.
func New(opts Options) (*Logger, error) {
	l := &Logger{
		styled: !opts.NoColor &&
			term.IsTerminal(int(os.Stdout.Fd())) &&
			os.Getenv("NO_COLOR") == "",
		verbose: opts.Verbose,
	}
	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, style lipgloss.Style, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	tag := "[" + level + "]"
	if l.styled {
		tag = style.Render(tag)
	}
	_, _ = io.WriteString(out, tag+" "+text+"\n")

	if l.file != nil {
		ts := time.Now().Format("2006-01-02 15:04:05")
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...any) {
	l.line("INFO", styleInfo, fmt.Sprintf(format, args...))
}

// Success logs a completed change.
func (l *Logger) Success(format string, args ...any) {
	l.line("SUCCESS", styleSuccess, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN", styleWarn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR", styleError, fmt.Sprintf(format, args...))
}

// DryRun logs a change that would have been made.
func (l *Logger) DryRun(format string, args ...any) {
	l.line("DRYRUN", styleDryRun, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level; no-op unless verbose.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", styleDebug, fmt.Sprintf(format, args...))
}
