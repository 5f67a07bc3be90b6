// Package log provides structured logging of commands, errors and
// diagnostics into JSON log files.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/10Draken01/Docker-Front/internal/model"
)

// Fields carries structured attributes attached to a log entry.
type Fields map[string]interface{}

// logMessage represents a message queued for the logging goroutine
type logMessage struct {
	level   LogLevel
	content string
	fields  Fields
	ctx     context.Context
}

// Logger writes command, error and info entries through slog JSON handlers.
// Entries are queued on a buffered channel and written by one goroutine.
type Logger struct {
	commandLogger *slog.Logger
	errorLogger   *slog.Logger
	infoLogger    *slog.Logger
	files         []*os.File
	logChan       chan logMessage
	wg            sync.WaitGroup
	mu            sync.RWMutex
	closed        bool
	nop           bool
	level         LogLevel
}

// NewLogger creates a Logger writing into the log folder named by cfg.
// Entries more verbose than level are dropped.
func NewLogger(cfg *model.Config, level LogLevel) (*Logger, error) {
	if err := os.MkdirAll(cfg.LogFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	var files []*os.File
	open := func(name string) (*os.File, error) {
		f, err := os.OpenFile(filepath.Join(cfg.LogFolder, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			for _, opened := range files {
				opened.Close()
			}
			return nil, fmt.Errorf("failed to open log file %s: %w", name, err)
		}
		files = append(files, f)
		return f, nil
	}

	commandFile, err := open(cfg.CommandLog)
	if err != nil {
		return nil, err
	}
	errorFile, err := open(cfg.ErrorLog)
	if err != nil {
		return nil, err
	}
	infoFile, err := open(cfg.InfoLog)
	if err != nil {
		return nil, err
	}

	l := newLogger(commandFile, errorFile, infoFile, level)
	l.files = files
	return l, nil
}

// NewWriterLogger creates a Logger that sends every entry to w.
func NewWriterLogger(w io.Writer, level LogLevel) *Logger {
	return newLogger(w, w, w, level)
}

// NewNopLogger creates a Logger that discards everything. It starts no
// goroutine and needs no Close.
func NewNopLogger() *Logger {
	return &Logger{nop: true}
}

func newLogger(commandW, errorW, infoW io.Writer, level LogLevel) *Logger {
	l := &Logger{
		commandLogger: slog.New(slog.NewJSONHandler(commandW, &slog.HandlerOptions{Level: slog.LevelInfo})),
		errorLogger:   slog.New(slog.NewJSONHandler(errorW, &slog.HandlerOptions{Level: slog.LevelWarn})),
		infoLogger:    slog.New(slog.NewJSONHandler(infoW, &slog.HandlerOptions{Level: slog.LevelDebug})),
		logChan:       make(chan logMessage, 100),
		level:         level,
	}

	l.wg.Add(1)
	go l.processLogs()

	return l
}

// processLogs writes queued entries until the channel is closed
func (l *Logger) processLogs() {
	defer l.wg.Done()
	for msg := range l.logChan {
		target := l.infoLogger
		switch msg.level {
		case LevelCommand:
			target = l.commandLogger
		case LevelError, LevelWarn:
			target = l.errorLogger
		}
		target.Log(msg.ctx, msg.level.toSlogLevel(), msg.content, msg.fields.attrs()...)
	}
}

func (l *Logger) enqueue(ctx context.Context, level LogLevel, msg string, fields Fields) {
	if ctx == nil {
		ctx = context.Background()
	}

	if l.nop {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed || (level > l.level && level != LevelCommand) {
		return
	}
	l.logChan <- logMessage{level: level, content: msg, fields: fields, ctx: ctx}
}

// Command records a user command in the command log.
func (l *Logger) Command(ctx context.Context, msg string, fields Fields) {
	l.enqueue(ctx, LevelCommand, msg, fields)
}

func (l *Logger) Error(ctx context.Context, msg string, fields Fields) {
	l.enqueue(ctx, LevelError, msg, fields)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields Fields) {
	l.enqueue(ctx, LevelWarn, msg, fields)
}

func (l *Logger) Info(ctx context.Context, msg string, fields Fields) {
	l.enqueue(ctx, LevelInfo, msg, fields)
}

func (l *Logger) Debug(ctx context.Context, msg string, fields Fields) {
	l.enqueue(ctx, LevelDebug, msg, fields)
}

// SetLevel changes the verbosity threshold.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Close drains pending entries and closes the log files.
func (l *Logger) Close() error {
	if l.nop {
		return nil
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	close(l.logChan)
	l.mu.Unlock()

	l.wg.Wait()

	for _, f := range l.files {
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close log file %s: %w", f.Name(), err)
		}
	}
	return nil
}

// attrs flattens the fields into slog key/value pairs in key order.
func (f Fields) attrs() []any {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(f)*2)
	for _, k := range keys {
		args = append(args, k, f[k])
	}
	return args
}
