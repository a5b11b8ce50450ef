// 指示: miu200521358
// Package logging は書式指定で出力するロガーを提供する。
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// LogLevel はログ出力レベルを表す。
type LogLevel int

const (
	// LOG_LEVEL_DEBUG はデバッグレベル。
	LOG_LEVEL_DEBUG LogLevel = iota
	// LOG_LEVEL_INFO は情報レベル。
	LOG_LEVEL_INFO
	// LOG_LEVEL_WARN は警告レベル。
	LOG_LEVEL_WARN
	// LOG_LEVEL_ERROR はエラーレベル。
	LOG_LEVEL_ERROR
)

// ILogger はロガーの契約を表す。
type ILogger interface {
	Debug(format string, params ...any)
	Info(format string, params ...any)
	Warn(format string, params ...any)
	Error(format string, params ...any)
	SetLevel(level LogLevel)
	Level() LogLevel
}

// Logger はslogへ出力するILogger実装を表す。
type Logger struct {
	mu     sync.RWMutex
	level  LogLevel
	levels *slog.LevelVar
	logger *slog.Logger
}

// NewLogger は出力先とレベルを指定してLoggerを生成する。
func NewLogger(w io.Writer, level LogLevel) *Logger {
	levels := &slog.LevelVar{}
	levels.Set(toSlogLevel(level))
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levels})
	return &Logger{
		level:  level,
		levels: levels,
		logger: slog.New(handler),
	}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger ILogger = NewLogger(os.Stderr, LOG_LEVEL_WARN)
)

// DefaultLogger は既定ロガーを返す。
func DefaultLogger() ILogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替える。nilの場合は何もしない。
func SetDefaultLogger(logger ILogger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Debug はデバッグログを出力する。
func (l *Logger) Debug(format string, params ...any) {
	l.log(slog.LevelDebug, format, params...)
}

// Info は情報ログを出力する。
func (l *Logger) Info(format string, params ...any) {
	l.log(slog.LevelInfo, format, params...)
}

// Warn は警告ログを出力する。
func (l *Logger) Warn(format string, params ...any) {
	l.log(slog.LevelWarn, format, params...)
}

// Error はエラーログを出力する。
func (l *Logger) Error(format string, params ...any) {
	l.log(slog.LevelError, format, params...)
}

// SetLevel は出力レベルを変更する。
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.levels.Set(toSlogLevel(level))
}

// Level は出力レベルを返す。
func (l *Logger) Level() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// log はレベル判定後に整形済みメッセージを出力する。
func (l *Logger) log(level slog.Level, format string, params ...any) {
	if l == nil || l.logger == nil {
		return
	}
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	l.logger.Log(ctx, level, fmt.Sprintf(format, params...))
}

// toSlogLevel はLogLevelをslog.Levelへ変換する。
func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LOG_LEVEL_DEBUG:
		return slog.LevelDebug
	case LOG_LEVEL_INFO:
		return slog.LevelInfo
	case LOG_LEVEL_WARN:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
