// 指示: miu200521358
package logging

import "sync"

// Level はログ出力レベルを表す。
type Level int

const (
	// LOG_LEVEL_DEBUG はデバッグレベル。
	LOG_LEVEL_DEBUG Level = iota
	// LOG_LEVEL_INFO は情報レベル。
	LOG_LEVEL_INFO
	// LOG_LEVEL_WARN は警告レベル。
	LOG_LEVEL_WARN
	// LOG_LEVEL_ERROR はエラーレベル。
	LOG_LEVEL_ERROR
)

// ILogger はログ出力契約を表す。
type ILogger interface {
	// SetLevel は出力レベルを設定する。
	SetLevel(level Level)
	// Debug はデバッグログを出力する。
	Debug(format string, args ...any)
	// Info は情報ログを出力する。
	Info(format string, args ...any)
	// Warn は警告ログを出力する。
	Warn(format string, args ...any)
	// Error はエラーログを出力する。
	Error(format string, args ...any)
}

var (
	defaultLoggerMu sync.RWMutex
	defaultLogger   ILogger = nopLogger{}
)

// DefaultLogger は既定ロガーを返す。
func DefaultLogger() ILogger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替える。nilは無視する。
func SetDefaultLogger(logger ILogger) {
	if logger == nil {
		return
	}
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// nopLogger は何も出力しないロガーを表す。
type nopLogger struct{}

// SetLevel は何もしない。
func (nopLogger) SetLevel(level Level) {}

// Debug は何もしない。
func (nopLogger) Debug(format string, args ...any) {}

// Info は何もしない。
func (nopLogger) Info(format string, args ...any) {}

// Warn は何もしない。
func (nopLogger) Warn(format string, args ...any) {}

// Error は何もしない。
func (nopLogger) Error(format string, args ...any) {}
