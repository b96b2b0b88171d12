// 指示: miu200521358
package mlogging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/miu200521358/mu_hand_retarget/pkg/shared/base/logging"
)

// Logger は書き込み先指定のロガー実装を表す。
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	level logging.Level
}

// NewLogger はロガーを生成する。outがnilの場合は標準エラーへ出力する。
func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		out:   out,
		level: logging.LOG_LEVEL_INFO,
	}
}

// SetLevel は出力レベルを設定する。
func (l *Logger) SetLevel(level logging.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Debug はデバッグログを出力する。
func (l *Logger) Debug(format string, args ...any) {
	l.write(logging.LOG_LEVEL_DEBUG, "DEBUG", format, args...)
}

// Info は情報ログを出力する。
func (l *Logger) Info(format string, args ...any) {
	l.write(logging.LOG_LEVEL_INFO, "INFO", format, args...)
}

// Warn は警告ログを出力する。
func (l *Logger) Warn(format string, args ...any) {
	l.write(logging.LOG_LEVEL_WARN, "WARN", format, args...)
}

// Error はエラーログを出力する。
func (l *Logger) Error(format string, args ...any) {
	l.write(logging.LOG_LEVEL_ERROR, "ERROR", format, args...)
}

// write はレベル判定のうえ1行出力する。
func (l *Logger) write(level logging.Level, label string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	fmt.Fprintf(l.out, "%s [%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), label, fmt.Sprintf(format, args...))
}
