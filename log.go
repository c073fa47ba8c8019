package arc

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package logger. Passing nil restores the no-op
// logger. Scripts run on one goroutine, so call this before starting them.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// LogLevel is the severity of a script log message. Values are bit flags so
// a host can filter with a mask.
type LogLevel uint8

const (
	LogTrace    LogLevel = 1 << iota // finest-grained diagnostics
	LogDebug                         // developer diagnostics
	LogInfo                          // normal operation
	LogWarn                          // recoverable problems
	LogError                         // failed operations
	LogCritical                      // the script cannot continue
)

func (l LogLevel) String() string {
	switch l {
	case LogTrace:
		return "trace"
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarn:
		return "warn"
	case LogError:
		return "error"
	case LogCritical:
		return "critical"
	}
	return fmt.Sprintf("LogLevel(%d)", uint8(l))
}

// zapLevel maps a script level onto zap. zap has no trace or critical level,
// so those map to debug and error and are tagged with a field instead.
func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogTrace, LogDebug:
		return zapcore.DebugLevel
	case LogInfo:
		return zapcore.InfoLevel
	case LogWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Log is the script-facing logger. Every message goes to the package zap
// logger and, when bound, to the host's LogMessage call together with the
// caller's file, function and line.
//
// Messages are formatted with fmt.Sprintf when value is a string and args
// are given, otherwise with fmt.Sprint. A nil value logs "null".
type Log struct {
	calls LogCalls
}

// NewLog returns a Log that forwards to calls. calls may be nil.
func NewLog(calls LogCalls) Log { return Log{calls: calls} }

func (l Log) Trace(value any, args ...any)    { l.write(LogTrace, value, args) }
func (l Log) Debug(value any, args ...any)    { l.write(LogDebug, value, args) }
func (l Log) Info(value any, args ...any)     { l.write(LogInfo, value, args) }
func (l Log) Warn(value any, args ...any)     { l.write(LogWarn, value, args) }
func (l Log) Error(value any, args ...any)    { l.write(LogError, value, args) }
func (l Log) Critical(value any, args ...any) { l.write(LogCritical, value, args) }

func (l Log) write(level LogLevel, value any, args []any) {
	msg := formatLogValue(value, args)
	file, member, line := caller(3)

	if l.calls != nil {
		l.calls.LogMessage(level, msg, file, member, line)
	}

	if ce := Logger().Check(level.zapLevel(), msg); ce != nil {
		fields := []zap.Field{
			zap.String("file", file),
			zap.String("member", member),
			zap.Int("line", line),
		}
		switch level {
		case LogTrace:
			fields = append(fields, zap.Bool("trace", true))
		case LogCritical:
			fields = append(fields, zap.Bool("critical", true))
		}
		ce.Write(fields...)
	}
}

func formatLogValue(value any, args []any) string {
	if value == nil {
		return "null"
	}
	if format, ok := value.(string); ok && len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	if len(args) > 0 {
		return fmt.Sprint(append([]any{value}, args...)...)
	}
	return fmt.Sprint(value)
}

// caller returns the base file name, bare function name and line of the
// frame skip levels above caller itself.
func caller(skip int) (file, member string, line int) {
	pc, path, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0
	}
	file = filepath.Base(path)
	if fn := runtime.FuncForPC(pc); fn != nil {
		member = fn.Name()
		if i := strings.LastIndex(member, "."); i >= 0 {
			member = member[i+1:]
		}
	}
	return file, member, line
}
