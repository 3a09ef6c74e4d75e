package log

import (
	"io"
	"os"

	"formkeep/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Logger wraps a logrus logger with the level helpers used across formkeep.
type Logger struct {
	entry *logrus.Logger
	file  *os.File
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sends log lines to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.entry.SetOutput(w)
	}
}

// WithJSON switches to the JSON formatter.
func WithJSON() Option {
	return func(l *Logger) {
		l.entry.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithFile appends log lines to path. The TUI uses this so log output does
// not tear the alt screen.
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			l.entry.Warnf("could not open log file %s: %v", path, err)
			return
		}
		l.file = f
		l.entry.SetOutput(f)
	}
}

func NewLogger(opts ...Option) *Logger {
	l := &Logger{entry: logrus.New()}
	l.entry.SetOutput(os.Stderr)
	l.entry.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.entry.SetLevel(logrus.DebugLevel)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	if logger.file != nil {
		logger.file.Close()
	}
	logger = NewLogger(opts...)
}

func SetDebug(debug bool) {
	isDebug = debug
}

// IsDebug reports whether debug output is enabled.
func IsDebug() bool {
	return isDebug
}

func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Infof logs a formatted message
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a message with arguments
func Debug(msg string, args ...interface{}) {
	if isDebug {
		logger.Debugf(msg, args...)
	}
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	if isDebug {
		logger.Debugf(format, args...)
	}
}

// Error logs an error message with arguments
func Error(msg string, args ...interface{}) {
	if len(args) > 0 {
		logger.Errorf(msg+": %v", args...)
		return
	}
	logger.Errorf("%s", msg)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Warn logs a warning message with arguments
func Warn(msg string, args ...interface{}) {
	if len(args) > 0 {
		logger.Warnf(msg+": %v", args...)
		return
	}
	logger.Warnf("%s", msg)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func (l *Logger) Info(msg string) { l.entry.Info(msg) }
func (l *Logger) Warn(msg string) { l.entry.Warn(msg) }
func (l *Logger) Error(msg string) { l.entry.Error(msg) }

// Debug only writes when debug output is enabled with SetDebug.
func (l *Logger) Debug(msg string) {
	if isDebug {
		l.entry.Debug(msg)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func toLogrus(fields []Field) logrus.Fields {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			lf[f.Key] = err.Error()
			continue
		}
		lf[f.Key] = f.Value
	}
	return lf
}

// FieldLogger logs with a fixed set of fields attached.
type FieldLogger struct {
	entry *logrus.Entry
}

// With returns a logger carrying fields.
func (l *Logger) With(fields ...Field) *FieldLogger {
	return &FieldLogger{entry: l.entry.WithFields(toLogrus(fields))}
}

// With adds more fields.
func (f *FieldLogger) With(fields ...Field) *FieldLogger {
	return &FieldLogger{entry: f.entry.WithFields(toLogrus(fields))}
}

func (f *FieldLogger) Info(msg string) { f.entry.Info(msg) }
func (f *FieldLogger) Warn(msg string) { f.entry.Warn(msg) }
func (f *FieldLogger) Error(msg string) { f.entry.Error(msg) }

func (f *FieldLogger) Debug(msg string) {
	if isDebug {
		f.entry.Debug(msg)
	}
}

// LogWithFields returns a logger carrying fields on the package logger.
func LogWithFields(fields ...Field) *FieldLogger {
	return logger.With(fields...)
}

// LogWithError attaches err and whatever classification it carries.
func LogWithError(err error) *FieldLogger {
	if err == nil {
		return logger.With(F("error", "<nil>"))
	}
	fields := []Field{F("error", err.Error()), F("error_kind", errors.KindOf(err).String())}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	return logger.With(fields...)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}
