package logger

import (
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
)

// NoopLogger discards everything. It satisfies the Logger port for tests
// that exercise code paths where log output is irrelevant.
type NoopLogger struct {
	level core.LogLevel
}

func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

func (l *NoopLogger) Debug(message string, fields map[string]any) {}

func (l *NoopLogger) Info(message string, fields map[string]any) {}

func (l *NoopLogger) Warn(message string, fields map[string]any) {}

func (l *NoopLogger) Error(message string, fields map[string]any) {}

func (l *NoopLogger) Flush() error {
	return nil
}
