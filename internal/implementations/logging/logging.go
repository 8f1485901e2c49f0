package logging

import (
	"context"

	"newsdesk/internal/core/domain/logging"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

// NewZapLogger builds a production JSON logger, or a human readable
// development one when debug is set.
func NewZapLogger(debug bool) *ZapLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		logger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		panic("Could not create Zap logger.")
	}
	return NewZapLoggerFromCore(logger)
}

func NewZapLoggerFromCore(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger, sugar: logger.Sugar()}
}

func (l *ZapLogger) Sync() {
	_ = l.logger.Sync()
}

func (l *ZapLogger) Debug(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.log(zapcore.DebugLevel, msg, entries)
}

func (l *ZapLogger) Info(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.log(zapcore.InfoLevel, msg, entries)
}

func (l *ZapLogger) Warning(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.log(zapcore.WarnLevel, msg, entries)
}

func (l *ZapLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.log(zapcore.ErrorLevel, msg, entries)
}

func (l *ZapLogger) log(level zapcore.Level, msg string, entries []logging.LogEntry) {
	l.sugar.Logw(level, msg, prepareArgs(entries...)...)
}

func prepareArgs(entries ...logging.LogEntry) []interface{} {
	args := make([]interface{}, 0, len(entries)*2)
	for _, e := range entries {
		args = append(args, e.Key, e.Value)
	}
	return args
}
