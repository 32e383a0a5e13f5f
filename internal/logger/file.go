package logger

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig controls the rotating log file the dashboard writes to while it
// owns the terminal.
type FileConfig struct {
	LogFile    string
	MaxSize    int  // megabytes
	MaxAge     int  // days
	MaxBackups int  // rotated files kept
	Compress   bool // gzip rotated files
	Debug      bool
}

// DefaultFileConfig returns the default file logging configuration
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		LogFile:    "mirror-dash.log",
		MaxSize:    10,
		MaxAge:     7,
		MaxBackups: 3,
		Compress:   true,
	}
}

// FileLogger is a zap logger writing JSON to a rotated file. Every entry
// carries the session id of this run.
type FileLogger struct {
	*zap.Logger
	SessionID string
	closer    io.Closer
}

// NewFileLogger creates a file logger. Nothing is written to the terminal.
func NewFileLogger(cfg *FileConfig) (*FileLogger, error) {
	if cfg == nil {
		cfg = DefaultFileConfig()
	}
	if cfg.LogFile == "" {
		return nil, errors.New("log file path is empty")
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	return newFileLogger(zapcore.AddSync(rotator), rotator, cfg.Debug), nil
}

func newFileLogger(ws zapcore.WriteSyncer, closer io.Closer, debug bool) *FileLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	sessionID := uuid.New().String()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, level)

	return &FileLogger{
		Logger: zap.New(core,
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		).With(zap.String("session_id", sessionID)),
		SessionID: sessionID,
		closer:    closer,
	}
}

// WithComponent adds the system component to every entry
func (l *FileLogger) WithComponent(component string) *zap.Logger {
	return l.With(zap.String("component", component))
}

// Close flushes and closes the log file.
func (l *FileLogger) Close() error {
	syncErr := l.Sync()
	if l.closer == nil {
		return syncErr
	}
	return errors.Join(syncErr, l.closer.Close())
}
