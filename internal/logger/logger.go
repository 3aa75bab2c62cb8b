package logger

import (
	"github.com/Caesar-design242/beacongen/internal/config"
	"github.com/Caesar-design242/beacongen/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger to provide logging functionality
type Logger struct {
	*zap.SugaredLogger
}

// Global logger for convenience
var L *Logger

// NewLogger creates and returns a new Logger instance
func NewLogger(cfg *config.Configuration) (*Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if cfg.Deployment.Mode == types.ModeLocal {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Logging.Level == types.LogLevelDebug {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	logger := &Logger{
		SugaredLogger: zapLogger.Sugar(),
	}
	L = logger
	return logger, nil
}

// Initialize default logger and set it as global while also using Dependency Injection.
// Logger is a heavily used object so keeping a global around helps usecases like
// scripts, but everywhere else the Dependency Injection approach should be used.
func init() {
	L, _ = NewLogger(config.GetDefaultConfig())
}
