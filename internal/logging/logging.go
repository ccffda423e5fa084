package logging

// #region imports
import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// #endregion

// #region logger

// New builds the hook's logger. Everything goes to stderr: stdout is the
// envelope channel and must stay clean.
func New(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// NewOrNop returns a working logger or, if the build fails, a no-op one.
// The hook never fails over logging.
func NewOrNop(debug bool) *zap.Logger {
	logger, err := New(debug)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// #endregion
