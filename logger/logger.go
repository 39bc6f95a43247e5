package logger

import "go.uber.org/zap"

var (
	Logger = zap.NewNop()
	Sugar  = Logger.Sugar()
	Cli, _ = zap.NewDevelopment(zap.IncreaseLevel(zap.InfoLevel))
)

func SetLogger(l *zap.Logger) {
	Logger = l
	Sugar = l.Sugar()
}

// Verbose switches the cli logger to debug level output.
func Verbose() {
	Cli, _ = zap.NewDevelopment(zap.IncreaseLevel(zap.DebugLevel))
}
