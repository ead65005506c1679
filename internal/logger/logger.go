package logger

import "go.uber.org/zap"

// New returns a console logger writing to stderr for debug runs and a nop
// logger otherwise, so match output on stdout stays clean either way.
func New(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
