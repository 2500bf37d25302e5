// pkg/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level   string    // debug|info|warn|error; empty means info
	Dir     string    // rotated JSON file sink; empty disables it
	File    string    // file name inside Dir; defaults to system.log
	Console io.Writer // defaults to stderr so stdout stays free for command output
}

// New builds a JSON logger that tees to the console and, when Dir is set, a
// lumberjack-rotated file.
func New(c Config) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if c.Level != "" {
		l, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = l
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	console := c.Console
	if console == nil {
		console = os.Stderr
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(zapcore.AddSync(console)), lvl),
	}

	if c.Dir != "" {
		if err := os.MkdirAll(c.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
		name := c.File
		if name == "" {
			name = "system.log"
		}
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(c.Dir, name),
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, lvl))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
