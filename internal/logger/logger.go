package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

var defaultLogger atomic.Pointer[charm.Logger]

func init() {
	defaultLogger.Store(New(os.Stderr))
}

// New creates a logger writing to w at warn level.
func New(w io.Writer) *charm.Logger {
	return charm.NewWithOptions(w, charm.Options{
		Prefix: "ssocreds",
		Level:  charm.WarnLevel,
	})
}

// Default returns the process-wide logger.
func Default() *charm.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(l *charm.Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// SetLevel parses level ("debug", "info", "warn", "error") and applies it to the default logger.
// An empty level leaves the current one untouched.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := charm.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
	Default().SetLevel(lvl)
	return nil
}

func Debug(msg string, keyvals ...interface{}) { Default().Debug(msg, keyvals...) }
func Info(msg string, keyvals ...interface{})  { Default().Info(msg, keyvals...) }
func Warn(msg string, keyvals ...interface{})  { Default().Warn(msg, keyvals...) }
func Error(msg string, keyvals ...interface{}) { Default().Error(msg, keyvals...) }

// MaskAccessKey keeps the first 4 characters of an access key.
func MaskAccessKey(accessKey string) string {
	if len(accessKey) > 4 {
		return accessKey[:4] + "..."
	}
	return accessKey
}
