package logger

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

type Config struct {
	Output io.Writer
	Debug  bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the process-wide logger. Without Debug every record is dropped,
// so the answer lines on stdout stay the only output.
func Setup(cfg Config) func() {
	if !cfg.Debug || cfg.Output == nil {
		setGlobal(discard())
		return func() {}
	}

	h := slog.NewJSONHandler(cfg.Output, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	setGlobal(slog.New(h))
	L().Info("logger.initialized", "debug", cfg.Debug)

	return func() { setGlobal(discard()) }
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func setGlobal(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
