// Package logging builds the logger handed to the trading facade: readable
// text on stdout, plus an optional JSON-lines file sink attached as a hook.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Setup configures a logger at the given level. When file is non-empty a JSON
// sink is opened in append mode; the returned closer flushes it at shutdown.
func Setup(level, file string) (*log.Logger, io.Closer, error) {
	logger := log.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("bad log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	if file == "" {
		return logger, nopCloser{}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to open log file %q: %w", file, err)
	}
	logger.AddHook(newFileHook(f))
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fileHook mirrors every entry to a file as one JSON object per line.
type fileHook struct {
	mu        sync.Mutex
	w         io.Writer
	formatter log.Formatter
}

func newFileHook(w io.Writer) *fileHook {
	return &fileHook{
		w:         w,
		formatter: &log.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"},
	}
}

func (h *fileHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *fileHook) Fire(entry *log.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(line)
	return err
}
