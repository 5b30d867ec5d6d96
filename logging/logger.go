package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// NewLogger returns a concurrency-safe logfmt logger writing to w,
// stamped with a UTC timestamp and the caller.
func NewLogger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

// ParseLevel maps a level name to the filter option allowing it and everything above.
func ParseLevel(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	}
	return nil, fmt.Errorf("unknown log level %q", lvl)
}

// WithLevel filters logger so only records at or above lvl are written.
// Records without a level are kept.
func WithLevel(logger log.Logger, lvl string) (log.Logger, error) {
	opt, err := ParseLevel(lvl)
	if err != nil {
		return nil, err
	}
	return level.NewFilter(logger, opt), nil
}
