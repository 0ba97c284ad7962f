package logging

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New builds a leveled go-kit logger writing to w. format is "logfmt" (or
// empty) or "json"; lvl is one of debug, info, warn, error.
func New(w io.Writer, format, lvl string) (log.Logger, error) {
	sw := log.NewSyncWriter(w)

	var logger log.Logger
	switch format {
	case "", "logfmt":
		logger = log.NewLogfmtLogger(sw)
	case "json":
		logger = log.NewJSONLogger(sw)
	default:
		return nil, fmt.Errorf("unknown log format %q (valid: logfmt, json)", format)
	}

	allow, err := allowLevel(lvl)
	if err != nil {
		return nil, err
	}

	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, allow), nil
}

func allowLevel(lvl string) (level.Option, error) {
	switch lvl {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "", "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", lvl)
	}
}
