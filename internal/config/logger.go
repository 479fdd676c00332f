package config

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// NewLogger creates a timestamped logger writing to w at the named level
// (debug, info, warn, error).
func NewLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
	}), nil
}
