package euclid

import (
	"log/slog"

	"github.com/akmonengine/euclid/internal/logx"
)

// SetLogger configures the logger for euclid and all its sub-packages.
// By default nothing is logged.
//
// SetLogger is safe for concurrent use. Pass nil to restore silent output.
//
// Log levels used by euclid:
//   - [slog.LevelDebug]: degenerate fallbacks (parallel or collinear features,
//     zero-size shapes, zero-length directions)
//
// Example:
//
//	euclid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.Store(l)
}

// Logger returns the current logger used by euclid.
func Logger() *slog.Logger {
	return logx.Load()
}
