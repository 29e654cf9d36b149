package gridkit

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger routes the package's diagnostics to l. Passing nil mutes them.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.New(slog.DiscardHandler)
		return
	}
	logger = l
}
