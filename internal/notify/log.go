package notify

import "github.com/charmbracelet/log"

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier creates a notifier that logs through logger.
// A nil logger uses the package default.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs n at warn level for game over and info level otherwise.
func (l *LogNotifier) Notify(n Notification) {
	kv := []any{"kind", n.Kind, "game", n.GameID, "score", n.Score, "tick", n.Tick}
	msg := n.Title
	if n.Message != "" {
		msg += ": " + n.Message
	}
	if n.Kind == KindGameOver {
		l.logger.Warn(msg, kv...)
		return
	}
	l.logger.Info(msg, kv...)
}
