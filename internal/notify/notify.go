// Package notify delivers game events, such as the end of a round, to
// whatever is presenting the game.
package notify

import "time"

// Kind identifies a notification.
type Kind string

const (
	KindGameOver Kind = "game_over"
	KindReset    Kind = "reset"
)

// Notification is a one-shot message for the player.
type Notification struct {
	Kind    Kind
	GameID  string
	Title   string
	Message string
	Score   int
	Tick    uint64
	Time    time.Time
}

// Notifier receives notifications. Implementations must not block the caller.
type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to Notifier.
type Func func(n Notification)

// Notify calls f(n).
func (f Func) Notify(n Notification) {
	f(n)
}

// Discard drops every notification.
var Discard Notifier = Func(func(Notification) {})

// Multi fans a notification out to several notifiers in order.
func Multi(notifiers ...Notifier) Notifier {
	list := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			list = append(list, n)
		}
	}
	return Func(func(n Notification) {
		for _, target := range list {
			target.Notify(n)
		}
	})
}
