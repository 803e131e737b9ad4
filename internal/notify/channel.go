package notify

import "sync"

// ChannelNotifier buffers notifications on a channel for a reader
// goroutine, such as a UI loop.
type ChannelNotifier struct {
	events   chan Notification
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelNotifier creates a channel-backed notifier.
// bufferSize controls how many notifications are kept before dropping.
func NewChannelNotifier(bufferSize int) *ChannelNotifier {
	if bufferSize < 1 {
		bufferSize = 16
	}
	return &ChannelNotifier{
		events: make(chan Notification, bufferSize),
		done:   make(chan struct{}),
	}
}

// Notify queues n. If the buffer is full the oldest notification is
// dropped so the game loop never blocks.
func (c *ChannelNotifier) Notify(n Notification) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.events <- n:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-c.events:
		default:
		}
		select {
		case c.events <- n:
		default:
		}
	}
}

// Events returns the channel to read notifications from.
func (c *ChannelNotifier) Events() <-chan Notification {
	return c.events
}

// Done is closed once Close has been called.
func (c *ChannelNotifier) Done() <-chan struct{} {
	return c.done
}

// Close stops accepting notifications. Safe to call multiple times.
func (c *ChannelNotifier) Close() {
	c.doneOnce.Do(func() {
		close(c.done)
	})
}
