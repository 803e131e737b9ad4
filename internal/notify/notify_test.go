package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestChannelNotifierDelivers(t *testing.T) {
	c := NewChannelNotifier(4)
	c.Notify(Notification{Kind: KindGameOver, Title: "Game Over"})

	select {
	case n := <-c.Events():
		if n.Title != "Game Over" {
			t.Errorf("Title = %q, expected %q", n.Title, "Game Over")
		}
	default:
		t.Fatal("expected a queued notification")
	}
}

func TestChannelNotifierDropsOldest(t *testing.T) {
	c := NewChannelNotifier(2)
	for i := range 5 {
		c.Notify(Notification{Score: i})
	}

	var got []int
	for len(c.Events()) > 0 {
		got = append(got, (<-c.Events()).Score)
	}
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("buffered scores = %v, expected [3 4]", got)
	}
}

func TestChannelNotifierClose(t *testing.T) {
	c := NewChannelNotifier(0)
	c.Close()
	c.Close()

	select {
	case <-c.Done():
	default:
		t.Fatal("Done should be closed")
	}

	c.Notify(Notification{Title: "late"})
	if len(c.Events()) != 0 {
		t.Error("closed notifier should not queue")
	}
}

func TestMultiSkipsNil(t *testing.T) {
	var calls []string
	a := Func(func(n Notification) { calls = append(calls, "a:"+n.Title) })
	b := Func(func(n Notification) { calls = append(calls, "b:"+n.Title) })

	Multi(a, nil, b).Notify(Notification{Title: "x"})

	if strings.Join(calls, ",") != "a:x,b:x" {
		t.Errorf("calls = %v", calls)
	}
	Discard.Notify(Notification{})
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	NewLogNotifier(logger).Notify(Notification{
		Kind:    KindGameOver,
		GameID:  "tiltdodge",
		Title:   "Game Over",
		Message: "You lose...",
		Score:   7,
	})

	out := buf.String()
	for _, want := range []string{"Game Over: You lose...", "score=7", "game=tiltdodge", "WARN"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}
