package headless

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/input"
)

func TestRecorderReplaysRun(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)

	var hashes []uint64
	opts := quietOptions()
	opts.OnTick = func(s core.Snapshot) {
		rec.Record(s)
		hashes = append(hashes, s.Hash())
	}
	New(newTiltDodge(6), nil, opts).Simulate(30, input.NewWave(3, 20))

	if rec.Err() != nil {
		t.Fatalf("recorder error: %v", rec.Err())
	}
	if rec.Frames() != 30 {
		t.Fatalf("Frames() = %d, expected 30", rec.Frames())
	}

	frames, err := ReadRecording(&buf)
	if err != nil {
		t.Fatalf("ReadRecording() failed: %v", err)
	}
	if len(frames) != len(hashes) {
		t.Fatalf("read %d frames, expected %d", len(frames), len(hashes))
	}
	for i, f := range frames {
		if f.Hash() != hashes[i] {
			t.Errorf("frame %d hash mismatch", i)
		}
		if len(f.Bodies) != 8 {
			t.Errorf("frame %d has %d bodies, expected 8", i, len(f.Bodies))
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRecorderStopsOnError(t *testing.T) {
	rec := NewRecorder(failingWriter{})
	rec.Record(core.Snapshot{Tick: 1})
	rec.Record(core.Snapshot{Tick: 2})

	if rec.Err() == nil {
		t.Fatal("expected write error")
	}
	if rec.Frames() != 0 {
		t.Errorf("Frames() = %d after failed writes", rec.Frames())
	}
}

func TestReadRecordingRejectsGarbage(t *testing.T) {
	if _, err := ReadRecording(bytes.NewReader([]byte{0xc1, 0x00, 0x01})); err == nil {
		t.Error("expected decode error")
	}
}
