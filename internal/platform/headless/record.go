package headless

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// Recorder writes one msgpack-encoded snapshot per tick to a stream,
// so a renderer can replay a headless run later.
type Recorder struct {
	enc    *msgpack.Encoder
	frames int
	err    error
}

// NewRecorder creates a recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: msgpack.NewEncoder(w)}
}

// Record appends a snapshot. After the first write error every call is
// a no-op and Err reports the failure.
func (r *Recorder) Record(s core.Snapshot) {
	if r.err != nil {
		return
	}
	if err := r.enc.Encode(&s); err != nil {
		r.err = fmt.Errorf("record frame %d: %w", r.frames, err)
		return
	}
	r.frames++
}

// Frames returns the number of snapshots written.
func (r *Recorder) Frames() int {
	return r.frames
}

// Err returns the first write error, if any.
func (r *Recorder) Err() error {
	return r.err
}

// ReadRecording decodes every snapshot from a recorded stream.
func ReadRecording(rd io.Reader) ([]core.Snapshot, error) {
	dec := msgpack.NewDecoder(rd)
	var frames []core.Snapshot
	for {
		var s core.Snapshot
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				return frames, nil
			}
			return frames, fmt.Errorf("read frame %d: %w", len(frames), err)
		}
		frames = append(frames, s)
	}
}
