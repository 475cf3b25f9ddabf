package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/tileworld/internal/application/input"
)

// ErrEmpty is returned when saving a recording with no frames.
var ErrEmpty = errors.New("no frames to save")

// Recorder captures the input frame of every tick.
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder for a session on the given world.
func NewRecorder(world string, tickRate int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			World:     world,
			TickRate:  tickRate,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60 ticks per second
		},
		recording: true,
	}
}

// RecordFrame appends one tick's input.
func (r *Recorder) RecordFrame(f input.Frame) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, NewFrameInput(len(r.data.Frames), f))
}

// Write encodes the recording as indented JSON.
func (r *Recorder) Write(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the recording to a file.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := r.Write(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
