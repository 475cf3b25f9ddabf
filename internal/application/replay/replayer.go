package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/tileworld/internal/application/input"
)

// Replayer feeds recorded frames back as an input source.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Decode reads replay data from r.
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Next returns the frame for the current tick and advances.
func (r *Replayer) Next() (input.Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return 0, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Frame(), true
}

// Poll implements input.Source. Once exhausted it returns empty frames.
func (r *Replayer) Poll() input.Frame {
	f, _ := r.Next()
	return f
}

// Done reports whether every recorded frame has been delivered.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// World returns the name of the recorded world.
func (r *Replayer) World() string {
	return r.data.World
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
