// Package replay records the per-tick input of a run and re-simulates it.
// A run is fully determined by its configuration, its seed and its trace.
package replay

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/endless-runner/internal/core"
)

// Frame is the set of actions held during one tick, one bit per action.
type Frame uint8

const (
	bitLeft Frame = 1 << iota
	bitRight
	bitJump
	bitPause
)

var actionBits = []struct {
	action core.Action
	bit    Frame
}{
	{core.ActionLeft, bitLeft},
	{core.ActionRight, bitRight},
	{core.ActionJump, bitJump},
	{core.ActionPause, bitPause},
}

// FrameOf captures the simulation-relevant actions of in.
func FrameOf(in core.InputSource) Frame {
	var f Frame
	for _, ab := range actionBits {
		if in.Pressed(ab.action) {
			f |= ab.bit
		}
	}
	return f
}

// Pressed implements core.InputSource.
func (f Frame) Pressed(a core.Action) bool {
	for _, ab := range actionBits {
		if ab.action == a {
			return f&ab.bit != 0
		}
	}
	return false
}

// Trace is the ordered input of a run, one frame per Tick call.
type Trace struct {
	frames []Frame
}

// Record appends the frame for in and returns it.
func (t *Trace) Record(in core.InputSource) Frame {
	f := FrameOf(in)
	t.frames = append(t.frames, f)
	return f
}

// Len returns the number of recorded frames.
func (t *Trace) Len() int {
	return len(t.frames)
}

// Frames returns the recorded frames. The slice must not be modified.
func (t *Trace) Frames() []Frame {
	return t.frames
}

// Reset drops all recorded frames.
func (t *Trace) Reset() {
	t.frames = t.frames[:0]
}

// ErrCorrupt is returned when an encoded trace cannot be decoded.
var ErrCorrupt = errors.New("replay: corrupt trace")

// MaxFrames bounds a decoded trace: a day of play at 60 ticks per second.
const MaxFrames = 60 * 60 * 60 * 24

// Encode run-length encodes the trace as a sequence of
// (uvarint run length, frame byte) pairs.
func (t *Trace) Encode() []byte {
	buf := make([]byte, 0, 64)
	for i := 0; i < len(t.frames); {
		j := i + 1
		for j < len(t.frames) && t.frames[j] == t.frames[i] {
			j++
		}
		buf = binary.AppendUvarint(buf, uint64(j-i))
		buf = append(buf, byte(t.frames[i]))
		i = j
	}
	return buf
}

// Decode parses data produced by Encode.
func Decode(data []byte) (*Trace, error) {
	t := &Trace{}
	for len(data) > 0 {
		n, k := binary.Uvarint(data)
		if k <= 0 || n == 0 {
			return nil, fmt.Errorf("%w: bad run length at frame %d", ErrCorrupt, len(t.frames))
		}
		data = data[k:]
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: run without frame", ErrCorrupt)
		}
		if n > uint64(MaxFrames-len(t.frames)) {
			return nil, fmt.Errorf("%w: more than %d frames", ErrCorrupt, MaxFrames)
		}
		t.frames = append(t.frames, slices.Repeat([]Frame{Frame(data[0])}, int(n))...)
		data = data[1:]
	}
	return t, nil
}
