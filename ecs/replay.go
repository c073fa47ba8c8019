package ecs

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arcengine/arc"
)

// replayStep is a single action in a replay script as it appears in JSON.
type replayStep struct {
	Action string  `json:"action"`
	Key    string  `json:"key,omitempty"`
	Button string  `json:"button,omitempty"`
	X      float32 `json:"x,omitempty"`
	Y      float32 `json:"y,omitempty"`
	FromX  float32 `json:"fromX,omitempty"`
	FromY  float32 `json:"fromY,omitempty"`
	ToX    float32 `json:"toX,omitempty"`
	ToY    float32 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`

	key    arc.KeyCode
	button arc.MouseButton
}

type replayScript struct {
	Steps []replayStep `json:"steps"`
}

// replayEvent is one queued input change. Each frame applies at most one.
type replayEvent struct {
	kind    replayEventKind
	key     arc.KeyCode
	button  arc.MouseButton
	pos     arc.Vector2
	pressed bool
}

type replayEventKind uint8

const (
	replayKey replayEventKind = iota
	replayMouse
	replayMove
)

// ErrReplayScript is returned by LoadInputReplay for malformed scripts.
var ErrReplayScript = errors.New("invalid replay script")

// InputReplay feeds scripted keyboard and mouse input into a World, one
// event per frame. It replaces live input for recorded sessions and
// headless runs.
//
// Supported actions:
//
//	press    {"key": "W"}            hold a key
//	release  {"key": "W"}            release a key
//	tap      {"key": "Space"}        press, then release on the next frame
//	move     {"x": 10, "y": 20}      move the mouse
//	click    {"x", "y", "button"}    press and release a mouse button
//	drag     {"fromX", "fromY", "toX", "toY", "frames", "button"}
//	wait     {"frames": 30}          idle for a number of frames
type InputReplay struct {
	steps     []replayStep
	queue     []replayEvent
	cursor    int
	waitCount int
	done      bool
}

// LoadInputReplay parses a JSON replay script. Key and button names are
// resolved up front so a bad script fails here rather than mid-run.
func LoadInputReplay(jsonData []byte) (*InputReplay, error) {
	var script replayScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse replay script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse replay script: no steps: %w", ErrReplayScript)
	}
	for i := range script.Steps {
		if err := script.Steps[i].resolve(); err != nil {
			return nil, fmt.Errorf("parse replay script: step %d: %w", i, err)
		}
	}
	return &InputReplay{steps: script.Steps}, nil
}

func (st *replayStep) resolve() error {
	switch st.Action {
	case "press", "release", "tap":
		key, err := arc.ParseKeyCode(st.Key)
		if err != nil {
			return err
		}
		st.key = key
	case "click", "drag":
		st.button = arc.MouseButtonLeft
		if st.Button != "" {
			b, err := arc.ParseMouseButton(st.Button)
			if err != nil {
				return err
			}
			st.button = b
		}
	case "move", "wait":
	default:
		return fmt.Errorf("action %q: %w", st.Action, ErrReplayScript)
	}
	return nil
}

// Done reports whether every step has run and every queued event has been
// applied.
func (r *InputReplay) Done() bool {
	return r.done
}

// Step advances the replay by one frame and applies at most one queued
// event to w.
func (r *InputReplay) Step(w *World) {
	r.advance()
	if len(r.queue) == 0 {
		return
	}
	evt := r.queue[0]
	copy(r.queue, r.queue[1:])
	r.queue = r.queue[:len(r.queue)-1]
	evt.apply(w)
}

func (r *InputReplay) advance() {
	if r.done {
		return
	}
	// Pending events drain before the next step runs.
	if len(r.queue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		r.push(replayEvent{kind: replayKey, key: st.key, pressed: true})
	case "release":
		r.push(replayEvent{kind: replayKey, key: st.key})
	case "tap":
		r.push(replayEvent{kind: replayKey, key: st.key, pressed: true})
		r.push(replayEvent{kind: replayKey, key: st.key})
	case "move":
		r.push(replayEvent{kind: replayMove, pos: arc.NewVector2(st.X, st.Y)})
	case "click":
		pos := arc.NewVector2(st.X, st.Y)
		r.push(replayEvent{kind: replayMouse, button: st.button, pos: pos, pressed: true})
		r.push(replayEvent{kind: replayMouse, button: st.button, pos: pos})
	case "drag":
		r.drag(st)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}

// drag queues a press at the start, linearly interpolated moves over
// frames-2 intermediate frames, and a release at the end.
func (r *InputReplay) drag(st replayStep) {
	frames := max(st.Frames, 2)
	from := arc.NewVector2(st.FromX, st.FromY)
	to := arc.NewVector2(st.ToX, st.ToY)
	r.push(replayEvent{kind: replayMouse, button: st.button, pos: from, pressed: true})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		r.push(replayEvent{kind: replayMove, pos: from.Lerp(to, t)})
	}
	r.push(replayEvent{kind: replayMouse, button: st.button, pos: to})
}

func (r *InputReplay) push(e replayEvent) {
	r.queue = append(r.queue, e)
}

func (e replayEvent) apply(w *World) {
	switch e.kind {
	case replayKey:
		if e.pressed {
			w.PressKey(e.key)
		} else {
			w.ReleaseKey(e.key)
		}
	case replayMouse:
		w.SetMousePosition(e.pos)
		if e.pressed {
			w.PressMouseButton(e.button)
		} else {
			w.ReleaseMouseButton(e.button)
		}
	case replayMove:
		w.SetMousePosition(e.pos)
	}
}

// Simulate runs w and rt headlessly with a fixed timestep, feeding input
// from replay until it is done or maxFrames have run. It returns the number
// of frames run.
func Simulate(w *World, rt *arc.Runtime, replay *InputReplay, ts float32, maxFrames int) int {
	frames := 0
	for ; frames < maxFrames; frames++ {
		if replay != nil {
			if replay.Done() {
				break
			}
			replay.Step(w)
		}
		rt.Update(ts)
		w.Step(ts)
	}
	return frames
}
