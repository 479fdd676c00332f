// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit        bool
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	RotateLeft  bool
	RotateRight bool
	Grow        bool
	Shrink      bool
	Switch      bool // toggles the probe shape; edge-triggered, not held
	Pressed     []byte
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left        time.Time
	right       time.Time
	up          time.Time
	down        time.Time
	rotateLeft  time.Time
	rotateRight time.Time
	grow        time.Time
	shrink      time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	done     chan struct{}
	stopOnce sync.Once
	state    keyState
	closed   bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream is closed when r returns an error (EOF on disconnect) or after Stop.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case <-s.done:
				return
			default:
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop releases the reader goroutine once it returns from its current read,
// even if nobody drains the stream anymore. Safe to call more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	input := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByte(&s.state, &input, b, now)
	}

	input.Quit = input.Quit || s.closed
	input.Left = now.Sub(s.state.left) < keyHoldDuration
	input.Right = now.Sub(s.state.right) < keyHoldDuration
	input.Up = now.Sub(s.state.up) < keyHoldDuration
	input.Down = now.Sub(s.state.down) < keyHoldDuration
	input.RotateLeft = now.Sub(s.state.rotateLeft) < keyHoldDuration
	input.RotateRight = now.Sub(s.state.rotateRight) < keyHoldDuration
	input.Grow = now.Sub(s.state.grow) < keyHoldDuration
	input.Shrink = now.Sub(s.state.shrink) < keyHoldDuration

	return input
}

// applyByte updates held-key timestamps, or sets one-shot flags on input.
func applyByte(state *keyState, input *Input, b byte, now time.Time) {
	switch b {
	case 'x', 'X', '\x03':
		input.Quit = true
	case '\t', ' ':
		input.Switch = true
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case 'q', 'Q':
		state.rotateLeft = now
	case 'e', 'E':
		state.rotateRight = now
	case '+', '=':
		state.grow = now
	case '-', '_':
		state.shrink = now
	}
}
