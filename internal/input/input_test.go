package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStream(b ...byte) *Stream {
	s := &Stream{ch: make(chan byte, 64), done: make(chan struct{})}
	for _, c := range b {
		s.ch <- c
	}
	return s
}

func TestReadInputKeys(t *testing.T) {
	now := time.Now()
	s := newTestStream('a', 'w', 'e', '+')

	in := readInputAt(s, now)
	assert.True(t, in.Left)
	assert.True(t, in.Up)
	assert.True(t, in.RotateRight)
	assert.True(t, in.Grow)
	assert.False(t, in.Right)
	assert.False(t, in.Quit)
	assert.Equal(t, []byte("awe+"), in.Pressed)
}

func TestReadInputArrows(t *testing.T) {
	now := time.Now()
	s := newTestStream('\x1b', '[', 'C', '\x1b', '[', 'B')

	in := readInputAt(s, now)
	assert.True(t, in.Right)
	assert.True(t, in.Down)
	assert.False(t, in.Left)
	assert.False(t, in.Quit)
}

func TestReadInputHoldExpires(t *testing.T) {
	now := time.Now()
	s := newTestStream('d')

	require.True(t, readInputAt(s, now).Right)
	assert.True(t, readInputAt(s, now.Add(keyHoldDuration/2)).Right)
	assert.False(t, readInputAt(s, now.Add(2*keyHoldDuration)).Right)
}

func TestReadInputOneShot(t *testing.T) {
	now := time.Now()
	s := newTestStream('\t')

	assert.True(t, readInputAt(s, now).Switch)
	assert.False(t, readInputAt(s, now).Switch)

	s = newTestStream('x')
	assert.True(t, readInputAt(s, now).Quit)
}

func TestStreamCloseQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("l")))

	require.Eventually(t, func() bool {
		return ReadInput(s).Quit
	}, time.Second, time.Millisecond)
	assert.True(t, s.Closed())
}

// endlessReader never runs out of key presses.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'l'
	}
	return len(p), nil
}

func TestStopReleasesReader(t *testing.T) {
	s := StartStream(bufio.NewReader(endlessReader{}))

	// Let the buffer fill so the reader is parked on a send.
	require.Eventually(t, func() bool {
		return len(s.ch) == cap(s.ch)
	}, time.Second, time.Millisecond)

	s.Stop()
	s.Stop()

	exited := make(chan struct{})
	go func() {
		for range s.ch {
		}
		close(exited)
	}()

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still running after Stop")
	}
}
