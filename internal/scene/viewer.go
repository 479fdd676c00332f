package scene

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/tomz197/geometry2d/internal/draw"
	"github.com/tomz197/geometry2d/internal/input"
)

// Options configures a Viewer.
type Options struct {
	Scene        *Scene // nil means Default()
	FPS          int    // 0 means defaultFPS
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	IdleTimeout  time.Duration // 0 disables the idle disconnect
}

// Viewer draws one scene to one terminal and moves the probe from its input.
type Viewer struct {
	state        *State
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates the whole frame for one chunked write
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	frameTime    time.Duration
	idleTimeout  time.Duration

	in        input.Input
	delta     time.Duration
	running   bool
	lastInput time.Time
	idle      bool
	redraw    bool // clear the terminal before the next frame
	frames    int
}

// NewViewer creates a viewer reading keys from r and drawing to w.
func NewViewer(r *bufio.Reader, w io.Writer, opts Options) (*Viewer, error) {
	sc := opts.Scene
	if sc == nil {
		var err error
		if sc, err = Default(); err != nil {
			return nil, errors.Wrap(err, "default scene")
		}
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return nil, errors.Wrap(err, "terminal size")
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, float64(sc.Width), float64(sc.Height))
	canvas.SetOffset(offsetCol, offsetRow)

	return &Viewer{
		state:        NewState(sc),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		frameTime:    time.Second / time.Duration(fps),
		idleTimeout:  opts.IdleTimeout,
		running:      true,
		redraw:       true,
		lastInput:    time.Now(),
	}, nil
}

// Run creates a Viewer and runs it until the user quits or r ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	v, err := NewViewer(r, w, opts)
	if err != nil {
		return err
	}
	return v.Run()
}

// State returns the viewer's scene state.
func (v *Viewer) State() *State {
	return v.state
}

// Run starts the frame loop. Blocks until the user quits, the input ends or
// the viewer has been idle for longer than the idle timeout.
func (v *Viewer) Run() error {
	draw.HideCursor(v.writer)
	defer draw.ShowCursor(v.writer)
	defer v.inputStream.Stop()
	draw.ClearScreen(v.writer)

	v.logger.Debug("viewer started",
		"circles", len(v.state.Scene.Circles),
		"segments", len(v.state.Scene.Segments),
		"frame", v.frameTime)

	lastTime := time.Now().Add(-v.frameTime)
	for v.running {
		frameStart := time.Now()
		v.delta = min(frameStart.Sub(lastTime), maxFrameDelta)
		lastTime = frameStart

		v.processInput()
		v.updateScreen()
		v.state.Step(v.in, float32(v.delta.Seconds()))

		if err := v.drawFrame(); err != nil {
			return errors.Wrap(err, "draw frame")
		}
		v.frames++

		elapsed := time.Since(frameStart)
		if elapsed < v.frameTime {
			time.Sleep(v.frameTime - elapsed)
		}
	}

	v.logger.Debug("viewer stopped", "frames", v.frames, "closed", v.inputStream.Closed())
	draw.ClearScreen(v.writer)
	return nil
}

// processInput reads this frame's keys and tracks inactivity.
func (v *Viewer) processInput() {
	v.in = input.ReadInput(v.inputStream)

	wasIdle := v.idle
	idleFor := time.Since(v.lastInput)
	switch {
	case len(v.in.Pressed) > 0:
		v.lastInput = time.Now()
		v.idle = false
	case v.idleTimeout > 0 && idleFor > v.idleTimeout:
		v.logger.Info("disconnecting idle viewer", "idle", idleFor.Round(time.Second))
		v.running = false
	case v.idleTimeout > 0 && idleFor > v.idleTimeout*idleWarnPercent/100:
		v.idle = true
	}

	if v.in.Quit {
		v.running = false
	}
	if v.idle != wasIdle {
		v.redraw = true
	}
}

// updateScreen follows terminal resizes, clamping to the max render resolution.
func (v *Viewer) updateScreen() {
	termWidth, termHeight, err := v.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth == v.canvas.TerminalWidth() && renderHeight == v.canvas.TerminalHeight() &&
		offsetCol == v.canvas.OffsetCol() && offsetRow == v.canvas.OffsetRow() {
		return
	}
	v.logger.Debug("terminal resized", "width", termWidth, "height", termHeight)
	v.canvas.Resize(renderWidth, renderHeight)
	v.canvas.SetOffset(offsetCol, offsetRow)
	v.chunkWriter.SetOffset(offsetCol, offsetRow)
	v.redraw = true
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = max(1, min(termWidth, maxTermWidth))
	renderHeight = max(1, min(termHeight, maxTermHeight))
	offsetCol = max(0, (termWidth-renderWidth)/2)
	offsetRow = max(0, (termHeight-renderHeight)/2)
	return
}
