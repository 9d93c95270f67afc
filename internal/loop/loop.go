// Package loop drives the per-frame cycle: drain input, update the scene,
// draw, swap.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThatOtherAndrew/volumedemo/internal/input"
	"github.com/ThatOtherAndrew/volumedemo/internal/models"
	"go.uber.org/zap"
)

type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EventSource must never block: PollEvent reports false once no events are
// pending.
type EventSource interface {
	PollEvent() (models.Event, bool)
}

type Scene interface {
	Apply(models.SceneSettings) models.Snapshot
}

type Renderer interface {
	Draw(models.Snapshot) error
}

type Swapper interface {
	SwapBuffers() error
}

// Window is what the loop needs from the platform window.
type Window interface {
	EventSource
	Swapper
}

type Loop struct {
	window   Window
	scene    Scene
	renderer Renderer
	settings models.SceneSettings
	state    State
	err      error
	log      *zap.Logger

	frames  int
	started time.Time
}

func New(window Window, scene Scene, renderer Renderer, initial models.SceneSettings, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		window:   window,
		scene:    scene,
		renderer: renderer,
		settings: initial,
		state:    Running,
		log:      log,
	}
}

func (l *Loop) State() State {
	return l.state
}

// Settings returns the working settings that the next frame accumulates
// input into.
func (l *Loop) Settings() models.SceneSettings {
	return l.settings
}

// Frames returns how many iterations have completed.
func (l *Loop) Frames() int {
	return l.frames
}

// Err returns the failure that terminated the loop, if any.
func (l *Loop) Err() error {
	return l.err
}

// Step runs one iteration and reports whether the loop is still running.
// An iteration that has started always runs to the end, even when a quit
// or a failure terminates the loop part way through.
func (l *Loop) Step(ctx context.Context) bool {
	if l.state == Terminated {
		return false
	}
	if l.frames == 0 {
		l.started = time.Now()
	}

	if ctx.Err() != nil {
		l.terminate("context cancelled")
	}

	l.drain()

	snapshot := l.scene.Apply(l.settings)
	l.settings = l.settings.Consumed()

	var drawErr, swapErr error
	if err := l.renderer.Draw(snapshot); err != nil {
		drawErr = fmt.Errorf("draw frame %d: %w", l.frames, err)
		l.log.Error("draw failed", zap.Int("frame", l.frames), zap.Error(err))
		l.terminate("draw failed")
	}
	if err := l.window.SwapBuffers(); err != nil {
		swapErr = fmt.Errorf("swap buffers: %w", err)
		l.log.Error("swap failed", zap.Int("frame", l.frames), zap.Error(err))
		l.terminate("swap failed")
	}
	if drawErr != nil || swapErr != nil {
		l.err = errors.Join(l.err, drawErr, swapErr)
	}

	l.frames++
	return l.state == Running
}

// drain feeds pending events through the reducer until the queue is empty
// or a quit is requested.
func (l *Loop) drain() {
	for {
		ev, ok := l.window.PollEvent()
		if !ok {
			return
		}
		var sig input.Signal
		l.settings, sig = input.Reduce(l.settings, ev)
		if sig == input.Quit {
			l.terminate("quit requested")
			return
		}
	}
}

func (l *Loop) terminate(reason string) {
	if l.state == Terminated {
		return
	}
	l.state = Terminated
	l.log.Debug("frame loop terminating", zap.String("reason", reason), zap.Int("frame", l.frames))
}

// Run iterates until the loop terminates and returns the draw or swap
// failure that ended it. A quit or a cancelled context returns nil.
func (l *Loop) Run(ctx context.Context) error {
	for l.Step(ctx) {
	}

	elapsed := time.Since(l.started)
	fps := 0.0
	if elapsed > 0 {
		fps = float64(l.frames) / elapsed.Seconds()
	}
	l.log.Info("frame loop stopped",
		zap.Int("frames", l.frames),
		zap.Duration("elapsed", elapsed),
		zap.Float64("fps", fps),
	)
	return l.err
}
