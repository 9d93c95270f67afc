// Package window owns the glfw window and GL context and turns glfw
// callbacks into a queue of platform-neutral events.
package window

import (
	"fmt"

	"github.com/ThatOtherAndrew/volumedemo/internal/input"
	"github.com/ThatOtherAndrew/volumedemo/internal/models"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

type Window struct {
	glfw   *glfw.Window
	queue  []models.Event
	pumped bool
	log    *zap.Logger
}

// New creates a fixed-size window with a 4.1 core context and makes the
// context current on the calling thread.
func New(cfg Config, log *zap.Logger) (w *Window, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	defer func() {
		if r := recover(); r != nil {
			err = &Error{msg: "failed to create window", err: fmt.Errorf("%v", r)}
		}
	}()

	if err := glfw.Init(); err != nil {
		return nil, &Error{msg: "failed to initialise glfw", err: err}
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	gw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &Error{msg: "failed to create window", err: err}
	}
	gw.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w = &Window{glfw: gw, log: log}
	gw.SetCursorPosCallback(w.onCursor)
	gw.SetMouseButtonCallback(w.onMouseButton)
	gw.SetKeyCallback(w.onKey)
	gw.SetCloseCallback(w.onClose)

	fbWidth, fbHeight := gw.GetFramebufferSize()
	log.Debug("window created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("framebuffer_width", fbWidth),
		zap.Int("framebuffer_height", fbHeight),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// PollEvent returns the next queued event without blocking. glfw is pumped
// once at the start of every drain cycle.
func (w *Window) PollEvent() (models.Event, bool) {
	if !w.pumped {
		glfw.PollEvents()
		w.pumped = true
	}
	if len(w.queue) == 0 {
		w.pumped = false
		return models.Event{}, false
	}
	ev := w.queue[0]
	w.queue = w.queue[1:]
	return ev, true
}

// SwapBuffers presents the frame. glfw reports context loss by panicking;
// that is returned as an error.
func (w *Window) SwapBuffers() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{msg: "failed to swap buffers", err: fmt.Errorf("%v", r)}
		}
	}()
	w.glfw.SwapBuffers()
	return nil
}

func (w *Window) Size() (int, int) {
	return w.glfw.GetSize()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.glfw.GetFramebufferSize()
}

func (w *Window) Close() {
	w.glfw.Destroy()
	glfw.Terminate()
}

func (w *Window) push(ev models.Event) {
	w.queue = append(w.queue, ev)
}

// reference maps window coordinates onto the reference resolution the
// input mapping is defined for.
func (w *Window) reference(x, y float64) (float64, float64) {
	width, height := w.glfw.GetSize()
	if width <= 0 || height <= 0 {
		return x, y
	}
	return x * input.ReferenceWidth / float64(width), y * input.ReferenceHeight / float64(height)
}

func (w *Window) onCursor(_ *glfw.Window, x, y float64) {
	x, y = w.reference(x, y)
	w.push(models.Event{Type: models.EventPointerMove, X: x, Y: y})
}

func (w *Window) onMouseButton(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	x, y := w.reference(gw.GetCursorPos())
	w.push(models.Event{Type: models.EventButtonPress, X: x, Y: y})
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	ev, ok := translateKey(key)
	if !ok {
		return
	}
	w.push(ev)
}

func (w *Window) onClose(gw *glfw.Window) {
	gw.SetShouldClose(false)
	w.log.Debug("window close requested")
	w.push(models.Event{Type: models.EventClose})
}

func translateKey(key glfw.Key) (models.Event, bool) {
	ev := models.Event{Type: models.EventKeyPress}
	switch {
	case key == glfw.KeyEscape:
		ev.Key = models.KeyEscape
	case key == glfw.KeySpace:
		ev.Key = models.KeySpace
	case key == glfw.KeyLeft:
		ev.Key = models.KeyLeft
	case key == glfw.KeyRight:
		ev.Key = models.KeyRight
	case key == glfw.KeyBackspace:
		ev.Key = models.KeyBackspace
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		ev.Key, ev.Char = models.KeyChar, rune('A'+(key-glfw.KeyA))
	case key >= glfw.Key0 && key <= glfw.Key9:
		ev.Key, ev.Char = models.KeyChar, rune('0'+(key-glfw.Key0))
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		ev.Key, ev.Char = models.KeyChar, rune('0'+(key-glfw.KeyKP0))
	default:
		return models.Event{}, false
	}
	return ev, true
}
