// Package input turns platform events into scene settings.
package input

import (
	"github.com/ThatOtherAndrew/volumedemo/internal/models"
)

type Signal int

const (
	Continue Signal = iota
	Quit
)

func (s Signal) String() string {
	if s == Quit {
		return "quit"
	}
	return "continue"
}

// Screen to world mapping for the 1280x720 reference window.
const (
	ReferenceWidth  = 1280.0
	ReferenceHeight = 720.0
	WorldWidth      = 6.0
	HorizonY        = 350.0
	MaxPointerY     = 500.0

	ScrubUnit = 1.0
)

// Designated letter keys.
const (
	AddKey    = 'A'
	RemoveKey = 'D'
	NoiseKey  = 'N'
)

// Defaults returns the settings the first frame starts from.
func Defaults() models.SceneSettings {
	return models.SceneSettings{
		TimeStep:   true,
		RenderMode: models.RenderBeauty,
		Noise:      models.NoiseOff,
	}
}

// ToWorld maps window pixel coordinates onto the object plane.
func ToWorld(x, y float64) (float32, float32) {
	y = min(y, MaxPointerY)
	wx := x/ReferenceWidth*WorldWidth - WorldWidth/2
	wy := (HorizonY - y) / HorizonY
	return float32(wx), float32(wy)
}

// Reduce folds one event into the settings. Events it does not recognise
// leave the settings unchanged.
func Reduce(s models.SceneSettings, ev models.Event) (models.SceneSettings, Signal) {
	switch ev.Type {
	case models.EventClose:
		return s, Quit

	case models.EventPointerMove:
		s.DynamicX, s.DynamicY = ToWorld(ev.X, ev.Y)

	case models.EventButtonPress:
		s.DynamicX, s.DynamicY = ToWorld(ev.X, ev.Y)
		s.Triggers.AddObjectClicked = true

	case models.EventKeyPress:
		return reduceKey(s, ev)
	}
	return s, Continue
}

func reduceKey(s models.SceneSettings, ev models.Event) (models.SceneSettings, Signal) {
	switch ev.Key {
	case models.KeyEscape:
		return s, Quit
	case models.KeySpace:
		s.TimeStep = !s.TimeStep
	case models.KeyRight:
		s.Triggers.TimeOffset = ScrubUnit
	case models.KeyLeft:
		s.Triggers.TimeOffset = -ScrubUnit
	case models.KeyBackspace:
		s.Triggers.RemoveObject = true
	case models.KeyChar:
		switch c := ev.Char; {
		case c >= '0' && c <= '9':
			s.RenderMode = uint32(c - '0')
		case c == RemoveKey:
			s.Triggers.RemoveObject = true
		case c == AddKey:
			s.Triggers.AddObject = true
		case c == NoiseKey:
			s.Noise = s.Noise.Toggle()
		}
	}
	return s, Continue
}
