package models

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Object struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// NoiseMode values are read directly by the fragment shaders.
type NoiseMode uint32

const (
	NoiseOn  NoiseMode = 1
	NoiseOff NoiseMode = 2
)

func (m NoiseMode) Toggle() NoiseMode {
	if m == NoiseOn {
		return NoiseOff
	}
	return NoiseOn
}

func (m NoiseMode) String() string {
	switch m {
	case NoiseOn:
		return "noise"
	case NoiseOff:
		return "no-noise"
	default:
		return "unknown"
	}
}

// Render modes understood by the shaders. RenderMode is kept as a plain
// uint32 tag; values outside this list fall through to the shader's
// fallback branch.
const (
	RenderBeauty uint32 = iota
	RenderLambert
	RenderPhong
	RenderFresnel
	RenderNormals
	RenderExperimental
)

// Triggers are edge-triggered: they hold for the frame they were raised in
// and are cleared once the scene has consumed them.
type Triggers struct {
	TimeOffset       float32
	AddObjectClicked bool
	RemoveObject     bool
	AddObject        bool
}

type SceneSettings struct {
	TimeStep   bool
	RenderMode uint32
	DynamicX   float32
	DynamicY   float32
	Noise      NoiseMode
	Triggers   Triggers
}

// Consumed returns the settings with every trigger cleared, ready to
// accumulate the next frame's input.
func (s SceneSettings) Consumed() SceneSettings {
	s.Triggers = Triggers{}
	return s
}

type Snapshot struct {
	Clock      float32
	RenderMode uint32
	Noise      NoiseMode
	Count      int
	Positions  []mgl32.Vec3
	Colors     []mgl32.Vec3
}

type EventType int

const (
	EventPointerMove EventType = iota
	EventButtonPress
	EventKeyPress
	EventClose
)

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyLeft
	KeyRight
	KeyBackspace
	KeyChar
)

// Event is a platform input event. X and Y are window pixel coordinates
// for pointer events; Char carries upper-case letters and digits when Key
// is KeyChar.
type Event struct {
	Type EventType
	Key  Key
	Char rune
	X, Y float64
}
