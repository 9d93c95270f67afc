// Package objects holds the bounded set of scene objects and the per-frame
// animation that moves and colours them.
package objects

import (
	"errors"
	"math"

	"github.com/ThatOtherAndrew/volumedemo/internal/models"
	"github.com/crazy3lf/colorconv"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	// MaxObjectCount is bounded by the uniform array size in the shaders.
	MaxObjectCount = 18
	MinObjectCount = 1

	AttractRadius = 0.2
	Depth         = -1.0

	OrbitSpeed    = 0.01
	OrbitRadiusX  = 2.0
	OrbitRadiusY  = 0.7
	OrbitBias     = 0.25
	OrbitEasing   = 0.1
	CaptureEasing = 0.5

	BaseHue = 180.0
)

var (
	ErrCapacityExceeded = errors.New("object capacity exceeded")
	ErrBelowMinimum     = errors.New("object count at minimum")
)

type Collection struct {
	objects      []models.Object
	countChanged bool
	target       mgl32.Vec3
	log          *zap.Logger
}

func New(log *zap.Logger) *Collection {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collection{
		objects: make([]models.Object, 0, MaxObjectCount),
		log:     log,
	}
}

// Add appends an object and returns its index. The colour is replaced on the
// next Step because the count changed.
func (c *Collection) Add(pos, color mgl32.Vec3) (int, error) {
	if len(c.objects) == MaxObjectCount {
		return 0, ErrCapacityExceeded
	}
	index := len(c.objects)
	c.objects = append(c.objects, models.Object{Position: pos, Color: color})
	c.countChanged = true
	return index, nil
}

func (c *Collection) AddDefault() error {
	_, err := c.Add(mgl32.Vec3{}, mgl32.Vec3{})
	return err
}

// RemoveLast drops the newest object. The user object at index 0 is never
// removed.
func (c *Collection) RemoveLast() error {
	if len(c.objects) <= MinObjectCount {
		return ErrBelowMinimum
	}
	c.objects = c.objects[:len(c.objects)-1]
	c.countChanged = true
	return nil
}

func (c *Collection) SetDynamicTarget(x, y float32) {
	c.target = mgl32.Vec3{x, y, Depth}
}

func (c *Collection) DynamicTarget() mgl32.Vec3 {
	return c.target
}

func (c *Collection) Count() int {
	return len(c.objects)
}

// Dirty reports whether colours will be recomputed on the next Step.
func (c *Collection) Dirty() bool {
	return c.countChanged
}

func (c *Collection) Objects() []models.Object {
	out := make([]models.Object, len(c.objects))
	copy(out, c.objects)
	return out
}

func (c *Collection) Positions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(c.objects))
	for i, o := range c.objects {
		out[i] = o.Position
	}
	return out
}

func (c *Collection) Colors() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(c.objects))
	for i, o := range c.objects {
		out[i] = o.Color
	}
	return out
}

// Step advances every object by one animation step. Objects within
// AttractRadius of the dynamic target are pulled halfway towards it; all
// others ease towards their slot on the orbit. There is no hysteresis at
// the radius.
func (c *Collection) Step(clock float32) {
	count := len(c.objects)
	if count < 2 {
		return
	}

	hue := BaseHue
	hueStep := 360.0 / float64(count)

	for i := range c.objects {
		obj := &c.objects[i]

		if c.countChanged {
			obj.Color = c.wheelColor(math.Mod(hue, 360))
			hue += hueStep
		}

		distance := c.target.Sub(obj.Position)

		var movement mgl32.Vec3
		if distance.Len() < AttractRadius {
			movement = distance.Mul(CaptureEasing)
		} else {
			phase := (2 * math.Pi / float64(count)) * float64(i)
			angle := float64(clock)*OrbitSpeed + phase
			orbit := mgl32.Vec3{
				float32(math.Sin(angle) * OrbitRadiusX),
				float32(math.Cos(angle)*OrbitRadiusY + OrbitBias),
				Depth,
			}
			movement = orbit.Sub(obj.Position).Mul(OrbitEasing)
		}

		obj.Position = obj.Position.Add(movement)
	}

	c.countChanged = false
}

func (c *Collection) wheelColor(hue float64) mgl32.Vec3 {
	r, g, b, err := colorconv.HSVToRGB(hue, 1, 1)
	if err != nil {
		c.log.Warn("hue out of range", zap.Float64("hue", hue), zap.Error(err))
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}
