package update

import (
	"github.com/ThatOtherAndrew/volumedemo/internal/models"
	"github.com/ThatOtherAndrew/volumedemo/internal/objects"
	"github.com/ThatOtherAndrew/volumedemo/internal/spawn"
	"go.uber.org/zap"
)

// StepDelta is how far the animation clock advances per frame while time
// stepping is enabled.
const StepDelta = 1.0

type Controller struct {
	objects *objects.Collection
	clock   float32
	log     *zap.Logger
}

func New(c *objects.Collection, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{objects: c, log: log}
}

func (u *Controller) Clock() float32 {
	return u.clock
}

// Apply consumes one frame of settings and returns what the renderer needs
// to draw it. Rejected adds and removes are logged and otherwise ignored.
func (u *Controller) Apply(settings models.SceneSettings) models.Snapshot {
	if settings.TimeStep {
		u.clock += StepDelta
	}
	u.clock += settings.Triggers.TimeOffset

	u.objects.SetDynamicTarget(settings.DynamicX, settings.DynamicY)

	if settings.Triggers.RemoveObject {
		if err := u.objects.RemoveLast(); err != nil {
			u.log.Warn("remove object rejected",
				zap.Error(err), zap.Int("count", u.objects.Count()))
		}
	}

	if settings.Triggers.AddObject {
		if err := u.objects.AddDefault(); err != nil {
			u.log.Warn("add object rejected",
				zap.Error(err), zap.Int("count", u.objects.Count()))
		}
	}

	if settings.Triggers.AddObjectClicked {
		spawn.AtClick(u.objects, settings.DynamicX, settings.DynamicY)
	}

	u.objects.Step(u.clock)

	return models.Snapshot{
		Clock:      u.clock,
		RenderMode: settings.RenderMode,
		Noise:      settings.Noise,
		Count:      u.objects.Count(),
		Positions:  u.objects.Positions(),
		Colors:     u.objects.Colors(),
	}
}
