package spawn

import (
	"fmt"

	"github.com/ThatOtherAndrew/volumedemo/internal/objects"
	"github.com/go-gl/mathgl/mgl32"
)

const DefaultInitialObjects = 6

// InitialBatch seeds the collection with n objects at the origin. Their
// colours and positions settle on the first animation steps.
func InitialBatch(c *objects.Collection, n int) error {
	for i := 0; i < n; i++ {
		if err := c.AddDefault(); err != nil {
			return fmt.Errorf("seed object %d of %d: %w", i+1, n, err)
		}
	}
	return nil
}

// AtClick adds an object at the clicked world position. A full collection
// is not an error here: the click is simply ignored.
func AtClick(c *objects.Collection, x, y float32) (index int, added bool) {
	if c.Count() >= objects.MaxObjectCount {
		return 0, false
	}
	index, err := c.Add(mgl32.Vec3{x, y, objects.Depth}, mgl32.Vec3{})
	if err != nil {
		return 0, false
	}
	return index, true
}
