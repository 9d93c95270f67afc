package spawn

import (
	"errors"
	"testing"

	"github.com/ThatOtherAndrew/volumedemo/internal/objects"
	"github.com/go-gl/mathgl/mgl32"
)

func TestInitialBatch(t *testing.T) {
	c := objects.New(nil)
	if err := InitialBatch(c, DefaultInitialObjects); err != nil {
		t.Fatal(err)
	}
	if c.Count() != DefaultInitialObjects {
		t.Errorf("Count = %d, want %d", c.Count(), DefaultInitialObjects)
	}
	if !c.Dirty() {
		t.Error("seeded collection should be recoloured on the first step")
	}
}

func TestInitialBatchOverCapacity(t *testing.T) {
	c := objects.New(nil)
	err := InitialBatch(c, objects.MaxObjectCount+1)
	if !errors.Is(err, objects.ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
	if c.Count() != objects.MaxObjectCount {
		t.Errorf("Count = %d, want %d", c.Count(), objects.MaxObjectCount)
	}
}

func TestAtClick(t *testing.T) {
	c := objects.New(nil)
	index, added := AtClick(c, 0.5, -0.25)
	if !added || index != 0 {
		t.Fatalf("AtClick = (%d, %v), want (0, true)", index, added)
	}
	if got := c.Positions()[0]; got != (mgl32.Vec3{0.5, -0.25, objects.Depth}) {
		t.Errorf("position = %v", got)
	}
}

func TestAtClickWhenFull(t *testing.T) {
	c := objects.New(nil)
	if err := InitialBatch(c, objects.MaxObjectCount); err != nil {
		t.Fatal(err)
	}
	if _, added := AtClick(c, 0, 0); added {
		t.Error("click added an object past capacity")
	}
	if c.Count() != objects.MaxObjectCount {
		t.Errorf("Count = %d, want %d", c.Count(), objects.MaxObjectCount)
	}
}
