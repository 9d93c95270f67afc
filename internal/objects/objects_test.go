package objects

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func filled(t *testing.T, n int) *Collection {
	t.Helper()
	c := New(nil)
	for i := 0; i < n; i++ {
		if err := c.AddDefault(); err != nil {
			t.Fatalf("AddDefault #%d: %v", i, err)
		}
	}
	return c
}

func TestCapacityInvariant(t *testing.T) {
	c := New(nil)
	for i := 0; i < MaxObjectCount; i++ {
		index, err := c.Add(mgl32.Vec3{float32(i), 0, 0}, mgl32.Vec3{})
		if err != nil {
			t.Fatalf("Add #%d: unexpected error %v", i, err)
		}
		if index != i {
			t.Errorf("Add #%d: index = %d, want %d", i, index, i)
		}
	}

	if _, err := c.Add(mgl32.Vec3{}, mgl32.Vec3{}); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Add beyond capacity: err = %v, want ErrCapacityExceeded", err)
	}
	if err := c.AddDefault(); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("AddDefault beyond capacity: err = %v, want ErrCapacityExceeded", err)
	}
	if c.Count() != MaxObjectCount {
		t.Errorf("Count = %d, want %d", c.Count(), MaxObjectCount)
	}
}

func TestFloorInvariant(t *testing.T) {
	c := filled(t, 1)
	if err := c.RemoveLast(); !errors.Is(err, ErrBelowMinimum) {
		t.Fatalf("RemoveLast at floor: err = %v, want ErrBelowMinimum", err)
	}
	if c.Count() != 1 {
		t.Errorf("Count = %d, want 1", c.Count())
	}

	empty := New(nil)
	if err := empty.RemoveLast(); !errors.Is(err, ErrBelowMinimum) {
		t.Errorf("RemoveLast on empty: err = %v, want ErrBelowMinimum", err)
	}
}

func TestRejectedAddLeavesStateUntouched(t *testing.T) {
	c := filled(t, MaxObjectCount)
	c.Step(0)
	before := c.Objects()

	if _, err := c.Add(mgl32.Vec3{9, 9, 9}, mgl32.Vec3{1, 1, 1}); err == nil {
		t.Fatal("expected rejection")
	}
	if c.Dirty() {
		t.Error("rejected add set the dirty bit")
	}
	after := c.Objects()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("object %d changed: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestParallelViewsMatchCount(t *testing.T) {
	c := New(nil)
	ops := []string{"add", "add", "add", "remove", "add", "remove", "remove", "remove", "remove", "add"}
	for _, op := range ops {
		switch op {
		case "add":
			_ = c.AddDefault()
		case "remove":
			_ = c.RemoveLast()
		}
		if len(c.Positions()) != c.Count() || len(c.Colors()) != c.Count() {
			t.Fatalf("after %s: positions=%d colors=%d count=%d",
				op, len(c.Positions()), len(c.Colors()), c.Count())
		}
	}
}

func TestStepNoopBelowTwoObjects(t *testing.T) {
	c := New(nil)
	c.Add(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0.5, 0.5, 0.5})
	c.SetDynamicTarget(0, 0)
	c.Step(10)

	obj := c.Objects()[0]
	if obj.Position != (mgl32.Vec3{1, 1, 1}) || obj.Color != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("single object was animated: %+v", obj)
	}
	if !c.Dirty() {
		t.Error("dirty bit cleared without a colour pass")
	}
}

func TestColorWheel(t *testing.T) {
	c := filled(t, 2)
	c.Step(0)

	colors := c.Colors()
	want := []mgl32.Vec3{
		{0, 1, 1}, // 180°
		{1, 0, 0}, // 360° wraps to 0°
	}
	for i := range want {
		if !colors[i].ApproxEqualThreshold(want[i], 1e-2) {
			t.Errorf("color[%d] = %v, want %v", i, colors[i], want[i])
		}
	}
	if c.Dirty() {
		t.Error("dirty bit still set after Step")
	}
}

func TestColorsStableWithoutCountChange(t *testing.T) {
	c := filled(t, 6)
	c.Step(0)
	first := c.Colors()

	c.SetDynamicTarget(0.3, 0.4)
	c.Step(1)
	c.Step(2)
	second := c.Colors()

	if c.Dirty() {
		t.Fatal("dirty bit set without a count change")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("color[%d] changed: %v -> %v", i, first[i], second[i])
		}
	}
}

func TestColorsRespreadAfterCountChange(t *testing.T) {
	c := filled(t, 3)
	c.Step(0)
	three := c.Colors()

	if err := c.AddDefault(); err != nil {
		t.Fatal(err)
	}
	if !c.Dirty() {
		t.Fatal("AddDefault did not set the dirty bit")
	}
	c.Step(1)
	four := c.Colors()

	if three[0] != four[0] {
		t.Errorf("first object should keep the base hue: %v vs %v", three[0], four[0])
	}
	if three[1] == four[1] {
		t.Errorf("second object colour did not re-spread: %v", four[1])
	}
	if four[3] == (mgl32.Vec3{}) {
		t.Error("new object left without a colour")
	}
}

func TestClickColorIsPlaceholder(t *testing.T) {
	c := filled(t, 2)
	c.Step(0)
	if _, err := c.Add(mgl32.Vec3{0, 0, Depth}, mgl32.Vec3{0.1, 0.2, 0.3}); err != nil {
		t.Fatal(err)
	}
	c.Step(1)
	if got := c.Colors()[2]; got == (mgl32.Vec3{0.1, 0.2, 0.3}) {
		t.Errorf("placeholder colour survived the colour pass: %v", got)
	}
}

func TestCaptureConvergence(t *testing.T) {
	c := New(nil)
	c.Add(mgl32.Vec3{0.15, 0.05, Depth}, mgl32.Vec3{})
	c.Add(mgl32.Vec3{2, 0, Depth}, mgl32.Vec3{})
	c.SetDynamicTarget(0, 0)

	prev := c.DynamicTarget().Sub(c.Positions()[0]).Len()
	for step := 0; step < 20; step++ {
		c.Step(float32(step))
		pos := c.Positions()[0]
		dist := c.DynamicTarget().Sub(pos).Len()
		if dist > prev {
			t.Fatalf("step %d: distance grew from %v to %v", step, prev, dist)
		}
		if pos.X() < 0 || pos.Y() < 0 {
			t.Fatalf("step %d: overshot the target: %v", step, pos)
		}
		prev = dist
	}
	if prev > 1e-4 {
		t.Errorf("distance after 20 steps = %v, want ~0", prev)
	}
}

func TestCaptureMovesHalfway(t *testing.T) {
	c := New(nil)
	c.Add(mgl32.Vec3{0.1, 0, Depth}, mgl32.Vec3{})
	c.Add(mgl32.Vec3{2, 0, Depth}, mgl32.Vec3{})
	c.SetDynamicTarget(0, 0)
	c.Step(0)

	if got := c.Positions()[0]; !got.ApproxEqualThreshold(mgl32.Vec3{0.05, 0, Depth}, 1e-6) {
		t.Errorf("captured position = %v, want (0.05, 0, -1)", got)
	}
}

func TestOrbitEasesTowardSlot(t *testing.T) {
	c := filled(t, 4)
	c.SetDynamicTarget(10, 10)

	const clock = 50
	c.Step(clock)

	for i, pos := range c.Positions() {
		angle := float64(clock)*OrbitSpeed + (2*math.Pi/4)*float64(i)
		slot := mgl32.Vec3{
			float32(math.Sin(angle) * OrbitRadiusX),
			float32(math.Cos(angle)*OrbitRadiusY + OrbitBias),
			Depth,
		}
		want := slot.Mul(OrbitEasing)
		if !pos.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("object %d at %v, want %v", i, pos, want)
		}
	}
}

func TestOrbitConvergesToSlot(t *testing.T) {
	c := filled(t, 3)
	c.SetDynamicTarget(10, 10)
	for i := 0; i < 200; i++ {
		c.Step(0)
	}
	slot := mgl32.Vec3{0, OrbitRadiusY + OrbitBias, Depth}
	if got := c.Positions()[0]; !got.ApproxEqualThreshold(slot, 1e-4) {
		t.Errorf("object 0 at %v, want %v", got, slot)
	}
}

func TestDynamicTargetDepth(t *testing.T) {
	c := New(nil)
	c.SetDynamicTarget(1.5, -0.5)
	if got := c.DynamicTarget(); got != (mgl32.Vec3{1.5, -0.5, Depth}) {
		t.Errorf("target = %v", got)
	}
}
