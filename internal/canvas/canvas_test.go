package canvas

import (
	"testing"
)

func TestAddObjectInsertionOrder(t *testing.T) {
	c := New()

	a := c.AddObject(KindRectangle, Geometry{X: 10, Y: 10, Width: 50, Height: 50}, Style{})
	b := c.AddObject(KindCircle, Geometry{X: 30, Y: 30, Radius: 20}, Style{})
	d := c.AddObject(KindText, Geometry{X: 40, Y: 40}, Style{FontSize: 12})

	objs := c.Objects()
	if len(objs) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(objs))
	}
	if objs[0].ID != a.ID || objs[1].ID != b.ID || objs[2].ID != d.ID {
		t.Fatalf("unexpected z-order: %s %s %s", objs[0].ID, objs[1].ID, objs[2].ID)
	}
	if a.ID == b.ID || b.ID == d.ID || a.ID == d.ID {
		t.Fatalf("ids must be unique")
	}
}

func TestAddObjectRandomSpawnBand(t *testing.T) {
	c := New()

	for i := 0; i < 20; i++ {
		obj := c.AddObject(KindRectangle, Geometry{Width: 100, Height: 100}, Style{})
		if obj.Geometry.X < spawnMinX || obj.Geometry.X >= spawnMaxX {
			t.Fatalf("x=%v outside spawn band", obj.Geometry.X)
		}
		if obj.Geometry.Y < spawnMinY || obj.Geometry.Y >= spawnMaxY {
			t.Fatalf("y=%v outside spawn band", obj.Geometry.Y)
		}
	}

	// 显式给定位置时不随机
	obj := c.AddObject(KindRectangle, Geometry{X: 50, Y: 50, Width: 100, Height: 100}, Style{})
	if obj.Geometry.X != 50 || obj.Geometry.Y != 50 {
		t.Fatalf("explicit position must be kept, got %v,%v", obj.Geometry.X, obj.Geometry.Y)
	}
}

func TestRemoveObjectForgiving(t *testing.T) {
	c := New()
	a := c.AddObject(KindRectangle, Geometry{X: 1, Y: 1}, Style{})
	c.AddObject(KindCircle, Geometry{X: 2, Y: 2, Radius: 5}, Style{})

	c.RemoveObject(a.ID)
	for _, obj := range c.Objects() {
		if obj.ID == a.ID {
			t.Fatalf("removed object still present")
		}
	}

	// 二次删除同一 ID 是无操作
	c.RemoveObject(a.ID)
	c.RemoveObject("no-such-id")
	if c.Len() != 1 {
		t.Fatalf("expected 1 object, got %d", c.Len())
	}
}

func TestRemoveObjectClearsSelection(t *testing.T) {
	c := New()
	a := c.AddObject(KindRectangle, Geometry{X: 1, Y: 1}, Style{})
	b := c.AddObject(KindCircle, Geometry{X: 2, Y: 2, Radius: 5}, Style{})

	c.Select(a.ID)
	c.RemoveObject(b.ID)
	if c.Selected() != a.ID {
		t.Fatalf("selection must survive removal of another object")
	}

	c.RemoveObject(a.ID)
	if c.Selected() != "" {
		t.Fatalf("selection must be cleared, got %q", c.Selected())
	}
}

func TestDuplicateObject(t *testing.T) {
	c := New()
	src := c.AddObject(KindRectangle, Geometry{X: 50, Y: 60, Width: 100, Height: 80}, Style{Fill: "#fff"})

	dup := c.DuplicateObject(src.ID)
	if dup == nil {
		t.Fatalf("expected duplicate, got nil")
	}
	if dup.ID == src.ID {
		t.Fatalf("duplicate must get a fresh id")
	}
	if dup.Geometry.X != src.Geometry.X+duplicateOffset || dup.Geometry.Y != src.Geometry.Y+duplicateOffset {
		t.Fatalf("unexpected offset: %v,%v", dup.Geometry.X, dup.Geometry.Y)
	}
	if dup.Geometry.Width != 100 || dup.Geometry.Height != 80 || dup.Style.Fill != "#fff" {
		t.Fatalf("duplicate must deep-copy geometry and style")
	}
	if c.Selected() != dup.ID {
		t.Fatalf("duplicate must become the selection")
	}

	if got := c.DuplicateObject("no-such-id"); got != nil {
		t.Fatalf("duplicate of unknown id must be a no-op")
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 objects, got %d", c.Len())
	}
}

func TestDuplicatePreservesPlaceholderMetadata(t *testing.T) {
	c := New()
	reg := NewRegistry()
	def, _ := reg.Resolve("name")
	obj := c.Insert(reg.Instantiate(def))

	dup := c.DuplicateObject(obj.ID)
	if !dup.IsPlaceholder() || dup.Metadata.PlaceholderID != "name" {
		t.Fatalf("duplicate lost placeholder metadata: %+v", dup.Metadata)
	}
}

func TestReorder(t *testing.T) {
	c := New()
	a := c.AddObject(KindRectangle, Geometry{X: 1, Y: 1}, Style{})
	b := c.AddObject(KindCircle, Geometry{X: 2, Y: 2, Radius: 5}, Style{})
	d := c.AddObject(KindText, Geometry{X: 3, Y: 3}, Style{})

	if !c.Reorder(a.ID, Forward) {
		t.Fatalf("forward move expected")
	}
	objs := c.Objects()
	if objs[0].ID != b.ID || objs[1].ID != a.ID || objs[2].ID != d.ID {
		t.Fatalf("unexpected order after forward")
	}

	// 边界无操作
	if c.Reorder(d.ID, Forward) {
		t.Fatalf("topmost forward must be a no-op")
	}
	if c.Reorder(b.ID, Backward) {
		t.Fatalf("bottommost backward must be a no-op")
	}
	if c.Reorder("no-such-id", Forward) {
		t.Fatalf("unknown id must be a no-op")
	}

	if !c.Reorder(d.ID, Backward) {
		t.Fatalf("backward move expected")
	}
	objs = c.Objects()
	if objs[1].ID != d.ID || objs[2].ID != a.ID {
		t.Fatalf("unexpected order after backward")
	}
}

func TestUpdateProperty(t *testing.T) {
	c := New()
	obj := c.AddObject(KindRectangle, Geometry{X: 10, Y: 10, Width: 50, Height: 50}, Style{Fill: "#abc"})

	if !c.UpdateProperty(obj.ID, "x", 99.0) {
		t.Fatalf("expected change")
	}
	if obj.Geometry.X != 99 {
		t.Fatalf("x not updated: %v", obj.Geometry.X)
	}

	// 等值跳过
	if c.UpdateProperty(obj.ID, "x", 99.0) {
		t.Fatalf("equal value must be skipped")
	}
	if c.UpdateProperty(obj.ID, "fill", "#abc") {
		t.Fatalf("equal fill must be skipped")
	}

	if !c.UpdateProperty(obj.ID, "fill", "#def") {
		t.Fatalf("expected fill change")
	}
	if !c.UpdateProperty(obj.ID, "width", 120) {
		t.Fatalf("int value must be accepted for numeric property")
	}
	if obj.Geometry.Width != 120 {
		t.Fatalf("width not updated: %v", obj.Geometry.Width)
	}

	if c.UpdateProperty("no-such-id", "x", 1.0) {
		t.Fatalf("unknown id must be a no-op")
	}
	if c.UpdateProperty(obj.ID, "no-such-prop", 1.0) {
		t.Fatalf("unknown property must be a no-op")
	}
}

func TestSelectUnknownClears(t *testing.T) {
	c := New()
	a := c.AddObject(KindRectangle, Geometry{X: 1, Y: 1}, Style{})
	c.Select(a.ID)
	c.Select("no-such-id")
	if c.Selected() != "" {
		t.Fatalf("selecting unknown id must clear selection")
	}
}
