package world

import (
	"testing"
)

func TestSpawnGetDespawn(t *testing.T) {
	w := New()
	h := w.Spawn(Entity{Tag: TagPlayer, Pos: V(80, 250)})

	e, ok := w.Get(h)
	if !ok {
		t.Fatal("Get should find a freshly spawned entity")
	}
	if e.Tag != TagPlayer || e.Pos.X != 80 {
		t.Errorf("unexpected entity %+v", e)
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", w.Len())
	}

	if !w.Despawn(h) {
		t.Error("first Despawn should report removal")
	}
	if w.Despawn(h) {
		t.Error("second Despawn should be a no-op")
	}
	if _, ok := w.Get(h); ok {
		t.Error("Get should fail for a despawned entity")
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", w.Len())
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := New()
	old := w.Spawn(Entity{Tag: TagWall})
	w.Despawn(old)

	fresh := w.Spawn(Entity{Tag: TagPlayer})
	if w.Alive(old) {
		t.Error("stale handle should not resolve to the reused slot")
	}
	if w.Despawn(old) {
		t.Error("despawning a stale handle must not remove the new entity")
	}
	if !w.Alive(fresh) {
		t.Error("fresh entity should survive")
	}
}

func TestZeroHandle(t *testing.T) {
	w := New()
	var h Handle
	if !h.IsZero() {
		t.Error("zero handle should report IsZero")
	}
	if w.Despawn(h) || w.Alive(h) {
		t.Error("zero handle should never resolve")
	}
}

func TestFilterAndTagged(t *testing.T) {
	w := New()
	w.Spawn(Entity{Tag: TagPlayer, Vel: V(0, 0)})
	w.Spawn(Entity{Tag: TagWall})
	w.Spawn(Entity{Tag: TagWall})
	w.Spawn(Entity{Tag: TagScoreText, Text: NewText(TextHUD, "Score: ", "0")})

	if got := len(w.Tagged(TagWall)); got != 2 {
		t.Errorf("Tagged(wall) = %d, expected 2", got)
	}
	if got := w.Count(TagPlayer); got != 1 {
		t.Errorf("Count(player) = %d, expected 1", got)
	}
	withVel := w.Filter(func(e *Entity) bool { return e.Vel != nil })
	if len(withVel) != 1 {
		t.Errorf("Filter(vel) = %d, expected 1", len(withVel))
	}
}

func TestEachAllowsDespawn(t *testing.T) {
	w := New()
	for i := 0; i < 5; i++ {
		w.Spawn(Entity{Tag: TagWall, Pos: V(float32(i), 0)})
	}

	visited := 0
	w.Each(func(h Handle, e *Entity) {
		visited++
		w.Despawn(h)
	})
	if visited != 5 {
		t.Errorf("visited %d entities, expected 5", visited)
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d after despawning all", w.Len())
	}
}

func TestClear(t *testing.T) {
	w := New()
	w.Spawn(Entity{Tag: TagBackground})
	w.Spawn(Entity{Tag: TagCamera})
	w.Clear()
	if w.Len() != 0 {
		t.Errorf("Len() = %d after Clear", w.Len())
	}
}

func TestEntityBoxes(t *testing.T) {
	e := Entity{Pos: V(80, 250), Extents: V(45, 35), Size: V(60, 50)}

	box, ok := e.Box()
	if !ok || box.Half.X != 22.5 || box.Half.Y != 17.5 {
		t.Errorf("Box() = %+v, %v", box, ok)
	}
	vis, ok := e.VisualBox()
	if !ok || vis.Half.X != 30 || vis.Half.Y != 25 {
		t.Errorf("VisualBox() = %+v, %v", vis, ok)
	}

	noExtents := Entity{Pos: V(0, 0)}
	if _, ok := noExtents.Box(); ok {
		t.Error("Box() should fail without extents")
	}
	if _, ok := noExtents.VisualBox(); ok {
		t.Error("VisualBox() should fail without size or extents")
	}
}

func TestTextSections(t *testing.T) {
	txt := NewText(TextHUD, "Score: ", "")
	txt.SetSection(1, "12")
	if txt.String() != "Score: 12" {
		t.Errorf("String() = %q", txt.String())
	}

	txt.SetSection(3, "!")
	if len(txt.Sections) != 4 || txt.String() != "Score: 12!" {
		t.Errorf("SetSection should grow sections, got %q", txt.Sections)
	}

	var nilText *Text
	if nilText.String() != "" {
		t.Error("nil text should stringify empty")
	}
	if TagWall.String() != "wall" || Tag(200).String() != "unknown" {
		t.Error("unexpected tag names")
	}
}
