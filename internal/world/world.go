// Package world is the entity store shared by the game core and its hosts.
//
// Entities live in an arena of slots addressed by generational handles.
// Each entity carries an optional set of components; systems select what they
// operate on with explicit filters instead of type-keyed queries.
package world

import (
	"github.com/vovakirdan/flapfish/internal/core"
)

// Handle identifies an entity. A handle goes stale when its entity is
// despawned, even if the slot is later reused. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// Tag marks what role an entity plays.
type Tag uint8

const (
	TagNone Tag = iota
	TagCamera
	TagBackground
	TagPlayer
	TagWall
	TagScoreText
	TagCountdownText
	TagGameOverText
	TagMenuText
)

var tagNames = [...]string{
	TagNone:          "none",
	TagCamera:        "camera",
	TagBackground:    "background",
	TagPlayer:        "player",
	TagWall:          "wall",
	TagScoreText:     "score",
	TagCountdownText: "countdown",
	TagGameOverText:  "game-over",
	TagMenuText:      "menu",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Sprite tells hosts how to draw an entity's visual box.
type Sprite uint8

const (
	SpriteNone Sprite = iota
	SpriteBackground
	SpriteFish
	SpritePipe
)

// TextStyle tells hosts where and how large to draw a text entity.
type TextStyle uint8

const (
	TextHUD    TextStyle = iota // top-left corner, small
	TextBanner                  // centered, large
	TextHint                    // centered below the banner, small
)

// Text is a sequence of text sections drawn back to back.
type Text struct {
	Sections []string
	Style    TextStyle
}

// NewText creates a text component from sections.
func NewText(style TextStyle, sections ...string) *Text {
	return &Text{Sections: sections, Style: style}
}

// String joins all sections.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	n := 0
	for _, s := range t.Sections {
		n += len(s)
	}
	b := make([]byte, 0, n)
	for _, s := range t.Sections {
		b = append(b, s...)
	}
	return string(b)
}

// SetSection overwrites section i, growing the section list if needed.
func (t *Text) SetSection(i int, value string) {
	for len(t.Sections) <= i {
		t.Sections = append(t.Sections, "")
	}
	t.Sections[i] = value
}

// Entity is the component set of one entity. Nil pointer components are absent.
type Entity struct {
	Tag      Tag
	Pos      *core.Vec2 // center, play-field units
	Vel      *core.Vec2 // units per second
	Extents  *core.Vec2 // collision width and height
	Size     *core.Vec2 // visual width and height
	Rotation float32    // radians about the forward axis, cosmetic
	Z        float32    // draw order, larger on top
	Sprite   Sprite
	Text     *Text
}

// Box returns the entity's collision box when it has both a position and extents.
func (e *Entity) Box() (core.Box, bool) {
	if e.Pos == nil || e.Extents == nil {
		return core.Box{}, false
	}
	return core.BoxAt(*e.Pos, e.Extents.X, e.Extents.Y), true
}

// VisualBox returns the box hosts should draw, falling back to extents.
func (e *Entity) VisualBox() (core.Box, bool) {
	if e.Pos == nil {
		return core.Box{}, false
	}
	switch {
	case e.Size != nil:
		return core.BoxAt(*e.Pos, e.Size.X, e.Size.Y), true
	case e.Extents != nil:
		return core.BoxAt(*e.Pos, e.Extents.X, e.Extents.Y), true
	}
	return core.Box{}, false
}

// V is shorthand for allocating a component vector.
func V(x, y float32) *core.Vec2 {
	return &core.Vec2{X: x, Y: y}
}

type slot struct {
	gen    uint32
	alive  bool
	entity Entity
}

// World is a single-threaded entity arena.
type World struct {
	slots []*slot
	free  []uint32
	live  int
}

// New creates an empty world.
func New() *World {
	return &World{
		slots: make([]*slot, 0, 32),
	}
}

// Spawn stores e and returns its handle.
func (w *World) Spawn(e Entity) Handle {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, &slot{})
	}

	s := w.slots[idx]
	s.gen++
	s.alive = true
	s.entity = e
	w.live++
	return Handle{index: idx, gen: s.gen}
}

// Get returns the entity for h, or false if h is stale.
// The pointer stays valid until the entity is despawned.
func (w *World) Get(h Handle) (*Entity, bool) {
	s := w.lookup(h)
	if s == nil {
		return nil, false
	}
	return &s.entity, true
}

// Alive reports whether h refers to a live entity.
func (w *World) Alive(h Handle) bool {
	return w.lookup(h) != nil
}

// Despawn removes the entity behind h. Stale or zero handles are ignored;
// the return value reports whether anything was removed.
func (w *World) Despawn(h Handle) bool {
	s := w.lookup(h)
	if s == nil {
		return false
	}
	s.alive = false
	s.entity = Entity{}
	w.free = append(w.free, h.index)
	w.live--
	return true
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.live
}

// Each calls fn for every live entity in slot order.
// fn may despawn entities; entities spawned during the walk may be skipped.
func (w *World) Each(fn func(Handle, *Entity)) {
	slots := w.slots
	for i, s := range slots {
		if !s.alive {
			continue
		}
		fn(Handle{index: uint32(i), gen: s.gen}, &s.entity)
	}
}

// Filter returns handles of live entities matching pred.
func (w *World) Filter(pred func(*Entity) bool) []Handle {
	var out []Handle
	w.Each(func(h Handle, e *Entity) {
		if pred(e) {
			out = append(out, h)
		}
	})
	return out
}

// Tagged returns handles of live entities with the given tag.
func (w *World) Tagged(tag Tag) []Handle {
	return w.Filter(func(e *Entity) bool { return e.Tag == tag })
}

// Count returns the number of live entities with the given tag.
func (w *World) Count(tag Tag) int {
	n := 0
	w.Each(func(_ Handle, e *Entity) {
		if e.Tag == tag {
			n++
		}
	})
	return n
}

// Clear despawns every entity.
func (w *World) Clear() {
	w.Each(func(h Handle, _ *Entity) {
		w.Despawn(h)
	})
}

func (w *World) lookup(h Handle) *slot {
	if h.gen == 0 || int(h.index) >= len(w.slots) {
		return nil
	}
	s := w.slots[h.index]
	if !s.alive || s.gen != h.gen {
		return nil
	}
	return s
}
