package game

import (
	"github.com/vovakirdan/flapfish/internal/config"
	"github.com/vovakirdan/flapfish/internal/core"
	"github.com/vovakirdan/flapfish/internal/world"
)

// applyGravity pulls every entity with a velocity downward.
func applyGravity(w *world.World, gravity, dt float32) {
	w.Each(func(_ world.Handle, e *world.Entity) {
		if e.Vel != nil {
			e.Vel.Y -= gravity * dt
		}
	})
}

// applyMovement integrates position, clamps y into the fixed band and derives
// the cosmetic tilt. Hitting either edge of the band zeroes vertical velocity.
func applyMovement(w *world.World, p config.PhysicsConfig, dt float32) {
	w.Each(func(_ world.Handle, e *world.Entity) {
		if e.Pos == nil || e.Vel == nil {
			return
		}
		e.Pos.X += e.Vel.X * dt
		e.Pos.Y += e.Vel.Y * dt

		if e.Pos.Y >= p.MaxY {
			e.Pos.Y = p.MaxY
			e.Vel.Y = 0
		}
		if e.Pos.Y <= p.MinY {
			e.Pos.Y = p.MinY
			e.Vel.Y = 0
		}
		e.Rotation = e.Vel.Y / p.TiltDivisor
	})
}

// applyFlap adds the flap impulse to every player on a jump edge.
func applyFlap(w *world.World, in core.InputFrame, impulse float32) {
	if !in.JustPressed(core.ActionJump) {
		return
	}
	w.Each(func(_ world.Handle, e *world.Entity) {
		if e.Tag == world.TagPlayer && e.Vel != nil {
			e.Vel.Y += impulse
		}
	})
}
