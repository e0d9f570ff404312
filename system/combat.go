package system

import (
	"github.com/milk9111/bullethell/component"
	"github.com/milk9111/bullethell/obj"
)

const contactDamage = 1

// resolveCombat settles every hit for the frame: player shots against the
// boss body, enemy projectiles against the player, and boss contact (body
// and beams) against the player.
func (w *World) resolveCombat() {
	w.Shots.Update(w.Width, w.Height, func(b *obj.Bullet) bool {
		if !w.Boss.BodyContains(b.Pos.X, b.Pos.Y) {
			return false
		}
		if w.Boss.ApplyDamage(b.Damage) {
			w.emit(component.EventDamageApplied, component.FactionPlayer, component.FactionEnemy, b.Damage, "shot")
		} else {
			w.emit(component.EventBlocked, component.FactionPlayer, component.FactionEnemy, 0, "shot")
		}
		return true
	})

	if !w.Player.Alive() {
		return
	}
	pos, r := w.Player.Pos, w.Player.Radius()

	writeIdx := 0
	for _, p := range w.Hazards {
		if p.Damage > 0 && p.CheckCollision(pos, r) {
			if w.Player.Hit(p.Damage, w.Frame) {
				w.emit(component.EventDamageApplied, component.FactionEnemy, component.FactionPlayer, p.Damage, "projectile")
			}
			continue
		}
		w.Hazards[writeIdx] = p
		writeIdx++
	}
	for i := writeIdx; i < len(w.Hazards); i++ {
		w.Hazards[i] = nil
	}
	w.Hazards = w.Hazards[:writeIdx]

	if w.Boss.CollidesWith(pos.X, pos.Y) && w.Player.Hit(contactDamage, w.Frame) {
		w.emit(component.EventDamageApplied, component.FactionEnemy, component.FactionPlayer, contactDamage, "contact")
	}
}

func (w *World) emit(typ component.CombatEventType, attacker, target component.Faction, damage int, source string) {
	pos := w.Player.Pos
	if target == component.FactionEnemy {
		pos = w.Boss.Position()
	}
	w.events.Emit(component.CombatEvent{
		Type:     typ,
		Attacker: attacker,
		Target:   target,
		Damage:   damage,
		Source:   source,
		Frame:    w.Frame,
		PosX:     pos.X,
		PosY:     pos.Y,
	})
}
