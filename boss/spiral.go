package boss

// updateSpiral emits growing rings at an advancing base angle.
func (b *Boss) updateSpiral() {
	t := b.tuning.Spiral
	b.phaseTimer++

	if b.phaseTimer%t.EmitFrames == 0 {
		b.fireRing(t.RingSize(b.phaseTimer), b.spiralAngle, t.Speed)
		b.spiralAngle += t.Step
	}

	if b.phaseTimer >= t.Duration {
		b.armTransition("spiral complete")
	}
}
