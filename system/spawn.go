package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bullethell/obj"
)

// bossSpawn resolves the boss start point: x is a fraction of the width,
// y is pixels from the top.
func bossSpawn(cfg Config) cp.Vector {
	return cp.Vector{X: float64(cfg.Width) * cfg.BossSpawnX, Y: cfg.BossSpawnY}
}

// playerSpawn is centred horizontally, PlayerSpawnY pixels above the bottom.
func playerSpawn(cfg Config) cp.Vector {
	return cp.Vector{X: float64(cfg.Width) / 2, Y: float64(cfg.Height) - cfg.PlayerSpawnY}
}

// advanceHazards moves every enemy projectile and drops the ones that left
// the screen. The slice is compacted in place.
func advanceHazards(hazards []*obj.EnemyProjectile, w, h int) []*obj.EnemyProjectile {
	writeIdx := 0
	for _, p := range hazards {
		p.Update()
		if p.OffScreen(w, h) {
			continue
		}
		hazards[writeIdx] = p
		writeIdx++
	}
	for i := writeIdx; i < len(hazards); i++ {
		hazards[i] = nil
	}
	return hazards[:writeIdx]
}
