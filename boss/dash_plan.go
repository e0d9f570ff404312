package boss

const (
	dashBaseCount      = 2
	dashBaseMaxFrames  = 80
	dashFramesPerExtra = 40
)

// DashPlan is computed once when a dash sequence is queued and stays fixed
// until the sequence ends. Every field grows as the boss loses health.
type DashPlan struct {
	Count          int
	AllowedBounces int
	MaxFrames      int
}

// NewDashPlan derives the sequence size and per-dash limits from health.
// All arithmetic is integer with floor division.
func NewDashPlan(health, maxHealth int) DashPlan {
	if maxHealth <= 0 {
		maxHealth = 1
	}
	if health < 0 {
		health = 0
	}
	if health > maxHealth {
		health = maxHealth
	}
	lost := maxHealth - health
	healthPercent := health * 100 / maxHealth

	count := dashBaseCount + (100-healthPercent)/5
	count += lost / max(1, maxHealth/6)

	extra := lost * 3 / max(1, maxHealth)
	return DashPlan{
		Count:          count,
		AllowedBounces: 1 + extra,
		MaxFrames:      dashBaseMaxFrames + extra*dashFramesPerExtra,
	}
}
