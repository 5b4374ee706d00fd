package arcade

const (
	// SpeedScale converts velocity units into world units per tick.
	SpeedScale = 5.0

	CoinReward  uint32 = 10
	EnemyDamage uint32 = 10

	// Spawn timers advance by SpawnTimerStep each tick and fire at their threshold.
	SpawnTimerStep        = 0.1
	CoinSpawnThreshold    = 5.0
	EnemySpawnThreshold   = 10.0
	PowerUpSpawnThreshold = 15.0

	PowerUpHealthBonus uint32 = 10
	SpeedBoostFactor          = 2.0
	SpeedBoostSeconds         = 5
)

const (
	PlayerStartX = 400.0
	PlayerStartY = 300.0
	CoinStartX   = 200.0
	CoinStartY   = 200.0
	EnemyStartX  = 600.0
	EnemyStartY  = 100.0

	PlayerStartHealth uint32 = 100
	EnemyStartHealth  uint32 = 30
)

// Size returns the bounding box used for entities of the given role.
func Size(kind RoleKind) BoundingBox {
	switch kind {
	case RolePlayer, RoleEnemy:
		return BoundingBox{Width: 20, Height: 20}
	case RoleCoin, RolePowerUp:
		return BoundingBox{Width: 10, Height: 10}
	}
	return BoundingBox{}
}
