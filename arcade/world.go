package arcade

import (
	"fmt"

	"github.com/plus3/coinrush/ecs"
)

// PlayerComponents is the component set of a player-controlled entity.
func PlayerComponents(x, y float64) []any {
	return []any{
		Position{X: x, Y: y},
		Velocity{},
		Size(RolePlayer),
		Role{Kind: RolePlayer},
		Collidable{},
		Health{Value: PlayerStartHealth},
		Score{},
	}
}

// CoinComponents is the component set of a collectible coin.
func CoinComponents(x, y float64) []any {
	return []any{
		Position{X: x, Y: y},
		Size(RoleCoin),
		Role{Kind: RoleCoin},
		Collidable{},
	}
}

// EnemyComponents is the component set of the enemy placed at world setup.
func EnemyComponents(x, y float64) []any {
	return []any{
		Position{X: x, Y: y},
		Velocity{},
		Size(RoleEnemy),
		Role{Kind: RoleEnemy},
		Collidable{},
		Health{Value: EnemyStartHealth},
	}
}

// SpawnedEnemyComponents is the component set of an enemy created by the spawn timer.
func SpawnedEnemyComponents(x, y float64) []any {
	return []any{
		Position{X: x, Y: y},
		Size(RoleEnemy),
		Role{Kind: RoleEnemy},
		Collidable{},
	}
}

// PowerUpComponents is the component set of a power-up of the given kind.
func PowerUpComponents(x, y float64, kind PowerUpKind) []any {
	return []any{
		Position{X: x, Y: y},
		Size(RolePowerUp),
		Role{Kind: RolePowerUp},
		Collidable{},
		PowerUp{Kind: kind},
	}
}

// ObstacleComponents is the component set of a static obstacle.
func ObstacleComponents(x, y float64, box BoundingBox) []any {
	return []any{
		Position{X: x, Y: y},
		box,
		Role{Kind: RoleObstacle},
		Collidable{},
	}
}

// NewWorld creates an empty world with every arcade component registered.
func NewWorld(opts ...ecs.WorldOption) *ecs.World {
	return ecs.NewWorld(NewRegistry(), opts...)
}

// SetupWorld places the starting player, coin and enemy and returns the player.
func SetupWorld(w *ecs.World) (ecs.EntityId, error) {
	player, err := w.Spawn(PlayerComponents(PlayerStartX, PlayerStartY)...)
	if err != nil {
		return 0, fmt.Errorf("spawn player: %w", err)
	}
	if _, err := w.Spawn(CoinComponents(CoinStartX, CoinStartY)...); err != nil {
		return 0, fmt.Errorf("spawn coin: %w", err)
	}
	if _, err := w.Spawn(EnemyComponents(EnemyStartX, EnemyStartY)...); err != nil {
		return 0, fmt.Errorf("spawn enemy: %w", err)
	}
	return player, nil
}
