package arcade

import (
	"log/slog"
	"reflect"

	"github.com/plus3/coinrush/ecs"
)

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectOf builds the collision rectangle of an entity.
func RectOf(pos Position, box BoundingBox) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: box.Width, Height: box.Height}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects reports whether r and o overlap. Rectangles that only share an
// edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return !(r.Right() <= o.Left() ||
		r.Left() >= o.Right() ||
		r.Bottom() <= o.Top() ||
		r.Top() >= o.Bottom())
}

type collider struct {
	id      ecs.EntityId
	rect    Rect
	powerUp PowerUpKind
}

type pickup struct {
	player  ecs.EntityId
	powerUp ecs.EntityId
	kind    PowerUpKind
}

// CollisionSystem tests players against coins, enemies and power-ups.
//
// All pairs are tested against the frame's snapshot first; effects are then
// queued in a fixed order: power-up removal, health penalties, score awards,
// coin removal.
type CollisionSystem struct {
	Colliders ecs.Query[struct {
		Id ecs.EntityId
		*Position
		*BoundingBox
		*Role
		*Collidable
		PowerUp *PowerUp `ecs:"optional"`
	}]

	Policy          ScorePolicy
	PowerUpEffects  bool
	SpeedBoostTicks uint32
	Logger          *slog.Logger

	players  []collider
	coins    []collider
	enemies  []collider
	powerUps []collider

	coinHits  []ecs.EntityId
	awards    []ecs.EntityId
	penalties []ecs.EntityId
	pickups   []pickup
}

func (s *CollisionSystem) Access() ecs.Access {
	return ecs.Access{
		Reads: []reflect.Type{
			ecs.TypeOf[Position](),
			ecs.TypeOf[BoundingBox](),
			ecs.TypeOf[Role](),
			ecs.TypeOf[Collidable](),
			ecs.TypeOf[PowerUp](),
		},
		Writes: []reflect.Type{
			ecs.TypeOf[Score](),
			ecs.TypeOf[Health](),
		},
		Structural: []reflect.Type{
			ecs.TypeOf[Position](),
			ecs.TypeOf[BoundingBox](),
			ecs.TypeOf[Role](),
			ecs.TypeOf[Collidable](),
			ecs.TypeOf[PowerUp](),
			ecs.TypeOf[SpeedBoost](),
		},
	}
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	s.partition()
	s.detect()
	s.commit(frame)
}

func (s *CollisionSystem) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func (s *CollisionSystem) partition() {
	s.players = s.players[:0]
	s.coins = s.coins[:0]
	s.enemies = s.enemies[:0]
	s.powerUps = s.powerUps[:0]

	for item := range s.Colliders.Values() {
		c := collider{id: item.Id, rect: RectOf(*item.Position, *item.BoundingBox)}
		switch item.Role.Kind {
		case RolePlayer:
			s.players = append(s.players, c)
		case RoleCoin:
			s.coins = append(s.coins, c)
		case RoleEnemy:
			s.enemies = append(s.enemies, c)
		case RolePowerUp:
			if item.PowerUp == nil {
				continue
			}
			c.powerUp = item.PowerUp.Kind
			s.powerUps = append(s.powerUps, c)
		}
	}
}

func (s *CollisionSystem) detect() {
	s.coinHits = s.coinHits[:0]
	s.awards = s.awards[:0]
	s.penalties = s.penalties[:0]
	s.pickups = s.pickups[:0]

	for _, player := range s.players {
		for _, coin := range s.coins {
			if coin.id != player.id && player.rect.Intersects(coin.rect) {
				s.coinHits = append(s.coinHits, coin.id)
				s.awards = append(s.awards, player.id)
			}
		}
		for _, enemy := range s.enemies {
			if enemy.id != player.id && player.rect.Intersects(enemy.rect) {
				s.penalties = append(s.penalties, player.id)
			}
		}
		for _, powerUp := range s.powerUps {
			if powerUp.id != player.id && player.rect.Intersects(powerUp.rect) {
				s.pickups = append(s.pickups, pickup{player: player.id, powerUp: powerUp.id, kind: powerUp.powerUp})
			}
		}
	}
}

func (s *CollisionSystem) commit(frame *ecs.UpdateFrame) {
	logger := s.logger()
	commands := frame.Commands

	for _, p := range s.pickups {
		commands.Destroy(p.powerUp)
		logger.Debug("power-up picked up", "player", p.player, "power_up", p.powerUp, "kind", p.kind)
	}
	if s.PowerUpEffects {
		for _, p := range s.pickups {
			commands.Defer(s.powerUpEffect(p))
		}
	}

	for _, player := range s.penalties {
		commands.Defer(func(w *ecs.World) error {
			health := ecs.ReadComponent[Health](w, player)
			if health == nil {
				return nil
			}
			health.Damage(EnemyDamage)
			logger.Debug("enemy contact", "player", player, "health", health.Value)
			return nil
		})
	}

	for _, player := range s.awards {
		commands.Defer(s.award(player))
	}

	for _, coin := range s.coinHits {
		commands.Destroy(coin)
	}
}

func (s *CollisionSystem) award(player ecs.EntityId) func(*ecs.World) error {
	policy := s.Policy
	logger := s.logger()
	return func(w *ecs.World) error {
		switch policy {
		case ScoreAll:
			for _, score := range ecs.GetTable[Score](w).Iter() {
				score.Add(CoinReward)
			}
		default:
			score := ecs.ReadComponent[Score](w, player)
			if score == nil {
				return nil
			}
			score.Add(CoinReward)
			logger.Debug("coin collected", "player", player, "score", score.Value)
		}
		return nil
	}
}

func (s *CollisionSystem) powerUpEffect(p pickup) func(*ecs.World) error {
	boostTicks := s.SpeedBoostTicks
	return func(w *ecs.World) error {
		switch p.kind {
		case PowerUpHealth:
			if health := ecs.ReadComponent[Health](w, p.player); health != nil {
				health.Heal(PowerUpHealthBonus)
			}
			return nil
		case PowerUpSpeed:
			if boostTicks == 0 {
				return nil
			}
			return w.AddComponent(p.player, SpeedBoost{RemainingTicks: boostTicks})
		}
		return nil
	}
}
