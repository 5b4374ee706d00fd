package arcade

import (
	"fmt"
	"image/color"

	"github.com/plus3/coinrush/ecs"
)

// Sprite is what a frontend needs to draw one entity.
type Sprite struct {
	Position Position
	Kind     RoleKind
	PowerUp  PowerUpKind
}

// Size is the drawn extent of the sprite.
func (s Sprite) Size() BoundingBox {
	return Size(s.Kind)
}

// Color returns the fill colour for the sprite.
func (s Sprite) Color() color.RGBA {
	switch s.Kind {
	case RolePlayer:
		return color.RGBA{R: 0, G: 255, B: 0, A: 255}
	case RoleCoin:
		return color.RGBA{R: 255, G: 255, B: 0, A: 255}
	case RoleEnemy:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case RolePowerUp:
		if s.PowerUp == PowerUpSpeed {
			return color.RGBA{R: 0, G: 0, B: 255, A: 255}
		}
		return color.RGBA{R: 0, G: 255, B: 0, A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

var drawOrder = [...]RoleKind{RolePlayer, RoleCoin, RoleEnemy, RolePowerUp}

// Sprites lists players, then coins, then enemies, then power-ups. Obstacles
// and power-ups without a kind are not drawn.
func Sprites(w *ecs.World) []Sprite {
	view := ecs.NewView[struct {
		*Position
		*Role
		PowerUp *PowerUp `ecs:"optional"`
	}](w)

	var groups [len(drawOrder)][]Sprite
	for item := range view.Values() {
		sprite := Sprite{Position: *item.Position, Kind: item.Role.Kind}
		if item.PowerUp != nil {
			sprite.PowerUp = item.PowerUp.Kind
		}

		switch sprite.Kind {
		case RolePlayer:
			groups[0] = append(groups[0], sprite)
		case RoleCoin:
			groups[1] = append(groups[1], sprite)
		case RoleEnemy:
			groups[2] = append(groups[2], sprite)
		case RolePowerUp:
			if sprite.PowerUp != 0 {
				groups[3] = append(groups[3], sprite)
			}
		}
	}

	var out []Sprite
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// PlayerStatus is the HUD view of the first player.
type PlayerStatus struct {
	Found  bool
	Score  uint32
	Health uint32
	Boost  uint32
}

// Status reports the score and health of the first player in creation order.
func Status(w *ecs.World) PlayerStatus {
	view := ecs.NewView[struct {
		*Role
		Score  *Score      `ecs:"optional"`
		Health *Health     `ecs:"optional"`
		Boost  *SpeedBoost `ecs:"optional"`
	}](w)

	for _, id := range w.Entities() {
		item := view.Get(id)
		if item == nil || item.Role.Kind != RolePlayer {
			continue
		}
		status := PlayerStatus{Found: true}
		if item.Score != nil {
			status.Score = item.Score.Value
		}
		if item.Health != nil {
			status.Health = item.Health.Value
		}
		if item.Boost != nil {
			status.Boost = item.Boost.RemainingTicks
		}
		return status
	}
	return PlayerStatus{}
}

// String formats the status as a single HUD line.
func (s PlayerStatus) String() string {
	if !s.Found {
		return "no player"
	}
	line := fmt.Sprintf("Score: %d  Health: %d", s.Score, s.Health)
	if s.Boost > 0 {
		line += fmt.Sprintf("  Boost: %d", s.Boost)
	}
	return line
}
