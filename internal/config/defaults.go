package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/meme.yaml
var defaultMemeYAML []byte

// DefaultSnakeConfig returns the default Anago Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:  SnakeGrid{Cols: 20, Rows: 20, Cell: 16},
		Step:  SnakeStep{StepMs: 120},
		Start: SnakeStart{X: 10, Y: 10},
		Input: SnakeInput{SwipeThreshold: 20},
	}
}

// DefaultBomberConfig returns the default Dog Bomber configuration.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Canvas:  Canvas{Width: 360, Height: 480},
		Grid:    BomberGrid{Cols: 11, Rows: 13, Tile: 28, Top: 80},
		Crates:  BomberCrates{Chance: 0.45, SafeRadius: 2},
		Bombs:   BomberBombs{FuseMs: 1800, ExplosionMs: 260, Range: 3},
		Scoring: BomberScoring{Crate: 10},
	}
}

// DefaultBreakoutConfig returns the default Anago Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: Canvas{Width: 360, Height: 640},
		Paddle: BreakoutPaddle{
			Width:        80,
			Height:       14,
			BottomOffset: 80,
			Speed:        0.55,
			Margin:       6,
		},
		Ball: BreakoutBall{
			Radius:      8,
			Speed:       0.35,
			BounceBoost: 1.2,
		},
		Bricks: BreakoutBricks{
			Rows:   5,
			Cols:   8,
			Margin: 6,
			Top:    90,
			Height: 20,
		},
		Scoring: BreakoutScoring{TopRow: 30, BottomRow: 20, Middle: 10},
	}
}

// DefaultFlappyConfig returns the default Flappy Anago configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: Canvas{Width: 360, Height: 640},
		Physics: FlappyPhysics{
			Gravity:      0.0013,
			Flap:         -0.55,
			MaxFall:      0.75,
			GroundHeight: 80,
		},
		Pipes: FlappyPipes{
			Width:      60,
			Gap:        190,
			Speed:      0.11,
			IntervalMs: 1900,
			Margin:     60,
		},
		Player: FlappyPlayer{
			X:      120,
			Radius: 16,
			Sprite: "games/anago-flappy.png",
		},
	}
}

// DefaultInvadersConfig returns the default Dog Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Canvas: Canvas{Width: 360, Height: 480},
		Player: InvadersPlayer{
			Y:          420,
			Width:      40,
			Height:     16,
			Speed:      0.35,
			Margin:     8,
			SpeedBoost: 1.7,
		},
		Shots: InvadersShots{
			CooldownMs:  220,
			RapidFactor: 0.45,
			Spread:      9,
			Speed:       -0.5,
		},
		Enemies: InvadersEnemies{
			Cols:        8,
			Rows:        4,
			SpacingX:    34,
			SpacingY:    32,
			StartX:      40,
			StartY:      70,
			MoveMs:      450,
			StepX:       8,
			StepY:       18,
			Edge:        20,
			ShootMs:     900,
			BulletSpeed: 0.25,
			HitHalf:     12,
			DangerGap:   30,
		},
		Boss: InvadersBoss{
			Width:        70,
			Height:       40,
			Y:            110,
			Speed:        0.18,
			Edge:         16,
			ShootMs:      700,
			BulletFactor: 1.2,
			MaxHP:        40,
		},
		PowerUps: InvadersPowerUps{
			Chance:     0.18,
			Speed:      0.12,
			DurationMs: 8000,
		},
		Scoring: InvadersScoring{Enemy: 10},
	}
}

// DefaultMemeConfig returns the default meme maker configuration.
func DefaultMemeConfig() MemeConfig {
	return MemeConfig{
		Size:        512,
		Scale:       1,
		Base:        "meme-maker/base/anago.png",
		EquipChance: 0.8,
		Caption:     MemeCaption{Height: 26, Margin: 16, WidthRatio: 0.9},
		Export:      MemeExport{Filename: "anago-meme.png"},
		Traits:      []MemeTrait{},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "snake":
		return defaultSnakeYAML
	case "bomber":
		return defaultBomberYAML
	case "breakout":
		return defaultBreakoutYAML
	case "flappy":
		return defaultFlappyYAML
	case "invaders":
		return defaultInvadersYAML
	case "meme":
		return defaultMemeYAML
	default:
		return nil
	}
}

// Names lists every config name with an embedded default.
func Names() []string {
	return []string{"snake", "bomber", "breakout", "flappy", "invaders", "meme"}
}
