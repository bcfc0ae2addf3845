package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (easy, normal, hard)", s)
	}
}

// SpeedScale returns the multiplier applied to speeds by a preset.
// Normal keeps every constant exact.
func SpeedScale(p DifficultyPreset) float64 {
	switch p {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// scaleMs shortens (or lengthens) a period so events come k times as often.
func scaleMs(ms int, k float64) int {
	return int(math.Round(float64(ms) / k))
}

// ApplySnakePreset changes the step period.
func ApplySnakePreset(cfg *SnakeConfig, p DifficultyPreset) {
	cfg.Step.StepMs = scaleMs(cfg.Step.StepMs, SpeedScale(p))
}

// ApplyBomberPreset changes the fuse length. Harder presets burn faster.
func ApplyBomberPreset(cfg *BomberConfig, p DifficultyPreset) {
	cfg.Bombs.FuseMs = scaleMs(cfg.Bombs.FuseMs, SpeedScale(p))
}

// ApplyBreakoutPreset changes the ball speed.
func ApplyBreakoutPreset(cfg *BreakoutConfig, p DifficultyPreset) {
	cfg.Ball.Speed *= SpeedScale(p)
}

// ApplyFlappyPreset changes scroll speed and spawn period together so pipe
// spacing stays the same.
func ApplyFlappyPreset(cfg *FlappyConfig, p DifficultyPreset) {
	k := SpeedScale(p)
	cfg.Pipes.Speed *= k
	cfg.Pipes.IntervalMs = scaleMs(cfg.Pipes.IntervalMs, k)
}

// ApplyInvadersPreset changes the formation cadence and hostile fire.
func ApplyInvadersPreset(cfg *InvadersConfig, p DifficultyPreset) {
	k := SpeedScale(p)
	cfg.Enemies.MoveMs = scaleMs(cfg.Enemies.MoveMs, k)
	cfg.Enemies.ShootMs = scaleMs(cfg.Enemies.ShootMs, k)
	cfg.Enemies.BulletSpeed *= k
	cfg.Boss.Speed *= k
}
