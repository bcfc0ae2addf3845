// Package config provides file-based game configuration with embedded
// defaults, difficulty presets and .env loading for the arcade.
package config

// SnakeConfig contains all configuration for Anago Snake.
type SnakeConfig struct {
	Grid  SnakeGrid  `yaml:"grid" toml:"grid"`
	Step  SnakeStep  `yaml:"timing" toml:"timing"`
	Start SnakeStart `yaml:"start" toml:"start"`
	Input SnakeInput `yaml:"input" toml:"input"`
}

// SnakeGrid defines the board.
type SnakeGrid struct {
	Cols int `yaml:"cols" toml:"cols"`
	Rows int `yaml:"rows" toml:"rows"`
	Cell int `yaml:"cell" toml:"cell"`
}

// SnakeStep defines the fixed step of the simulation.
type SnakeStep struct {
	StepMs int `yaml:"step_ms" toml:"step_ms"`
}

// SnakeStart is the head's starting cell.
type SnakeStart struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
}

// SnakeInput tunes pointer gestures.
type SnakeInput struct {
	SwipeThreshold float64 `yaml:"swipe_threshold" toml:"swipe_threshold"`
}

// BomberConfig contains all configuration for Dog Bomber.
type BomberConfig struct {
	Canvas  Canvas        `yaml:"canvas" toml:"canvas"`
	Grid    BomberGrid    `yaml:"grid" toml:"grid"`
	Crates  BomberCrates  `yaml:"crates" toml:"crates"`
	Bombs   BomberBombs   `yaml:"bombs" toml:"bombs"`
	Scoring BomberScoring `yaml:"scoring" toml:"scoring"`
}

// Canvas is a logical surface size in pixels.
type Canvas struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// BomberGrid defines the tile map placement.
type BomberGrid struct {
	Cols int `yaml:"cols" toml:"cols"`
	Rows int `yaml:"rows" toml:"rows"`
	Tile int `yaml:"tile" toml:"tile"`
	Top  int `yaml:"top" toml:"top"`
}

// BomberCrates defines crate generation.
type BomberCrates struct {
	Chance     float64 `yaml:"chance" toml:"chance"`
	SafeRadius int     `yaml:"safe_radius" toml:"safe_radius"`
}

// BomberBombs defines bomb timing and blast.
type BomberBombs struct {
	FuseMs      int `yaml:"fuse_ms" toml:"fuse_ms"`
	ExplosionMs int `yaml:"explosion_ms" toml:"explosion_ms"`
	Range       int `yaml:"range" toml:"range"`
}

// BomberScoring defines points.
type BomberScoring struct {
	Crate int `yaml:"crate" toml:"crate"`
}

// BreakoutConfig contains all configuration for Anago Breakout.
type BreakoutConfig struct {
	Canvas  Canvas          `yaml:"canvas" toml:"canvas"`
	Paddle  BreakoutPaddle  `yaml:"paddle" toml:"paddle"`
	Ball    BreakoutBall    `yaml:"ball" toml:"ball"`
	Bricks  BreakoutBricks  `yaml:"bricks" toml:"bricks"`
	Scoring BreakoutScoring `yaml:"scoring" toml:"scoring"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	Margin       float64 `yaml:"margin" toml:"margin"`
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Radius      float64 `yaml:"radius" toml:"radius"`
	Speed       float64 `yaml:"speed" toml:"speed"`
	BounceBoost float64 `yaml:"bounce_boost" toml:"bounce_boost"`
}

// BreakoutBricks defines the brick wall.
type BreakoutBricks struct {
	Rows   int     `yaml:"rows" toml:"rows"`
	Cols   int     `yaml:"cols" toml:"cols"`
	Margin float64 `yaml:"margin" toml:"margin"`
	Top    float64 `yaml:"top" toml:"top"`
	Height float64 `yaml:"height" toml:"height"`
}

// BreakoutScoring defines brick values by row band.
type BreakoutScoring struct {
	TopRow    int `yaml:"top_row" toml:"top_row"`
	BottomRow int `yaml:"bottom_row" toml:"bottom_row"`
	Middle    int `yaml:"middle" toml:"middle"`
}

// FlappyConfig contains all configuration for Flappy Anago.
type FlappyConfig struct {
	Canvas  Canvas        `yaml:"canvas" toml:"canvas"`
	Physics FlappyPhysics `yaml:"physics" toml:"physics"`
	Pipes   FlappyPipes   `yaml:"pipes" toml:"pipes"`
	Player  FlappyPlayer  `yaml:"player" toml:"player"`
}

// FlappyPhysics defines physics parameters in px/ms units.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	Flap         float64 `yaml:"flap" toml:"flap"`
	MaxFall      float64 `yaml:"max_fall" toml:"max_fall"`
	GroundHeight float64 `yaml:"ground_height" toml:"ground_height"`
}

// FlappyPipes defines obstacle parameters.
type FlappyPipes struct {
	Width      float64 `yaml:"width" toml:"width"`
	Gap        float64 `yaml:"gap" toml:"gap"`
	Speed      float64 `yaml:"speed" toml:"speed"`
	IntervalMs int     `yaml:"interval_ms" toml:"interval_ms"`
	Margin     float64 `yaml:"margin" toml:"margin"`
}

// FlappyPlayer defines the flyer.
type FlappyPlayer struct {
	X      float64 `yaml:"x" toml:"x"`
	Radius float64 `yaml:"radius" toml:"radius"`
	Sprite string  `yaml:"sprite" toml:"sprite"`
}

// InvadersConfig contains all configuration for Dog Invaders.
type InvadersConfig struct {
	Canvas   Canvas           `yaml:"canvas" toml:"canvas"`
	Player   InvadersPlayer   `yaml:"player" toml:"player"`
	Shots    InvadersShots    `yaml:"shots" toml:"shots"`
	Enemies  InvadersEnemies  `yaml:"enemies" toml:"enemies"`
	Boss     InvadersBoss     `yaml:"boss" toml:"boss"`
	PowerUps InvadersPowerUps `yaml:"powerups" toml:"powerups"`
	Scoring  InvadersScoring  `yaml:"scoring" toml:"scoring"`
}

// InvadersPlayer defines the bone ship.
type InvadersPlayer struct {
	Y          float64 `yaml:"y" toml:"y"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Speed      float64 `yaml:"speed" toml:"speed"`
	Margin     float64 `yaml:"margin" toml:"margin"`
	SpeedBoost float64 `yaml:"speed_boost" toml:"speed_boost"`
}

// InvadersShots defines the player's gun.
type InvadersShots struct {
	CooldownMs  int     `yaml:"cooldown_ms" toml:"cooldown_ms"`
	RapidFactor float64 `yaml:"rapid_factor" toml:"rapid_factor"`
	Spread      float64 `yaml:"spread" toml:"spread"`
	Speed       float64 `yaml:"speed" toml:"speed"`
}

// InvadersEnemies defines the invader formation.
type InvadersEnemies struct {
	Cols        int     `yaml:"cols" toml:"cols"`
	Rows        int     `yaml:"rows" toml:"rows"`
	SpacingX    float64 `yaml:"spacing_x" toml:"spacing_x"`
	SpacingY    float64 `yaml:"spacing_y" toml:"spacing_y"`
	StartX      float64 `yaml:"start_x" toml:"start_x"`
	StartY      float64 `yaml:"start_y" toml:"start_y"`
	MoveMs      int     `yaml:"move_ms" toml:"move_ms"`
	StepX       float64 `yaml:"step_x" toml:"step_x"`
	StepY       float64 `yaml:"step_y" toml:"step_y"`
	Edge        float64 `yaml:"edge" toml:"edge"`
	ShootMs     int     `yaml:"shoot_ms" toml:"shoot_ms"`
	BulletSpeed float64 `yaml:"bullet_speed" toml:"bullet_speed"`
	HitHalf     float64 `yaml:"hit_half" toml:"hit_half"`
	DangerGap   float64 `yaml:"danger_gap" toml:"danger_gap"`
}

// InvadersBoss defines the boss wave.
type InvadersBoss struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Y            float64 `yaml:"y" toml:"y"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	Edge         float64 `yaml:"edge" toml:"edge"`
	ShootMs      int     `yaml:"shoot_ms" toml:"shoot_ms"`
	BulletFactor float64 `yaml:"bullet_factor" toml:"bullet_factor"`
	MaxHP        int     `yaml:"max_hp" toml:"max_hp"`
}

// InvadersPowerUps defines drops.
type InvadersPowerUps struct {
	Chance     float64 `yaml:"chance" toml:"chance"`
	Speed      float64 `yaml:"speed" toml:"speed"`
	DurationMs int     `yaml:"duration_ms" toml:"duration_ms"`
}

// InvadersScoring defines points.
type InvadersScoring struct {
	Enemy int `yaml:"enemy" toml:"enemy"`
}

// MemeConfig contains the meme maker settings.
type MemeConfig struct {
	Size        int         `yaml:"size" toml:"size"`
	Scale       int         `yaml:"scale" toml:"scale"`
	Base        string      `yaml:"base" toml:"base"`
	EquipChance float64     `yaml:"equip_chance" toml:"equip_chance"`
	Caption     MemeCaption `yaml:"caption" toml:"caption"`
	Export      MemeExport  `yaml:"export" toml:"export"`
	Traits      []MemeTrait `yaml:"traits" toml:"traits"`
}

// MemeCaption defines caption layout.
type MemeCaption struct {
	Height     int     `yaml:"height" toml:"height"`
	Margin     int     `yaml:"margin" toml:"margin"`
	WidthRatio float64 `yaml:"width_ratio" toml:"width_ratio"`
}

// MemeExport defines export defaults.
type MemeExport struct {
	Filename string `yaml:"filename" toml:"filename"`
}

// MemeTrait adds or overrides a catalog trait.
type MemeTrait struct {
	ID       string `yaml:"id" toml:"id"`
	Label    string `yaml:"label" toml:"label"`
	Category string `yaml:"category" toml:"category"`
	Src      string `yaml:"src" toml:"src"`
}
