package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	searchMu  sync.RWMutex
	searchDir string // overrides ~/.anago/configs when set
)

// SetSearchDir overrides the user config directory.
func SetSearchDir(dir string) {
	searchMu.Lock()
	defer searchMu.Unlock()
	searchDir = dir
}

// UserConfigDir returns the directory searched for user configs, or empty
// if home is unavailable.
func UserConfigDir() string {
	searchMu.RLock()
	dir := searchDir
	searchMu.RUnlock()
	if dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".anago", "configs")
}

// decode unmarshals data into out, choosing the format by file extension.
// Fields absent from data keep their current values.
func decode(path string, data []byte, out any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, out)
	}
	return yaml.Unmarshal(data, out)
}

// load resolves a config by name.
// Search order: customPath -> <user dir>/<name>.{yaml,toml} -> ./configs/<name>.{yaml,toml}.
// Whatever is found is layered on top of the embedded default, which in
// turn sits on top of the hardcoded fallback.
func load[T any](name, customPath string, fallback T) (T, error) {
	cfg := fallback
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
		cfg = fallback
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	var dirs []string
	if dir := UserConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "configs")

	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml", ".toml"} {
			path := filepath.Join(dir, name+ext)
			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return cfg, fmt.Errorf("config: read %s: %w", path, err)
			}
			layered := cfg
			if err := decode(path, data, &layered); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
			return layered, nil
		}
	}

	return cfg, nil
}

// LoadSnake loads Anago Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig())
}

// LoadBomber loads Dog Bomber configuration.
func LoadBomber(customPath string) (BomberConfig, error) {
	return load("bomber", customPath, DefaultBomberConfig())
}

// LoadBreakout loads Anago Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, DefaultBreakoutConfig())
}

// LoadFlappy loads Flappy Anago configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy", customPath, DefaultFlappyConfig())
}

// LoadInvaders loads Dog Invaders configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load("invaders", customPath, DefaultInvadersConfig())
}

// LoadMeme loads meme maker configuration.
func LoadMeme(customPath string) (MemeConfig, error) {
	return load("meme", customPath, DefaultMemeConfig())
}
