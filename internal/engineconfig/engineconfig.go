package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file used when SCENE_CONFIG is unset, relative to the working directory.
const DefaultPath = "config/scene.yaml"

// Environment variables that override the file.
const (
	EnvConfig  = "SCENE_CONFIG"
	EnvTexture = "SCENE_TEXTURE"
)

// Window holds the initial window setup.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// Panel holds debug panel layout. Stylesheet is an optional CSS file for the panel theme and
// Font an optional font path or family name shared by the overlays.
type Panel struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	CloseFolders bool   `yaml:"close_folders"`
	Stylesheet   string `yaml:"stylesheet,omitempty"`
	Font         string `yaml:"font,omitempty"`
}

// DebugPreset is the tweakable scene state as written in the config file.
// Color is a #rrggbb string; the other fields map one to one onto the panel controls.
type DebugPreset struct {
	Color                string  `yaml:"color"`
	Subdivisions         int     `yaml:"subdivisions"`
	Extrusion            float32 `yaml:"extrusion"`
	TextureEnabled       bool    `yaml:"texture"`
	Style                string  `yaml:"style"`
	AmbientIntensity     float32 `yaml:"ambient_intensity"`
	DirectionalIntensity float32 `yaml:"directional_intensity"`
	PointIntensity       float32 `yaml:"point_intensity"`
	ShowGrid             bool    `yaml:"show_grid"`
	ShowStats            bool    `yaml:"show_stats"`
}

// Prefs is everything the program reads at startup. Persisted with Save from the terminal.
type Prefs struct {
	Window     Window      `yaml:"window"`
	Texture    string      `yaml:"texture"`
	AssetCache string      `yaml:"asset_cache"`
	LogFile    string      `yaml:"log_file"`
	Panel      Panel       `yaml:"panel"`
	Debug      DebugPreset `yaml:"debug"`
}

// Default returns the built-in preferences (800x600 window, panel 300 wide with closed folders).
func Default() Prefs {
	return Prefs{
		Window: Window{
			Width:     800,
			Height:    600,
			Title:     "cube-tweaks",
			TargetFPS: 60,
		},
		Texture:    "static/textures/color.jpg",
		AssetCache: "assets/cache",
		LogFile:    "logs/scene.txt",
		Panel: Panel{
			Title:        "Debug",
			Width:        300,
			CloseFolders: true,
		},
		Debug: DebugPreset{
			Color:                "#ffffff",
			Subdivisions:         2,
			TextureEnabled:       true,
			Style:                "normal",
			AmbientIntensity:     0.5,
			DirectionalIntensity: 1.5,
			PointIntensity:       10,
			ShowGrid:             true,
		},
	}
}

// Path returns the config path from SCENE_CONFIG, or DefaultPath.
func Path(getenv func(string) string) string {
	if p := getenv(EnvConfig); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads preferences from path on top of Default, so missing keys keep their defaults.
// A missing file is not an error. An unreadable or invalid file returns Default and the error.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("engineconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	return nil
}

// ApplyEnv overrides file values with environment variables.
func (p *Prefs) ApplyEnv(getenv func(string) string) {
	if t := getenv(EnvTexture); t != "" {
		p.Texture = t
	}
}
