package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandelscope/internal/fractal"
)

const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultGallery = "gallery"
)

type Config struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	CenterX    float64 `yaml:"center_x"`
	CenterY    float64 `yaml:"center_y"`
	Zoom       float64 `yaml:"zoom"`
	Iterations int     `yaml:"iterations"`
	Palette    string  `yaml:"palette"`
	Workers    int     `yaml:"workers"`
	Gallery    string  `yaml:"gallery"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		CenterX:    fractal.HomeCenterX,
		CenterY:    fractal.HomeCenterY,
		Zoom:       fractal.HomeZoom,
		Iterations: fractal.DefaultIter,
		Palette:    "Rainbow",
		Gallery:    DefaultGallery,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
