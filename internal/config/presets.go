package config

import "sort"

// Presets are well-known locations in the set, keyed by name. Zoom and
// iteration values are tuned so each location resolves without manual
// adjustment.
var Presets = map[string]*Config{
	"home": {
		CenterX: -0.5, CenterY: 0.0, Zoom: 1.0, Iterations: 100,
	},
	"seahorse": {
		CenterX: -0.7435, CenterY: 0.1314, Zoom: 250, Iterations: 600,
	},
	"elephant": {
		CenterX: 0.2755, CenterY: 0.0067, Zoom: 180, Iterations: 500,
	},
	"spiral": {
		CenterX: -0.7453, CenterY: 0.1127, Zoom: 1600, Iterations: 800,
	},
	"tendril": {
		CenterX: -0.2262, CenterY: 1.1164, Zoom: 400, Iterations: 600,
	},
	"minibrot": {
		CenterX: -1.7855, CenterY: 0.0, Zoom: 2200, Iterations: 900,
	},
}

// GetPreset returns the named location merged over defaults, or nil if
// the name is unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.CenterX = p.CenterX
	cfg.CenterY = p.CenterY
	cfg.Zoom = p.Zoom
	cfg.Iterations = p.Iterations
	return cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
