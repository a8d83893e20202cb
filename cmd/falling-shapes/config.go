package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/gobs/components"
)

// Config drives the demo loop. Every field has a default, so the demo runs
// without a config file; a watched file can retune spawning live.
type Config struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
	Spawn struct {
		Batch    int     `yaml:"batch"`
		Interval float64 `yaml:"interval"`
	} `yaml:"spawn"`
	KillAfter float64 `yaml:"kill_after"`
}

func defaultConfig() Config {
	var c Config
	c.Window.Width = 920
	c.Window.Height = 920
	c.Spawn.Batch = 5
	c.Spawn.Interval = 5.0
	c.KillAfter = components.DefaultKillThreshold
	return c
}

func loadConfig(path string) (Config, error) {
	c := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}

	if c.Spawn.Batch < 1 {
		return c, fmt.Errorf("%s: spawn.batch must be at least 1", path)
	}
	if c.Spawn.Interval <= 0 {
		return c, fmt.Errorf("%s: spawn.interval must be positive", path)
	}
	if c.KillAfter <= 0 {
		return c, fmt.Errorf("%s: kill_after must be positive", path)
	}
	return c, nil
}
