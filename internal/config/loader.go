// Package config loads planner configuration from an optional YAML file
// and the process environment. Environment variables override file values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/pomodoro"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
)

// Config captures the tunable values of the planner.
type Config struct {
	SQLiteDSN        string   `yaml:"sqlite_dsn"`
	UTCOffsetMinutes int      `yaml:"utc_offset_minutes"`
	MaxBlockMinutes  int      `yaml:"max_block_minutes"`
	MergeTailMinutes int      `yaml:"merge_tail_minutes"`
	SubdivideFor     []string `yaml:"subdivide_categories"`

	Pomodoro PomodoroConfig `yaml:"pomodoro"`
}

// PomodoroConfig holds the focus timer durations in minutes.
type PomodoroConfig struct {
	FocusMinutes       int `yaml:"focus_minutes"`
	ShortBreakMinutes  int `yaml:"short_break_minutes"`
	LongBreakMinutes   int `yaml:"long_break_minutes"`
	CyclesPerLongBreak int `yaml:"cycles_per_long_break"`
}

func defaults() Config {
	return Config{
		SQLiteDSN:        "file:planner.db?_foreign_keys=on",
		MaxBlockMinutes:  30,
		MergeTailMinutes: 15,
		SubdivideFor:     []string{string(schedule.CategoryAcademic)},
		Pomodoro: PomodoroConfig{
			FocusMinutes:       25,
			ShortBreakMinutes:  5,
			LongBreakMinutes:   15,
			CyclesPerLongBreak: 4,
		},
	}
}

// Load resolves configuration in three layers: built-in defaults, then the
// YAML file named by PLANNER_CONFIG_FILE (when set), then PLANNER_*
// environment variables.
func Load() (Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("PLANNER_CONFIG_FILE")); path != "" {
		loaded, err := loadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	invalid := make([]string, 0, 2)

	if dsn := strings.TrimSpace(os.Getenv("PLANNER_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	parseInt := func(key string, min int, target *int) {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" {
			return
		}
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < min {
			invalid = append(invalid, key)
			return
		}
		*target = parsed
	}

	parseInt("PLANNER_UTC_OFFSET_MINUTES", -14*60, &cfg.UTCOffsetMinutes)
	parseInt("PLANNER_MAX_BLOCK_MINUTES", 1, &cfg.MaxBlockMinutes)
	parseInt("PLANNER_MERGE_TAIL_MINUTES", 0, &cfg.MergeTailMinutes)
	parseInt("PLANNER_POMODORO_FOCUS_MINUTES", 1, &cfg.Pomodoro.FocusMinutes)
	parseInt("PLANNER_POMODORO_SHORT_BREAK_MINUTES", 1, &cfg.Pomodoro.ShortBreakMinutes)
	parseInt("PLANNER_POMODORO_LONG_BREAK_MINUTES", 1, &cfg.Pomodoro.LongBreakMinutes)
	parseInt("PLANNER_POMODORO_CYCLES", 1, &cfg.Pomodoro.CyclesPerLongBreak)

	if list := strings.TrimSpace(os.Getenv("PLANNER_SUBDIVIDE_CATEGORIES")); list != "" {
		cfg.SubdivideFor = splitCategories(list)
	}

	for _, name := range cfg.SubdivideFor {
		if !validCategory(name) {
			invalid = append(invalid, fmt.Sprintf("subdivide category %q", name))
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid configuration values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func loadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func splitCategories(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func validCategory(name string) bool {
	switch schedule.Category(name) {
	case schedule.CategoryPersonal, schedule.CategorySpiritual, schedule.CategoryPhysical, schedule.CategoryAcademic:
		return true
	}
	return false
}

// SubdivideConfig converts the loaded values into the generator's block
// splitting settings.
func (c Config) SubdivideConfig() schedule.SubdivideConfig {
	categories := make([]schedule.Category, 0, len(c.SubdivideFor))
	for _, name := range c.SubdivideFor {
		categories = append(categories, schedule.Category(name))
	}
	return schedule.SubdivideConfig{
		MaxBlockMinutes:  c.MaxBlockMinutes,
		MergeTailMinutes: c.MergeTailMinutes,
		Categories:       categories,
	}
}

// PomodoroConfig converts the loaded values into the timer's settings.
func (c Config) PomodoroConfig() pomodoro.Config {
	return pomodoro.Config{
		FocusMinutes:       c.Pomodoro.FocusMinutes,
		ShortBreakMinutes:  c.Pomodoro.ShortBreakMinutes,
		LongBreakMinutes:   c.Pomodoro.LongBreakMinutes,
		CyclesPerLongBreak: c.Pomodoro.CyclesPerLongBreak,
	}
}
