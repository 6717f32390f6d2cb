// Package config loads run settings from defaults, a .env file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/manor"
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
	RendererAuto   = "auto"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds the settings for one run
type Config struct {
	Seed     int64 // 0 derives a seed from the clock
	Rows     int
	Cols     int
	Steps    int
	Keys     int
	Gems     int
	Dice     int
	Renderer string
	LogFile  string
	DumpDir  string
	MaxTurns int // 0 means no limit
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Rows:     manor.DefaultRows,
		Cols:     manor.DefaultCols,
		Steps:    entities.DefaultSteps,
		Keys:     entities.DefaultKeys,
		Gems:     entities.DefaultGems,
		Dice:     entities.DefaultDice,
		Renderer: RendererAuto,
		DumpDir:  ".",
	}
}

var (
	current   = Default()
	currentMu sync.RWMutex
)

// Current returns the settings in effect
func Current() Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// Set makes cfg the settings in effect
func Set(cfg Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = cfg
}

// Load builds the configuration: defaults, then the .env file at envFile
// (if present), then MANOR_* environment variables, then args.
func Load(envFile string, args []string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("Warning: %s not loaded: %v", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"MANOR_ROWS", &c.Rows},
		{"MANOR_COLS", &c.Cols},
		{"MANOR_STEPS", &c.Steps},
		{"MANOR_KEYS", &c.Keys},
		{"MANOR_GEMS", &c.Gems},
		{"MANOR_DICE", &c.Dice},
		{"MANOR_MAX_TURNS", &c.MaxTurns},
	}
	for _, v := range ints {
		raw := strings.TrimSpace(getenv(v.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, v.name, raw, err)
		}
		*v.dst = n
	}

	if raw := strings.TrimSpace(getenv("MANOR_SEED")); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: MANOR_SEED=%q: %v", ErrInvalid, raw, err)
		}
		c.Seed = seed
	}
	if raw := strings.TrimSpace(getenv("MANOR_RENDERER")); raw != "" {
		c.Renderer = strings.ToLower(raw)
	}
	if raw := getenv("MANOR_LOG_FILE"); raw != "" {
		c.LogFile = raw
	}
	if raw := getenv("MANOR_DUMP_DIR"); raw != "" {
		c.DumpDir = raw
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("manorwalk", flag.ContinueOnError)
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 derives one from the clock)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "manor rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "manor columns")
	fs.IntVar(&c.Steps, "steps", c.Steps, "starting steps")
	fs.IntVar(&c.Keys, "keys", c.Keys, "starting keys")
	fs.IntVar(&c.Gems, "gems", c.Gems, "starting gems")
	fs.IntVar(&c.Dice, "dice", c.Dice, "starting dice")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "render surface: tui, ebiten or auto")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write diagnostics to this file")
	fs.StringVar(&c.DumpDir, "dump-dir", c.DumpDir, "directory for map dumps")
	fs.IntVar(&c.MaxTurns, "max-turns", c.MaxTurns, "stop after this many turns (0 for no limit)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	c.Renderer = strings.ToLower(c.Renderer)
	return nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if c.Rows < 2 || c.Cols < 1 {
		return fmt.Errorf("%w: manor must be at least 2x1, got %dx%d", ErrInvalid, c.Rows, c.Cols)
	}
	switch c.Renderer {
	case RendererTUI, RendererEbiten, RendererAuto:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalid, c.Renderer)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("%w: max turns %d is negative", ErrInvalid, c.MaxTurns)
	}
	return nil
}

// Inventory returns the starting inventory the settings describe
func (c Config) Inventory() *entities.Inventory {
	return &entities.Inventory{
		Steps: c.Steps,
		Keys:  c.Keys,
		Gems:  c.Gems,
		Dice:  c.Dice,
	}
}
