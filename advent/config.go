package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	ini "github.com/vaughan0/go-ini"
)

const defaultInputDir = "inputs"

type config struct {
	InputDir string
	Verbose  bool
	Comma    bool
}

// loadConfig builds the configuration from defaults, the INI file at path
// (or $ADVENT_CONFIG, or ~/.config/advent/config.ini), and then the
// environment. Only an explicitly named config file is required to exist.
func loadConfig(path string, getenv func(string) string) (config, error) {
	cfg := config{InputDir: defaultInputDir}

	required := true
	if path == "" {
		path = getenv("ADVENT_CONFIG")
	}
	if path == "" {
		required = false
		if home := getenv("HOME"); home != "" {
			path = filepath.Join(home, ".config", "advent", "config.ini")
		}
	}
	if path != "" {
		if err := loadConfigFile(&cfg, path, required); err != nil {
			return config{}, err
		}
	}

	if dir := getenv("ADVENT_INPUT_DIR"); dir != "" {
		cfg.InputDir = dir
	}
	if v := getenv("ADVENT_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return config{}, fmt.Errorf("bad ADVENT_VERBOSE value %q", v)
		}
		cfg.Verbose = b
	}
	return cfg, nil
}

func loadConfigFile(cfg *config, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("error loading config (%s): %s", path, err)
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		return fmt.Errorf("error loading config (%s): %s", path, err)
	}
	section := file.Section("advent")
	if dir, ok := section["inputdir"]; ok && dir != "" {
		cfg.InputDir = dir
	}
	for _, opt := range []struct {
		name string
		dst  *bool
	}{
		{"verbose", &cfg.Verbose},
		{"comma", &cfg.Comma},
	} {
		v, ok := section[opt.name]
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config %s: bad value for %s: %q", path, opt.name, v)
		}
		*opt.dst = b
	}
	return nil
}
