package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const noConfigMessage = "no eqsat.toml found\nplease specify input files explicitly, e.g.:\n  eqsat build terms.sexpr"

type config struct {
	Path string
	Root string
	Doc  configDoc
}

type configDoc struct {
	Graph graphConfig `toml:"graph"`
	Cache cacheConfig `toml:"cache"`
}

type graphConfig struct {
	Sources []string `toml:"sources"`
}

type cacheConfig struct {
	Snapshot string `toml:"snapshot"`
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "eqsat.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(startDir string) (*config, bool, error) {
	path, ok, err := findConfig(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	doc, err := decodeConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &config{Path: path, Root: filepath.Dir(path), Doc: doc}, true, nil
}

func decodeConfig(path string) (configDoc, error) {
	var doc configDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return configDoc{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return doc, nil
}
