//go:build darwin || linux || windows
// +build darwin linux windows

package main

import (
	"errors"
	"io/fs"

	"github.com/bmatsuo/mobile-gl-cube/cube"

	"golang.org/x/mobile/asset"
)

// loadConfig reads the config asset at path.  A missing asset yields the
// default configuration.
func loadConfig(path string) (cube.Config, error) {
	f, err := asset.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cube.DefaultConfig(), nil
	}
	if err != nil {
		return cube.Config{}, err
	}
	defer f.Close()
	return cube.ParseConfig(f)
}
