package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"boxstep/internal/game"
	_ "boxstep/internal/scripts"
)

func main() {
	var cfg game.Config
	flag.StringVar(&cfg.ScenePath, "scene", "", "scene file to load (default: built-in ground and ball)")
	flag.IntVar(&cfg.Capacity, "capacity", 0, "override the physics body capacity")
	flag.BoolVar(&cfg.StopAtFirstStatic, "stop-at-static", false, "end each integration pass at the first static body")
	flag.BoolVar(&cfg.LogCollisions, "log-collisions", false, "log every collision")
	flag.Parse()

	if cfg.ScenePath != "" {
		if abs, err := filepath.Abs(cfg.ScenePath); err == nil {
			cfg.ScenePath = abs
		}
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	if err := game.New(cfg).Run(); err != nil {
		log.Fatal(err)
	}
}
