package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"kray/internal/app"
	"kray/internal/config"
)

func main() {
	// Change working directory to executable location for deployed builds so
	// the preferences file is found next to the binary.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Println("kray: config error:", err)
		os.Exit(1)
	}

	if err := app.New(cfg).Run(); err != nil {
		log.Println("kray:", err)
		os.Exit(1)
	}
}
