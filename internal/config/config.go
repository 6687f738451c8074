package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultPath is where preferences are read from when -config is not given.
const DefaultPath = ".kray.json"

var ErrInvalid = errors.New("invalid config")

var traceLevels = []string{"all", "trace", "debug", "info", "warning", "error", "fatal", "none"}

// Config holds the display preferences. The rendered image does not depend on
// any of them.
type Config struct {
	Title         string `json:"title"`
	Style         uint32 `json:"style"`
	FlushHintMs   int    `json:"flushHintMs"`
	PreviewBlock  int    `json:"previewBlock"`
	ShowProgress  bool   `json:"showProgress"`
	TargetFPS     int32  `json:"targetFps"`
	WaitTimeoutMs int    `json:"waitTimeoutMs"`
	TraceLog      string `json:"traceLog"`
}

func Default() Config {
	return Config{
		Title:         "kray",
		Style:         1,
		FlushHintMs:   100,
		PreviewBlock:  0,
		ShowProgress:  false,
		TargetFPS:     60,
		WaitTimeoutMs: -1,
		TraceLog:      "warning",
	}
}

// WaitTimeout is the dismiss timeout; negative means wait forever.
func (c Config) WaitTimeout() time.Duration {
	if c.WaitTimeoutMs < 0 {
		return -1
	}
	return time.Duration(c.WaitTimeoutMs) * time.Millisecond
}

func (c Config) Validate() error {
	if c.FlushHintMs < 0 {
		return fmt.Errorf("%w: flushHintMs %d is negative", ErrInvalid, c.FlushHintMs)
	}
	if c.PreviewBlock < 0 {
		return fmt.Errorf("%w: previewBlock %d is negative", ErrInvalid, c.PreviewBlock)
	}
	if c.TargetFPS < 0 {
		return fmt.Errorf("%w: targetFps %d is negative", ErrInvalid, c.TargetFPS)
	}
	for _, l := range traceLevels {
		if c.TraceLog == l {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown traceLog %q", ErrInvalid, c.TraceLog)
}

// LoadFile overlays the JSON preferences at path onto c. A missing file
// leaves c unchanged.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Parse builds the config from defaults, then the preferences file, then
// command-line flags. Flags win.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	path := fs.String("config", DefaultPath, "path to JSON preferences file")
	title := fs.String("title", "", "window title")
	flushMs := fs.Int("flush-ms", -1, "minimum milliseconds between row presents")
	preview := fs.Int("preview", -1, "coarse preview block size in pixels, 0 to disable")
	progress := fs.Bool("progress", false, "draw a progress bar while rendering")
	fps := fs.Int("fps", -1, "present rate cap while waiting")
	traceLog := fs.String("trace-log", "", "raylib log level: all, trace, debug, info, warning, error, fatal, none")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if err := cfg.LoadFile(*path); err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cfg.Title = *title
		case "flush-ms":
			cfg.FlushHintMs = *flushMs
		case "preview":
			cfg.PreviewBlock = *preview
		case "progress":
			cfg.ShowProgress = *progress
		case "fps":
			cfg.TargetFPS = int32(*fps)
		case "trace-log":
			cfg.TraceLog = *traceLog
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
