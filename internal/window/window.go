package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrWindowNotReady = errors.New("window not ready")

// Style selects native window decorations. StyleFramed is the plain default.
type Style uint32

const (
	StyleFramed Style = 1 << iota
	StyleTopmost
	StyleHighDPI
)

func (s Style) configFlags() uint32 {
	var flags uint32
	if s&StyleTopmost != 0 {
		flags |= rl.FlagWindowTopmost
	}
	if s&StyleHighDPI != 0 {
		flags |= rl.FlagWindowHighdpi
	}
	return flags
}

type Options struct {
	// TargetFPS caps the present rate while waiting. Zero leaves raylib's default.
	TargetFPS int32
	// ShowProgress draws a progress bar over the image until every row is flushed.
	ShowProgress bool
	// TraceLog is the raylib log level name, see SetTraceLog.
	TraceLog string
}

// Window is a fixed-size raster window. It keeps a CPU copy of the pixels and
// uploads it to a texture whenever it presents.
type Window struct {
	width    int
	height   int
	pixels   []color.RGBA
	texture  rl.Texture2D
	progress *Progress
	leap     leap

	closed   bool
	released bool
}

// Open creates the window. It must be called from the main goroutine.
func Open(width, height int, title string, style Style, opts Options) (*Window, error) {
	SetTraceLog(opts.TraceLog)
	rl.SetConfigFlags(style.configFlags())
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("open %dx%d %q: %w", width, height, title, ErrWindowNotReady)
	}
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	img := rl.GenImageColor(width, height, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	w := &Window{
		width:   width,
		height:  height,
		pixels:  make([]color.RGBA, width*height),
		texture: tex,
		leap:    leap{now: time.Now},
	}
	for i := range w.pixels {
		w.pixels[i] = rl.Black
	}
	if opts.ShowProgress {
		w.progress = NewProgress(float32(height))
	}
	return w, nil
}

func (w *Window) Width() int  { return w.width }
func (w *Window) Height() int { return w.height }

// Progress returns the overlay, or nil when Options.ShowProgress was off.
func (w *Window) Progress() *Progress { return w.progress }

// SetPixel stores a pixel packed as 0x00BBGGRR. Out-of-range writes are dropped.
func (w *Window) SetPixel(x, y int, rgb uint32) {
	if x < 0 || y < 0 || x >= w.width || y >= w.height {
		return
	}
	w.pixels[y*w.width+x] = unpack(rgb)
}

// FlushRow presents the pixels written so far unless the last present was
// less than msHint milliseconds ago.
func (w *Window) FlushRow(msHint int) {
	if !w.leap.due(time.Duration(msHint) * time.Millisecond) {
		return
	}
	w.present()
}

// Closed reports whether the user has dismissed the window.
func (w *Window) Closed() bool { return w.closed }

// Wait keeps the window on screen until the user dismisses it, or until
// timeout has passed when timeout is not negative. The window is closed on
// return.
func (w *Window) Wait(timeout time.Duration) {
	defer w.Close()

	deadline := w.leap.now().Add(timeout)
	for !w.closed {
		if timeout >= 0 && !w.leap.now().Before(deadline) {
			return
		}
		w.present()
	}
}

// Close releases the texture and the native window. It is safe to call twice.
func (w *Window) Close() {
	if w.released {
		return
	}
	w.released = true
	w.closed = true
	rl.UnloadTexture(w.texture)
	rl.CloseWindow()
}

func (w *Window) present() {
	if w.closed {
		return
	}
	if rl.WindowShouldClose() {
		w.closed = true
		return
	}

	rl.UpdateTexture(w.texture, w.pixels)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(w.texture, 0, 0, rl.White)
	if w.progress != nil && !w.progress.Done() {
		w.progress.Draw(progressBounds(w.width, w.height))
	}
	rl.EndDrawing()
}

func unpack(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb), G: uint8(rgb >> 8), B: uint8(rgb >> 16), A: 255}
}

// leap throttles presents to at most one per hint.
type leap struct {
	now  func() time.Time
	last time.Time
}

func (l *leap) due(hint time.Duration) bool {
	t := l.now()
	if !l.last.IsZero() && t.Sub(l.last) < hint {
		return false
	}
	l.last = t
	return true
}

var traceLevels = map[string]rl.TraceLogLevel{
	"all":     rl.LogAll,
	"trace":   rl.LogTrace,
	"debug":   rl.LogDebug,
	"info":    rl.LogInfo,
	"warning": rl.LogWarning,
	"error":   rl.LogError,
	"fatal":   rl.LogFatal,
	"none":    rl.LogNone,
}

// SetTraceLog sets raylib's own log level by name. Unknown or empty names
// select "warning".
func SetTraceLog(name string) {
	level, ok := traceLevels[name]
	if !ok {
		level = rl.LogWarning
	}
	rl.SetTraceLogLevel(level)
}
