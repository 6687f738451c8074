package app

import (
	"fmt"
	"log"
	"time"

	"kray/internal/config"
	"kray/internal/render"
	"kray/internal/scene"
	"kray/internal/window"
)

type App struct {
	Config   config.Config
	Scene    *scene.Scene
	Renderer *render.Renderer
}

func New(cfg config.Config) *App {
	sc := scene.Default()
	r := render.New(sc)
	r.FlushHint = cfg.FlushHintMs
	r.PreviewBlock = cfg.PreviewBlock

	return &App{
		Config:   cfg,
		Scene:    sc,
		Renderer: r,
	}
}

// Run opens the window, renders the scene into it once, and blocks until the
// window is dismissed.
func (a *App) Run() error {
	log.Printf("kray: scene %s, %dx%d, preview=%d flush=%dms", a.Scene.Summary(), render.Width, render.Height, a.Config.PreviewBlock, a.Config.FlushHintMs)

	win, err := window.Open(render.Width, render.Height, a.Config.Title, window.Style(a.Config.Style), window.Options{
		TargetFPS:    a.Config.TargetFPS,
		ShowProgress: a.Config.ShowProgress,
		TraceLog:     a.Config.TraceLog,
	})
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	defer win.Close()

	if p := win.Progress(); p != nil {
		a.Renderer.RowDone.AddListener(p.RowDone)
	}

	start := time.Now()
	a.Renderer.Render(win)
	log.Printf("kray: rendered in %v", time.Since(start).Round(time.Millisecond))

	if win.Closed() {
		log.Println("kray: window closed during render")
		return nil
	}

	win.Wait(a.Config.WaitTimeout())
	log.Println("kray: window closed")
	return nil
}
