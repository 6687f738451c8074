package window

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const progressHeight = 16

// Progress is the render progress overlay drawn along the bottom edge.
type Progress struct {
	Value    float32
	MaxValue float32
}

func NewProgress(maxValue float32) *Progress {
	return &Progress{MaxValue: maxValue}
}

// Percent returns Value/MaxValue clipped to [0, 1].
func (p *Progress) Percent() float32 {
	if p.MaxValue <= 0 {
		return 0
	}
	v := p.Value / p.MaxValue
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (p *Progress) Done() bool {
	return p.Percent() >= 1
}

// RowDone advances the bar past row iy. It matches render.Renderer's RowDone event.
func (p *Progress) RowDone(iy int) {
	p.Value = float32(iy + 1)
}

func (p *Progress) Draw(bounds rl.Rectangle) {
	label := fmt.Sprintf("%3.0f%%", p.Percent()*100)
	gui.ProgressBar(bounds, "", label, p.Percent(), 0, 1)
}

func progressBounds(width, height int) rl.Rectangle {
	return rl.Rectangle{
		X:      4,
		Y:      float32(height - progressHeight - 4),
		Width:  float32(width) - 48,
		Height: progressHeight,
	}
}
