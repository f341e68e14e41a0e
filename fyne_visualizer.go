package main

import (
	"context"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/Readm/sortviz/visual"
)

// FyneVisualizer renders frames into a desktop window: one rectangle per
// bar, a two-segment progress bar and the shadowed text block, with
// keyboard input mapped to control commands.
type FyneVisualizer struct {
	app     fyne.App
	win     fyne.Window
	content *fyne.Container

	bars         []*canvas.Rectangle
	progressBG   *canvas.Rectangle
	progressFill *canvas.Rectangle
	textShadows  []*canvas.Text
	textLines    []*canvas.Text

	commands chan visual.ControlCommand
	headless bool

	mu        sync.Mutex
	closeOnce sync.Once
}

// NewFyneVisualizer creates the window and wires keyboard input. The
// window appears when ShowAndRun is called on the main goroutine.
func NewFyneVisualizer(cfg *Config) *FyneVisualizer {
	v := &FyneVisualizer{
		app:      app.New(),
		commands: make(chan visual.ControlCommand, 16),
	}
	v.win = v.app.NewWindow("Algorithm Visualizer!")
	v.win.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	v.win.SetFixedSize(true)

	background := canvas.NewRectangle(toDisplayColor(ColorBackground))
	background.Move(fyne.NewPos(0, 0))
	background.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	v.progressBG = canvas.NewRectangle(toDisplayColor(ColorProgressBG))
	v.progressBG.Move(fyne.NewPos(0, WindowHeight-ProgressBarHeight))
	v.progressBG.Resize(fyne.NewSize(WindowWidth, ProgressBarHeight))
	v.progressFill = canvas.NewRectangle(toDisplayColor(ColorProgressFill))
	v.progressFill.Move(fyne.NewPos(0, WindowHeight-ProgressBarHeight))
	v.progressFill.Resize(fyne.NewSize(0, ProgressBarHeight))

	v.content = container.NewWithoutLayout(background, v.progressBG, v.progressFill)
	v.win.SetContent(v.content)

	v.win.Canvas().SetOnTypedKey(v.onKey)
	v.win.SetOnClosed(func() {
		v.push(visual.ControlCommand{Type: visual.CommandQuit})
	})
	return v
}

func (v *FyneVisualizer) onKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.Key1, fyne.Key2, fyne.Key3, fyne.Key4, fyne.Key5:
		v.push(visual.ControlCommand{
			Type:      visual.CommandSelect,
			Algorithm: int(ev.Name[0] - '0'),
		})
	case fyne.KeyR:
		v.push(visual.ControlCommand{Type: visual.CommandReshuffle})
	case fyne.KeyUp:
		v.push(visual.ControlCommand{Type: visual.CommandSpeedUp})
	case fyne.KeyDown:
		v.push(visual.ControlCommand{Type: visual.CommandSlowDown})
	case fyne.KeyEscape:
		v.push(visual.ControlCommand{Type: visual.CommandQuit})
	}
}

func (v *FyneVisualizer) push(cmd visual.ControlCommand) {
	select {
	case v.commands <- cmd:
	default:
		GetLogger().Warnf("dropping command %s: queue full", cmd.Type)
	}
}

// ShowAndRun enters the GUI main loop; it blocks until the window closes.
func (v *FyneVisualizer) ShowAndRun() {
	v.win.ShowAndRun()
}

// Close tears the window down; safe to call more than once.
func (v *FyneVisualizer) Close() {
	v.closeOnce.Do(func() {
		v.app.Quit()
	})
}

// SetHeadless switches headless state.
func (v *FyneVisualizer) SetHeadless(headless bool) {
	v.headless = headless
}

// IsHeadless returns whether the visualizer runs without UI.
func (v *FyneVisualizer) IsHeadless() bool {
	return v.headless
}

// PublishFrame repositions and recolors the canvas objects from the frame
// description and refreshes the window content.
func (v *FyneVisualizer) PublishFrame(frame *visual.Frame) {
	if frame == nil || v.headless {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	v.ensureBars(len(frame.Bars))
	barWidth := float32(WindowWidth) / float32(len(frame.Bars))
	for k, bar := range frame.Bars {
		rect := v.bars[k]
		h := float32(bar.Value) * BarUnitHeight
		rect.FillColor = toDisplayColor(bar.Color)
		rect.Move(fyne.NewPos(float32(k)*barWidth, WindowHeight-BarBottomMargin-h))
		rect.Resize(fyne.NewSize(barWidth-1, h))
	}

	v.progressFill.Resize(fyne.NewSize(float32(frame.Progress)*WindowWidth, ProgressBarHeight))

	v.layoutText(frame.Lines)

	canvas.Refresh(v.content)
}

// ensureBars sizes the rectangle pool to the dataset length; the length
// only changes when a session is reconfigured.
func (v *FyneVisualizer) ensureBars(n int) {
	if len(v.bars) == n {
		return
	}
	for _, rect := range v.bars {
		v.content.Remove(rect)
	}
	v.bars = make([]*canvas.Rectangle, n)
	for k := range v.bars {
		rect := canvas.NewRectangle(color.Black)
		v.bars[k] = rect
		v.content.Add(rect)
	}
}

// layoutText lays the shadowed two-tone text block out line by line:
// a colon marks an accent line, an empty line is a half-height spacer.
func (v *FyneVisualizer) layoutText(lines []string) {
	for len(v.textLines) < len(lines) {
		shadow := canvas.NewText("", toDisplayColor(ColorTextShadow))
		shadow.TextSize = 8 * TextScale
		shadow.TextStyle = fyne.TextStyle{Monospace: true}
		text := canvas.NewText("", toDisplayColor(ColorText))
		text.TextSize = 8 * TextScale
		text.TextStyle = fyne.TextStyle{Monospace: true}
		v.textShadows = append(v.textShadows, shadow)
		v.textLines = append(v.textLines, text)
		v.content.Add(shadow)
		v.content.Add(text)
	}

	y := float32(20)
	for i, text := range v.textLines {
		shadow := v.textShadows[i]
		if i >= len(lines) || lines[i] == "" {
			shadow.Text = ""
			text.Text = ""
			if i < len(lines) {
				y += TextLineHeight
			}
			continue
		}
		line := lines[i]
		shadow.Text = line
		shadow.Move(fyne.NewPos(20+2, y+2))
		text.Text = line
		if hasColon(line) {
			text.Color = toDisplayColor(ColorTextAccent)
		} else {
			text.Color = toDisplayColor(ColorText)
		}
		text.Move(fyne.NewPos(20, y))
		y += TextLineHeight * TextScale
	}
}

func hasColon(line string) bool {
	for _, r := range line {
		if r == ':' {
			return true
		}
	}
	return false
}

// NextCommand returns the next control command if available, non-blocking.
func (v *FyneVisualizer) NextCommand() (visual.ControlCommand, bool) {
	select {
	case cmd := <-v.commands:
		return cmd, true
	default:
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
}

// WaitCommand blocks until a command arrives or the context is cancelled.
func (v *FyneVisualizer) WaitCommand(ctx context.Context) (visual.ControlCommand, bool) {
	select {
	case cmd := <-v.commands:
		return cmd, true
	case <-ctx.Done():
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
}

func toDisplayColor(c visual.Color) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
